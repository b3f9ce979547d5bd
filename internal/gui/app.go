// Package gui is the raylib front-end: a first-person 3D view of the
// gallery driven one fixed step per rendered frame.
package gui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"github.com/san-kum/gallery/internal/gallery"
	"github.com/san-kum/gallery/internal/metrics"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
	ColWarn    = rl.NewColor(230, 80, 60, 255)
	ColWin     = rl.NewColor(120, 220, 120, 255)
)

const (
	screenWidth    = 1280
	screenHeight   = 720
	maxTelemetry   = 200
	fontPath       = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	cameraLerpGain = 10.0
)

type App struct {
	State   *gallery.State
	Dt      float64
	Camera  rl.Camera3D
	Running bool
	Font    rl.Font

	ShowContacts bool
	ShowHelp     bool

	Telemetry []float64
	Metrics   *metrics.Set

	camPos rl.Vector3
	camTgt rl.Vector3
	scene  *scene
	log    zerolog.Logger
	quit   bool
}

func initWindow() {
	rl.InitWindow(screenWidth, screenHeight, "gallery")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont falls back to the raylib default font when the system font is
// missing.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp wraps a gallery for display. The window must already be open.
func NewApp(state *gallery.State, dt float64, log zerolog.Logger) *App {
	a := &App{
		State:     state,
		Dt:        dt,
		Running:   true,
		Font:      loadFont(),
		Telemetry: make([]float64, 0, maxTelemetry),
		Metrics:   metrics.Standard(),
		scene:     &scene{},
		log:       log.With().Str("component", "gui").Logger(),
	}
	state.AddObserver(a.Metrics)

	e := state.Emitter()
	a.camPos = toRL(e.CameraOffset())
	a.camTgt = toRL(e.AimOffset())
	a.Camera = rl.NewCamera3D(a.camPos, a.camTgt, rl.NewVector3(0, 1, 0), 45.0, rl.CameraPerspective)
	return a
}

// Run opens the window and plays until it is closed or the player quits.
func Run(state *gallery.State, dt float64, log zerolog.Logger) error {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(state, dt, log)
	app.log.Info().Float64("dt", dt).Msg("window open")
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.ShowContacts = !a.ShowContacts
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		a.ShowHelp = !a.ShowHelp
	}

	if a.Running {
		for _, cmd := range pollCommands() {
			a.State.Apply(cmd)
		}
		a.State.Update(a.Dt)

		a.Telemetry = append(a.Telemetry, float64(a.State.InFlight()))
		if len(a.Telemetry) > maxTelemetry {
			a.Telemetry = a.Telemetry[1:]
		}
	}

	e := a.State.Emitter()
	a.camPos = toRL(e.CameraOffset())
	a.camTgt = toRL(e.AimOffset())

	lerp := float32(cameraLerpGain * a.Dt)
	if lerp > 1.0 {
		lerp = 1.0
	}
	a.Camera.Position = rl.Vector3Lerp(a.Camera.Position, a.camPos, lerp)
	a.Camera.Target = rl.Vector3Lerp(a.Camera.Target, a.camTgt, lerp)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(a.Camera)
	a.drawGround(40, 2.0)
	a.scene.camera = a.State.Emitter().CameraOffset()
	a.State.Render(a.scene)
	if a.ShowContacts {
		a.drawContacts()
	}
	rl.EndMode3D()

	a.drawCrosshair()
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	snap := a.State.Snapshot()
	capacity := a.State.Params().Projectile.Capacity

	a.drawText("gallery", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf("SCORE %d", snap.Score), 30, 70, 20, ColSelect)
	a.drawText(fmt.Sprintf("TARGETS %d", snap.TargetsRemaining), 30, 96, 16, ColText)
	a.drawText(fmt.Sprintf("AMMO %d/%d", snap.Ammo, capacity), 30, 118, 16, ColText)
	a.drawText(fmt.Sprintf("PITCH %+.1f  YAW %+.1f", snap.Aim.Pitch, snap.Aim.Yaw), 30, 140, 16, ColText)
	if acc, ok := a.Metrics.Get("accuracy"); ok {
		a.drawText(fmt.Sprintf("ACCURACY %.0f%%", acc.Value()*100), 30, 162, 16, ColText)
	}

	switch {
	case !a.Running:
		a.drawText("PAUSED", 1150, 30, 16, ColTextDim)
	case snap.Cleared:
		a.drawText("YOU WIN!", screenWidth/2-80, screenHeight/2-120, 40, ColWin)
	case snap.OffTarget:
		a.drawText("AIM AT THE TARGETS ONLY!", screenWidth/2-200, 60, 24, ColWarn)
	}

	a.DrawTelemetry()

	if a.ShowHelp {
		y := 220
		for _, line := range helpLines {
			a.drawText(line, 30, y, 14, ColAccent)
			y += 20
		}
	}
	a.drawText("[SPACE] FIRE  [WASD] AIM  [UP/DOWN] HEIGHT  [R] RESET  [P] PAUSE  [F1] HELP  [Q] QUIT", 460, 680, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawGround(slices int, spacing float32) {
	half := float32(slices) * spacing / 2
	y := float32(a.State.Params().Projectile.FloorY)
	for i := -slices / 2; i <= slices/2; i++ {
		pos := float32(i) * spacing
		rl.DrawLine3D(rl.NewVector3(pos, y, 0), rl.NewVector3(pos, y, 2*half), ColGrid)
		rl.DrawLine3D(rl.NewVector3(-half, y, pos+half), rl.NewVector3(half, y, pos+half), ColGrid)
	}
}

func (a *App) drawContacts() {
	for _, c := range a.State.Contacts() {
		p := toRL(c.Point)
		n := toRL(c.Point.Add(c.Normal))
		rl.DrawSphere(p, 0.08, ColWarn)
		rl.DrawLine3D(p, n, ColWarn)
	}
}

func (a *App) drawCrosshair() {
	cx, cy := int32(screenWidth/2), int32(screenHeight/2)
	rl.DrawLine(cx-10, cy, cx+10, cy, ColAccent)
	rl.DrawLine(cx, cy-10, cx, cy+10, ColAccent)
}

// DrawTelemetry plots projectiles in flight over the last few seconds.
func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}
	rectX, rectY := 30, 600
	width, height := 400, 60
	maxVal := float64(a.State.Params().Projectile.Capacity)

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := float32(rectX) + (float32(i)/float32(maxTelemetry))*float32(width)
		py := float32(rectY+height) - float32(val/maxVal)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("IN FLIGHT %d", a.State.InFlight()), rectX+width+10, rectY+height-10, 14, ColText)
}

var helpLines = []string{
	"space      fire",
	"w / s      pitch up / down",
	"a / d      yaw left / right",
	"up / down  raise / lower the gun",
	"r          reset the round",
	"c          show contacts",
	"p          pause",
}

// pollCommands reads the keyboard. Aim and height repeat while held, fire
// and reset only on the press.
func pollCommands() []gallery.Command {
	var cmds []gallery.Command
	held := []struct {
		key int32
		cmd gallery.Command
	}{
		{rl.KeyW, gallery.CmdPitchUp},
		{rl.KeyS, gallery.CmdPitchDown},
		{rl.KeyA, gallery.CmdYawLeft},
		{rl.KeyD, gallery.CmdYawRight},
		{rl.KeyUp, gallery.CmdRaise},
		{rl.KeyDown, gallery.CmdLower},
	}
	for _, h := range held {
		if rl.IsKeyDown(h.key) {
			cmds = append(cmds, h.cmd)
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		cmds = append(cmds, gallery.CmdFire)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		cmds = append(cmds, gallery.CmdReset)
	}
	return cmds
}
