package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/gallery/internal/export"
	"github.com/san-kum/gallery/internal/session"
	"github.com/san-kum/gallery/internal/storage"
)

var (
	outPath     string
	series      string
	sceneFrames int
)

// timelines are the plottable columns of a recorded run, in plot order.
var timelines = []struct {
	name    string
	caption string
	value   func(session.Frame) float64
}{
	{"score", "score", func(f session.Frame) float64 { return float64(f.Score) }},
	{"ammo", "ammo", func(f session.Frame) float64 { return float64(f.Ammo) }},
	{"in_flight", "projectiles in flight", func(f session.Frame) float64 { return float64(f.InFlight) }},
	{"targets", "targets remaining", func(f session.Frame) float64 { return float64(f.TargetsRemaining) }},
	{"yaw", "yaw (degrees)", func(f session.Frame) float64 { return f.Yaw }},
}

func seriesNames() []string {
	names := make([]string, len(timelines))
	for i, t := range timelines {
		names[i] = t.name
	}
	return names
}

func seriesOf(frames []session.Frame, name string) ([]float64, string, error) {
	for _, t := range timelines {
		if t.name != name {
			continue
		}
		data := make([]float64, len(frames))
		for i, f := range frames {
			data[i] = t.value(f)
		}
		return data, t.caption, nil
	}
	return nil, "", fmt.Errorf("unknown series: %s (available: %v)", name, seriesNames())
}

// loadRun returns the named run, or the newest one when args is empty.
func loadRun(st *storage.Store, args []string) (*storage.RunMetadata, []session.Frame, error) {
	var (
		meta *storage.RunMetadata
		err  error
	)
	if len(args) == 1 {
		meta, err = st.Load(args[0])
	} else {
		meta, err = st.Latest()
	}
	if err != nil {
		return nil, nil, err
	}
	frames, err := st.LoadFrames(meta.ID)
	if err != nil {
		return nil, nil, err
	}
	return meta, frames, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCRIPT\tTIME\tFRAMES\tDT\tINTEG\tSCORE\tCLEARED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4fs\t%s\t%d\t%v\n",
			run.ID,
			run.Script,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Dt,
			run.Integrator,
			run.Score,
			run.Cleared,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(storage.New(dataDir), args)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("script: %s\n", meta.Script)
	fmt.Printf("samples: %d\n\n", len(frames))

	for _, t := range timelines[:4] {
		data, caption, _ := seriesOf(frames, t.name)
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(storage.New(dataDir), args)
	if err != nil {
		return err
	}
	return export.ExportJSON(outPath, meta, frames)
}

func svgRun(cmd *cobra.Command, args []string) error {
	var doc string
	if len(args) == 1 {
		_, frames, err := loadRun(storage.New(dataDir), args)
		if err != nil {
			return err
		}
		data, _, err := seriesOf(frames, series)
		if err != nil {
			return err
		}
		points := make([]struct{ X, Y float64 }, len(frames))
		for i, f := range frames {
			points[i].X, points[i].Y = f.Time, data[i]
		}
		doc = export.TimelineToSVG(points, 800, 300, "#b4b4b4")
		if doc == "" {
			return fmt.Errorf("run has too few frames to draw")
		}
	} else {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		state, err := session.NewState(cfg, zerolog.Nop())
		if err != nil {
			return err
		}
		if sceneFrames > 0 {
			runner := session.NewRunner(state, zerolog.Nop())
			if _, err := runner.Run(cmd.Context(), session.Sweep(sceneFrames, cfg.Sim.Dt)); err != nil {
				return err
			}
		}
		scene := export.NewScene(1040, 240)
		state.Render(scene)
		doc = scene.SVG()
	}

	if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}
