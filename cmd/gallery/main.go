package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/gallery/internal/config"
	"github.com/san-kum/gallery/internal/gallery"
	"github.com/san-kum/gallery/internal/gui"
	"github.com/san-kum/gallery/internal/integrators"
	"github.com/san-kum/gallery/internal/logging"
	"github.com/san-kum/gallery/internal/session"
	"github.com/san-kum/gallery/internal/storage"
	"github.com/san-kum/gallery/internal/tui"
	"github.com/san-kum/gallery/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	dt         float64
	duration   float64
	integrator string
	theme      string
	noSave     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "gallery",
		Short:         "arcade shooting gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          playTerminal,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".gallery", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "log level (trace|debug|info|warn|error)")
	pf.Float64Var(&dt, "dt", config.DefaultDt, "fixed timestep in seconds")
	pf.StringVar(&integrator, "integrator", config.DefaultIntegrator, "rigid-body integrator ("+strings.Join(integrators.Names(), "|")+")")
	rootCmd.Flags().StringVar(&theme, "theme", "arcade", "terminal theme ("+strings.Join(viz.ThemeNames(), "|")+")")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "play in the terminal",
		RunE:  playTerminal,
	}
	playCmd.Flags().StringVar(&theme, "theme", "arcade", "terminal theme")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "play in a 3D window",
		RunE:  playWindow,
	}

	runCmd := &cobra.Command{
		Use:   "run [script.yaml]",
		Short: "play a scripted session headless and record it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSession,
	}
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration of the built-in sweep")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run (latest by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a recorded run to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "draw a run timeline, or the opening scene without a run id",
		Args:  cobra.MaximumNArgs(1),
		RunE:  svgRun,
	}
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "gallery.svg", "output file")
	svgCmd.Flags().StringVar(&series, "series", "score", "timeline series ("+strings.Join(seriesNames(), "|")+")")
	svgCmd.Flags().IntVar(&sceneFrames, "frames", 0, "frames of the built-in sweep to play before drawing the scene")

	compareCmd := &cobra.Command{
		Use:   "compare [preset...]",
		Short: "play the built-in sweep against several presets side by side",
		RunE:  comparePresets,
	}
	compareCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration of the sweep")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%s\n", name, config.Presets[name].Description)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(playCmd, guiCmd, runCmd, listCmd, plotCmd, exportCmd, svgCmd, compareCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves the preset, then the config file, then any flag the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Sim.Dt = dt
	}
	if flags.Changed("integrator") {
		cfg.Sim.Integrator = integrator
	}
	if flags.Changed("time") {
		cfg.Sim.Duration = duration
	}
	return cfg, cfg.Validate()
}

// fileLogger is used by the front ends that own the terminal or a window.
func fileLogger() (zerolog.Logger, io.Closer, error) {
	return logging.OpenFile(filepath.Join(dataDir, "gallery.log"), logLevel)
}

func newGallery(cfg *config.Config, log zerolog.Logger) (*gallery.State, error) {
	return session.NewState(cfg, log, gallery.WithObserver(logging.NewEventLogger(log)))
}

func playTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closer, err := fileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	state, err := newGallery(cfg, log)
	if err != nil {
		return err
	}
	log.Info().Str("preset", preset).Str("theme", theme).Msg("terminal session")
	return tui.Run(state, cfg.Sim.Dt, tui.WithTheme(theme))
}

func playWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closer, err := fileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	state, err := newGallery(cfg, log)
	if err != nil {
		return err
	}
	return gui.Run(state, cfg.Sim.Dt, log)
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(logLevel, os.Stderr)

	script := session.Sweep(cfg.Frames(), cfg.Sim.Dt)
	if len(args) == 1 {
		if script, err = session.LoadScript(args[0]); err != nil {
			return err
		}
	}

	state, err := newGallery(cfg, log)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, runErr := session.NewRunner(state, log).Run(ctx, script)
	if res == nil {
		return runErr
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	fmt.Printf("script: %s\n", res.Script)
	fmt.Printf("frames: %d\n", res.StepsTaken)
	fmt.Printf("score: %d\n", state.Score())
	fmt.Printf("accuracy: %.0f%%\n", res.Metrics["accuracy"]*100)
	fmt.Printf("cleared: %v\n", res.Cleared)

	if noSave {
		return runErr
	}
	st := storage.New(dataDir)
	id, err := st.Save(storage.RunMetadata{
		Script:     res.Script,
		Preset:     preset,
		Dt:         script.Dt,
		Frames:     res.StepsTaken,
		Integrator: cfg.Sim.Integrator,
		Score:      state.Score(),
		Cleared:    res.Cleared,
		Metrics:    res.Metrics,
	}, res.Frames)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	fmt.Printf("saved: %s\n", id)
	return runErr
}

func comparePresets(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = config.ListPresets()
	}
	base, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	entries := make([]session.Entry, 0, len(names))
	for _, name := range names {
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		cfg.Sim = base.Sim
		entries = append(entries, session.Entry{Name: name, Config: cfg})
	}

	log := logging.New(logLevel, os.Stderr)
	results, err := session.NewBatch(log, entries...).Run(cmd.Context(), session.Sweep(base.Frames(), base.Sim.Dt))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSCORE\tSHOTS\tACCURACY\tREFILLS\tCLEARED")
	for i, res := range results {
		last := res.Frames[len(res.Frames)-1]
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%.0f%%\t%.0f\t%v\n",
			entries[i].Name,
			last.Score,
			res.Metrics["shots_fired"],
			res.Metrics["accuracy"]*100,
			res.Metrics["refills"],
			res.Cleared,
		)
	}
	return w.Flush()
}
