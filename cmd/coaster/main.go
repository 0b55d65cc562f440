package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/coaster/internal/analysis"
	"github.com/san-kum/coaster/internal/config"
	"github.com/san-kum/coaster/internal/curves"
	"github.com/san-kum/coaster/internal/experiment"
	"github.com/san-kum/coaster/internal/export"
	"github.com/san-kum/coaster/internal/optim"
	"github.com/san-kum/coaster/internal/storage"
	"github.com/san-kum/coaster/internal/track"
	"github.com/san-kum/coaster/internal/trajectory"
	"github.com/san-kum/coaster/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
)

var (
	dataDir     string
	configFile  string
	duration    float64
	sampleEvery float64
	timeSlice   float64
	gravity     float64
	friction    float64
	noSave      bool
	at          float64
	outPath     string
	imageOut    string
	svgWidth    int
	svgHeight   int
	plotKind    string
	width       int
	height      int
	dpi         int
	parallel    int
	slices      []float64
	jsonOut     bool
	vary        []string
	metricName  string
	maximize    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coaster",
		Short: "point mass on a track",
		RunE:  runMenu,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".coaster", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "integrate a track and store the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrack,
	}
	addTrackFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	positionCmd := &cobra.Command{
		Use:   "position [preset]",
		Short: "print the state at a single time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printPosition,
	}
	addTrackFlags(positionCmd)
	positionCmd.Flags().Float64Var(&at, "at", 1.0, "time in seconds")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&jsonOut, "json", false, "print metadata as JSON")

	deleteCmd := &cobra.Command{
		Use:   "delete [run_id]",
		Short: "delete a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).Delete(args[0])
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot height and speed of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of height and speed",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	renderCmd := &cobra.Command{
		Use:   "render [preset]",
		Short: "draw a track and its ride in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderTrack,
	}
	addTrackFlags(renderCmd)
	renderCmd.Flags().IntVar(&width, "width", 72, "width in cells")
	renderCmd.Flags().IntVar(&height, "height", 18, "height in cells")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "animate a ride in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addTrackFlags(liveCmd)

	validateCmd := &cobra.Command{
		Use:   "validate [preset]",
		Short: "check a track for gaps, jumps and bad segments",
		Args:  cobra.MaximumNArgs(1),
		RunE:  validateTrack,
	}
	validateCmd.Flags().StringVar(&configFile, "config", "", "track file (yaml)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in tracks",
		RunE:  listPresets,
	}

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "list curve shapes usable in track files",
		RunE:  listShapes,
	}

	initCmd := &cobra.Command{
		Use:   "init [path] [preset]",
		Short: "write a track file to start from",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  initTrack,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [preset] [preset] ...",
		Short: "run several tracks side by side",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareTracks,
	}
	compareCmd.Flags().IntVar(&parallel, "parallel", 4, "tracks integrated at once")

	benchCmd := &cobra.Command{
		Use:   "bench [preset]",
		Short: "time the integrator at several time slices",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchTrack,
	}
	addTrackFlags(benchCmd)
	benchCmd.Flags().Float64SliceVar(&slices, "slices", []float64{1.0 / 256, 1.0 / 1024, 1.0 / 4096}, "time slices to try")

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "grid search settings for the best score on a metric",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepTrack,
	}
	addTrackFlags(sweepCmd)
	sweepCmd.Flags().StringArrayVar(&vary, "vary", nil, "knob=v1,v2,... (gravity, friction, slice, duration or <segment index>.<param>)")
	sweepCmd.Flags().StringVar(&metricName, "metric", "max_speed", "metric to score")
	sweepCmd.Flags().BoolVar(&maximize, "max", false, "maximize instead of minimize")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [run_id]",
		Short: "plot a run to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	exportPNGCmd.Flags().StringVarP(&imageOut, "out", "o", "", "output file (default <run_id>_<kind>.png)")
	exportPNGCmd.Flags().StringVar(&plotKind, "kind", "profile", "profile, speed or height")
	exportPNGCmd.Flags().IntVar(&dpi, "dpi", 150, "resolution")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw a run to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&imageOut, "out", "o", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "width in pixels")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 500, "height in pixels")

	rootCmd.AddCommand(runCmd, positionCmd, listCmd, showCmd, deleteCmd, plotCmd, analyzeCmd, renderCmd, liveCmd,
		validateCmd, presetsCmd, shapesCmd, initCmd, compareCmd, benchCmd, sweepCmd, exportCSVCmd, exportJSONCmd, exportPNGCmd, exportSVGCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func addTrackFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "track file (yaml)")
	cmd.Flags().Float64Var(&duration, "time", trajectory.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&sampleEvery, "every", trajectory.DefaultSampleEvery, "sample period")
	cmd.Flags().Float64Var(&timeSlice, "slice", trajectory.DefaultTimeSlice, "integration time slice")
	cmd.Flags().Float64Var(&gravity, "gravity", trajectory.DefaultGravity, "gravitational acceleration")
	cmd.Flags().Float64Var(&friction, "friction", trajectory.DefaultFriction, "velocity factor per step")
}

// loadConfig picks the track file, else the named preset, else the default
// track. Flags set on the command line override whatever was loaded.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	case len(args) > 0:
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	default:
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("every") {
		cfg.SampleEvery = sampleEvery
	}
	if flags.Changed("slice") {
		cfg.Physics.TimeSlice = timeSlice
	}
	if flags.Changed("gravity") {
		cfg.Physics.Gravity = gravity
	}
	if flags.Changed("friction") {
		cfg.Physics.Friction = friction
	}
	return cfg, nil
}

func setup(cmd *cobra.Command, args []string) (*experiment.Experiment, error) {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return nil, err
	}
	exp := experiment.New(cfg)
	if err := exp.Setup(curves.NewRegistry()); err != nil {
		return nil, err
	}
	return exp, nil
}

func runTrack(cmd *cobra.Command, args []string) error {
	exp, err := setup(cmd, args)
	if err != nil {
		return err
	}
	cfg := exp.Config()

	fmt.Printf("running %s for %.2fs...\n", cfg.Name, cfg.Duration)
	start := time.Now()
	run, err := exp.Run(cmd.Context())
	elapsed := time.Since(start)
	if err != nil {
		fmt.Printf("stopped after %d samples: %v\n", len(run.Samples), err)
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(run)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	fmt.Printf("steps: %d\n", run.Steps)
	fmt.Printf("samples: %d\n", len(run.Samples))
	printMetrics(os.Stdout, run.Metrics)
	return nil
}

func printMetrics(w io.Writer, m map[string]float64) {
	fmt.Fprintln(w, "\nmetrics:")
	for _, name := range sortedKeys(m) {
		fmt.Fprintf(w, "  %s: %.6f\n", name, m[name])
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func printPosition(cmd *cobra.Command, args []string) error {
	exp, err := setup(cmd, args)
	if err != nil {
		return err
	}

	v, err := exp.Trajectory().Position(cmd.Context(), at)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "time\t%.6f s\n", at)
	fmt.Fprintf(w, "position\t%s\n", v.Origin)
	fmt.Fprintf(w, "speed\t%.6f m/s\n", v.Magnitude)
	fmt.Fprintf(w, "heading\t%.6f rad\n", v.Angle)
	fmt.Fprintf(w, "on track\t%t\n", v.Line)
	fmt.Fprintf(w, "steps\t%d\n", exp.Trajectory().Cache().Steps())
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTRACK\tTIME\tDURATION\tSLICE\tSAMPLES\tMAX SPEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.6fs\t%d\t%.3f\n",
			run.ID,
			run.Track,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.TimeSlice,
			run.Samples,
			run.Metrics["max_speed"],
		)
	}
	return w.Flush()
}

func loadRun(runID string) (*storage.Run, *storage.RunMetadata, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := st.LoadConfig(runID)
	if err != nil {
		return nil, nil, err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return nil, nil, err
	}
	return &storage.Run{Config: cfg, Samples: samples, Steps: meta.Steps, Metrics: meta.Metrics}, meta, nil
}

func buildTrack(cfg *config.Config) ([]track.Segment, error) {
	tr, err := cfg.Build(curves.NewRegistry())
	if err != nil {
		return nil, err
	}
	return tr.Segments(), nil
}

func showRun(cmd *cobra.Command, args []string) error {
	run, meta, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(meta)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", meta.ID)
	fmt.Fprintf(w, "track\t%s\n", meta.Track)
	fmt.Fprintf(w, "recorded\t%s\n", meta.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(w, "duration\t%.3fs every %.5fs\n", meta.Duration, meta.SampleEvery)
	fmt.Fprintf(w, "physics\tslice=%g g=%g friction=%g\n", meta.TimeSlice, meta.Gravity, meta.Friction)
	fmt.Fprintf(w, "steps\t%d\n", meta.Steps)
	for i, s := range meta.Segments {
		fmt.Fprintf(w, "segment %d\t%s %s [%g, %g]\n", i, s.Name, s.Shape, s.Low, s.High)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printMetrics(os.Stdout, meta.Metrics)

	segs, err := buildTrack(run.Config)
	if err != nil {
		return err
	}
	pic, err := viz.RenderTrack(segs, run.Samples, 72, 16)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Print(pic)
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	run, meta, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(run.Samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("track: %s\n", meta.Track)
	fmt.Printf("samples: %d\n\n", len(run.Samples))

	for _, series := range []struct {
		caption string
		data    []float64
	}{
		{"height (m)", analysis.Heights(run.Samples)},
		{"speed (m/s)", analysis.Speeds(run.Samples)},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	run, meta, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("track: %s\n\n", meta.Track)

	rate := 1 / meta.SampleEvery
	heights := analysis.Heights(run.Samples)
	ps := analysis.PowerSpectrum(heights)
	if len(ps) > 2 {
		graph := asciigraph.Plot(ps[1:],
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (height)"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	for _, series := range []struct {
		name string
		data []float64
	}{
		{"height", heights},
		{"speed", analysis.Speeds(run.Samples)},
	} {
		freq, power, err := analysis.DominantFrequency(series.data, rate)
		if err != nil {
			return err
		}
		fmt.Printf("%s: dominant frequency %.3f hz (power %.3g)", series.name, freq, power)
		if freq > 0 {
			fmt.Printf(", period %.3f s", 1/freq)
		}
		fmt.Println()
	}
	return nil
}

func renderTrack(cmd *cobra.Command, args []string) error {
	exp, err := setup(cmd, args)
	if err != nil {
		return err
	}
	run, runErr := exp.Run(cmd.Context())

	pic, err := viz.RenderTrack(exp.Trajectory().Track().Segments(), run.Samples, width, height)
	if err != nil {
		return err
	}
	fmt.Print(pic)
	return runErr
}

func runLive(cmd *cobra.Command, args []string) error {
	exp, err := setup(cmd, args)
	if err != nil {
		return err
	}
	cfg := exp.Config()
	return viz.RunLive(viz.NewLiveModel(cmd.Context(), cfg.Name, exp.Trajectory(), cfg.Duration))
}

func runMenu(cmd *cobra.Command, args []string) error {
	reg := curves.NewRegistry()
	names := config.ListPresets()
	items := make([]viz.MenuItem, len(names))
	for i, name := range names {
		items[i] = viz.MenuItem{Name: name, Description: config.Presets[name].Description}
	}

	load := func(name string) (*trajectory.Trajectory, float64, error) {
		exp := experiment.New(config.GetPreset(name))
		if err := exp.Setup(reg); err != nil {
			return nil, 0, err
		}
		return exp.Trajectory(), exp.Config().Duration, nil
	}
	return viz.RunApp(viz.NewApp(cmd.Context(), items, load))
}

func validateTrack(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	segs, err := buildTrack(cfg)
	if err != nil {
		return err
	}

	rep := track.Validate(segs)
	fmt.Printf("%s: %d segments, status %s\n", cfg.Name, len(segs), rep.Status())
	if len(rep.Problems) > 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SEGMENT\tKIND\tSEVERITY\tDETAIL")
		for _, p := range rep.Problems {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.Segment, p.Kind, p.Severity, p.Detail)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return rep.Err()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSEGMENTS\tDURATION\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%d\t%.1fs\t%s\n", name, len(p.Segments), p.Duration, p.Description)
	}
	return w.Flush()
}

func listShapes(cmd *cobra.Command, args []string) error {
	reg := curves.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHAPE\tPARAMS\tFORMULA")
	for _, name := range reg.Names() {
		s, err := reg.Get(name)
		if err != nil {
			return err
		}
		params := strings.Join(s.ParamNames(), ", ")
		if s.Indexed != "" {
			params = s.Indexed + "0, " + s.Indexed + "1, ..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, params, s.Description)
	}
	return w.Flush()
}

func initTrack(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if len(args) > 1 {
		if cfg = config.GetPreset(args[1]); cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", args[1], config.ListPresets())
		}
	}
	if _, err := os.Stat(args[0]); err == nil {
		return fmt.Errorf("%s already exists", args[0])
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func compareTracks(cmd *cobra.Command, args []string) error {
	cfgs := make([]*config.Config, len(args))
	for i, name := range args {
		if cfgs[i] = config.GetPreset(name); cfgs[i] == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
	}

	out, err := experiment.Compare(cmd.Context(), curves.NewRegistry(), cfgs, parallel)
	if err != nil {
		return err
	}

	fmt.Printf("%-10s  %-10s  %-10s  %-10s  %-10s  %-20s\n", "track", "max_speed", "airtime", "distance", "time_ms", "speed")
	fmt.Println(strings.Repeat("-", 82))
	for _, o := range out {
		if o.Err != nil {
			fmt.Printf("%-10s  error: %v\n", o.Name, o.Err)
			continue
		}
		m := o.Run.Metrics
		fmt.Printf("%-10s  %-10.3f  %-10.3f  %-10.3f  %-10.1f  %s\n",
			o.Name, m["max_speed"], m["airtime"], m["distance"],
			float64(o.Elapsed.Microseconds())/1000, viz.Sparkline(analysis.Speeds(o.Run.Samples), 20))
	}
	return nil
}

func benchTrack(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	rows, err := experiment.Bench(cmd.Context(), curves.NewRegistry(), cfg, slices)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %s to t=%.2fs\n\n", cfg.Name, cfg.Duration)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLICE\tSTEPS\tTIME\tSTEPS/SEC\tFINAL X\tFINAL SPEED")
	for _, r := range rows {
		fmt.Fprintf(w, "%.6fs\t%d\t%v\t%.0f\t%.4f\t%.4f\n",
			r.TimeSlice, r.Steps, r.Elapsed, float64(r.Steps)/r.Elapsed.Seconds(),
			r.Final.Vector.Origin.X, r.Final.Vector.Magnitude)
	}
	return w.Flush()
}

func sweepTrack(cmd *cobra.Command, args []string) error {
	if len(vary) == 0 {
		return fmt.Errorf("nothing to vary: pass at least one --vary")
	}
	axes := make([]optim.Axis, len(vary))
	for i, v := range vary {
		ax, err := optim.ParseAxis(v)
		if err != nil {
			return err
		}
		axes[i] = ax
	}

	base, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	reg := curves.NewRegistry()
	build := func(params map[string]float64) (*experiment.Experiment, error) {
		cfg := base.Clone()
		for k, v := range params {
			if err := optim.Apply(cfg, k, v); err != nil {
				return nil, err
			}
		}
		exp := experiment.New(cfg)
		if err := exp.Setup(reg); err != nil {
			return nil, err
		}
		return exp, nil
	}

	best, trials, err := optim.NewGridSearch(axes, maximize).Search(cmd.Context(), build, metricName)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := make([]string, 0, len(axes)+1)
	for _, ax := range axes {
		header = append(header, strings.ToUpper(ax.Name))
	}
	fmt.Fprintln(w, strings.Join(append(header, strings.ToUpper(metricName)), "\t"))
	for _, tr := range trials {
		row := make([]string, 0, len(axes)+1)
		for _, ax := range axes {
			row = append(row, fmt.Sprintf("%g", tr.Params[ax.Name]))
		}
		if tr.Err != nil {
			row = append(row, "error: "+tr.Err.Error())
		} else {
			row = append(row, fmt.Sprintf("%.6f", tr.Value))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if ferr := w.Flush(); ferr != nil {
		return ferr
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nbest %s = %.6f at", metricName, best.Value)
	for _, ax := range axes {
		fmt.Printf(" %s=%g", ax.Name, best.Params[ax.Name])
	}
	fmt.Println()
	return nil
}

// output opens path for writing, treating "-" as stdout.
func output(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func exportCSV(cmd *cobra.Command, args []string) error {
	run, _, err := loadRun(args[0])
	if err != nil {
		return err
	}
	w, err := output(outPath)
	if err != nil {
		return err
	}
	defer w.Close()
	return storage.WriteCSV(w, run.Samples)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	run, _, err := loadRun(args[0])
	if err != nil {
		return err
	}
	w, err := output(outPath)
	if err != nil {
		return err
	}
	defer w.Close()
	return storage.WriteJSON(w, run)
}

func exportPNG(cmd *cobra.Command, args []string) error {
	run, meta, err := loadRun(args[0])
	if err != nil {
		return err
	}

	plt, err := func() (*plot.Plot, error) {
		switch plotKind {
		case "profile":
			segs, err := buildTrack(run.Config)
			if err != nil {
				return nil, err
			}
			return export.ProfilePlot(meta.Track, segs, run.Samples)
		case "speed":
			return export.SeriesPlot(meta.Track+" speed", "speed (m/s)", run.Samples, export.Speed)
		case "height":
			return export.SeriesPlot(meta.Track+" height", "height (m)", run.Samples, export.Height)
		}
		return nil, fmt.Errorf("unknown plot kind: %s (available: profile, speed, height)", plotKind)
	}()
	if err != nil {
		return err
	}

	path := imageOut
	if path == "" {
		path = fmt.Sprintf("%s_%s.png", meta.ID, plotKind)
	}
	if err := export.SavePNG(path, plt, 8, 5, dpi); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	run, meta, err := loadRun(args[0])
	if err != nil {
		return err
	}
	segs, err := buildTrack(run.Config)
	if err != nil {
		return err
	}
	profile, err := track.Profile(segs, 200)
	if err != nil {
		return err
	}

	path := imageOut
	if path == "" {
		path = meta.ID + ".svg"
	}
	if err := os.WriteFile(path, []byte(export.TrackSVG(profile, run.Samples, svgWidth, svgHeight)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
