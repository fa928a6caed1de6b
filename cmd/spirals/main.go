package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/spirals/internal/config"
	"github.com/san-kum/spirals/internal/experiment"
	"github.com/san-kum/spirals/internal/export"
	"github.com/san-kum/spirals/internal/logging"
	"github.com/san-kum/spirals/internal/metrics"
	"github.com/san-kum/spirals/internal/optim"
	"github.com/san-kum/spirals/internal/spiral"
	"github.com/san-kum/spirals/internal/storage"
	"github.com/san-kum/spirals/internal/viz"
)

var (
	configFile  string
	preset      string
	logLevel    string
	metricsFile string

	title       string
	outputDir   string
	series      string
	custom      []int
	low         int
	high        int
	plotType    string
	degrees     float64
	degModifier float64
	modifier    float64
	iterations  int
	paletteSize int
	randomCols  bool
	paletteSeed int64
	saveFigure  bool
	requireAny  bool
	workers     int

	// run, view
	themeName string

	// inspect
	rowLimit int

	// sweep
	degRange    []float64
	modRange    []float64
	sweepMetric string
	minimize    bool

	logger logging.Logger
)

// main registers the commands and exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "spirals",
		Short:         "prime spiral family generator",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewConsoleLogger(os.Stderr, "spirals", logging.ParseLevel(logLevel))
		},
	}

	d := config.DefaultConfig()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&title, "title", d.Title, "run title")
	pf.StringVar(&outputDir, "out", d.OutputDir, "output directory")
	pf.StringVar(&series, "series", d.Series, "integer series (primes, custom)")
	pf.IntSliceVar(&custom, "values", nil, "explicit values for the custom series")
	pf.IntVar(&low, "low", d.Low, "lower bound, inclusive")
	pf.IntVar(&high, "high", d.High, "upper bound, exclusive")
	pf.StringVar(&plotType, "plot-type", d.PlotType, "plot type (plot, scatter, scatter3d)")
	pf.Float64Var(&degrees, "degrees", d.Spiral.Degrees, "degrees swept per unit of value")
	pf.Float64Var(&degModifier, "deg-modifier", d.Spiral.DegModifier, "degree modifier")
	pf.Float64Var(&modifier, "modifier", d.Spiral.Modifier, "radial modifier")
	pf.IntVar(&iterations, "iterations", d.Spiral.Iterations, "points per spiral")
	pf.IntVar(&paletteSize, "palette-size", d.Palette.Size, "number of colour slots")
	pf.BoolVar(&randomCols, "random-colours", d.Palette.Random, "sample a random palette")
	pf.Int64Var(&paletteSeed, "seed", d.Palette.Seed, "random palette seed")
	pf.IntVar(&workers, "workers", d.Workers, "parallel synthesis workers")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "generate a spiral family to disk",
		Args:  cobra.NoArgs,
		RunE:  runFamily,
	}
	runCmd.Flags().BoolVar(&saveFigure, "save-figure", d.SaveFigure, "write figures; when false the family opens in the viewer")
	runCmd.Flags().BoolVar(&requireAny, "require-non-empty", d.RequireNonEmpty, "fail when the sequence is empty")
	runCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write prometheus metrics to this file")
	runCmd.Flags().StringVar(&themeName, "theme", viz.Themes[0].Name, themeUsage())

	primesCmd := &cobra.Command{
		Use:   "primes",
		Short: "print the sequence a run would draw",
		Args:  cobra.NoArgs,
		RunE:  printSequence,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [value]",
		Short: "plot radius and size of one spiral",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectSpiral,
	}
	inspectCmd.Flags().IntVar(&rowLimit, "rows", 10, "attribute rows to print")

	sweepCmd := &cobra.Command{
		Use:   "sweep [value]",
		Short: "grid search degree modifier and modifier for one spiral",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepSpiral,
	}
	sweepCmd.Flags().Float64SliceVar(&degRange, "deg-range", []float64{0.5, 3, 6}, "degree modifier grid as lo,hi,steps")
	sweepCmd.Flags().Float64SliceVar(&modRange, "mod-range", []float64{1, 1, 1}, "modifier grid as lo,hi,steps")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "color_balance", "metric to optimise")
	sweepCmd.Flags().BoolVar(&minimize, "minimize", false, "prefer low metric values")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "page through the family in the terminal",
		Args:  cobra.NoArgs,
		RunE:  viewFamily,
	}
	viewCmd.Flags().StringVar(&themeName, "theme", viz.Themes[0].Name, themeUsage())

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [value...]",
		Short: "write spiral points as CSV to stdout",
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [value]",
		Short: "write one spiral as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSERIES\tRANGE\tPLOT\tDEG MOD\tMODIFIER")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.3f\t%.3f\n",
					name, p.Series, describeRange(p), p.PlotType, p.Spiral.DegModifier, p.Spiral.Modifier)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, primesCmd, inspectCmd, sweepCmd, viewCmd, exportCSVCmd, exportJSONCmd, listCmd, presetsCmd)

	logger = logging.NewDefaultLogger()
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", err)
		os.Exit(1)
	}
}

// resolveConfig layers defaults, preset, config file and changed flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Title = title
	}
	if flags.Changed("out") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("series") {
		cfg.Series = series
	}
	if flags.Changed("values") {
		cfg.Custom = custom
		if !flags.Changed("series") {
			cfg.Series = "custom"
		}
	}
	if flags.Changed("low") {
		cfg.Low = low
	}
	if flags.Changed("high") {
		cfg.High = high
	}
	if flags.Changed("plot-type") {
		cfg.PlotType = plotType
	}
	if flags.Changed("degrees") {
		cfg.Spiral.Degrees = degrees
	}
	if flags.Changed("deg-modifier") {
		cfg.Spiral.DegModifier = degModifier
	}
	if flags.Changed("modifier") {
		cfg.Spiral.Modifier = modifier
	}
	if flags.Changed("iterations") {
		cfg.Spiral.Iterations = iterations
	}
	if flags.Changed("palette-size") {
		cfg.Palette.Size = paletteSize
	}
	if flags.Changed("random-colours") {
		cfg.Palette.Random = randomCols
	}
	if flags.Changed("seed") {
		cfg.Palette.Seed = paletteSeed
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("save-figure") {
		cfg.SaveFigure = saveFigure
	}
	if flags.Changed("require-non-empty") {
		cfg.RequireNonEmpty = requireAny
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func themeUsage() string {
	return "viewer theme (" + strings.Join(viz.ThemeNames(), ", ") + ")"
}

func resolveTheme() (viz.Theme, error) {
	if !slices.Contains(viz.ThemeNames(), themeName) {
		return viz.Theme{}, fmt.Errorf("unknown theme: %s (available: %v)", themeName, viz.ThemeNames())
	}
	return viz.GetTheme(themeName), nil
}

func runFamily(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	theme, err := resolveTheme()
	if err != nil {
		return err
	}

	st := storage.New(cfg.OutputDir)
	if cfg.SaveFigure {
		if err := st.Init(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := experiment.NewRunner(st, logger)
	summary, err := runner.Run(ctx, cfg)
	if err != nil {
		return err
	}

	if metricsFile != "" {
		if err := runner.Recorder.WriteTextfile(metricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if !cfg.SaveFigure {
		return viz.NewViewer(cfg.RunName(), summary.Results, experiment.PaletteFor(cfg)).WithTheme(theme).Run()
	}

	fmt.Printf("run: %s\n", summary.Run)
	fmt.Printf("dir: %s\n", st.RunDir(summary.Run))
	fmt.Printf("generated: %d, skipped: %d, points: %d\n",
		len(summary.Generated), len(summary.Skipped), summary.Points)
	fmt.Printf("completed in %v\n", summary.Elapsed)
	return nil
}

func printSequence(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	seq, err := experiment.Sequence(cfg)
	if err != nil {
		return err
	}

	parts := make([]string, len(seq))
	for i, p := range seq {
		parts[i] = strconv.Itoa(p)
	}
	fmt.Println(strings.Join(parts, " "))
	return nil
}

func synthesizeOne(cmd *cobra.Command, arg string) (*config.Config, spiral.Result, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, spiral.Result{}, err
	}

	p, err := strconv.Atoi(arg)
	if err != nil {
		return nil, spiral.Result{}, fmt.Errorf("invalid value %q: %w", arg, err)
	}

	mode, err := cfg.Mode()
	if err != nil {
		return nil, spiral.Result{}, err
	}

	res, err := spiral.Synthesize(p, 0, cfg.Params(), mode, cfg.Palette.Size)
	if err != nil {
		return nil, spiral.Result{}, err
	}
	return cfg, res, nil
}

func synthesizeFamily(ctx context.Context, cfg *config.Config) ([]spiral.Result, error) {
	seq, err := experiment.Sequence(cfg)
	if err != nil {
		return nil, err
	}

	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}

	return spiral.SynthesizeAll(ctx, seq, cfg.Params(), mode, cfg.Palette.Size, max(cfg.Workers, 1))
}

func inspectSpiral(cmd *cobra.Command, args []string) error {
	cfg, res, err := synthesizeOne(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("value: %d\n", res.SourceValue)
	fmt.Printf("mode: %s\n", res.Mode)
	fmt.Printf("points: %d\n\n", res.Len())

	if res.Len() < 2 {
		return nil
	}

	sizes := make([]float64, res.Len())
	for i, a := range res.Attributes {
		sizes[i] = a.Size
	}

	for _, chart := range []struct {
		data    []float64
		caption string
	}{
		{res.Radius, "radius (theta squared)"},
		{sizes, "marker size"},
	} {
		graph := asciigraph.Plot(chart.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(chart.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "I\tX\tY\tZ\tSIZE\tCOLOR")
	for i := 0; i < min(rowLimit, res.Len()); i++ {
		pt, a := res.Points[i], res.Attributes[i]
		fmt.Fprintf(w, "%d\t%.0f\t%.0f\t%.2f\t%.3f\t%d\n", i, pt.X, pt.Y, pt.Z, a.Size, a.ColorIndex)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	ms := metrics.Defaults(cfg.Palette.Size)
	for _, m := range ms {
		m.Observe(res)
	}
	fmt.Println("\nmetrics:")
	for _, m := range ms {
		fmt.Printf("  %s: %.6f\n", m.Name(), m.Value())
	}
	return nil
}

func gridFromFlag(name string, v []float64) ([]float64, error) {
	if len(v) != 3 || v[2] < 1 {
		return nil, fmt.Errorf("--%s wants lo,hi,steps", name)
	}
	return optim.Linspace(v[0], v[1], int(v[2])), nil
}

func sweepSpiral(cmd *cobra.Command, args []string) error {
	cfg, res, err := synthesizeOne(cmd, args[0])
	if err != nil {
		return err
	}

	degGrid, err := gridFromFlag("deg-range", degRange)
	if err != nil {
		return err
	}
	modGrid, err := gridFromFlag("mod-range", modRange)
	if err != nil {
		return err
	}

	search := optim.NewGridSearch(
		[]string{optim.ParamDegModifier, optim.ParamModifier},
		[][]float64{degGrid, modGrid},
	)
	if !minimize {
		search.Maximize()
	}

	evaluate := func(ctx context.Context, values map[string]float64) (map[string]float64, error) {
		params, err := optim.Apply(cfg.Params(), values)
		if err != nil {
			return nil, err
		}
		trial, err := spiral.Synthesize(res.SourceValue, 0, params, res.Mode, cfg.Palette.Size)
		if err != nil {
			return nil, err
		}
		ms := metrics.Defaults(cfg.Palette.Size)
		for _, m := range ms {
			m.Observe(trial)
		}
		return metrics.Summary(ms), nil
	}

	best, trials, err := search.Search(cmd.Context(), evaluate, sweepMetric)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DEG MOD\tMODIFIER\t%s\n", strings.ToUpper(sweepMetric))
	for _, t := range trials {
		fmt.Fprintf(w, "%.3f\t%.3f\t%.6f\n", t.Params[optim.ParamDegModifier], t.Params[optim.ParamModifier], t.Score)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nbest for %d: deg-modifier %.3f, modifier %.3f (%s %.6f)\n",
		res.SourceValue, best.Params[optim.ParamDegModifier], best.Params[optim.ParamModifier], sweepMetric, best.Score)
	return nil
}

func viewFamily(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	theme, err := resolveTheme()
	if err != nil {
		return err
	}

	results, err := synthesizeFamily(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	return viz.NewViewer(cfg.RunName(), results, experiment.PaletteFor(cfg)).WithTheme(theme).Run()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		results, err := synthesizeFamily(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		return export.WriteCSV(os.Stdout, results...)
	}

	results := make([]spiral.Result, 0, len(args))
	for _, arg := range args {
		_, res, err := synthesizeOne(cmd, arg)
		if err != nil {
			return err
		}
		results = append(results, res)
	}
	return export.WriteCSV(os.Stdout, results...)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, res, err := synthesizeOne(cmd, args[0])
	if err != nil {
		return err
	}

	ms := metrics.Defaults(cfg.Palette.Size)
	for _, m := range ms {
		m.Observe(res)
	}
	return export.WriteJSON(os.Stdout, res, metrics.Summary(ms))
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.OutputDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Printf("no runs found in %s\n", st.BaseDir())
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPLOT\tRANGE\tSPIRALS\tITER\tTIME")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d-%d\t%d\t%d\t%s\n",
			run.Name,
			run.PlotType,
			run.Low,
			run.High,
			len(run.Spirals),
			run.Iterations,
			run.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}

	return w.Flush()
}

func describeRange(cfg *config.Config) string {
	if cfg.Series == "custom" {
		return fmt.Sprintf("%d values", len(cfg.Custom))
	}
	return fmt.Sprintf("%d-%d", cfg.Low, cfg.High)
}
