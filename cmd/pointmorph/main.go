package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pointmorph/internal/cloud"
	"github.com/san-kum/pointmorph/internal/config"
	"github.com/san-kum/pointmorph/internal/export"
	"github.com/san-kum/pointmorph/internal/layout"
	"github.com/san-kum/pointmorph/internal/metrics"
	"github.com/san-kum/pointmorph/internal/morph"
	"github.com/san-kum/pointmorph/internal/palette"
	"github.com/san-kum/pointmorph/internal/timeline"
	"github.com/san-kum/pointmorph/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string

	// Animation overrides
	count     int
	numSteps  int
	share     float64
	frameRate int
	rotation  []string
	colormap  string
	easing    string
	theme     string
	width     int
	height    int

	gifPath    string
	headless   bool
	duration   time.Duration
	frameTicks int
	frameOut   string
	frameFmt   string
	gifTicks   int
	gifOut     string
	every      int
	delay      int
	index      int
	traceOut   string
	benchCount []int
	benchTicks int
	savePath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pointmorph",
		Short: "point cloud that morphs between layouts",
		Long: "pointmorph animates a colored point cloud through phyllotaxis, spiral,\n" +
			"grid and wave layouts. With no subcommand it opens the live terminal view.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, nil)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&count, "count", config.DefaultCount, "number of points")
	pf.IntVar(&numSteps, "steps", timeline.DefaultSteps, "ticks per rotation entry")
	pf.Float64Var(&share, "share", timeline.DefaultShare, "fraction of each cycle spent moving")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	pf.StringSliceVar(&rotation, "rotation", timeline.DefaultRotation.Names(), "layout rotation order")
	pf.StringVar(&colormap, "colormap", palette.Default.Name, "color scale ("+strings.Join(palette.Names(), ", ")+")")
	pf.StringVar(&easing, "easing", "linear", "transition easing")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "tui theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.IntVar(&width, "width", config.DefaultWidth, "image width in pixels")
	pf.IntVar(&height, "height", config.DefaultHeight, "image height in pixels")
	rootCmd.MarkFlagsMutuallyExclusive("config", "preset")

	playCmd := &cobra.Command{
		Use:   "play [count]",
		Short: "run the animation live",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().StringVar(&gifPath, "gif", "pointmorph.gif", "where the g key saves recordings")
	playCmd.Flags().BoolVar(&headless, "headless", false, "tick without a terminal view")
	playCmd.Flags().DurationVar(&duration, "duration", 5*time.Second, "headless run time")

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "render one frame as svg or png",
		Args:  cobra.NoArgs,
		RunE:  renderFrame,
	}
	frameCmd.Flags().IntVar(&frameTicks, "ticks", 0, "ticks to run before rendering")
	frameCmd.Flags().StringVarP(&frameOut, "out", "o", "-", "output file (- for stdout)")
	frameCmd.Flags().StringVar(&frameFmt, "format", "svg", "image format (svg, png)")

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "render an animated gif",
		Args:  cobra.NoArgs,
		RunE:  renderGIF,
	}
	gifCmd.Flags().IntVar(&gifTicks, "ticks", 0, "ticks to run (default one full rotation)")
	gifCmd.Flags().IntVar(&every, "every", 2, "capture every nth tick")
	gifCmd.Flags().IntVar(&delay, "delay", 4, "frame delay in 1/100 s")
	gifCmd.Flags().StringVarP(&gifOut, "out", "o", "pointmorph.gif", "output file")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "draw one point's path through a full rotation as svg",
		Args:  cobra.NoArgs,
		RunE:  renderTrace,
	}
	traceCmd.Flags().IntVar(&index, "index", 0, "point index")
	traceCmd.Flags().StringVarP(&traceOut, "out", "o", "-", "output file (- for stdout)")

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "plot the transition fraction over one cycle",
		Args:  cobra.NoArgs,
		RunE:  plotCurve,
	}

	sampleCmd := &cobra.Command{
		Use:   "sample [kind] [n]",
		Short: "print the positions of a layout",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  sampleLayout,
	}

	layoutsCmd := &cobra.Command{
		Use:   "layouts",
		Short: "list layouts",
		Args:  cobra.NoArgs,
		RunE:  listLayouts,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure tick throughput",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntSliceVar(&benchCount, "counts", []int{100, 1000, 10000, 100000}, "point counts to measure")
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 600, "ticks per count")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}
	configCmd.Flags().StringVar(&savePath, "save", "", "also write it to this file")

	rootCmd.AddCommand(playCmd, frameCmd, gifCmd, traceCmd, curveCmd, sampleCmd,
		layoutsCmd, presetsCmd, benchCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves defaults, then the preset or config file, then any
// flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	switch {
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = count
	}
	if flags.Changed("steps") {
		cfg.NumSteps = numSteps
	}
	if flags.Changed("share") {
		cfg.TransitionShare = share
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("rotation") {
		cfg.Rotation = rotation
	}
	if flags.Changed("colormap") {
		cfg.Colormap = colormap
	}
	if flags.Changed("easing") {
		cfg.Easing = easing
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("width") {
		cfg.Viewport.Width = width
	}
	if flags.Changed("height") {
		cfg.Viewport.Height = height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := viz.GetTheme(cfg.Theme); err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	return cfg, nil
}

func loadEngine(cmd *cobra.Command) (*config.Config, *morph.Engine, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	eng, err := cfg.NewEngine()
	if err != nil {
		return nil, nil, err
	}
	return cfg, eng, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		n, err := cloud.ParseCount(args[0])
		if err != nil {
			return err
		}
		cfg.Count = n
	}
	eng, err := cfg.NewEngine()
	if err != nil {
		return err
	}

	if headless {
		return runHeadless(cmd.OutOrStdout(), eng, cfg.FPS)
	}

	th, err := viz.GetTheme(cfg.Theme)
	if err != nil {
		return err
	}
	return viz.Run(eng, viz.Options{
		FPS:     cfg.FPS,
		Theme:   th,
		GIFPath: gifPath,
		GIF: export.GIFOptions{
			Width:  cfg.Viewport.Width,
			Height: cfg.Viewport.Height,
		},
	})
}

// runHeadless ticks at the frame rate until the duration passes or the
// process is interrupted, then reports where the animation ended up.
func runHeadless(w io.Writer, eng *morph.Engine, fps int) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	loop := morph.NewLoop(eng, fps)
	start := time.Now()
	err := loop.Run(ctx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return err
	}

	elapsed := time.Since(start)
	s := eng.Status()
	fmt.Fprintf(w, "frames:   %d in %v (%.1f fps)\n", loop.Frames(), elapsed.Round(time.Millisecond),
		float64(loop.Frames())/elapsed.Seconds())
	fmt.Fprintf(w, "points:   %d\n", s.Count)
	fmt.Fprintf(w, "layouts:  %s -> %s\n", s.Current, s.Next)
	fmt.Fprintf(w, "step:     %d/%d (fraction %.3f)\n", s.Step, s.NumSteps, s.Fraction)
	return nil
}

// create opens path for writing; "-" is stdout.
func create(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, eng, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	if frameTicks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", frameTicks)
	}
	morph.NewLoop(eng, cfg.FPS).RunFrames(frameTicks, nil)

	w, h := cfg.Viewport.Width, cfg.Viewport.Height
	pixels := eng.Points(float64(w), float64(h))

	var write func(io.Writer) error
	switch strings.ToLower(frameFmt) {
	case "svg":
		s := eng.Status()
		title := fmt.Sprintf("%s -> %s, step %d/%d", s.Current, s.Next, s.Step, s.NumSteps)
		write = func(out io.Writer) error {
			return export.WriteSVG(out, pixels, w, h, export.SVGOptions{Title: title})
		}
	case "png":
		write = func(out io.Writer) error {
			return export.WritePNG(out, pixels, w, h, export.PNGOptions{})
		}
	default:
		return fmt.Errorf("unknown format %q (available: svg, png)", frameFmt)
	}

	f, err := create(cmd, frameOut)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderGIF(cmd *cobra.Command, args []string) error {
	cfg, eng, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	n := gifTicks
	if n <= 0 {
		n = eng.Timeline().CycleLength()
	}

	f, err := os.Create(gifOut)
	if err != nil {
		return err
	}
	opts := export.GIFOptions{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height, Delay: delay}
	if err := export.WriteGIF(f, eng, n, every, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	frames := n / max(every, 1)
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d frames (%d ticks, %d points) to %s\n", frames, n, eng.Count(), gifOut)
	return nil
}

func renderTrace(cmd *cobra.Command, args []string) error {
	cfg, eng, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	f, err := create(cmd, traceOut)
	if err != nil {
		return err
	}
	if err := export.WriteTrace(f, eng, index, cfg.Viewport.Width, cfg.Viewport.Height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func plotCurve(cmd *cobra.Command, args []string) error {
	cfg, eng, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	data := eng.Timeline().Curve()

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Caption(fmt.Sprintf("fraction over %d steps (%s, share %.2f)", cfg.NumSteps, cfg.Easing, cfg.TransitionShare)),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func sampleLayout(cmd *cobra.Command, args []string) error {
	kind, err := layout.ParseKind(args[0])
	if err != nil {
		return err
	}
	n := 8
	if len(args) == 2 {
		if n, err = cloud.ParseCount(args[1]); err != nil {
			return err
		}
	}

	pts, err := layout.Sample(kind, n)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tX\tY")
	for i, p := range pts {
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\n", i, p.X, p.Y)
	}
	return w.Flush()
}

func listLayouts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	inRotation := make(map[string]int)
	for _, name := range cfg.Rotation {
		inRotation[strings.ToLower(strings.TrimSpace(name))]++
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LAYOUT\tMIN POINTS\tIN ROTATION")
	for _, k := range layout.Kinds() {
		fmt.Fprintf(w, "%s\t%d\t%d\n", k, layout.MinCount(k), inRotation[k.String()])
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tPOINTS\tSTEPS\tSHARE\tEASING\tCOLORMAP\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%s\t%s\t%s\n",
			name, p.Count, p.NumSteps, p.TransitionShare, p.Easing, p.Colormap, p.Theme)
	}
	return w.Flush()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if benchTicks < 1 {
		return fmt.Errorf("ticks must be positive, got %d", benchTicks)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POINTS\tTICKS\tTOTAL\tPER TICK\tTICKS/S\tPEAK MOTION\tIN BOUNDS")
	for _, n := range benchCount {
		cfg.Count = n
		eng, err := cfg.NewEngine()
		if err != nil {
			return fmt.Errorf("%d points: %w", n, err)
		}

		start := time.Now()
		morph.NewLoop(eng, cfg.FPS).RunFrames(benchTicks, nil)
		elapsed := time.Since(start)

		motion, bounds := metrics.NewMotion(), metrics.NewBounds(1)
		observed := metrics.Set{motion, bounds}
		morph.NewLoop(eng, cfg.FPS).RunFrames(eng.Timeline().CycleLength(), func(int) {
			observed.Observe(eng.Positions(), 0)
		})

		per := elapsed / time.Duration(benchTicks)
		fmt.Fprintf(w, "%d\t%d\t%v\t%v\t%.0f\t%.4f\t%.0f%%\n", n, benchTicks, elapsed.Round(time.Microsecond), per,
			float64(benchTicks)/elapsed.Seconds(), motion.Peak(), bounds.Value()*100)
	}
	return w.Flush()
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}
	if savePath != "" {
		if err := config.Save(savePath, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved to %s\n", savePath)
	}
	return nil
}
