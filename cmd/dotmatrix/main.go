package main

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/dotmatrix/internal/config"
	"github.com/san-kum/dotmatrix/internal/display"
	"github.com/san-kum/dotmatrix/internal/matrix"
	"github.com/san-kum/dotmatrix/internal/viz"
)

var (
	configFile string
	interval   float64
	seed       int64
	showIDs    bool
	duration   time.Duration
	pxPerCell  int
	frames     int
	outPath    string
	threshold  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dotmatrix",
		Short: "flickering dot-block shape animation",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [shape]",
		Short: "run the animation full-screen until interrupted",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnimation,
	}
	runCmd.Flags().Float64Var(&interval, "interval", config.DefaultInterval, "seconds between frames")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "flicker rng seed (0 = time-based)")
	runCmd.Flags().BoolVar(&showIDs, "show-ids", false, "overlay block ids")
	runCmd.Flags().DurationVar(&duration, "duration", 0, "stop after this long (0 = until interrupted)")
	runCmd.Flags().IntVar(&pxPerCell, "scale", 6, "pixels per terminal cell")

	liveCmd := &cobra.Command{
		Use:   "live [shape]",
		Short: "interactive mode with keyboard shape switching",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&interval, "interval", config.DefaultInterval, "seconds between frames")
	liveCmd.Flags().Int64Var(&seed, "seed", 0, "flicker rng seed (0 = time-based)")
	liveCmd.Flags().BoolVar(&showIDs, "show-ids", false, "overlay block ids")
	liveCmd.Flags().IntVar(&pxPerCell, "scale", 6, "pixels per terminal cell")

	previewCmd := &cobra.Command{
		Use:   "preview [shape]",
		Short: "print one animated frame as braille",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&frames, "frames", 12, "frames to advance before printing")
	previewCmd.Flags().Int64Var(&seed, "seed", 0, "flicker rng seed (0 = time-based)")
	previewCmd.Flags().IntVar(&threshold, "threshold", -1, "brightness cutoff (-1 = top of the low range)")

	recordCmd := &cobra.Command{
		Use:   "record [shape]",
		Short: "render frames offline and write an animated GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRecord,
	}
	recordCmd.Flags().IntVar(&frames, "frames", 150, "number of frames to record")
	recordCmd.Flags().Int64Var(&seed, "seed", 0, "flicker rng seed (0 = time-based)")
	recordCmd.Flags().StringVar(&outPath, "out", "dotmatrix.gif", "output file")

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "list configured shapes",
		RunE:  listShapes,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame updates over several grid sizes",
		RunE:  benchFrames,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 200, "frames per grid size")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "dotmatrix.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, liveCmd, previewCmd, recordCmd, shapesCmd, benchCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers CLI flags over the config file over the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if f := cmd.Flags(); f.Changed("interval") {
		cfg.AnimationInterval = interval
	}
	if f := cmd.Flags(); f.Changed("seed") {
		cfg.Seed = seed
	}
	if f := cmd.Flags(); f.Changed("show-ids") {
		cfg.ShowIDs = showIDs
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func shapeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "circle"
}

func runAnimation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	scr, err := display.NewScreen(cfg.ScreenWidth, cfg.ScreenHeight, pxPerCell)
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer scr.Close()

	mat, err := matrix.New(cfg, scr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}
	scr.PollQuit(stop)

	r := matrix.NewRunner(mat, cfg.Interval())
	statusY := cfg.ScreenHeight - 1
	white := color.Gray{Y: 255}
	r.SetStatusFunc(func(s matrix.Status) {
		line := fmt.Sprintf("Frame: %d | Time: %s | Shape: %s | q to quit", s.Frame, s.Time.Format("15:04:05"), s.Shape)
		scr.DrawText(0, statusY, line, white, cfg.IDFontSize)
		scr.Show()
	})

	return r.Run(ctx, shapeArg(args))
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	grid := viz.NewCellGrid(cfg.ScreenWidth, cfg.ScreenHeight, pxPerCell)
	mat, err := matrix.New(cfg, grid)
	if err != nil {
		return err
	}
	if err := mat.SetTargetShape(shapeArg(args)); err != nil {
		return err
	}
	mat.InitDisplay()

	m := viz.NewModel(mat, grid, cfg, shapeArg(args))
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fb := display.NewFramebuffer(cfg.ScreenWidth, cfg.ScreenHeight)
	mat, err := matrix.New(cfg, fb)
	if err != nil {
		return err
	}
	mat.InitDisplay()
	if err := mat.SetTargetShape(shapeArg(args)); err != nil {
		return err
	}
	for i := 0; i < frames; i++ {
		mat.UpdateFrame()
	}

	cut := threshold
	if cut < 0 {
		cut = cfg.LowBrightnessMax
	}
	fmt.Printf("shape: %s\n\n", mat.Shape())
	fmt.Println(viz.RenderFramebuffer(fb, cut))
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fb := display.NewFramebuffer(cfg.ScreenWidth, cfg.ScreenHeight)
	mat, err := matrix.New(cfg, fb)
	if err != nil {
		return err
	}
	mat.InitDisplay()
	if err := mat.SetTargetShape(shapeArg(args)); err != nil {
		return err
	}

	rec := display.NewRecorder()
	start := time.Now()
	for i := 0; i < frames; i++ {
		mat.UpdateFrame()
		rec.Capture(fb)
	}
	elapsed := time.Since(start)

	delay := int(cfg.AnimationInterval * 100)
	if delay < 1 {
		delay = 1
	}
	if err := rec.WriteGIF(outPath, delay); err != nil {
		return fmt.Errorf("write gif: %w", err)
	}
	fmt.Printf("rendered %d frames in %v\n", rec.Len(), elapsed)
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func listShapes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBLOCKS\tIDS")
	for _, name := range cfg.ShapeNames() {
		ids := cfg.Shapes[name]
		fmt.Fprintf(w, "%s\t%d\t%v\n", name, len(ids), ids)
	}
	return w.Flush()
}

func benchFrames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	grids := []struct{ rows, cols int }{{7, 5}, {14, 10}, {28, 20}}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GRID\tDOTS\tFRAMES\tAVG\tFRAMES/SEC")

	var lastTimes []float64
	for _, g := range grids {
		c := *cfg
		c.Rows, c.Cols = g.rows, g.cols
		c.Seed = 42
		fb := display.NewFramebuffer(c.ScreenWidth, c.ScreenHeight)
		mat, err := matrix.New(&c, fb)
		if err != nil {
			return err
		}
		mat.InitDisplay()
		if err := mat.SetTargetShape("cross"); err != nil {
			return err
		}

		times := make([]float64, frames)
		start := time.Now()
		for i := 0; i < frames; i++ {
			t0 := time.Now()
			mat.UpdateFrame()
			times[i] = float64(time.Since(t0).Microseconds())
		}
		elapsed := time.Since(start)

		avg := elapsed / time.Duration(frames)
		fps := float64(frames) / elapsed.Seconds()
		fmt.Fprintf(w, "%dx%d\t%d\t%d\t%v\t%.0f\n", g.rows, g.cols, mat.DotCount(), frames, avg, fps)
		lastTimes = times
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	graph := asciigraph.Plot(lastTimes,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("frame time (us), %dx%d grid", grids[len(grids)-1].rows, grids[len(grids)-1].cols)),
	)
	fmt.Println(graph)
	return nil
}
