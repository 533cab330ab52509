package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/h2grid/h2grid-api/internal/charts"
	"github.com/h2grid/h2grid-api/internal/charts/render"
	"github.com/h2grid/h2grid-api/internal/helpers"
	"github.com/h2grid/h2grid-api/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const renderDesc = `Render the analytics charts of a dashboard snapshot into image files.

Each chart slot is written to <out>/<slot>.<format>. With --watch the input
is re-read on every change and the charts are redrawn until interrupted.`

const renderExample = `  render --input snapshot.json --out charts
  render -i snapshot.yaml -o charts --format svg --watch`

// debounceDelay collapses the bursts of events editors emit on save
const debounceDelay = 100 * time.Millisecond

// ErrArgument is returned for invalid flag values
var ErrArgument = errors.New("invalid argument")

// RenderArgs holds the flag values of the render command
type RenderArgs struct {
	input  string
	out    string
	format string
	width  int
	height int
	watch  bool

	// onDraw is called after each OnDataAvailable with the manager generation
	onDraw func(generation uint64)
}

// NewRenderCmd builds the render command
func NewRenderCmd() *cobra.Command {
	args := &RenderArgs{}

	cmd := &cobra.Command{
		Use:          "render",
		Short:        "Render dashboard charts to files",
		Long:         renderDesc,
		Example:      renderExample,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runRender(ctx, args, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&args.input, "input", "i", "", "Snapshot file (.json, .yaml or .yml)")
	cmd.Flags().StringVarP(&args.out, "out", "o", "charts", "Output directory")
	cmd.Flags().StringVarP(&args.format, "format", "f", string(render.FormatPNG), "Image format: png or svg")
	cmd.Flags().IntVar(&args.width, "width", render.DefaultWidth, "Image width in pixels")
	cmd.Flags().IntVar(&args.height, "height", render.DefaultHeight, "Image height in pixels")
	cmd.Flags().BoolVarP(&args.watch, "watch", "w", false, "Redraw whenever the input changes")
	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger.InitLogger(helpers.StageLocal)
		if _, err := render.ParseFormat(args.format); err != nil {
			return fmt.Errorf("%w: format: %w", ErrArgument, err)
		}
		if args.width <= 0 || args.height <= 0 {
			return fmt.Errorf("%w: width and height must be positive", ErrArgument)
		}
		return nil
	}

	return cmd
}

func runRender(ctx context.Context, args *RenderArgs, out io.Writer) error {
	format, err := render.ParseFormat(args.format)
	if err != nil {
		return fmt.Errorf("%w: format: %w", ErrArgument, err)
	}
	if err := os.MkdirAll(args.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	surfaces := make(map[charts.Slot]charts.Surface, len(charts.Slots))
	files := make(map[charts.Slot]*render.FileSurface, len(charts.Slots))
	for _, slot := range charts.Slots {
		fs := render.NewFileSurface(args.out, string(slot))
		surfaces[slot] = fs
		files[slot] = fs
	}

	factory := render.NewFactory(
		render.WithFormat(format),
		render.WithSize(args.width, args.height),
		render.WithFactoryLogger(logger.Log),
	)
	manager := charts.NewManager(factory, surfaces, charts.WithLogger(logger.Log))
	defer manager.Teardown()

	draw := func() error {
		data, err := loadSnapshot(args.input)
		if err != nil {
			return err
		}
		manager.OnDataAvailable(data)
		if args.onDraw != nil {
			args.onDraw(manager.Generation())
		}
		for _, slot := range charts.Slots {
			if manager.State(slot) == charts.StateBound {
				fmt.Fprintf(out, "%s\t%s\n", slot, files[slot].Path())
			}
		}
		return nil
	}

	if err := draw(); err != nil {
		return err
	}
	if manager.Len() == 0 {
		logger.Warn("Snapshot has no suggested location, nothing was drawn",
			zap.String("input", args.input))
	}
	if !args.watch {
		return nil
	}

	return watchInput(ctx, args.input, func() {
		if err := draw(); err != nil {
			// keep the current charts until the file parses again
			logger.Warn("Skipping unreadable snapshot", zap.String("input", args.input), zap.Error(err))
		}
	})
}

// watchInput calls onChange after the input file is written or replaced.
// It watches the parent directory so editors that save by rename are seen.
func watchInput(ctx context.Context, input string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	logger.Info("Watching snapshot for changes", zap.String("input", target))

	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping watch")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path, err := filepath.Abs(event.Name)
			if err != nil || path != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(debounceDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", zap.Error(err))

		case <-debounce.C:
			onChange()
		}
	}
}
