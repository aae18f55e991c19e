package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"battletext/internal/config"
	"battletext/internal/follow"
	"battletext/internal/logging"
	"battletext/internal/narrator"
	"battletext/internal/present"
	"battletext/internal/protocol"
	"battletext/internal/templates"
)

var renderFlags struct {
	perspective string
	format      string
	generation  int
	follow      bool
}

var renderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Render a battle log as narrative text",
	Long: `Reads protocol lines from a file (or stdin when the argument is "-" or
missing) and prints the narrative.

Examples:
  battletext render battle.log
  battletext render --perspective both --format ansi battle.log
  battletext render --follow live.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func addRenderFlags() {
	renderCmd.Flags().StringVarP(&renderFlags.perspective, "perspective", "p", config.PerspectiveP1, "Point of view: 0, 1 or both")
	renderCmd.Flags().StringVarP(&renderFlags.format, "format", "f", config.FormatPlain, "Output format: plain, markdown or ansi")
	renderCmd.Flags().IntVar(&renderFlags.generation, "generation", 0, "Pin a mechanics generation, ignoring gen lines in the log (0 = read from the log)")
	renderCmd.Flags().BoolVar(&renderFlags.follow, "follow", false, "Keep reading the file as it grows")
}

// renderJob bundles what a render run needs besides its input.
type renderJob struct {
	store     *templates.Store
	presenter present.Presenter
	runID     string
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}

	job, err := newRenderJob(cfg)
	if err != nil {
		return err
	}
	logger.Debug("render started",
		zap.String("run_id", job.runID),
		zap.String("source", source),
		zap.Bool("follow", renderFlags.follow))
	logging.Get(logging.CategoryCLI).Info("render %s (run %s)", source, job.runID)

	out := cmd.OutOrStdout()
	if renderFlags.follow {
		if source == "-" {
			return fmt.Errorf("--follow needs a file argument")
		}
		side, err := singleSide(cfg.Perspective)
		if err != nil {
			return err
		}
		return job.tail(ctx, source, side, out)
	}

	input, err := readSource(cmd.InOrStdin(), source)
	if err != nil {
		return err
	}
	return job.render(ctx, input, out)
}

func newRenderJob(c *config.Config) (*renderJob, error) {
	store, err := templates.Load(c.Templates)
	if err != nil {
		return nil, err
	}
	pres, err := present.New(c.Format, present.Options{
		WordWrap: c.Output.WordWrap,
		Style:    c.Output.Style,
	})
	if err != nil {
		return nil, err
	}
	return &renderJob{store: store, presenter: pres, runID: uuid.NewString()}, nil
}

func (j *renderJob) newRenderer(side narrator.Side) *narrator.Renderer {
	opts := []narrator.Option{narrator.WithRunID(j.runID + "-" + side.ID())}
	if cfg.Generation > 0 {
		opts = append(opts, narrator.WithGeneration(cfg.Generation))
	}
	return narrator.New(j.store, side, opts...)
}

// render narrates input once per requested perspective. Perspectives are
// rendered concurrently and printed in side order.
func (j *renderJob) render(ctx context.Context, input string, out io.Writer) error {
	sides, err := perspectiveSides(cfg.Perspective)
	if err != nil {
		return err
	}

	texts := make([]string, len(sides))
	names := make([]string, len(sides))

	g, gctx := errgroup.WithContext(ctx)
	for i, side := range sides {
		i, side := i, side
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := j.newRenderer(side)
			texts[i] = r.Consume(input)
			names[i] = r.Player(side)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Presenters are not safe for concurrent use.
	for i := range sides {
		formatted, err := j.presenter.Present(texts[i])
		if err != nil {
			return err
		}
		if len(sides) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, j.presenter.Header(names[i]+"'s perspective"))
		}
		fmt.Fprint(out, formatted)
	}
	return nil
}

// tail narrates path as it grows until ctx is cancelled.
func (j *renderJob) tail(ctx context.Context, path string, side narrator.Side, out io.Writer) error {
	r := j.newRenderer(side)

	f, err := follow.New(path, cfg.GetPollInterval(), func(line string) {
		text := r.ConsumeEvent(protocol.ParseLine(line), false)
		if text == "" {
			return
		}
		formatted, err := j.presenter.Present(text)
		if err != nil {
			logger.Warn("presentation failed, printing raw text", zap.Error(err))
			formatted = text
		}
		fmt.Fprint(out, formatted)
	})
	if err != nil {
		return err
	}
	return f.Run(ctx)
}

func perspectiveSides(p string) ([]narrator.Side, error) {
	if p == config.PerspectiveBoth {
		return []narrator.Side{narrator.Side1, narrator.Side2}, nil
	}
	side, err := singleSide(p)
	if err != nil {
		return nil, err
	}
	return []narrator.Side{side}, nil
}

func singleSide(p string) (narrator.Side, error) {
	switch p {
	case config.PerspectiveP1:
		return narrator.Side1, nil
	case config.PerspectiveP2:
		return narrator.Side2, nil
	case config.PerspectiveBoth:
		return 0, fmt.Errorf("--follow renders a single perspective; pass --perspective 0 or 1")
	default:
		return 0, fmt.Errorf("invalid perspective: %q", p)
	}
}

func readSource(stdin io.Reader, source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read battle log: %w", err)
	}
	return string(data), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
