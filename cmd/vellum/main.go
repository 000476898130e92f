package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"vellum/pkg/config"
	"vellum/pkg/css"
	"vellum/pkg/dom"
	"vellum/pkg/engine"
	"vellum/pkg/layout"
	"vellum/pkg/paint"
	"vellum/pkg/style"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	root := &cli.Command{
		Name:  "vellum",
		Usage: "minimal document rendering engine",
		Commands: []*cli.Command{
			renderCommand(log),
			dumpCommand(log),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "YAML config file",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "viewport width in pixels (overrides config)",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "viewport height in pixels (overrides config)",
		},
	}
}

// loadConfig resolves the effective config: file if given, defaults
// otherwise, with flag overrides on top.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if w := cmd.Int("width"); w > 0 {
		cfg.Viewport.Width = float64(w)
	}
	if h := cmd.Int("height"); h > 0 {
		cfg.Viewport.Height = float64(h)
	}
	return cfg, nil
}

func readInputs(cmd *cli.Command) (htmlSource, cssSource string, err error) {
	if cmd.Args().Len() < 2 {
		return "", "", fmt.Errorf("usage: %s <input.html> <input.css>", cmd.Name)
	}
	htmlData, err := os.ReadFile(cmd.Args().Get(0))
	if err != nil {
		return "", "", fmt.Errorf("reading document: %w", err)
	}
	cssData, err := os.ReadFile(cmd.Args().Get(1))
	if err != nil {
		return "", "", fmt.Errorf("reading stylesheet: %w", err)
	}
	return string(htmlData), string(cssData), nil
}

func renderCommand(log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "render a document and stylesheet to a PNG",
		ArgsUsage: "<input.html> <input.css>",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output PNG path (overrides config)",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if out := cmd.String("out"); out != "" {
				cfg.Output = out
			}
			htmlSource, cssSource, err := readInputs(cmd)
			if err != nil {
				return err
			}

			metrics, err := cfg.Metrics()
			if err != nil {
				return err
			}

			opts := []engine.Option{
				engine.WithLogger(log),
				engine.WithMetrics(metrics),
			}
			if cfg.Text.Font != "" {
				opts = append(opts, engine.WithFont(cfg.Text.Font, cfg.Text.Size))
			}
			r := engine.New(cfg.Viewport.Width, cfg.Viewport.Height, opts...)

			target := image.NewRGBA(image.Rect(0, 0,
				int(cfg.Viewport.Width), int(cfg.Viewport.Height)))
			if err := r.Render(htmlSource, cssSource, target); err != nil {
				return err
			}
			if err := savePNG(cfg.Output, target); err != nil {
				return err
			}
			log.Info("rendered",
				zap.String("output", cfg.Output),
				zap.Float64("width", cfg.Viewport.Width),
				zap.Float64("height", cfg.Viewport.Height))
			return nil
		},
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

func dumpCommand(log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "print the pipeline stages for a document and stylesheet",
		ArgsUsage: "<input.html> <input.css>",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:  "stage",
				Value: "all",
				Usage: "stage to print: dom, css, style, layout, display, all",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			htmlSource, cssSource, err := readInputs(cmd)
			if err != nil {
				return err
			}
			stage := cmd.String("stage")
			show := func(name string) bool { return stage == "all" || stage == name }

			root, err := dom.ParseString(htmlSource)
			if err != nil {
				return err
			}
			if show("dom") {
				fmt.Println("DOM:")
				fmt.Print(root)
			}

			sheet, err := css.Parse(cssSource)
			if err != nil {
				log.Warn("stylesheet has malformed rules", zap.Error(err))
			}
			if show("css") {
				fmt.Println("CSS:")
				fmt.Println(sheet)
			}

			styled := style.Resolve(root, sheet)
			if show("style") {
				fmt.Println("STYLE:")
				fmt.Print(styled)
			}

			metrics, err := cfg.Metrics()
			if err != nil {
				return err
			}
			eng := layout.NewEngine(cfg.Viewport.Width, cfg.Viewport.Height)
			eng.SetMetrics(metrics)
			box, err := eng.Layout(styled)
			if err != nil {
				return err
			}
			if show("layout") {
				fmt.Println("LAYOUT:")
				fmt.Print(box)
			}

			if show("display") {
				fmt.Println("DISPLAY:")
				fmt.Print(paint.Build(box))
			}
			return nil
		},
	}
}
