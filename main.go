// Command vellum renders documents written in the vellum DSL as
// width-constrained plain text. It chains the same stages a library
// caller would: parse the DSL, build the document, lay it out under a
// page width, render the stream.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ByLCY/vellum/doc"
	"github.com/ByLCY/vellum/dsl"
	"github.com/ByLCY/vellum/layout"
	"github.com/ByLCY/vellum/renderer"
	"github.com/ByLCY/vellum/renderer/text"
)

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger creates the CLI logger writing to w at the given level.
func newLogger(w *os.File, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: false,
		Level:           level,
	})
}

func execute() error {
	var verbose bool
	logger := newLogger(os.Stderr, charmlog.InfoLevel)

	root := &cobra.Command{
		Use:          "vellum",
		Short:        "Vellum renders layout documents as width-constrained text",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd(logger))
	root.AddCommand(newCheckCmd(logger))

	return root.Execute()
}

type renderFlags struct {
	configPath string
	width      int
	ribbon     float64
	mode       string
	dataJSON   string
	debugPath  string
	strip      bool
}

func newRenderCmd(logger *charmlog.Logger) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <file.vellum>",
		Short: "Parse, lay out and print a DSL document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("width") {
				cfg.Width = flags.width
			}
			if cmd.Flags().Changed("ribbon") {
				cfg.Ribbon = flags.ribbon
			}
			if cmd.Flags().Changed("mode") {
				cfg.Mode = flags.mode
			}
			logger.Debug("rendering", "file", args[0], "width", cfg.Width, "ribbon", cfg.Ribbon, "mode", cfg.Mode)

			out, err := run(args[0], cfg, flags)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default vellum.toml if present)")
	cmd.Flags().IntVarP(&flags.width, "width", "w", 80, "page width in columns")
	cmd.Flags().Float64Var(&flags.ribbon, "ribbon", 1.0, "fraction of the width available for content")
	cmd.Flags().StringVarP(&flags.mode, "mode", "m", "pretty", "layout mode: pretty|smart|compact|unbounded")
	cmd.Flags().StringVar(&flags.dataJSON, "data", "", "JSON data bound to ${path} references")
	cmd.Flags().StringVar(&flags.debugPath, "debug", "", "write the layout stream as JSON to this path")
	cmd.Flags().BoolVar(&flags.strip, "strip-trailing", false, "strip trailing whitespace from output lines")

	return cmd
}

// run chains parsing, building, layout and rendering.
func run(inputPath string, cfg config, flags renderFlags) ([]byte, error) {
	var inputData any
	if flags.dataJSON != "" {
		if err := json.Unmarshal([]byte(flags.dataJSON), &inputData); err != nil {
			return nil, fmt.Errorf("parse data JSON: %w", err)
		}
	}

	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open DSL file %s: %w", inputPath, err)
	}
	defer file.Close()

	ast, err := dsl.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse DSL: %w", err)
	}

	document, err := dsl.Build(ast, inputData)
	if err != nil {
		return nil, fmt.Errorf("build document: %w", err)
	}

	stream, err := layoutStream(document, cfg)
	if err != nil {
		return nil, err
	}

	if flags.debugPath != "" {
		if err := layout.WriteDebugJSON(stream, flags.debugPath); err != nil {
			return nil, fmt.Errorf("write debug JSON: %w", err)
		}
	}

	var r renderer.Renderer = &text.Renderer{StripTrailing: flags.strip}
	out, err := r.Render(stream)
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return out, nil
}

// layoutStream picks the layout entry point the config names.
func layoutStream(document doc.Doc[string], cfg config) (layout.Stream[string], error) {
	opts := layout.Options{PageWidth: doc.AvailablePerLine{
		LineWidth:      cfg.Width,
		RibbonFraction: cfg.Ribbon,
	}}
	switch cfg.Mode {
	case "pretty":
		return layout.Pretty(opts, document), nil
	case "smart":
		return layout.Smart(opts, document), nil
	case "compact":
		return layout.Compact(document), nil
	case "unbounded":
		return layout.Unbounded(document), nil
	default:
		return nil, fmt.Errorf("unknown layout mode %q", cfg.Mode)
	}
}

func newCheckCmd(logger *charmlog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.vellum>",
		Short: "Parse a DSL document and report its shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open DSL file %s: %w", args[0], err)
			}
			defer file.Close()

			ast, err := dsl.Parse(file)
			if err != nil {
				return fmt.Errorf("parse DSL: %w", err)
			}
			if _, err := dsl.Build(ast, nil); err != nil {
				return fmt.Errorf("build document: %w", err)
			}
			logger.Info("document ok", "name", ast.Name, "version", ast.Version, "nodes", ast.CountNodes())
			return nil
		},
	}
}
