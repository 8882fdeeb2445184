package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/konnector-tools/billgraph/internal/config"
	"github.com/konnector-tools/billgraph/internal/linkresult"
	"github.com/konnector-tools/billgraph/internal/render"
)

type renderOptions struct {
	output  string
	rankdir string
}

func runRender(cmd *cobra.Command, opts *globalOptions, ropts renderOptions, path string) (err error) {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if ropts.rankdir != "" {
		cfg.SetGraphAttr("rankdir", ropts.rankdir)
	}

	records, err := linkresult.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded link results", "file", path, "records", len(records))

	g := render.New(cfg).Render(records)
	logger.Debug("rendered graph", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	var w io.Writer = cmd.OutOrStdout()
	if ropts.output != "" {
		f, cerr := os.Create(ropts.output)
		if cerr != nil {
			return fmt.Errorf("creating output: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output: %w", cerr)
			}
		}()
		w = f
	}

	if _, err = g.WriteTo(w); err != nil {
		return fmt.Errorf("writing graph: %w", err)
	}
	if ropts.output != "" {
		logger.Info("wrote graph", "file", ropts.output)
	}
	return nil
}

// loadConfig returns the style at path, or the default style if path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
