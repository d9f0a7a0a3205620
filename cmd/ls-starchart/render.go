package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-starchart/internal/apperr"
	"github.com/litescript/ls-starchart/internal/chart"
	"github.com/litescript/ls-starchart/internal/report"
	"github.com/litescript/ls-starchart/internal/svgout"
)

func renderCmd(g *globals) *cobra.Command {
	var (
		flags      chartFlags
		out        string
		summary    bool
		reportPath string
	)

	c := &cobra.Command{
		Use:   "render",
		Short: "Render a chart to SVG",
		Example: `  ls-starchart render --ra 5:35:17 --dec -5:23:28 --fov 30 -o orion.svg
  ls-starchart render --config m31.yaml --summary --report m31.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "-" && reportPath == "-" {
				return errors.New("--out and --report cannot both write to stdout")
			}

			s, err := setup(cmd, g, &flags)
			if err != nil {
				return err
			}

			ctx := chart.NewContext(s.data, s.chart)
			r := chart.NewRenderer()
			r.Parallel = s.cfg.Parallel

			start := time.Now()
			doc := r.Render(ctx)
			s.log.Debug("chart rendered",
				"projection", s.chart.Projection,
				"fov", s.chart.FOVDeg,
				"parallel", r.Parallel,
				"elapsed", time.Since(start))

			css := svgout.Stylesheet(s.cfg.CSS, s.log)
			if err := writeTo(out, cmd.OutOrStdout(), func(w io.Writer) error {
				return svgout.Write(w, doc, css)
			}); err != nil {
				return err
			}
			if out != "-" {
				s.log.Info("chart written", "path", out)
			}

			if !summary && reportPath == "" {
				return nil
			}
			e := report.Build(ctx, chart.DefaultLabelOptions(), time.Now().UTC())

			if summary {
				// keep stdout clean when the SVG goes there
				w := cmd.OutOrStdout()
				if out == "-" {
					w = cmd.ErrOrStderr()
				}
				report.WriteSummaryTable(w, e)
			}
			if reportPath != "" {
				if err := writeTo(reportPath, cmd.OutOrStdout(), e.WriteJSON); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags.bind(c)
	c.Flags().StringVarP(&out, "out", "o", "chart.svg", "Output SVG file (- for stdout)")
	c.Flags().BoolVar(&summary, "summary", false, "Print a text summary of the chart")
	c.Flags().StringVar(&reportPath, "report", "", "Write a JSON report to file (- for stdout)")
	return c
}

// writeTo runs write against path, or against stdout when path is "-".
func writeTo(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "-" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return apperr.New("output.create", apperr.KindIO, path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return apperr.New("output.write", apperr.KindIO, path, err)
	}
	if err := f.Close(); err != nil {
		return apperr.New("output.close", apperr.KindIO, path, fmt.Errorf("close: %w", err))
	}
	return nil
}
