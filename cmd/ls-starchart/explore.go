package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-starchart/internal/tui"
)

func exploreCmd(g *globals) *cobra.Command {
	var flags chartFlags

	c := &cobra.Command{
		Use:   "explore",
		Short: "Explore a chart interactively in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fd := int(os.Stdout.Fd())
			if !term.IsTerminal(fd) {
				return errors.New("explore needs a terminal; use render to write a file")
			}

			s, err := setup(cmd, g, &flags)
			if err != nil {
				return err
			}
			model := tui.New(s.data, s.chart, s.cfg.Parallel)
			if w, h, err := term.GetSize(fd); err == nil {
				model = model.WithSize(w, h)
			}
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

			// Run TUI (blocks until quit)
			if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("running explorer: %w", err)
			}
			return nil
		},
	}

	flags.bind(c)
	return c
}
