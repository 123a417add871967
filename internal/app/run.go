package app

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/internal/logging"
)

// Run executes one gridpath session: text output goes to stdout, screen
// output takes over the terminal until the user quits.
func Run(cfg config.Config, log *logging.Logger, stdout io.Writer) error {
	a, err := New(cfg, log)
	if err != nil {
		return err
	}

	switch cfg.Output {
	case config.OutputText:
		return a.WriteText(stdout)
	case config.OutputScreen:
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("app: open screen: %w", err)
		}
		if err := s.Init(); err != nil {
			return fmt.Errorf("app: init screen: %w", err)
		}
		// Log lines written while the screen is up are replayed after Fini.
		var held bytes.Buffer
		out := a.log.Writer()
		a.log.SetOutput(&held)
		defer func() {
			s.Fini()
			a.log.SetOutput(out)
			_, _ = out.Write(held.Bytes())
		}()
		return a.Display(s)
	default:
		return fmt.Errorf("%w: output %q", config.ErrInvalidValue, cfg.Output)
	}
}
