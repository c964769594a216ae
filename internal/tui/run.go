package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/saver"
	"github.com/idilsaglam/tada/internal/todo"
)

const flushTimeout = 5 * time.Second

// Run opens the interactive screen and blocks until the user quits. All
// mutations are saved through a write queue that is drained before Run
// returns.
func Run(store *todo.Store) error {
	s := saver.New(store.Save)

	p := tea.NewProgram(New(store, s), tea.WithAltScreen())
	_, runErr := p.Run()

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := s.Close(ctx); err != nil {
		logger.Error().Err(err).Int("failures", s.Failures()).Msg("final save failed")
		if runErr == nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return runErr
}
