package game

import (
	"errors"
	"log/slog"

	"github.com/pthm-cable/aquarium/persist"
)

// loadStatus reads the saved vitals. Any failure falls back to a full tank.
func loadStatus(store persist.Store) persist.Status {
	status, err := store.Load()
	switch {
	case errors.Is(err, persist.ErrNoStatus):
		slog.Debug("no saved status, starting full")
	case err != nil:
		slog.Debug("ignoring unreadable status", "error", err)
	default:
		slog.Debug("status loaded", "oxygen", status.Oxygen, "food", status.Food)
	}
	return status
}

// saveStatus writes the vitals. Failures are logged and otherwise ignored.
func saveStatus(store persist.Store, status persist.Status) {
	err := store.Save(status)
	switch {
	case errors.Is(err, persist.ErrReadOnly):
		slog.Debug("status not saved", "reason", err)
		return
	case err != nil:
		slog.Warn("failed to save status", "error", err)
		return
	}
	slog.Info("status saved", "oxygen", status.Oxygen, "food", status.Food)
}
