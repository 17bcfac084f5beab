package ui

import (
	"testing"

	"github.com/pthm-cable/aquarium/config"
)

// defaultLayout builds the layout from the embedded defaults.
func defaultLayout(t *testing.T) Layout {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return NewLayout(cfg.UI)
}
