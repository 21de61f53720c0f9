package ui

import (
	"testing"

	"github.com/storefront-labs/storeboard/pkg/config"
	"github.com/storefront-labs/storeboard/pkg/model"
	"github.com/storefront-labs/storeboard/pkg/rollup"
	"github.com/storefront-labs/storeboard/pkg/session"
)

// TestNewModelSeedsGroupsFromConfig verifies a fresh session starts with
// the configured default groups active.
func TestNewModelSeedsGroupsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.DefaultGroups = []string{"performance", "operations"}

	m := NewModel(cfg, session.NewMemoryStore(), "unused")
	groups := m.table.Groups()
	if !groups.IsActive(model.GroupPerformance) || !groups.IsActive(model.GroupOperations) {
		t.Error("configured default groups should be active")
	}
	if groups.IsActive(model.GroupAdvertising) {
		t.Error("group outside the configured defaults should be inactive")
	}
}

// TestNewModelSessionGroupsWinOverConfig verifies saved session state
// overrides the configured defaults.
func TestNewModelSessionGroupsWinOverConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.DefaultGroups = []string{"performance"}

	store := session.NewMemoryStore()
	saved := rollup.NewGroupSet()
	saved.Restore([]model.GroupID{model.GroupCustomers})
	session.SaveGroups(store, saved)

	m := NewModel(cfg, store, "unused")
	groups := m.table.Groups()
	if !groups.IsActive(model.GroupCustomers) || groups.IsActive(model.GroupPerformance) {
		t.Errorf("session groups should win over config, got %v", groups.Active())
	}
}

// TestNewModelUnknownDefaultGroupsFallBack verifies unknown group names in
// the config keep the all-active default.
func TestNewModelUnknownDefaultGroupsFallBack(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.DefaultGroups = []string{"bogus"}

	m := NewModel(cfg, session.NewMemoryStore(), "unused")
	if m.table.Groups().Len() != len(model.AllGroups) {
		t.Error("unknown default groups should fall back to all active")
	}
}

// TestNewModelHeadlessFromConfig verifies the headless flag reaches the
// table.
func TestNewModelHeadlessFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.Headless = true

	m := NewModel(cfg, session.NewMemoryStore(), "unused")
	if !m.table.headless {
		t.Error("headless config should apply to the table")
	}
}
