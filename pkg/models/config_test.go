package models

import "testing"

func TestApplyDefaults(t *testing.T) {
	cfg := &GuildConfig{}

	if !cfg.ApplyDefaults() {
		t.Error("ApplyDefaults on an empty config should report changes")
	}

	if cfg.ID != ConfigID {
		t.Errorf("ID = %v, want %v", cfg.ID, ConfigID)
	}
	if !cfg.IsLoggingEnabled() {
		t.Error("loggingEnabled should default to true")
	}
	if !cfg.IsAppealsEnabled() {
		t.Error("appealsEnabled should default to true")
	}
	if !cfg.IsAutomodEnabled() {
		t.Error("automodEnabled should default to true")
	}
	if cfg.IsMessageLoggingEnabled() {
		t.Error("messageLoggingEnabled should default to false")
	}
	if cfg.BanEmbed == nil || cfg.BanEmbed.Title != "🔨 You have been banned" {
		t.Errorf("BanEmbed = %+v, want stock template", cfg.BanEmbed)
	}

	// Second pass must be a no-op
	if cfg.ApplyDefaults() {
		t.Error("ApplyDefaults on a complete config should report no changes")
	}
}

func TestApplyDefaultsKeepsExistingValues(t *testing.T) {
	off := false
	cfg := &GuildConfig{
		ID:             ConfigID,
		StaffRoles:     []string{"S"},
		LoggingEnabled: &off,
	}
	cfg.ApplyDefaults()

	if cfg.IsLoggingEnabled() {
		t.Error("ApplyDefaults must not overwrite an explicit false")
	}
	if len(cfg.StaffRoles) != 1 || cfg.StaffRoles[0] != "S" {
		t.Errorf("StaffRoles = %v, want [S]", cfg.StaffRoles)
	}
}

func TestEnsureCommandDefaults(t *testing.T) {
	cfg := NewGuildConfig()
	policy := cfg.EnsureCommand("ban")

	if !policy.Enabled {
		t.Error("new command should default to enabled")
	}
	if policy.IsPublic {
		t.Error("new command should default to staff-only")
	}
	if len(policy.Whitelist) != 0 || len(policy.Blacklist) != 0 {
		t.Error("new command should have empty role lists")
	}

	// EnsureCommand must not replace an existing policy
	policy.Enabled = false
	if cfg.EnsureCommand("ban").Enabled {
		t.Error("EnsureCommand replaced an existing policy")
	}
}

func TestAddWhitelistRoleIdempotent(t *testing.T) {
	cfg := NewGuildConfig()
	cfg.AddWhitelistRole("ban", "W")
	cfg.AddWhitelistRole("ban", "W")

	wl := cfg.Commands["ban"].Whitelist
	if len(wl) != 1 || wl[0] != "W" {
		t.Errorf("Whitelist = %v, want exactly one W", wl)
	}
}

func TestRemoveWhitelistRole(t *testing.T) {
	cfg := NewGuildConfig()
	cfg.AddWhitelistRole("ban", "W")
	cfg.RemoveWhitelistRole("ban", "W")
	cfg.RemoveWhitelistRole("ban", "W") // idempotente

	if len(cfg.Commands["ban"].Whitelist) != 0 {
		t.Errorf("Whitelist = %v, want empty", cfg.Commands["ban"].Whitelist)
	}

	// Removing from an unknown command must not create it
	cfg.RemoveWhitelistRole("nope", "W")
	if cfg.CommandConfig("nope") != nil {
		t.Error("RemoveWhitelistRole created a command entry")
	}
}

func TestBlacklistRoles(t *testing.T) {
	cfg := NewGuildConfig()
	cfg.AddBlacklistRole("ban", "B")
	cfg.AddBlacklistRole("ban", "B")

	bl := cfg.Commands["ban"].Blacklist
	if len(bl) != 1 || bl[0] != "B" {
		t.Errorf("Blacklist = %v, want exactly one B", bl)
	}

	cfg.RemoveBlacklistRole("ban", "B")
	if len(cfg.Commands["ban"].Blacklist) != 0 {
		t.Errorf("Blacklist = %v, want empty", cfg.Commands["ban"].Blacklist)
	}
}

func TestSetStaffRole(t *testing.T) {
	cfg := NewGuildConfig()
	cfg.SetStaffRole("S", true)
	cfg.SetStaffRole("S", true)

	if len(cfg.StaffRoles) != 1 {
		t.Errorf("StaffRoles = %v, want exactly one S", cfg.StaffRoles)
	}
	if !cfg.IsStaff([]string{"X", "S"}) {
		t.Error("IsStaff should match any held role")
	}
	if cfg.IsStaff([]string{"X"}) {
		t.Error("IsStaff matched a non-staff role")
	}

	cfg.SetStaffRole("S", false)
	if len(cfg.StaffRoles) != 0 {
		t.Errorf("StaffRoles = %v, want empty", cfg.StaffRoles)
	}
}

func TestUpsertAutomodRuleSortedUnique(t *testing.T) {
	cfg := NewGuildConfig()
	cfg.UpsertAutomodRule(AutomodRule{Threshold: 5, Action: "ban"})
	cfg.UpsertAutomodRule(AutomodRule{Threshold: 3, Action: "mute"})
	cfg.UpsertAutomodRule(AutomodRule{Threshold: 5, Action: "kick"})

	if len(cfg.AutomodRules) != 2 {
		t.Fatalf("rules = %d, want 2 (upsert by threshold)", len(cfg.AutomodRules))
	}
	if cfg.AutomodRules[0].Threshold != 3 || cfg.AutomodRules[1].Threshold != 5 {
		t.Errorf("rules not sorted ascending: %+v", cfg.AutomodRules)
	}
	if cfg.AutomodRules[1].Action != "kick" {
		t.Errorf("Action = %v, want replacement kick", cfg.AutomodRules[1].Action)
	}
}

func TestRemoveAutomodRule(t *testing.T) {
	cfg := NewGuildConfig()
	cfg.UpsertAutomodRule(AutomodRule{Threshold: 3, Action: "mute"})
	cfg.UpsertAutomodRule(AutomodRule{Threshold: 5, Action: "ban"})

	cfg.RemoveAutomodRule(3)
	if len(cfg.AutomodRules) != 1 || cfg.AutomodRules[0].Threshold != 5 {
		t.Errorf("rules = %+v, want only threshold 5", cfg.AutomodRules)
	}

	cfg.RemoveAutomodRule(99) // unknown threshold is a no-op
	if len(cfg.AutomodRules) != 1 {
		t.Errorf("rules = %+v, want unchanged", cfg.AutomodRules)
	}
}

func TestAutomodActionForWarnings(t *testing.T) {
	cfg := NewGuildConfig()
	cfg.UpsertAutomodRule(AutomodRule{Threshold: 3, Action: "mute"})
	cfg.UpsertAutomodRule(AutomodRule{Threshold: 5, Action: "ban"})

	tests := []struct {
		count  int
		action string // "" means nil
	}{
		{2, ""},
		{3, "mute"},
		{4, "mute"},
		{5, "ban"},
		{10, "ban"},
	}

	for _, tt := range tests {
		rule := cfg.AutomodActionForWarnings(tt.count)
		if tt.action == "" {
			if rule != nil {
				t.Errorf("AutomodActionForWarnings(%d) = %+v, want nil", tt.count, rule)
			}
			continue
		}
		if rule == nil || rule.Action != tt.action {
			t.Errorf("AutomodActionForWarnings(%d) = %+v, want %v", tt.count, rule, tt.action)
		}
	}
}

func TestAutomodDisabledReturnsNil(t *testing.T) {
	cfg := NewGuildConfig()
	cfg.UpsertAutomodRule(AutomodRule{Threshold: 1, Action: "mute"})
	off := false
	cfg.AutomodEnabled = &off

	if rule := cfg.AutomodActionForWarnings(10); rule != nil {
		t.Errorf("AutomodActionForWarnings with automod off = %+v, want nil", rule)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := NewGuildConfig()
	cfg.SetStaffRole("S", true)
	cfg.AddWhitelistRole("ban", "W")
	cfg.AddBlacklistRole("ban", "B")
	cfg.UpsertAutomodRule(AutomodRule{Threshold: 3, Action: "mute"})
	cfg.MessageLogsBlacklist = appendUnique(cfg.MessageLogsBlacklist, "C1")

	clone := cfg.Clone()

	// Mutating the original must not show through the clone. SetStaffRole and
	// RemoveAutomodRule filter in place, so a shallow copy would share the
	// backing arrays.
	cfg.SetStaffRole("S", false)
	cfg.RemoveWhitelistRole("ban", "W")
	cfg.RemoveAutomodRule(3)
	cfg.EnsureCommand("kick")
	*cfg.LoggingEnabled = false
	cfg.BanEmbed.Title = "otro"

	if len(clone.StaffRoles) != 1 || clone.StaffRoles[0] != "S" {
		t.Errorf("clone StaffRoles = %v, want [S]", clone.StaffRoles)
	}
	if wl := clone.Commands["ban"].Whitelist; len(wl) != 1 || wl[0] != "W" {
		t.Errorf("clone Whitelist = %v, want [W]", wl)
	}
	if len(clone.AutomodRules) != 1 {
		t.Errorf("clone AutomodRules = %+v, want one rule", clone.AutomodRules)
	}
	if clone.CommandConfig("kick") != nil {
		t.Error("clone shares the command map with the original")
	}
	if !clone.IsLoggingEnabled() {
		t.Error("clone shares the loggingEnabled pointer with the original")
	}
	if clone.BanEmbed.Title == "otro" {
		t.Error("clone shares the ban embed with the original")
	}

	// And the other direction
	clone.AddBlacklistRole("ban", "B2")
	if bl := cfg.Commands["ban"].Blacklist; len(bl) != 1 {
		t.Errorf("original Blacklist = %v, want [B]", bl)
	}
}

func TestBanEmbedRender(t *testing.T) {
	template := BanEmbedTemplate{
		Title:       "Baneado de {server}",
		Description: "Apela en {server}",
		Color:       0xFF0000,
		Footer:      "mods",
	}

	rendered := template.Render("Mi Server")
	if rendered.Title != "Baneado de Mi Server" || rendered.Description != "Apela en Mi Server" {
		t.Errorf("Render = %+v, want {server} substituted", rendered)
	}
	// Render works on a copy
	if template.Title != "Baneado de {server}" {
		t.Error("Render mutated the template")
	}
}

func TestCloneNil(t *testing.T) {
	var cfg *GuildConfig
	if cfg.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestMessageLogsBlacklist(t *testing.T) {
	cfg := NewGuildConfig()
	cfg.MessageLogsBlacklist = appendUnique(cfg.MessageLogsBlacklist, "C1")

	if !cfg.IsMessageLogsBlacklisted("C1") {
		t.Error("C1 should be excluded from message logging")
	}
	if cfg.IsMessageLogsBlacklisted("C2") {
		t.Error("C2 should not be excluded")
	}
}
