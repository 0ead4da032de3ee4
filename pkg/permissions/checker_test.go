package permissions

import (
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// buildConfig creates a config snapshot with staff role "S" and a "ban"
// command used by most of the scenarios below.
func buildConfig() *models.GuildConfig {
	cfg := models.NewGuildConfig()
	cfg.SetStaffRole("S", true)
	cfg.EnsureCommand("ban")
	return cfg
}

func TestEvaluateUnknownCommand(t *testing.T) {
	cfg := models.NewGuildConfig()

	decision := Evaluate(cfg, "nope", []string{"S"}, false)
	if decision.Allowed {
		t.Error("unknown command should be denied")
	}
	if decision.Reason != ReasonDisabled {
		t.Errorf("Reason = %v, want %v", decision.Reason, ReasonDisabled)
	}
}

func TestEvaluateDisabledCommand(t *testing.T) {
	cfg := buildConfig()
	cfg.Commands["ban"].Enabled = false

	// Disabled beats everything, including the owner
	decision := Evaluate(cfg, "ban", []string{"S"}, true)
	if decision.Allowed {
		t.Error("disabled command should be denied even for the owner")
	}
	if decision.Reason != ReasonDisabled {
		t.Errorf("Reason = %v, want %v", decision.Reason, ReasonDisabled)
	}
}

func TestEvaluateNilConfig(t *testing.T) {
	decision := Evaluate(nil, "ban", []string{"S"}, true)
	if decision.Allowed || decision.Reason != ReasonDisabled {
		t.Errorf("Evaluate(nil, ...) = %+v, want deny/disabled", decision)
	}
}

func TestEvaluateStaffBlacklistPublic(t *testing.T) {
	// Scenario from the permission contract: staffRoles=["S"], command "ban"
	// enabled, not public, whitelist empty, blacklist=["B"]
	cfg := buildConfig()
	cfg.AddBlacklistRole("ban", "B")

	tests := []struct {
		name    string
		roles   []string
		allowed bool
		reason  ReasonCode
	}{
		{"blacklisted role", []string{"B"}, false, ReasonBlacklisted},
		{"staff role", []string{"S"}, true, ReasonStaffRole},
		{"unrelated role", []string{"X"}, false, ReasonRequiresStaff},
		{"no roles", nil, false, ReasonRequiresStaff},
		{"blacklist wins over staff", []string{"S", "B"}, false, ReasonBlacklisted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Evaluate(cfg, "ban", tt.roles, false)
			if decision.Allowed != tt.allowed {
				t.Errorf("Allowed = %v, want %v", decision.Allowed, tt.allowed)
			}
			if decision.Reason != tt.reason {
				t.Errorf("Reason = %v, want %v", decision.Reason, tt.reason)
			}
		})
	}
}

func TestEvaluateOwnerBypass(t *testing.T) {
	cfg := buildConfig()
	cfg.AddBlacklistRole("ban", "B")

	// Owner bypasses even a blacklisted role
	decision := Evaluate(cfg, "ban", []string{"B"}, true)
	if !decision.Allowed {
		t.Error("owner should bypass the blacklist")
	}
	if decision.Reason != ReasonOwnerBypass {
		t.Errorf("Reason = %v, want %v", decision.Reason, ReasonOwnerBypass)
	}
}

func TestEvaluateWhitelistExclusiveGate(t *testing.T) {
	cfg := buildConfig()
	cfg.AddWhitelistRole("ban", "W")
	// isPublic must be irrelevant once the whitelist is non-empty
	cfg.Commands["ban"].IsPublic = true

	tests := []struct {
		name    string
		roles   []string
		allowed bool
		reason  ReasonCode
	}{
		{"whitelisted role", []string{"W"}, true, ReasonWhitelisted},
		{"staff satisfies whitelist gate", []string{"S"}, true, ReasonStaffRole},
		{"public flag ignored", []string{"X"}, false, ReasonLacksWhitelistOrRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Evaluate(cfg, "ban", tt.roles, false)
			if decision.Allowed != tt.allowed {
				t.Errorf("Allowed = %v, want %v", decision.Allowed, tt.allowed)
			}
			if decision.Reason != tt.reason {
				t.Errorf("Reason = %v, want %v", decision.Reason, tt.reason)
			}
		})
	}
}

func TestEvaluatePublicCommand(t *testing.T) {
	cfg := buildConfig()
	cfg.EnsureCommand("help").IsPublic = true

	decision := Evaluate(cfg, "help", []string{"X"}, false)
	if !decision.Allowed {
		t.Error("public command should be allowed for anyone")
	}
	if decision.Reason != ReasonPublic {
		t.Errorf("Reason = %v, want %v", decision.Reason, ReasonPublic)
	}
}

func TestEvaluateConfigCommand(t *testing.T) {
	cfg := buildConfig()
	cfg.EnsureCommand("config")
	cfg.AddWhitelistRole("config", "W")

	tests := []struct {
		name    string
		roles   []string
		isOwner bool
		allowed bool
		reason  ReasonCode
	}{
		{"owner", nil, true, true, ReasonOwner},
		{"whitelisted role", []string{"W"}, false, true, ReasonWhitelisted},
		{"no roles", nil, false, false, ReasonOwnerOnly},
		// Staff does NOT satisfy the config command's gate
		{"staff role denied", []string{"S"}, false, false, ReasonOwnerOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Evaluate(cfg, "config", tt.roles, tt.isOwner)
			if decision.Allowed != tt.allowed {
				t.Errorf("Allowed = %v, want %v", decision.Allowed, tt.allowed)
			}
			if decision.Reason != tt.reason {
				t.Errorf("Reason = %v, want %v", decision.Reason, tt.reason)
			}
		})
	}
}

func TestEvaluateConfigCommandNoBlacklistPath(t *testing.T) {
	cfg := buildConfig()
	cfg.EnsureCommand("config")
	cfg.AddWhitelistRole("config", "W")
	cfg.AddBlacklistRole("config", "W")

	// The config command has no blacklist rule: whitelist still grants
	decision := Evaluate(cfg, "config", []string{"W"}, false)
	if !decision.Allowed {
		t.Error("blacklist must not apply to the config command")
	}
}

func TestEvaluateIsPure(t *testing.T) {
	cfg := buildConfig()
	cfg.AddWhitelistRole("ban", "W")

	first := Evaluate(cfg, "ban", []string{"W"}, false)
	for i := 0; i < 5; i++ {
		if got := Evaluate(cfg, "ban", []string{"W"}, false); got != first {
			t.Fatalf("Evaluate not deterministic: %+v != %+v", got, first)
		}
	}

	// The evaluator must never mutate the snapshot
	if len(cfg.Commands["ban"].Whitelist) != 1 {
		t.Error("Evaluate mutated the configuration snapshot")
	}
}

func TestEvaluateConcurrentWithCloneMutations(t *testing.T) {
	// The database layer hands every caller a Clone of the cached document, so
	// a /config mutation and a permission evaluation never touch the same
	// maps or slices. A clone sharing backing arrays with the base would make
	// the in-place removals below visible to the evaluations (and trip the
	// race detector).
	base := buildConfig()
	base.AddWhitelistRole("ban", "W")
	base.UpsertAutomodRule(models.AutomodRule{Threshold: 3, Action: "mute"})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			own := base.Clone()
			own.AddWhitelistRole("ban", "W2")
			own.RemoveWhitelistRole("ban", "W")
			own.SetStaffRole("S", false)
			own.RemoveAutomodRule(3)
		}
	}()

	for i := 0; i < 1000; i++ {
		decision := Evaluate(base.Clone(), "ban", []string{"W"}, false)
		if !decision.Allowed || decision.Reason != ReasonWhitelisted {
			t.Fatalf("Evaluate during concurrent mutations = %+v, want allow/whitelisted", decision)
		}
	}
	<-done
}

func TestReasonMessages(t *testing.T) {
	reasons := []ReasonCode{
		ReasonDisabled, ReasonOwner, ReasonOwnerBypass, ReasonOwnerOnly,
		ReasonWhitelisted, ReasonBlacklisted, ReasonStaffRole,
		ReasonLacksWhitelistOrRole, ReasonPublic, ReasonRequiresStaff,
	}
	for _, r := range reasons {
		if r.Message() == "" {
			t.Errorf("Message() for %v is empty", r)
		}
	}
}
