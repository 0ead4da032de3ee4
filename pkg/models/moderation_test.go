package models

import (
	"testing"
	"time"
)

func TestNextCaseID(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty", nil, "0000"},
		{"sequential", []string{"0000", "0001", "0002"}, "0003"},
		// max+1, not count+1
		{"with gaps", []string{"0000", "0003"}, "0004"},
		{"ignores malformed ids", []string{"0004", "abc", "07x"}, "0005"},
		{"grows past padding", []string{"9999"}, "10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextCaseID(tt.existing); got != tt.want {
				t.Errorf("NextCaseID(%v) = %v, want %v", tt.existing, got, tt.want)
			}
		})
	}
}

func TestModerationCaseTime(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := &ModerationCase{Timestamp: ts.Format(time.RFC3339)}

	if !c.Time().Equal(ts) {
		t.Errorf("Time() = %v, want %v", c.Time(), ts)
	}

	bad := &ModerationCase{Timestamp: "not-a-date"}
	if !bad.Time().IsZero() {
		t.Errorf("Time() on malformed timestamp = %v, want zero", bad.Time())
	}
}

func caseAt(actionType ActionType, when time.Time) *ModerationCase {
	return &ModerationCase{
		Type:      actionType,
		Timestamp: when.Format(time.RFC3339),
	}
}

func TestBuildStatistics(t *testing.T) {
	now := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	cases := []*ModerationCase{
		caseAt(ActionWarn, now.Add(-time.Hour)),        // dentro de 7 días
		caseAt(ActionWarn, now.Add(-10*24*time.Hour)),  // dentro de 30 días
		caseAt(ActionBan, now.Add(-60*24*time.Hour)),   // solo allTime
		caseAt(ActionMute, now.Add(-2*24*time.Hour)),   // dentro de 7 días
	}

	stats := BuildStatistics(cases, now)

	warn := stats.Bucket(ActionWarn)
	if warn.Last7 != 1 || warn.Last30 != 2 || warn.AllTime != 2 {
		t.Errorf("warn bucket = %+v, want {1 2 2}", warn)
	}

	ban := stats.Bucket(ActionBan)
	if ban.Last7 != 0 || ban.Last30 != 0 || ban.AllTime != 1 {
		t.Errorf("ban bucket = %+v, want {0 0 1}", ban)
	}

	if stats.Total.Last7 != 2 || stats.Total.Last30 != 3 || stats.Total.AllTime != 4 {
		t.Errorf("total = %+v, want {2 3 4}", stats.Total)
	}
}

func TestBuildStatisticsUnknownType(t *testing.T) {
	now := time.Now()
	stats := BuildStatistics([]*ModerationCase{caseAt("timeout", now)}, now)

	bucket := stats.ByType[ActionType("timeout")]
	if bucket == nil || bucket.AllTime != 1 {
		t.Errorf("unknown type bucket = %+v, want lazily created {1 1 1}", bucket)
	}
}

func TestBuildStatisticsNormalizesCase(t *testing.T) {
	now := time.Now()
	stats := BuildStatistics([]*ModerationCase{caseAt("WARN", now)}, now)

	if stats.Bucket(ActionWarn).AllTime != 1 {
		t.Error("type comparison should be case-insensitive")
	}
}

func TestAppealStatus(t *testing.T) {
	if !AppealPending.IsValid() || !AppealApproved.IsValid() || !AppealDenied.IsValid() {
		t.Error("known statuses should be valid")
	}
	if AppealStatus("bogus").IsValid() {
		t.Error("bogus status should be invalid")
	}
	if AppealPending.IsTerminal() {
		t.Error("pending is not terminal")
	}
	if !AppealApproved.IsTerminal() || !AppealDenied.IsTerminal() {
		t.Error("approved/denied are terminal")
	}
}
