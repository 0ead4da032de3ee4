package models

import (
	"testing"
	"time"
)

func buildAppeal(id, caseID, userID string, status AppealStatus) *Appeal {
	return &Appeal{
		ID:          id,
		CaseID:      caseID,
		UserID:      userID,
		Reason:      "razón",
		Learned:     "lección",
		Status:      status,
		SubmittedAt: "2026-08-01T00:00:00Z",
	}
}

func TestFindPendingAppealMatchesPair(t *testing.T) {
	appeals := []*Appeal{
		nil,
		buildAppeal("a1", "0001", "U1", AppealDenied),
		buildAppeal("a2", "0001", "U2", AppealPending),
		buildAppeal("a3", "0002", "U1", AppealPending),
	}

	tests := []struct {
		name   string
		caseID string
		userID string
		wantID string // "" means nil
	}{
		{"pair with pending", "0001", "U2", "a2"},
		{"same case other user", "0002", "U1", "a3"},
		{"pair already resolved", "0001", "U1", ""},
		{"unknown pair", "0009", "U1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindPendingAppeal(appeals, tt.caseID, tt.userID)
			if tt.wantID == "" {
				if got != nil {
					t.Errorf("FindPendingAppeal = %+v, want nil", got)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Errorf("FindPendingAppeal = %+v, want id %v", got, tt.wantID)
			}
		})
	}
}

func TestResolveRoundTrip(t *testing.T) {
	appeals := []*Appeal{buildAppeal("a1", "0004", "U1", AppealPending)}
	reviewed := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	appeal := FindPendingAppeal(appeals, "0004", "U1")
	if appeal == nil {
		t.Fatal("pending appeal for the pair not found")
	}

	if !appeal.Resolve(AppealApproved, "M1", reviewed) {
		t.Fatal("Resolve of a pending appeal should succeed")
	}
	if appeal.Status != AppealApproved {
		t.Errorf("Status = %v, want %v", appeal.Status, AppealApproved)
	}
	if appeal.ProcessedAt == nil || *appeal.ProcessedAt != "2026-08-29T12:00:00Z" {
		t.Errorf("ProcessedAt = %v, want 2026-08-29T12:00:00Z", appeal.ProcessedAt)
	}
	if appeal.ProcessedBy == nil || *appeal.ProcessedBy != "M1" {
		t.Errorf("ProcessedBy = %v, want M1", appeal.ProcessedBy)
	}

	// Once resolved, the pair has no pending appeal anymore
	if FindPendingAppeal(appeals, "0004", "U1") != nil {
		t.Error("resolved appeal still reported as pending")
	}

	// A second resolution must be rejected and leave the record untouched
	if appeal.Resolve(AppealDenied, "M2", reviewed.Add(time.Hour)) {
		t.Error("Resolve of a resolved appeal should fail")
	}
	if appeal.Status != AppealApproved || *appeal.ProcessedBy != "M1" {
		t.Errorf("second Resolve mutated the record: %+v", appeal)
	}
}

func TestResolveRejectsInvalidTargets(t *testing.T) {
	now := time.Now()

	appeal := buildAppeal("a1", "0004", "U1", AppealPending)
	if appeal.Resolve(AppealPending, "M1", now) {
		t.Error("Resolve to pending should fail")
	}
	if appeal.Resolve(AppealStatus("bogus"), "M1", now) {
		t.Error("Resolve to an unknown status should fail")
	}
	if appeal.Status != AppealPending || appeal.ProcessedAt != nil {
		t.Errorf("rejected Resolve mutated the record: %+v", appeal)
	}

	var missing *Appeal
	if missing.Resolve(AppealApproved, "M1", now) {
		t.Error("Resolve on nil should fail")
	}
}
