package models

import "time"

// AppealStatus representa el estado del ciclo de vida de una apelación
type AppealStatus string

const (
	AppealPending  AppealStatus = "pending"
	AppealApproved AppealStatus = "approved"
	AppealDenied   AppealStatus = "denied"
)

// IsValid reports whether the status is one of the known states
func (s AppealStatus) IsValid() bool {
	return s == AppealPending || s == AppealApproved || s == AppealDenied
}

// IsTerminal reports whether the status can no longer transition
func (s AppealStatus) IsTerminal() bool {
	return s == AppealApproved || s == AppealDenied
}

// Appeal es la solicitud de un usuario para reconsiderar un caso.
// Invariante: como máximo una apelación "pending" por par (caseId, userId).
type Appeal struct {
	ID          string       `bson:"id" json:"id"`
	CaseID      string       `bson:"caseId" json:"caseId"`
	UserID      string       `bson:"userId" json:"userId"`
	Reason      string       `bson:"reason" json:"reason"`
	Learned     string       `bson:"learned" json:"learned"`
	Comments    *string      `bson:"comments" json:"comments"`
	Contact     *string      `bson:"contact" json:"contact"`
	Status      AppealStatus `bson:"status" json:"status"`
	SubmittedAt string       `bson:"submittedAt" json:"submittedAt"`
	ProcessedAt *string      `bson:"processedAt" json:"processedAt"`
	ProcessedBy *string      `bson:"processedBy" json:"processedBy"`
	CreatedAt   string       `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// IsPending reports whether the appeal is still awaiting review
func (a *Appeal) IsPending() bool {
	return a.Status == AppealPending
}

// Resolve transitions a pending appeal to a terminal status, stamping the
// reviewer and the processing time. Returns false without touching the
// appeal when it is not pending or the target status is not terminal.
func (a *Appeal) Resolve(status AppealStatus, processedBy string, now time.Time) bool {
	if a == nil || !a.IsPending() || !status.IsValid() || !status.IsTerminal() {
		return false
	}
	processedAt := now.UTC().Format(time.RFC3339)
	a.Status = status
	a.ProcessedAt = &processedAt
	a.ProcessedBy = &processedBy
	return true
}

// FindPendingAppeal returns the pending appeal of a (caseId, userId) pair,
// or nil when the pair has none.
func FindPendingAppeal(appeals []*Appeal, caseID, userID string) *Appeal {
	for _, a := range appeals {
		if a != nil && a.CaseID == caseID && a.UserID == userID && a.IsPending() {
			return a
		}
	}
	return nil
}
