package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ActionType represents the kind of moderation action taken
type ActionType string

const (
	ActionWarn   ActionType = "warn"
	ActionMute   ActionType = "mute"
	ActionBan    ActionType = "ban"
	ActionKick   ActionType = "kick"
	ActionUnban  ActionType = "unban"
	ActionUnmute ActionType = "unmute"
)

// DefaultReason se usa cuando el moderador no proporciona una razón
const DefaultReason = "No reason provided"

// ModerationCase es el registro inmutable de una acción de moderación
type ModerationCase struct {
	ID          string     `bson:"id" json:"id"`
	CaseID      string     `bson:"caseId" json:"caseId"`
	Type        ActionType `bson:"type" json:"type"`
	UserID      string     `bson:"userId" json:"userId"`
	ModeratorID string     `bson:"moderatorId" json:"moderatorId"`
	Reason      string     `bson:"reason" json:"reason"`
	Duration    *int64     `bson:"duration" json:"duration"`
	Timestamp   string     `bson:"timestamp" json:"timestamp"`
	CreatedAt   string     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// Time returns the parsed action timestamp, zero on malformed records
func (m *ModerationCase) Time() time.Time {
	ts, err := time.Parse(time.RFC3339, m.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return ts
}

var caseIDPattern = regexp.MustCompile(`^(\d+)$`)

// NextCaseID computes the next sequential case id from the existing ones:
// max+1, zero-padded to four digits. Ids that are not purely numeric are
// ignored. With no existing cases the first id is "0000".
func NextCaseID(existing []string) string {
	highest := -1
	for _, id := range existing {
		match := caseIDPattern.FindStringSubmatch(id)
		if match == nil {
			continue
		}
		num, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if num > highest {
			highest = num
		}
	}
	return fmt.Sprintf("%04d", highest+1)
}

// StatBucket cuenta acciones en las ventanas de 7 días, 30 días y total
type StatBucket struct {
	Last7   int `json:"last7"`
	Last30  int `json:"last30"`
	AllTime int `json:"allTime"`
}

// Statistics holds per-action-type counters plus an aggregated total
type Statistics struct {
	ByType map[ActionType]*StatBucket `json:"byType"`
	Total  StatBucket                 `json:"total"`
}

// NewStatistics returns a Statistics with every known action type zeroed
func NewStatistics() *Statistics {
	stats := &Statistics{ByType: make(map[ActionType]*StatBucket)}
	for _, t := range []ActionType{ActionMute, ActionBan, ActionKick, ActionWarn, ActionUnban, ActionUnmute} {
		stats.ByType[t] = &StatBucket{}
	}
	return stats
}

// Bucket returns the counter for a type, creating a zeroed one for unknown types
func (s *Statistics) Bucket(t ActionType) *StatBucket {
	bucket, ok := s.ByType[t]
	if !ok {
		bucket = &StatBucket{}
		s.ByType[t] = bucket
	}
	return bucket
}

// BuildStatistics agrupa los casos en ventanas de tiempo relativas a now
func BuildStatistics(cases []*ModerationCase, now time.Time) *Statistics {
	sevenDaysAgo := now.Add(-7 * 24 * time.Hour)
	thirtyDaysAgo := now.Add(-30 * 24 * time.Hour)

	stats := NewStatistics()
	for _, c := range cases {
		actionTime := c.Time()
		bucket := stats.Bucket(ActionType(strings.ToLower(string(c.Type))))

		bucket.AllTime++
		stats.Total.AllTime++

		if !actionTime.Before(thirtyDaysAgo) {
			bucket.Last30++
			stats.Total.Last30++
		}
		if !actionTime.Before(sevenDaysAgo) {
			bucket.Last7++
			stats.Total.Last7++
		}
	}
	return stats
}
