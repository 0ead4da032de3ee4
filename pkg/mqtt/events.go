package mqtt

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// Moderation event topics published for external consumers (dashboards,
// audit collectors). Fire and forget: a missing broker never blocks a
// moderation action.
const (
	TopicCaseLogged      = "pancy/events/moderation/case"
	TopicCaseDeleted     = "pancy/events/moderation/case-deleted"
	TopicAppealSubmitted = "pancy/events/appeals/submitted"
	TopicAppealResolved  = "pancy/events/appeals/resolved"
	TopicConfigChanged   = "pancy/events/config/changed"
)

// ModerationEvent is the envelope for every published moderation event
type ModerationEvent struct {
	Event     string      `json:"event"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

func publishEvent(topic, event string, data interface{}) {
	mc := Get()
	if mc == nil || !mc.IsConnected() {
		return
	}
	_ = mc.Publish(topic, ModerationEvent{
		Event:     event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	})
}

// PublishCaseLogged announces a freshly recorded moderation case
func PublishCaseLogged(c *models.ModerationCase) {
	publishEvent(TopicCaseLogged, "case.logged", c)
}

// PublishCaseDeleted announces that a case was removed
func PublishCaseDeleted(caseID string) {
	publishEvent(TopicCaseDeleted, "case.deleted", map[string]string{"caseId": caseID})
}

// PublishAppealSubmitted announces a new pending appeal
func PublishAppealSubmitted(a *models.Appeal) {
	publishEvent(TopicAppealSubmitted, "appeal.submitted", a)
}

// PublishAppealResolved announces a resolved appeal
func PublishAppealResolved(a *models.Appeal) {
	publishEvent(TopicAppealResolved, fmt.Sprintf("appeal.%s", a.Status), a)
}

// PublishConfigChanged announces a configuration mutation
func PublishConfigChanged(section string) {
	publishEvent(TopicConfigChanged, "config.changed", map[string]string{"section": section})
}
