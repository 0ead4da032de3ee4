package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrCaseManagerNotInitialized = errors.New("case data manager not initialized")
	ErrCaseNotFound              = errors.New("moderation case not found")
)

func getCaseManager() (*DataManager[models.ModerationCase], error) {
	if GlobalCaseDM == nil {
		return nil, ErrCaseManagerNotInitialized
	}
	return GlobalCaseDM, nil
}

// LogAction records a moderation action and returns the new case. The case id
// is allocated as max+1 over the existing ids; two actions logged in the same
// instant can race for the same id, tolerable at human moderation rates.
func LogAction(actionType models.ActionType, userID, moderatorID, reason string, duration *int64) (*models.ModerationCase, error) {
	dm, err := getCaseManager()
	if err != nil {
		return nil, err
	}

	if reason == "" {
		reason = models.DefaultReason
	}

	existing, err := dm.GetAll(bson.M{})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(existing))
	for _, c := range existing {
		ids = append(ids, c.CaseID)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	record := &models.ModerationCase{
		ID:          uuid.NewString(),
		CaseID:      models.NextCaseID(ids),
		Type:        actionType,
		UserID:      userID,
		ModeratorID: moderatorID,
		Reason:      reason,
		Duration:    duration,
		Timestamp:   now,
		CreatedAt:   now,
	}

	if err := dm.Insert(record); err != nil {
		return nil, err
	}

	if err := AddCaseToUser(userID, record.CaseID); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo indexar el caso %s para el usuario %s", record.CaseID, userID), "Cases")
	}

	logger.Info(fmt.Sprintf("Caso %s registrado: %s contra %s por %s", record.CaseID, actionType, userID, moderatorID), "Cases")
	return record, nil
}

// GetCase returns a case by its sequential case id, nil when unknown
func GetCase(caseID string) (*models.ModerationCase, error) {
	dm, err := getCaseManager()
	if err != nil {
		return nil, err
	}
	return dm.FindOne(bson.M{"caseId": caseID})
}

// GetUserCases returns every case recorded against a user
func GetUserCases(userID string) ([]*models.ModerationCase, error) {
	dm, err := getCaseManager()
	if err != nil {
		return nil, err
	}
	return dm.GetAll(bson.M{"userId": userID})
}

// GetUserWarnings returns only the warn cases of a user
func GetUserWarnings(userID string) ([]*models.ModerationCase, error) {
	dm, err := getCaseManager()
	if err != nil {
		return nil, err
	}
	return dm.GetAll(bson.M{"userId": userID, "type": string(models.ActionWarn)})
}

// CountUserWarnings returns the number of warn cases against a user,
// used as the automod escalation input.
func CountUserWarnings(userID string) (int, error) {
	dm, err := getCaseManager()
	if err != nil {
		return 0, err
	}
	count, err := dm.Count(bson.M{"userId": userID, "type": string(models.ActionWarn)})
	return int(count), err
}

// UpdateCaseReason rewrites the reason of an existing case
func UpdateCaseReason(caseID, reason string) (*models.ModerationCase, error) {
	dm, err := getCaseManager()
	if err != nil {
		return nil, err
	}
	if reason == "" {
		reason = models.DefaultReason
	}
	updated, err := dm.Update(bson.M{"caseId": caseID}, bson.M{"reason": reason})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrCaseNotFound
	}
	return updated, nil
}

// DeleteCase removes a case record and drops it from the user's case index
func DeleteCase(caseID string) error {
	dm, err := getCaseManager()
	if err != nil {
		return err
	}

	record, err := dm.FindOne(bson.M{"caseId": caseID})
	if err != nil {
		return err
	}
	if record == nil {
		return ErrCaseNotFound
	}

	if err := dm.Delete(bson.M{"caseId": caseID}); err != nil {
		return err
	}

	if err := RemoveCaseFromUser(record.UserID, caseID); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo quitar el caso %s del índice del usuario %s", caseID, record.UserID), "Cases")
	}

	logger.Info(fmt.Sprintf("Caso %s eliminado", caseID), "Cases")
	return nil
}

// GetStatistics aggregates every case into 7-day, 30-day and all-time buckets
func GetStatistics() (*models.Statistics, error) {
	dm, err := getCaseManager()
	if err != nil {
		return nil, err
	}
	cases, err := dm.GetAll(bson.M{})
	if err != nil {
		return nil, err
	}
	return models.BuildStatistics(cases, time.Now().UTC()), nil
}

// GetModeratorStatistics aggregates the cases issued by a single moderator
func GetModeratorStatistics(moderatorID string) (*models.Statistics, error) {
	dm, err := getCaseManager()
	if err != nil {
		return nil, err
	}
	cases, err := dm.GetAll(bson.M{"moderatorId": moderatorID})
	if err != nil {
		return nil, err
	}
	return models.BuildStatistics(cases, time.Now().UTC()), nil
}
