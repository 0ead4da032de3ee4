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
	ErrAppealManagerNotInitialized = errors.New("appeal data manager not initialized")
	ErrAppealAlreadyPending        = errors.New("an appeal for this case is already pending")
	ErrInvalidAppealStatus         = errors.New("invalid appeal status")
)

func getAppealManager() (*DataManager[models.Appeal], error) {
	if GlobalAppealDM == nil {
		return nil, ErrAppealManagerNotInitialized
	}
	return GlobalAppealDM, nil
}

// SubmitAppeal files an appeal against an existing case. At most one pending
// appeal per (caseId, userId) pair is allowed; the check and the insert are
// separate reads, so a concurrent double submit can slip through (advisory
// invariant, reviewers resolve duplicates).
func SubmitAppeal(caseID, userID, reason, learned string, comments, contact *string) (*models.Appeal, error) {
	dm, err := getAppealManager()
	if err != nil {
		return nil, err
	}

	record, err := GetCase(caseID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrCaseNotFound
	}

	pending, err := HasActivePendingAppeal(caseID, userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrAppealAlreadyPending
	}

	now := time.Now().UTC().Format(time.RFC3339)
	appeal := &models.Appeal{
		ID:          uuid.NewString(),
		CaseID:      caseID,
		UserID:      userID,
		Reason:      reason,
		Learned:     learned,
		Comments:    comments,
		Contact:     contact,
		Status:      models.AppealPending,
		SubmittedAt: now,
		CreatedAt:   now,
	}

	if err := dm.Insert(appeal); err != nil {
		return nil, err
	}

	logger.Info(fmt.Sprintf("Apelación %s enviada para el caso %s por %s", appeal.ID, caseID, userID), "Appeals")
	return appeal, nil
}

// HasActivePendingAppeal reports whether a pending appeal exists for the pair
func HasActivePendingAppeal(caseID, userID string) (bool, error) {
	dm, err := getAppealManager()
	if err != nil {
		return false, err
	}
	appeals, err := dm.GetAll(bson.M{"caseId": caseID, "userId": userID})
	if err != nil {
		return false, err
	}
	return models.FindPendingAppeal(appeals, caseID, userID) != nil, nil
}

// GetAppeal returns an appeal by its id, nil when unknown
func GetAppeal(appealID string) (*models.Appeal, error) {
	dm, err := getAppealManager()
	if err != nil {
		return nil, err
	}
	return dm.FindOne(bson.M{"id": appealID})
}

// GetAppealHistory returns every appeal a user has filed
func GetAppealHistory(userID string) ([]*models.Appeal, error) {
	dm, err := getAppealManager()
	if err != nil {
		return nil, err
	}
	return dm.GetAll(bson.M{"userId": userID})
}

// GetCaseAppeals returns every appeal filed against a case
func GetCaseAppeals(caseID string) ([]*models.Appeal, error) {
	dm, err := getAppealManager()
	if err != nil {
		return nil, err
	}
	return dm.GetAll(bson.M{"caseId": caseID})
}

// GetAllPendingAppeals returns the review queue
func GetAllPendingAppeals() ([]*models.Appeal, error) {
	dm, err := getAppealManager()
	if err != nil {
		return nil, err
	}
	return dm.GetAll(bson.M{"status": string(models.AppealPending)})
}

// UpdateAppealStatus resolves the pending appeal of a (caseId, userId) pair.
// The persisting update matches only documents still in pending, so resolving
// an already-resolved pair is a no-op and returns nil (first reviewer wins).
func UpdateAppealStatus(caseID, userID string, status models.AppealStatus, processedBy string) (*models.Appeal, error) {
	dm, err := getAppealManager()
	if err != nil {
		return nil, err
	}

	if !status.IsValid() || !status.IsTerminal() {
		return nil, ErrInvalidAppealStatus
	}

	record, err := dm.FindOne(bson.M{
		"caseId": caseID,
		"userId": userID,
		"status": string(models.AppealPending),
	})
	if err != nil {
		return nil, err
	}
	if record == nil {
		logger.Debug(fmt.Sprintf("Sin apelación pendiente para el caso %s de %s, resolución ignorada", caseID, userID), "Appeals")
		return nil, nil
	}

	if !record.Resolve(status, processedBy, time.Now()) {
		return nil, ErrInvalidAppealStatus
	}

	updated, err := dm.Update(
		bson.M{"id": record.ID, "status": string(models.AppealPending)},
		bson.M{
			"status":      string(record.Status),
			"processedAt": *record.ProcessedAt,
			"processedBy": *record.ProcessedBy,
		},
	)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	logger.Info(fmt.Sprintf("Apelación %s (caso %s) resuelta como %s por %s", record.ID, caseID, status, processedBy), "Appeals")
	return updated, nil
}
