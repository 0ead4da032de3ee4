package database

import (
	"errors"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrUserManagerNotInitialized = errors.New("user data manager not initialized")
	ErrNoteManagerNotInitialized = errors.New("note data manager not initialized")
	ErrNoteNotFound              = errors.New("user note not found")
)

func getUserManager() (*DataManager[models.UserCaseIndex], error) {
	if GlobalUserDM == nil {
		return nil, ErrUserManagerNotInitialized
	}
	return GlobalUserDM, nil
}

func getNoteManager() (*DataManager[models.UserNote], error) {
	if GlobalNoteDM == nil {
		return nil, ErrNoteManagerNotInitialized
	}
	return GlobalNoteDM, nil
}

// EnsureUser returns the case index of a user, creating it lazily
func EnsureUser(userID string) (*models.UserCaseIndex, error) {
	dm, err := getUserManager()
	if err != nil {
		return nil, err
	}

	index, err := dm.FindOne(bson.M{"id": userID})
	if err != nil {
		return nil, err
	}
	if index != nil {
		return index, nil
	}

	index = &models.UserCaseIndex{
		ID:        userID,
		Cases:     []string{},
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := dm.Insert(index); err != nil {
		return nil, err
	}
	return index, nil
}

// AddCaseToUser appends a case id to the user's index (idempotent)
func AddCaseToUser(userID, caseID string) error {
	dm, err := getUserManager()
	if err != nil {
		return err
	}

	index, err := EnsureUser(userID)
	if err != nil {
		return err
	}

	for _, id := range index.Cases {
		if id == caseID {
			return nil
		}
	}
	index.Cases = append(index.Cases, caseID)

	_, err = dm.Update(bson.M{"id": userID}, bson.M{"cases": index.Cases})
	return err
}

// RemoveCaseFromUser drops a case id from the user's index
func RemoveCaseFromUser(userID, caseID string) error {
	dm, err := getUserManager()
	if err != nil {
		return err
	}

	index, err := dm.FindOne(bson.M{"id": userID})
	if err != nil || index == nil {
		return err
	}

	filtered := index.Cases[:0]
	for _, id := range index.Cases {
		if id != caseID {
			filtered = append(filtered, id)
		}
	}
	index.Cases = filtered

	_, err = dm.Update(bson.M{"id": userID}, bson.M{"cases": index.Cases})
	return err
}

// AddUserNote records an internal moderator note about a user
func AddUserNote(userID, moderatorID, note string) (*models.UserNote, error) {
	dm, err := getNoteManager()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	record := &models.UserNote{
		ID:          uuid.NewString(),
		UserID:      userID,
		ModeratorID: moderatorID,
		Note:        note,
		Timestamp:   now,
		CreatedAt:   now,
	}
	if err := dm.Insert(record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetUserNotes returns every note recorded about a user
func GetUserNotes(userID string) ([]*models.UserNote, error) {
	dm, err := getNoteManager()
	if err != nil {
		return nil, err
	}
	return dm.GetAll(bson.M{"userId": userID})
}

// DeleteUserNote removes a note by its id
func DeleteUserNote(noteID string) error {
	dm, err := getNoteManager()
	if err != nil {
		return err
	}

	exists, err := dm.Exists(bson.M{"id": noteID})
	if err != nil {
		return err
	}
	if !exists {
		return ErrNoteNotFound
	}
	return dm.Delete(bson.M{"id": noteID})
}
