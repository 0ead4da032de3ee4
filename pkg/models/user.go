package models

// UserCaseIndex indexa los casos de moderación abiertos contra un usuario.
// Se crea de forma perezosa con el primer caso; la lista es append-only.
type UserCaseIndex struct {
	ID        string   `bson:"id" json:"id"`
	Cases     []string `bson:"cases" json:"cases"`
	CreatedAt string   `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// UserNote es una nota interna de un moderador sobre un usuario
type UserNote struct {
	ID          string `bson:"id" json:"id"`
	UserID      string `bson:"userId" json:"userId"`
	ModeratorID string `bson:"moderatorId" json:"moderatorId"`
	Note        string `bson:"note" json:"note"`
	Timestamp   string `bson:"timestamp" json:"timestamp"`
	CreatedAt   string `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
