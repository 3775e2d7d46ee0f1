package userRepo

import (
	"lumiere/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines the persistence operations for user documents.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)
	GetByTokenHash(tokenHash string) (*models.User, error)
	GetAllWithProjection(projection bson.M) ([]models.User, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	AddTokenToSet(id, token string) error
	RemoveToken(id, token string) error
	RemoveTokenEverywhere(token string) error
}
