package promotionRepo

import (
	"time"

	"lumiere/models"
)

// PromotionRepository defines persistence operations for promotions.
type PromotionRepository interface {
	Create(p *models.Promotion) error
	Update(p *models.Promotion) error
	Delete(id string) error
	GetByID(id string) (*models.Promotion, error)
	GetAll() ([]models.Promotion, error)
	GetActive(at time.Time) ([]models.Promotion, error)
}
