package catalogRepo

import "lumiere/models"

// ServiceRepository defines persistence operations for salon services.
type ServiceRepository interface {
	Create(svc *models.Service) error
	Update(svc *models.Service) error
	Delete(id string) error
	GetByID(id string) (*models.Service, error)
	GetAll() ([]models.Service, error)
}
