package catalog

import (
	"fmt"

	catalogRepo "lumiere/database/repository/catalog"
	"lumiere/models"
	"lumiere/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService manages the salon's bookable services.
type CatalogService interface {
	List() ([]models.Service, error)
	Get(id string) (*models.Service, error)
	Create(req ServiceRequest) (*models.Service, error)
	Update(id string, req ServiceRequest) (*models.Service, error)
	Delete(id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.ServiceRepository
}

// ServiceRequest carries the admin payload for creating or updating a service.
type ServiceRequest struct {
	Name            string             `json:"name" binding:"required"`
	Description     string             `json:"description"`
	Price           float64            `json:"price"`
	TierPrices      map[string]float64 `json:"tierPrices"`
	DurationMinutes int                `json:"durationMinutes" binding:"required"`
	ImageURL        string             `json:"imageUrl"`
}

// validate enforces the catalog invariants before anything reaches the store.
func (r *ServiceRequest) validate() error {
	if r.DurationMinutes <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if r.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	for tier, p := range r.TierPrices {
		if p < 0 {
			return fmt.Errorf("price for %s hair must not be negative", tier)
		}
		switch tier {
		case models.HairShort, models.HairMedium, models.HairLong:
		default:
			return fmt.Errorf("unknown hair length category %q", tier)
		}
	}
	return nil
}

func (s *DefaultCatalogService) List() ([]models.Service, error) {
	return s.Repo.GetAll()
}

func (s *DefaultCatalogService) Get(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s not found", id)
	}
	return svc, nil
}

func (s *DefaultCatalogService) Create(req ServiceRequest) (*models.Service, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	svc := &models.Service{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		TierPrices:      req.TierPrices,
		DurationMinutes: req.DurationMinutes,
		ImageURL:        req.ImageURL,
	}
	if err := s.Repo.Create(svc); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("service created", zap.String("id", svc.ID), zap.String("name", svc.Name))
	return svc, nil
}

func (s *DefaultCatalogService) Update(id string, req ServiceRequest) (*models.Service, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	svc, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = req.Price
	svc.TierPrices = req.TierPrices
	svc.DurationMinutes = req.DurationMinutes
	if req.ImageURL != "" {
		svc.ImageURL = req.ImageURL
	}
	if err := s.Repo.Update(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) Delete(id string) error {
	return s.Repo.Delete(id)
}
