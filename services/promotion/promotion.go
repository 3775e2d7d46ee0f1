package promotion

import (
	"context"
	"fmt"
	"time"

	promotionRepo "lumiere/database/repository/promotion"
	"lumiere/models"
	"lumiere/services/notification"
	"lumiere/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PromotionService manages promotions; creating one fans out a push.
type PromotionService interface {
	List() ([]models.Promotion, error)
	ListActive() ([]models.Promotion, error)
	Create(req PromotionRequest) (*models.Promotion, error)
	Update(id string, req PromotionRequest) (*models.Promotion, error)
	Delete(id string) error
}

// DefaultPromotionService is the production implementation.
type DefaultPromotionService struct {
	Repo     promotionRepo.PromotionRepository
	Notifier notification.NotificationService // optional
}

// PromotionRequest carries the admin payload for a promotion.
type PromotionRequest struct {
	Name               string    `json:"name" binding:"required"`
	Description        string    `json:"description"`
	DiscountPercentage float64   `json:"discountPercentage" binding:"required"`
	ServiceIDs         []string  `json:"serviceIds"`
	StartDate          time.Time `json:"startDate" binding:"required"`
	EndDate            time.Time `json:"endDate" binding:"required"`
}

func (r *PromotionRequest) validate() error {
	if r.DiscountPercentage <= 0 || r.DiscountPercentage > 100 {
		return fmt.Errorf("discount must be between 0 and 100 percent")
	}
	if r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("promotion end date precedes start date")
	}
	return nil
}

func (s *DefaultPromotionService) List() ([]models.Promotion, error) {
	return s.Repo.GetAll()
}

func (s *DefaultPromotionService) ListActive() ([]models.Promotion, error) {
	return s.Repo.GetActive(time.Now())
}

// Create stores the promotion and triggers the broadcast. The fan-out is
// fire-and-forget: a delivery failure never fails the creation.
func (s *DefaultPromotionService) Create(req PromotionRequest) (*models.Promotion, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	p := &models.Promotion{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
		ServiceIDs:         req.ServiceIDs,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		go func(p models.Promotion) {
			title := p.Name
			body := fmt.Sprintf("%s: %.0f%% off!", p.Description, p.DiscountPercentage)
			if p.Description == "" {
				body = fmt.Sprintf("%.0f%% off for a limited time!", p.DiscountPercentage)
			}
			if err := s.Notifier.Broadcast(context.Background(), title, body, notification.PromotionPayload(&p)); err != nil {
				utils.GetLogger().Error("promotion broadcast failed", zap.String("promotionID", p.ID), zap.Error(err))
			}
		}(*p)
	}
	return p, nil
}

func (s *DefaultPromotionService) Update(id string, req PromotionRequest) (*models.Promotion, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("promotion %s not found", id)
	}
	p.Name = req.Name
	p.Description = req.Description
	p.DiscountPercentage = req.DiscountPercentage
	p.ServiceIDs = req.ServiceIDs
	p.StartDate = req.StartDate
	p.EndDate = req.EndDate
	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultPromotionService) Delete(id string) error {
	return s.Repo.Delete(id)
}
