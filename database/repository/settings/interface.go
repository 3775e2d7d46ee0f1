package settingsRepo

import "lumiere/models"

// SettingsRepository defines persistence for the singleton configuration
// documents and the gallery collection. Getters return nil when a singleton
// has never been written; callers treat that as "feature disabled".
type SettingsRepository interface {
	GetBusinessHours() (*models.BusinessHours, error)
	SetBusinessHours(b *models.BusinessHours) error
	GetTheme() (*models.Theme, error)
	SetTheme(t *models.Theme) error
	GetHeroBanner() (*models.HeroBanner, error)
	SetHeroBanner(h *models.HeroBanner) error
	GetSocialLinks() (*models.SocialLinks, error)
	SetSocialLinks(s *models.SocialLinks) error

	ListGallery() ([]models.GalleryImage, error)
	UpsertGalleryImage(img *models.GalleryImage) error
	DeleteGalleryImage(id string) error
}
