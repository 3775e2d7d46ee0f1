package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	settingsRepo "lumiere/database/repository/settings"
	"lumiere/models"
	"lumiere/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SettingsService manages the salon's singleton configuration documents and
// the public gallery.
type SettingsService interface {
	GetBusinessHours() (*models.BusinessHours, error)
	UpdateBusinessHours(req BusinessHoursRequest) (*models.BusinessHours, error)

	GetTheme() (*ThemeResponse, error)
	UpdateTheme(req ThemeRequest) (*ThemeResponse, error)

	GetHeroBanner() (*models.HeroBanner, error)
	UpdateHeroBanner(h models.HeroBanner) error
	GetSocialLinks() (*models.SocialLinks, error)
	UpdateSocialLinks(s models.SocialLinks) error

	ListGallery() ([]models.GalleryImage, error)
	AddGalleryImage(imageURL, caption string, position int) (*models.GalleryImage, error)
	DeleteGalleryImage(id string) error
}

// DefaultSettingsService is the production implementation. Business hours
// and theme are read on every page render, so both sit behind the Redis
// cache with a short TTL.
type DefaultSettingsService struct {
	Repo  settingsRepo.SettingsRepository
	Cache *redis.Client // optional; nil disables caching
}

// BusinessHoursRequest carries the admin payload for opening hours.
type BusinessHoursRequest struct {
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	WorkingDays []int  `json:"workingDays" binding:"required"`
}

func (r *BusinessHoursRequest) validate() error {
	start, err := parseClock(r.StartTime)
	if err != nil {
		return err
	}
	end, err := parseClock(r.EndTime)
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("closing time must be after opening time")
	}
	if len(r.WorkingDays) == 0 {
		return fmt.Errorf("at least one working day is required")
	}
	for _, d := range r.WorkingDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("invalid weekday index %d", d)
		}
	}
	return nil
}

func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}

// GetBusinessHours returns the opening hours, nil when never configured.
func (s *DefaultSettingsService) GetBusinessHours() (*models.BusinessHours, error) {
	var cached models.BusinessHours
	if s.cacheGet(models.SettingsBusinessHoursID, &cached) {
		return &cached, nil
	}
	hours, err := s.Repo.GetBusinessHours()
	if err != nil || hours == nil {
		return hours, err
	}
	s.cacheSet(models.SettingsBusinessHoursID, hours)
	return hours, nil
}

// UpdateBusinessHours validates and stores the opening hours.
func (s *DefaultSettingsService) UpdateBusinessHours(req BusinessHoursRequest) (*models.BusinessHours, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	hours := &models.BusinessHours{
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		WorkingDays: req.WorkingDays,
	}
	if err := s.Repo.SetBusinessHours(hours); err != nil {
		return nil, err
	}
	s.cacheInvalidate(models.SettingsBusinessHoursID)
	return hours, nil
}

// ThemeColor accepts either a hex string or an HSL triple; exactly one must
// be set. All admin-submitted colors pass through here before persistence.
type ThemeColor struct {
	Hex string           `json:"hex,omitempty"`
	HSL *models.HSLColor `json:"hsl,omitempty"`
}

func (c *ThemeColor) resolve() (models.HSLColor, error) {
	if c.Hex != "" {
		return ParseHex(c.Hex)
	}
	if c.HSL != nil {
		if err := ValidateHSL(*c.HSL); err != nil {
			return models.HSLColor{}, err
		}
		return *c.HSL, nil
	}
	return models.HSLColor{}, fmt.Errorf("color requires either hex or hsl")
}

// ThemeRequest carries the admin payload for the theme.
type ThemeRequest struct {
	Primary   ThemeColor `json:"primary" binding:"required"`
	Secondary ThemeColor `json:"secondary" binding:"required"`
	Accent    ThemeColor `json:"accent" binding:"required"`
}

// ThemeResponse returns each color in both representations so the frontend
// can inject CSS variables without converting.
type ThemeResponse struct {
	Primary   ThemeColorOut `json:"primary"`
	Secondary ThemeColorOut `json:"secondary"`
	Accent    ThemeColorOut `json:"accent"`
}

type ThemeColorOut struct {
	Hex string          `json:"hex"`
	HSL models.HSLColor `json:"hsl"`
}

func themeResponse(t *models.Theme) *ThemeResponse {
	out := func(c models.HSLColor) ThemeColorOut {
		return ThemeColorOut{Hex: FormatHex(c), HSL: c}
	}
	return &ThemeResponse{
		Primary:   out(t.Primary),
		Secondary: out(t.Secondary),
		Accent:    out(t.Accent),
	}
}

// GetTheme returns the theme, nil when never configured.
func (s *DefaultSettingsService) GetTheme() (*ThemeResponse, error) {
	var cached models.Theme
	if s.cacheGet(models.SettingsThemeID, &cached) {
		return themeResponse(&cached), nil
	}
	t, err := s.Repo.GetTheme()
	if err != nil || t == nil {
		return nil, err
	}
	s.cacheSet(models.SettingsThemeID, t)
	return themeResponse(t), nil
}

// UpdateTheme validates every color and stores the theme.
func (s *DefaultSettingsService) UpdateTheme(req ThemeRequest) (*ThemeResponse, error) {
	primary, err := req.Primary.resolve()
	if err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}
	secondary, err := req.Secondary.resolve()
	if err != nil {
		return nil, fmt.Errorf("secondary: %w", err)
	}
	accent, err := req.Accent.resolve()
	if err != nil {
		return nil, fmt.Errorf("accent: %w", err)
	}

	t := &models.Theme{Primary: primary, Secondary: secondary, Accent: accent}
	if err := s.Repo.SetTheme(t); err != nil {
		return nil, err
	}
	s.cacheInvalidate(models.SettingsThemeID)
	return themeResponse(t), nil
}

func (s *DefaultSettingsService) GetHeroBanner() (*models.HeroBanner, error) {
	return s.Repo.GetHeroBanner()
}

func (s *DefaultSettingsService) UpdateHeroBanner(h models.HeroBanner) error {
	return s.Repo.SetHeroBanner(&h)
}

func (s *DefaultSettingsService) GetSocialLinks() (*models.SocialLinks, error) {
	return s.Repo.GetSocialLinks()
}

func (s *DefaultSettingsService) UpdateSocialLinks(links models.SocialLinks) error {
	return s.Repo.SetSocialLinks(&links)
}

func (s *DefaultSettingsService) ListGallery() ([]models.GalleryImage, error) {
	return s.Repo.ListGallery()
}

func (s *DefaultSettingsService) AddGalleryImage(imageURL, caption string, position int) (*models.GalleryImage, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("image URL must not be empty")
	}
	img := &models.GalleryImage{
		ID:       uuid.NewString(),
		ImageURL: imageURL,
		Caption:  caption,
		Position: position,
	}
	if err := s.Repo.UpsertGalleryImage(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *DefaultSettingsService) DeleteGalleryImage(id string) error {
	return s.Repo.DeleteGalleryImage(id)
}

// --- cache helpers ---

func (s *DefaultSettingsService) cacheGet(key string, out interface{}) bool {
	if s.Cache == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	data, err := s.Cache.Get(ctx, utils.SettingsCachePrefix+key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (s *DefaultSettingsService) cacheSet(key string, v interface{}) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, utils.SettingsCachePrefix+key, data, utils.SettingsCacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("settings cache write failed", zap.Error(err))
	}
}

func (s *DefaultSettingsService) cacheInvalidate(key string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.Cache.Del(ctx, utils.SettingsCachePrefix+key)
}
