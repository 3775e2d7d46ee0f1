package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"lumiere/database"
	"lumiere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSettingsRepo implements SettingsRepository using MongoDB. Singletons
// live in the "settings" collection keyed by well-known IDs; gallery images
// get their own collection.
type MongoSettingsRepo struct {
	coll    *mongo.Collection
	gallery *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	repo := &MongoSettingsRepo{
		coll:    database.Collection("settings"),
		gallery: database.Collection("gallery"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSettingsRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create settings index: %w", err)
	}
	if _, err := r.gallery.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create gallery index: %w", err)
	}
	return nil
}

// getSingleton decodes the settings document with the given ID into out.
// Returns false when the document has never been written.
func (r *MongoSettingsRepo) getSingleton(id string, out interface{}) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(out); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch settings %s: %w", id, err)
	}
	return true, nil
}

// setSingleton upserts the settings document with the given ID.
func (r *MongoSettingsRepo) setSingleton(id string, doc interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": id}, doc, opts); err != nil {
		return fmt.Errorf("failed to store settings %s: %w", id, err)
	}
	return nil
}

func (r *MongoSettingsRepo) GetBusinessHours() (*models.BusinessHours, error) {
	var b models.BusinessHours
	found, err := r.getSingleton(models.SettingsBusinessHoursID, &b)
	if err != nil || !found {
		return nil, err
	}
	return &b, nil
}

func (r *MongoSettingsRepo) SetBusinessHours(b *models.BusinessHours) error {
	b.ID = models.SettingsBusinessHoursID
	return r.setSingleton(b.ID, b)
}

func (r *MongoSettingsRepo) GetTheme() (*models.Theme, error) {
	var t models.Theme
	found, err := r.getSingleton(models.SettingsThemeID, &t)
	if err != nil || !found {
		return nil, err
	}
	return &t, nil
}

func (r *MongoSettingsRepo) SetTheme(t *models.Theme) error {
	t.ID = models.SettingsThemeID
	return r.setSingleton(t.ID, t)
}

func (r *MongoSettingsRepo) GetHeroBanner() (*models.HeroBanner, error) {
	var h models.HeroBanner
	found, err := r.getSingleton(models.SettingsHeroBannerID, &h)
	if err != nil || !found {
		return nil, err
	}
	return &h, nil
}

func (r *MongoSettingsRepo) SetHeroBanner(h *models.HeroBanner) error {
	h.ID = models.SettingsHeroBannerID
	return r.setSingleton(h.ID, h)
}

func (r *MongoSettingsRepo) GetSocialLinks() (*models.SocialLinks, error) {
	var s models.SocialLinks
	found, err := r.getSingleton(models.SettingsSocialLinksID, &s)
	if err != nil || !found {
		return nil, err
	}
	return &s, nil
}

func (r *MongoSettingsRepo) SetSocialLinks(s *models.SocialLinks) error {
	s.ID = models.SettingsSocialLinksID
	return r.setSingleton(s.ID, s)
}

// ListGallery retrieves the gallery ordered by display position.
func (r *MongoSettingsRepo) ListGallery() ([]models.GalleryImage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.gallery.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve gallery: %w", err)
	}
	defer cursor.Close(ctx)

	var imgs []models.GalleryImage
	if err := cursor.All(ctx, &imgs); err != nil {
		return nil, fmt.Errorf("failed to decode gallery: %w", err)
	}
	return imgs, nil
}

// UpsertGalleryImage inserts or replaces a gallery entry.
func (r *MongoSettingsRepo) UpsertGalleryImage(img *models.GalleryImage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.gallery.ReplaceOne(ctx, bson.M{"id": img.ID}, img, opts); err != nil {
		return fmt.Errorf("failed to store gallery image %s: %w", img.ID, err)
	}
	return nil
}

// DeleteGalleryImage removes a gallery entry by ID.
func (r *MongoSettingsRepo) DeleteGalleryImage(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.gallery.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete gallery image %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("gallery image %s not found", id)
	}
	return nil
}
