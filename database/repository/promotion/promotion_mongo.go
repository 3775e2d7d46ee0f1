package promotionRepo

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

// MongoPromotionRepo implements PromotionRepository using MongoDB.
type MongoPromotionRepo struct {
	coll *mongo.Collection
}

// NewMongoPromotionRepo creates a new instance of PromotionRepository using MongoDB.
func NewMongoPromotionRepo() PromotionRepository {
	coll := database.Collection("promotions")
	repo := &MongoPromotionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPromotionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "endDate", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new promotion document.
func (r *MongoPromotionRepo) Create(p *models.Promotion) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

// Update modifies an existing promotion document.
func (r *MongoPromotionRepo) Update(p *models.Promotion) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update promotion with id %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("promotion with id %s not found", p.ID)
	}
	return nil
}

// Delete removes a promotion document by its ID.
func (r *MongoPromotionRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete promotion with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("promotion with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a promotion by its unique ID. Returns nil when absent.
func (r *MongoPromotionRepo) GetByID(id string) (*models.Promotion, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Promotion
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch promotion with id %s: %w", id, err)
	}
	return &p, nil
}

// GetAll retrieves every promotion, newest first.
func (r *MongoPromotionRepo) GetAll() ([]models.Promotion, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve promotions: %w", err)
	}
	defer cursor.Close(ctx)

	var promos []models.Promotion
	if err := cursor.All(ctx, &promos); err != nil {
		return nil, fmt.Errorf("failed to decode promotions: %w", err)
	}
	return promos, nil
}

// GetActive retrieves promotions whose date range covers the given instant.
func (r *MongoPromotionRepo) GetActive(at time.Time) ([]models.Promotion, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"startDate": bson.M{"$lte": at},
		"endDate":   bson.M{"$gte": at},
	}
	opts := options.Find().SetSort(bson.D{{Key: "endDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active promotions: %w", err)
	}
	defer cursor.Close(ctx)

	var promos []models.Promotion
	if err := cursor.All(ctx, &promos); err != nil {
		return nil, fmt.Errorf("failed to decode promotions: %w", err)
	}
	return promos, nil
}
