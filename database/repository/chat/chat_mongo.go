package chatRepo

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

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	coll *mongo.Collection
}

// NewMongoChatRepo creates a new instance of ChatRepository using MongoDB.
func NewMongoChatRepo() ChatRepository {
	coll := database.Collection("chat_messages")
	repo := &MongoChatRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoChatRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "appointmentId", Value: 1}, {Key: "createdAt", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert appends a new chat message.
func (r *MongoChatRepo) Insert(msg *models.ChatMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// ListByAppointment retrieves all messages for an appointment in send order.
func (r *MongoChatRepo) ListByAppointment(appointmentID string) ([]models.ChatMessage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"appointmentId": appointmentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chat messages: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.ChatMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode chat messages: %w", err)
	}
	return msgs, nil
}

// MarkRead flags every message in the appointment not sent by the reader as read.
func (r *MongoChatRepo) MarkRead(appointmentID, readerID string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"appointmentId": appointmentID,
		"senderId":      bson.M{"$ne": readerID},
		"isRead":        false,
	}
	if _, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"isRead": true}}); err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}

// CountUnread counts messages addressed to the reader that are still unread.
func (r *MongoChatRepo) CountUnread(appointmentID, readerID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"appointmentId": appointmentID,
		"senderId":      bson.M{"$ne": readerID},
		"isRead":        false,
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return n, nil
}
