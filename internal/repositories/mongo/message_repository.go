package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-chat-service/internal/database"
	"rental-chat-service/internal/models"
	"rental-chat-service/internal/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *database.MongoDB) *MessageRepository {
	return &MessageRepository{coll: db.DB.Collection(database.MessagesCollection)}
}

func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// FindByID returns the message whether or not it was soft-deleted.
func (r *MessageRepository) FindByID(ctx context.Context, id string) (*models.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrNotFound
	}
	var msg models.Message
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&msg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &msg, nil
}

// FindConversation returns the non-deleted messages exchanged by two users, oldest first.
// An empty carID spans every car the two users talked about.
func (r *MessageRepository) FindConversation(ctx context.Context, userA, userB, carID string) ([]models.Message, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"senderId": userA, "receiverId": userB},
			bson.M{"senderId": userB, "receiverId": userA},
		},
		"isDeleted": bson.M{"$ne": true},
	}
	if carID != "" {
		filter["carId"] = carID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversation: %w", err)
	}
	defer cur.Close(ctx)

	messages := make([]models.Message, 0)
	if err := cur.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode conversation: %w", err)
	}
	return messages, nil
}

// UpdateContent edits a message only while the sender, window and not-deleted guards all hold.
func (r *MessageRepository) UpdateContent(ctx context.Context, id, senderID, content string, notBefore, now time.Time) (*models.Message, error) {
	return r.guardedUpdate(ctx, id, senderID, notBefore, bson.M{
		"content":   content,
		"isEdited":  true,
		"updatedAt": now,
	})
}

// SoftDelete flags the message as deleted under the same guards as UpdateContent.
func (r *MessageRepository) SoftDelete(ctx context.Context, id, senderID string, notBefore, now time.Time) (*models.Message, error) {
	return r.guardedUpdate(ctx, id, senderID, notBefore, bson.M{
		"isDeleted": true,
		"updatedAt": now,
	})
}

func (r *MessageRepository) guardedUpdate(ctx context.Context, id, senderID string, notBefore time.Time, set bson.M) (*models.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrNotFound
	}
	filter := bson.M{
		"_id":       oid,
		"senderId":  senderID,
		"isDeleted": bson.M{"$ne": true},
		"createdAt": bson.M{"$gte": notBefore},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var msg models.Message
	err = r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&msg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNoMatch
		}
		return nil, err
	}
	return &msg, nil
}

func (r *MessageRepository) MarkDelivered(ctx context.Context, id, receiverID string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repositories.ErrNotFound
	}
	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "receiverId": receiverID, "isDelivered": bson.M{"$ne": true}},
		bson.M{"$set": bson.M{"isDelivered": true, "deliveredAt": at}},
	)
	return err
}

func (r *MessageRepository) MarkRead(ctx context.Context, id, receiverID string, at time.Time) (*models.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrNotFound
	}
	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "receiverId": receiverID, "isRead": bson.M{"$ne": true}},
		bson.M{"$set": bson.M{"isRead": true, "readAt": at, "isDelivered": true}},
	)
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}
