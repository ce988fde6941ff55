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

type NotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *database.MongoDB) *NotificationRepository {
	return &NotificationRepository{coll: db.DB.Collection(database.NotificationsCollection)}
}

func (r *NotificationRepository) CreateMany(ctx context.Context, notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(notifications))
	for _, n := range notifications {
		if n.ID.IsZero() {
			n.ID = primitive.NewObjectID()
		}
		docs = append(docs, n)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert notifications: %w", err)
	}
	return nil
}

func filterFor(f models.NotificationFilter) bson.M {
	filter := bson.M{"userId": f.UserID}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	return filter
}

// List returns one page of notifications, newest first, with the total and unread counts of the filter.
func (r *NotificationRepository) List(ctx context.Context, f models.NotificationFilter) ([]models.Notification, int64, int64, error) {
	filter := filterFor(f)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, err
	}

	unreadFilter := filterFor(f)
	unreadFilter["isRead"] = false
	unread, err := r.coll.CountDocuments(ctx, unreadFilter)
	if err != nil {
		return nil, 0, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, 0, err
	}
	defer cur.Close(ctx)

	items := make([]models.Notification, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, 0, err
	}
	return items, total, unread, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID string, at time.Time) (*models.Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrNotFound
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var n models.Notification
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "userId": userID},
		bson.M{"$set": bson.M{"isRead": true, "readAt": at}},
		opts,
	).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, f models.NotificationFilter, at time.Time) (int64, error) {
	filter := filterFor(f)
	filter["isRead"] = false
	res, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"isRead": true, "readAt": at}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
