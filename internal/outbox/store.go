package outbox

import (
	"context"
	"fmt"
	"time"

	"rental-chat-service/internal/database"
	"rental-chat-service/internal/push"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	StatusPending   = "pending"
	StatusPublished = "published"
	// StatusFailed entries ran out of publish attempts and are kept for inspection.
	StatusFailed = "failed"
)

// Entry is one push intent waiting to be published to Kafka.
type Entry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	DedupKey    string             `bson:"dedupKey"`
	Intent      push.Notification  `bson:"intent"`
	Status      string             `bson:"status"`
	Attempts    int                `bson:"attempts"`
	LastError   string             `bson:"lastError,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	PublishedAt *time.Time         `bson:"publishedAt,omitempty"`
}

// Envelope is the Kafka payload of a push intent.
type Envelope struct {
	DedupKey string            `json:"dedupKey"`
	Intent   push.Notification `json:"intent"`
}

// Store keeps push intents in the push_outbox collection.
// It is the Deliverer used when pushes go through the worker.
type Store struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewStore(db *database.MongoDB) *Store {
	return &Store{coll: db.DB.Collection(database.PushOutboxCollection), now: time.Now}
}

// Deliver queues the intent. A second intent with the same dedup key is ignored.
func (s *Store) Deliver(ctx context.Context, dedupKey string, n push.Notification) error {
	_, err := s.coll.InsertOne(ctx, Entry{
		DedupKey:  dedupKey,
		Intent:    n,
		Status:    StatusPending,
		CreatedAt: s.now(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to queue push intent: %w", err)
	}
	return nil
}

func (s *Store) Pending(ctx context.Context, limit int) ([]Entry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))
	cur, err := s.coll.Find(ctx, bson.M{"status": StatusPending}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := make([]Entry, 0)
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) MarkPublished(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": StatusPending},
		bson.M{"$set": bson.M{"status": StatusPublished, "publishedAt": s.now()}},
	)
	return err
}

func (s *Store) MarkFailed(ctx context.Context, id primitive.ObjectID, cause error) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"attempts": 1},
			"$set": bson.M{"lastError": cause.Error()},
		},
	)
	return err
}

// MarkDead records the last failure and takes the entry out of the pending set.
func (s *Store) MarkDead(ctx context.Context, id primitive.ObjectID, cause error) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": StatusPending},
		bson.M{
			"$inc": bson.M{"attempts": 1},
			"$set": bson.M{"status": StatusFailed, "lastError": cause.Error()},
		},
	)
	return err
}
