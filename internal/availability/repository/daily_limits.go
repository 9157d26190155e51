package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawbook/internal/availability"
	"pawbook/pkg/config"
	"pawbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "dailyLimits"
)

type DayRepository interface {
	Load(ctx context.Context, dateKey string) (*model.DaySnapshot, error)
	AppendSlot(ctx context.Context, dateKey string, slotLabel string, dailyLimit int) error
}

type mongoDayRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoDayRepository(cfg *config.Config) DayRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoDayRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// dayDocument is the stored shape. Early documents recorded the cap as
// weekdayLimit; both spellings decode and the policy value backfills
// anything missing.
type dayDocument struct {
	DateKey      string   `bson:"_id"`
	BookedSlots  []string `bson:"bookedSlots"`
	DailyLimit   int      `bson:"dailyLimit"`
	WeekdayLimit int      `bson:"weekdayLimit"`
}

// withTimeout wraps the context with a timeout if not already in a transaction.
// SessionContext cannot be wrapped without breaking transaction semantics, so
// inside a transaction the original context is returned with a no-op cancel.
func (r *mongoDayRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

// Load reads the snapshot for a date. An absent document yields the default
// snapshot (no booked slots, policy daily limit) and writes nothing; a read
// never creates a persisted record.
func (r *mongoDayRepository) Load(ctx context.Context, dateKey string) (*model.DaySnapshot, error) {
	policyLimit, err := availability.DailyLimit(dateKey)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var doc dayDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": dateKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &model.DaySnapshot{
				DateKey:     dateKey,
				BookedSlots: []string{},
				DailyLimit:  policyLimit,
			}, nil
		}
		return nil, fmt.Errorf("failed to load day snapshot: %w", err)
	}

	limit := doc.DailyLimit
	if limit <= 0 {
		limit = doc.WeekdayLimit
	}
	if limit <= 0 {
		limit = policyLimit
	}

	booked := doc.BookedSlots
	if booked == nil {
		booked = []string{}
	}

	return &model.DaySnapshot{
		DateKey:     dateKey,
		BookedSlots: booked,
		DailyLimit:  limit,
	}, nil
}

// AppendSlot records one more occupied groomer-slot. The upsert touches only
// bookedSlots and dailyLimit; any other fields on the date document survive.
func (r *mongoDayRepository) AppendSlot(ctx context.Context, dateKey string, slotLabel string, dailyLimit int) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"bookedSlots": slotLabel},
		"$set":  bson.M{"dailyLimit": dailyLimit},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": dateKey}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to append booked slot: %w", err)
	}

	return nil
}
