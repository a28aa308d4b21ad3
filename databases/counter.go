package databases

// go generate: mockery --name CounterDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/firearm-tracker-api/models"
)

const counterName = "counters"

// ReminderIDBase offsets every issued reminder identifier so the range can
// never collide with any identifier space the delivery capability uses for
// its own bookkeeping.
const ReminderIDBase = 100000

// CounterDatabase issues blocks of reminder identifiers from a persisted
// high-water mark, so ids stay collision-free across process restarts.
type CounterDatabase interface {
	NextReminderIDs(ctx context.Context, n int) ([]int, error)
}

type counterDatabase struct {
	db DatabaseHelper
}

// NewCounterDatabase initializes a new instance of counter database with the provided db connection
func NewCounterDatabase(db DatabaseHelper) CounterDatabase {
	return &counterDatabase{
		db: db,
	}
}

func (c *counterDatabase) NextReminderIDs(ctx context.Context, n int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	upsert := true
	after := options.After
	opts := &options.FindOneAndUpdateOptions{Upsert: &upsert, ReturnDocument: &after}

	counter := &models.ReminderCounter{}
	err := c.db.Collection(counterName).FindOneAndUpdate(ctx,
		bson.M{"_id": "reminder_ids"},
		bson.M{"$inc": bson.M{"value": n}},
		opts,
	).Decode(&counter)
	if err != nil {
		return nil, err
	}

	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = ReminderIDBase + counter.Value - n + i + 1
	}
	return ids, nil
}
