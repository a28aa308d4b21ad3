package databases

// go generate: mockery --name ScheduleDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/firearm-tracker-api/models"
)

// Collection names for the two reminder schedules. Firearm expiry reminders
// and application pending reminders are tracked separately.
const (
	FirearmScheduleName     = "firearm_schedules"
	ApplicationScheduleName = "application_schedules"
)

// ScheduleDatabase contains the methods to use with a notification schedule
// collection. Two instances exist, one per schedule collection.
type ScheduleDatabase interface {
	FindByRecordID(ctx context.Context, recordID string) (*models.ScheduleEntry, error)
	FindAll(ctx context.Context) ([]models.ScheduleEntry, error)
	Upsert(ctx context.Context, entry models.ScheduleEntry) error
	DeleteByRecordID(ctx context.Context, recordID string) error
	DeleteAll(ctx context.Context) error
}

type scheduleDatabase struct {
	db         DatabaseHelper
	collection string
}

// NewScheduleDatabase initializes a schedule database over the named collection
func NewScheduleDatabase(db DatabaseHelper, collection string) ScheduleDatabase {
	return &scheduleDatabase{
		db:         db,
		collection: collection,
	}
}

func (c *scheduleDatabase) FindByRecordID(ctx context.Context, recordID string) (*models.ScheduleEntry, error) {
	entry := &models.ScheduleEntry{}
	err := c.db.Collection(c.collection).FindOne(ctx, bson.M{"recordID": recordID}).Decode(&entry)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (c *scheduleDatabase) FindAll(ctx context.Context) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	err := c.db.Collection(c.collection).Find(ctx, bson.M{}).Decode(&entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *scheduleDatabase) Upsert(ctx context.Context, entry models.ScheduleEntry) error {
	entry.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())
	update := bson.M{"$set": bson.M{
		"recordID":         entry.RecordID,
		"title":            entry.Title,
		"referenceDate":    entry.ReferenceDate,
		"reminderIDs":      entry.ReminderIDs,
		"overdueAlertSent": entry.OverdueAlertSent,
		"updatedAt":        entry.UpdatedAt,
	}}
	upsert := true
	return c.db.Collection(c.collection).UpdateOne(ctx, bson.M{"recordID": entry.RecordID}, update, &options.UpdateOptions{Upsert: &upsert})
}

func (c *scheduleDatabase) DeleteByRecordID(ctx context.Context, recordID string) error {
	return c.db.Collection(c.collection).DeleteMany(ctx, bson.M{"recordID": recordID})
}

func (c *scheduleDatabase) DeleteAll(ctx context.Context) error {
	return c.db.Collection(c.collection).DeleteMany(ctx, bson.M{})
}
