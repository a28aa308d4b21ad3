package databases

// go generate: mockery --name SettingsDatabase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/firearm-tracker-api/models"
)

const settingsName = "notification_settings"

// SettingsDatabase stores the per-record "notifications enabled" flag.
// Records with no stored setting default to enabled.
type SettingsDatabase interface {
	IsEnabled(ctx context.Context, recordID string) (bool, error)
	SetEnabled(ctx context.Context, recordID string, enabled bool) error
}

type settingsDatabase struct {
	db DatabaseHelper
}

// NewSettingsDatabase initializes a new instance of settings database with the provided db connection
func NewSettingsDatabase(db DatabaseHelper) SettingsDatabase {
	return &settingsDatabase{
		db: db,
	}
}

func (c *settingsDatabase) IsEnabled(ctx context.Context, recordID string) (bool, error) {
	setting := &models.NotificationSetting{}
	err := c.db.Collection(settingsName).FindOne(ctx, bson.M{"recordID": recordID}).Decode(&setting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return true, nil
		}
		return true, err
	}
	return setting.Enabled, nil
}

func (c *settingsDatabase) SetEnabled(ctx context.Context, recordID string, enabled bool) error {
	upsert := true
	return c.db.Collection(settingsName).UpdateOne(ctx,
		bson.M{"recordID": recordID},
		bson.M{"$set": bson.M{"recordID": recordID, "enabled": enabled}},
		&options.UpdateOptions{Upsert: &upsert},
	)
}
