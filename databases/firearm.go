package databases

// go generate: mockery --name FirearmDatabase

import (
	"context"

	"github.com/linesmerrill/firearm-tracker-api/models"
)

const firearmName = "firearms"

// FirearmDatabase contains the methods to use with the firearm database
type FirearmDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Firearm, error)
	Find(ctx context.Context, filter interface{}) ([]models.Firearm, error)
	InsertOne(ctx context.Context, firearm models.Firearm) (interface{}, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
	DeleteOne(ctx context.Context, filter interface{}) error
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

type firearmDatabase struct {
	db DatabaseHelper
}

// NewFirearmDatabase initializes a new instance of firearm database with the provided db connection
func NewFirearmDatabase(db DatabaseHelper) FirearmDatabase {
	return &firearmDatabase{
		db: db,
	}
}

func (c *firearmDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Firearm, error) {
	firearm := &models.Firearm{}
	err := c.db.Collection(firearmName).FindOne(ctx, filter).Decode(&firearm)
	if err != nil {
		return nil, err
	}
	return firearm, nil
}

func (c *firearmDatabase) Find(ctx context.Context, filter interface{}) ([]models.Firearm, error) {
	var firearms []models.Firearm
	err := c.db.Collection(firearmName).Find(ctx, filter).Decode(&firearms)
	if err != nil {
		return nil, err
	}
	return firearms, nil
}

func (c *firearmDatabase) InsertOne(ctx context.Context, firearm models.Firearm) (interface{}, error) {
	return c.db.Collection(firearmName).InsertOne(ctx, firearm)
}

func (c *firearmDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) error {
	return c.db.Collection(firearmName).UpdateOne(ctx, filter, update)
}

func (c *firearmDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	return c.db.Collection(firearmName).DeleteOne(ctx, filter)
}

func (c *firearmDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return c.db.Collection(firearmName).CountDocuments(ctx, filter)
}
