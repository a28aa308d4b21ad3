package databases

// go generate: mockery --name ApplicationDatabase

import (
	"context"

	"github.com/linesmerrill/firearm-tracker-api/models"
)

const applicationName = "applications"

// ApplicationDatabase contains the methods to use with the application database
type ApplicationDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Application, error)
	Find(ctx context.Context, filter interface{}) ([]models.Application, error)
	InsertOne(ctx context.Context, application models.Application) (interface{}, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
	DeleteOne(ctx context.Context, filter interface{}) error
}

type applicationDatabase struct {
	db DatabaseHelper
}

// NewApplicationDatabase initializes a new instance of application database with the provided db connection
func NewApplicationDatabase(db DatabaseHelper) ApplicationDatabase {
	return &applicationDatabase{
		db: db,
	}
}

func (c *applicationDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Application, error) {
	application := &models.Application{}
	err := c.db.Collection(applicationName).FindOne(ctx, filter).Decode(&application)
	if err != nil {
		return nil, err
	}
	return application, nil
}

func (c *applicationDatabase) Find(ctx context.Context, filter interface{}) ([]models.Application, error) {
	var applications []models.Application
	err := c.db.Collection(applicationName).Find(ctx, filter).Decode(&applications)
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (c *applicationDatabase) InsertOne(ctx context.Context, application models.Application) (interface{}, error) {
	return c.db.Collection(applicationName).InsertOne(ctx, application)
}

func (c *applicationDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) error {
	return c.db.Collection(applicationName).UpdateOne(ctx, filter, update)
}

func (c *applicationDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	return c.db.Collection(applicationName).DeleteOne(ctx, filter)
}
