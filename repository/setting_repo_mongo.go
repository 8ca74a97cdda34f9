package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tandin2000/invoiceBuilder/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoSettingRepo struct {
	DB *mongo.Client
}

func NewMongoSettingRepo(db *mongo.Client) *MongoSettingRepo {
	return &MongoSettingRepo{DB: db}
}

// SaveSettings upserts the singleton settings document
func (r *MongoSettingRepo) SaveSettings(settings *models.Setting) error {
	ctx := context.Background()
	db := r.DB.Database(DatabaseName)

	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = time.Now().UTC()
	}
	now := time.Now().UTC()
	settings.UpdatedAt = &now

	if settings.ID == 0 {
		existing, err := r.GetSettings()
		if err != nil {
			return err
		}
		if existing != nil {
			settings.ID = existing.ID
			settings.CreatedAt = existing.CreatedAt
		} else {
			id, err := nextSequence(ctx, db, "setting")
			if err != nil {
				return err
			}
			settings.ID = id
			_, err = db.Collection("setting").InsertOne(ctx, settings)
			return err
		}
	}

	_, err := db.Collection("setting").ReplaceOne(ctx, bson.M{"_id": settings.ID}, settings)
	return err
}

// GetSettings fetches the singleton settings record, nil when absent
func (r *MongoSettingRepo) GetSettings() (*models.Setting, error) {
	ctx := context.Background()

	var settings models.Setting
	err := r.DB.Database(DatabaseName).Collection("setting").FindOne(ctx, bson.M{}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}
