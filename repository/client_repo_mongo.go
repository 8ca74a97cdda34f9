package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tandin2000/invoiceBuilder/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoClientRepo struct {
	DB *mongo.Client
}

func NewMongoClientRepo(db *mongo.Client) *MongoClientRepo {
	return &MongoClientRepo{DB: db}
}

func (r *MongoClientRepo) CreateClient(client *models.Client) error {
	ctx := context.Background()
	db := r.DB.Database(DatabaseName)

	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now().UTC()
	}
	if client.ID == 0 {
		id, err := nextSequence(ctx, db, "client")
		if err != nil {
			return err
		}
		client.ID = id
	}

	_, err := db.Collection("client").InsertOne(ctx, client)
	return err
}

func (r *MongoClientRepo) GetClients(filters map[string]interface{}, single bool) ([]*models.Client, error) {
	ctx := context.Background()
	db := r.DB.Database(DatabaseName)

	bsonFilter := bson.M{}
	for k, v := range filters {
		if k == "id" {
			k = "_id"
		}
		bsonFilter[k] = v
	}

	if single {
		var c models.Client
		err := db.Collection("client").FindOne(ctx, bsonFilter).Decode(&c)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return []*models.Client{}, nil
			}
			return nil, err
		}
		return []*models.Client{&c}, nil
	}

	cur, err := db.Collection("client").Find(ctx, bsonFilter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Client
	for cur.Next(ctx) {
		var c models.Client
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, nil
}

func (r *MongoClientRepo) UpdateClient(client *models.Client) error {
	ctx := context.Background()

	now := time.Now().UTC()
	client.UpdatedAt = &now

	res, err := r.DB.Database(DatabaseName).Collection("client").
		ReplaceOne(ctx, bson.M{"_id": client.ID}, client)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("client not found")
	}
	return nil
}

func (r *MongoClientRepo) DeleteClient(clientID int64) error {
	ctx := context.Background()
	res, err := r.DB.Database(DatabaseName).Collection("client").DeleteOne(ctx, bson.M{"_id": clientID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("client not found")
	}
	return nil
}
