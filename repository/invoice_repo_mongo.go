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

type MongoInvoiceRepo struct {
	DB *mongo.Client
}

func NewMongoInvoiceRepo(db *mongo.Client) *MongoInvoiceRepo {
	return &MongoInvoiceRepo{DB: db}
}

// CreateInvoice inserts an invoice document, assigning a sequence ID
func (r *MongoInvoiceRepo) CreateInvoice(inv *models.Invoice) error {
	ctx := context.Background()
	db := r.DB.Database(DatabaseName)

	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}
	if inv.ID == 0 {
		id, err := nextSequence(ctx, db, "invoice")
		if err != nil {
			return err
		}
		inv.ID = id
	}

	_, err := db.Collection("invoice").InsertOne(ctx, inv)
	return err
}

// GetInvoices fetches invoices from MongoDB; single=true fetches one record
func (r *MongoInvoiceRepo) GetInvoices(filters map[string]interface{}, single bool) ([]*models.Invoice, error) {
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
		var inv models.Invoice
		err := db.Collection("invoice").FindOne(ctx, bsonFilter).Decode(&inv)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return []*models.Invoice{}, nil
			}
			return nil, err
		}
		return []*models.Invoice{r.populateClient(ctx, db, &inv)}, nil
	}

	cur, err := db.Collection("invoice").Find(ctx, bsonFilter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Invoice
	for cur.Next(ctx) {
		var inv models.Invoice
		if err := cur.Decode(&inv); err != nil {
			return nil, err
		}
		out = append(out, r.populateClient(ctx, db, &inv))
	}
	return out, nil
}

// UpdateInvoice replaces the stored invoice document
func (r *MongoInvoiceRepo) UpdateInvoice(inv *models.Invoice) error {
	ctx := context.Background()
	db := r.DB.Database(DatabaseName)

	now := time.Now().UTC()
	inv.UpdatedAt = &now

	res, err := db.Collection("invoice").ReplaceOne(ctx, bson.M{"_id": inv.ID}, inv)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("invoice not found")
	}
	return nil
}

func (r *MongoInvoiceRepo) UpdateStatus(invoiceID int64, status string) error {
	ctx := context.Background()
	_, err := r.DB.Database(DatabaseName).Collection("invoice").UpdateOne(ctx,
		bson.M{"_id": invoiceID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
	)
	return err
}

func (r *MongoInvoiceRepo) SetPDFURL(invoiceID int64, pdfURL string) error {
	ctx := context.Background()
	_, err := r.DB.Database(DatabaseName).Collection("invoice").UpdateOne(ctx,
		bson.M{"_id": invoiceID},
		bson.M{"$set": bson.M{"pdfUrl": pdfURL, "updatedAt": time.Now().UTC()}},
	)
	return err
}

func (r *MongoInvoiceRepo) DeleteInvoice(invoiceID int64) error {
	ctx := context.Background()
	res, err := r.DB.Database(DatabaseName).Collection("invoice").DeleteOne(ctx, bson.M{"_id": invoiceID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("invoice not found")
	}
	return nil
}

func (r *MongoInvoiceRepo) CountInvoices() (int64, error) {
	ctx := context.Background()
	return r.DB.Database(DatabaseName).Collection("invoice").CountDocuments(ctx, bson.M{})
}

// populateClient loads the referenced client for responses and rendering
func (r *MongoInvoiceRepo) populateClient(ctx context.Context, db *mongo.Database, inv *models.Invoice) *models.Invoice {
	if inv.ClientID != 0 {
		var c models.Client
		if err := db.Collection("client").FindOne(ctx, bson.M{"_id": inv.ClientID}).Decode(&c); err == nil {
			inv.Client = &c
		}
	}
	return inv
}
