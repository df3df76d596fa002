package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dwisetyadi/warungpos/app/models"
	"github.com/dwisetyadi/warungpos/pkg/metrics"
)

// MongoReceiptRepository persists receipts in the "receipts" collection.
type MongoReceiptRepository struct {
	col *mongo.Collection
}

func NewMongoReceiptRepository(db *mongo.Database) *MongoReceiptRepository {
	return &MongoReceiptRepository{col: db.Collection("receipts")}
}

func (r *MongoReceiptRepository) Insert(ctx context.Context, receipt models.Receipt) (primitive.ObjectID, error) {
	defer metrics.ObserveStoreOp("receipts", "insert", time.Now())

	res, err := r.col.InsertOne(ctx, receipt)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoReceiptRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Receipt, bool, error) {
	defer metrics.ObserveStoreOp("receipts", "find", time.Now())

	var receipt models.Receipt
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&receipt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Receipt{}, false, nil
	}
	if err != nil {
		return models.Receipt{}, false, err
	}
	return receipt, true, nil
}

func (r *MongoReceiptRepository) AllNewestFirst(ctx context.Context) ([]models.Receipt, error) {
	defer metrics.ObserveStoreOp("receipts", "find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	receipts := []models.Receipt{}
	if err := cur.All(ctx, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *MongoReceiptRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	defer metrics.ObserveStoreOp("receipts", "delete", time.Now())

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
