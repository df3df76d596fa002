package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dwisetyadi/warungpos/app/models"
	"github.com/dwisetyadi/warungpos/pkg/metrics"
)

// MongoCategoryRepository persists categories in the "categories" collection.
type MongoCategoryRepository struct {
	col *mongo.Collection
}

func NewMongoCategoryRepository(db *mongo.Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{col: db.Collection("categories")}
}

func (r *MongoCategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	defer metrics.ObserveStoreOp("categories", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MongoCategoryRepository) Insert(ctx context.Context, name string) (primitive.ObjectID, error) {
	defer metrics.ObserveStoreOp("categories", "insert", time.Now())

	res, err := r.col.InsertOne(ctx, models.Category{Name: name})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoCategoryRepository) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	defer metrics.ObserveStoreOp("categories", "delete", time.Now())

	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
