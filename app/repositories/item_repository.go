package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dwisetyadi/warungpos/app/models"
	"github.com/dwisetyadi/warungpos/pkg/metrics"
)

// MongoItemRepository persists items in the "items" collection.
type MongoItemRepository struct {
	col *mongo.Collection
}

func NewMongoItemRepository(db *mongo.Database) *MongoItemRepository {
	return &MongoItemRepository{col: db.Collection("items")}
}

func (r *MongoItemRepository) All(ctx context.Context) ([]models.Item, error) {
	defer metrics.ObserveStoreOp("items", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.Item{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Item, bool, error) {
	defer metrics.ObserveStoreOp("items", "find", time.Now())

	var item models.Item
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Item{}, false, nil
	}
	if err != nil {
		return models.Item{}, false, err
	}
	return item, true, nil
}

func (r *MongoItemRepository) FindByName(ctx context.Context, name string) (models.Item, bool, error) {
	defer metrics.ObserveStoreOp("items", "find", time.Now())

	var item models.Item
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Item{}, false, nil
	}
	if err != nil {
		return models.Item{}, false, err
	}
	return item, true, nil
}

func (r *MongoItemRepository) Insert(ctx context.Context, item models.Item) (primitive.ObjectID, error) {
	defer metrics.ObserveStoreOp("items", "insert", time.Now())

	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoItemRepository) Merge(ctx context.Context, id primitive.ObjectID, price float64, category string, add int) error {
	defer metrics.ObserveStoreOp("items", "update", time.Now())

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"price": price, "category": category},
		"$inc": bson.M{"quantity": add},
	})
	return err
}

func (r *MongoItemRepository) Replace(ctx context.Context, id primitive.ObjectID, item models.Item) (bool, error) {
	defer metrics.ObserveStoreOp("items", "update", time.Now())

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"name":     item.Name,
			"price":    item.Price,
			"quantity": item.Quantity,
			"category": item.Category,
		},
	})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoItemRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	defer metrics.ObserveStoreOp("items", "delete", time.Now())

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoItemRepository) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	defer metrics.ObserveStoreOp("items", "delete", time.Now())

	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
