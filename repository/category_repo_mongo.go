package repository

import (
	"context"
	"errors"
	"time"

	"adminpanel/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCategoryRepo struct {
	DB *mongo.Client
}

func NewMongoCategoryRepo(db *mongo.Client) *MongoCategoryRepo {
	return &MongoCategoryRepo{DB: db}
}

func (r *MongoCategoryRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("category")
}

func (r *MongoCategoryRepo) List(ctx context.Context, q ListQuery) ([]*models.Category, int64, error) {
	filter := MongoFilter(CategorySchema, q)

	opts := options.Find().
		SetSort(MongoSort(CategorySchema, q)).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	cur, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	categories := []*models.Category{}
	for cur.Next(ctx) {
		var c models.Category
		if err := cur.Decode(&c); err != nil {
			return nil, 0, err
		}
		categories = append(categories, &c)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

// Active returns id and name of active categories sorted by name, for
// dropdown population.
func (r *MongoCategoryRepo) Active(ctx context.Context) ([]*models.CategoryOption, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetProjection(bson.M{"_id": 1, "name": 1})

	cur, err := r.collection().Find(ctx, bson.M{"status": models.StatusActive}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*models.CategoryOption{}
	for cur.Next(ctx) {
		var c models.CategoryOption
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, cur.Err()
}

func (r *MongoCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	category := &models.Category{}
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

func (r *MongoCategoryRepo) GetByName(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{}
	err := r.collection().FindOne(ctx, bson.M{"name": name}).Decode(category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

func (r *MongoCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = primitive.NewObjectID().Hex()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection().InsertOne(ctx, category)
	return err
}

func (r *MongoCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	res, err := r.collection().ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCategoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
