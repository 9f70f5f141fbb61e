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

type MongoProductRepo struct {
	DB *mongo.Client
}

func NewMongoProductRepo(db *mongo.Client) *MongoProductRepo {
	return &MongoProductRepo{DB: db}
}

func (r *MongoProductRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("product")
}

func (r *MongoProductRepo) List(ctx context.Context, q ListQuery) ([]*models.Product, int64, error) {
	filter := MongoFilter(ProductSchema, q)

	opts := options.Find().
		SetSort(MongoSort(ProductSchema, q)).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	cur, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	products := []*models.Product{}
	for cur.Next(ctx) {
		var p models.Product
		if err := cur.Decode(&p); err != nil {
			return nil, 0, err
		}
		products = append(products, r.populateCategory(ctx, &p))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *MongoProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product := &models.Product{}
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return r.populateCategory(ctx, product), nil
}

// populateCategory resolves the referenced category's name. The reference is
// weak: a missing category leaves the name empty rather than failing.
func (r *MongoProductRepo) populateCategory(ctx context.Context, p *models.Product) *models.Product {
	if p.CategoryID == "" {
		return p
	}
	var c models.Category
	err := r.DB.Database(mongoDatabase).Collection("category").
		FindOne(ctx, bson.M{"_id": p.CategoryID}).Decode(&c)
	if err == nil {
		p.CategoryName = c.Name
	}
	return p
}

func (r *MongoProductRepo) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = primitive.NewObjectID().Hex()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection().InsertOne(ctx, product)
	return err
}

func (r *MongoProductRepo) Update(ctx context.Context, product *models.Product) error {
	res, err := r.collection().ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
