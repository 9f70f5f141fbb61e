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

const mongoDatabase = "adminpanel"

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("app_user")
}

func (r *MongoUserRepo) List(ctx context.Context, q ListQuery) ([]*models.AppUser, int64, error) {
	filter := MongoFilter(UserSchema, q)

	opts := options.Find().
		SetSort(MongoSort(UserSchema, q)).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	cur, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	users := []*models.AppUser{}
	for cur.Next(ctx) {
		var u models.AppUser
		if err := cur.Decode(&u); err != nil {
			return nil, 0, err
		}
		users = append(users, &u)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) Create(ctx context.Context, user *models.AppUser) error {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection().InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepo) Update(ctx context.Context, user *models.AppUser) error {
	res, err := r.collection().ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
