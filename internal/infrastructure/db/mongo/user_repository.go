package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jltforwarding/backoffice/internal/core/domain"
)

const (
	usersCollection    = "users"
	countersCollection = "counters"
)

type MongoUserRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		coll:     db.Collection(usersCollection),
		counters: db.Collection(countersCollection),
	}
}

// mongoUser stores users under a sequence-assigned numeric _id so the wire
// format can expose plain integer ids.
type mongoUser struct {
	ID            int64   `bson:"_id"`
	FirstName     string  `bson:"first_name"`
	MiddleName    *string `bson:"middle_name,omitempty"`
	LastName      string  `bson:"last_name"`
	FullName      *string `bson:"full_name,omitempty"`
	Role          string  `bson:"role"`
	Email         string  `bson:"email"`
	Address       string  `bson:"address"`
	ContactNumber string  `bson:"contact_number"`
	CompanyName   string  `bson:"company_name"`
	ImagePath     *string `bson:"image_path,omitempty"`
	PasswordHash  string  `bson:"password_hash"`
	CreatedAt     int64   `bson:"created_at"`
	UpdatedAt     int64   `bson:"updated_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if existing, err := r.FindByEmail(ctx, user.Email); err == nil && existing != nil {
		return nil, domain.ErrUserExists
	}

	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := mongoUser{
		ID:            id,
		FirstName:     user.FirstName,
		MiddleName:    user.MiddleName,
		LastName:      user.LastName,
		FullName:      user.FullName,
		Role:          user.Role,
		Email:         user.Email,
		Address:       user.Address,
		ContactNumber: user.ContactNumber,
		CompanyName:   user.CompanyName,
		ImagePath:     user.ImagePath,
		PasswordHash:  user.PasswordHash,
		CreatedAt:     user.CreatedAt.Unix(),
		UpdatedAt:     user.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:            mu.ID,
		FirstName:     mu.FirstName,
		MiddleName:    mu.MiddleName,
		LastName:      mu.LastName,
		FullName:      mu.FullName,
		Role:          mu.Role,
		Email:         mu.Email,
		Address:       mu.Address,
		ContactNumber: mu.ContactNumber,
		CompanyName:   mu.CompanyName,
		ImagePath:     mu.ImagePath,
		PasswordHash:  mu.PasswordHash,
		CreatedAt:     unixToTime(mu.CreatedAt),
		UpdatedAt:     unixToTime(mu.UpdatedAt),
	}, nil
}

// nextID increments and returns the user id sequence using the counters
// collection pattern (findOneAndUpdate with $inc and upsert).
func (r *MongoUserRepository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": usersCollection},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next user id: %w", err)
	}
	return counter.Seq, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
