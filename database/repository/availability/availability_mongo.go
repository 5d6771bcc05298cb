package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lawflow/database"
	"lawflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new instance of AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.DB().Collection("availability_profiles")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}

func (r *MongoAvailabilityRepo) Create(ctx context.Context, p *models.AvailabilityProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("failed to create availability profile: %w", err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) Update(ctx context.Context, p *models.AvailabilityProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": p.ID}, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("failed to update availability profile %s: %w", p.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoAvailabilityRepo) GetByID(ctx context.Context, id string) (*models.AvailabilityProfile, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoAvailabilityRepo) GetBySlug(ctx context.Context, slug string) (*models.AvailabilityProfile, error) {
	return r.findOne(ctx, bson.M{"public_url": slug})
}

func (r *MongoAvailabilityRepo) findOne(ctx context.Context, filter bson.M) (*models.AvailabilityProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.AvailabilityProfile
	err := r.coll.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability profile: %w", err)
	}
	return &p, nil
}

func (r *MongoAvailabilityRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.AvailabilityProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to query availability profiles: %w", err)
	}
	defer cur.Close(ctx)

	var profiles []models.AvailabilityProfile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode availability profiles: %w", err)
	}
	return profiles, nil
}

func (r *MongoAvailabilityRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete availability profile %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
