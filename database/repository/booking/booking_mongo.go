package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.DB().Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &b, nil
}

// UpdateStatus filters the replace on the status the caller transitioned
// from, so the lifecycle check and the write land as one atomic statement.
// A zero match means the record is gone or another transition won the race.
func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, b *models.Booking, from string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": b.ID, "status": from}, b)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", b.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrStaleStatus
	}
	return nil
}

func (r *MongoBookingRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBookingRepo) ListActiveInRange(ctx context.Context, availabilityID string, from, to time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"availability_id": availabilityID,
		"status":          bson.M{"$in": bson.A{models.BookingPending, models.BookingConfirmed}},
		"start_time":      bson.M{"$lt": to},
		"end_time":        bson.M{"$gt": from},
	}
	return r.list(ctx, filter)
}

func (r *MongoBookingRepo) ListByProfile(ctx context.Context, availabilityID string, from, to time.Time, status string) ([]models.Booking, error) {
	filter := bson.M{
		"availability_id": availabilityID,
		"start_time":      bson.M{"$gte": from, "$lt": to},
	}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) CountBlocking(ctx context.Context, availabilityID string, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"availability_id": availabilityID,
		"$or": bson.A{
			bson.M{"status": models.BookingPending},
			bson.M{"status": models.BookingConfirmed, "start_time": bson.M{"$gt": now}},
		},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count blocking bookings: %w", err)
	}
	return count, nil
}
