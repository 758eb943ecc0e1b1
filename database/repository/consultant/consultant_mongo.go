package consultantRepo

import (
	"context"
	"fmt"
	"time"

	"gencare/database"
	"gencare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoConsultantRepo implements ConsultantRepository using MongoDB.
type MongoConsultantRepo struct {
	coll *mongo.Collection
}

// NewMongoConsultantRepo creates a new instance of ConsultantRepository using MongoDB.
func NewMongoConsultantRepo() ConsultantRepository {
	// Use the "gencare" database and the "consultants" collection.
	coll := database.MongoClient.Database("gencare").Collection("consultants")
	return &MongoConsultantRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConsultantRepo) GetByID(id string) (*models.Consultant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var consultant models.Consultant
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&consultant); err != nil {
		return nil, fmt.Errorf("failed to fetch consultant with id %s: %w", id, err)
	}
	return &consultant, nil
}

func (r *MongoConsultantRepo) GetAll() ([]models.Consultant, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"status": "active"})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve consultants: %w", err)
	}
	defer cursor.Close(ctx)

	var consultants []models.Consultant
	for cursor.Next(ctx) {
		var c models.Consultant
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode consultant: %w", err)
		}
		consultants = append(consultants, c)
	}
	return consultants, nil
}

func (r *MongoConsultantRepo) GetBySpecialty(specialty string) ([]models.Consultant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":    "active",
		"specialty": bson.M{"$regex": specialty, "$options": "i"},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find consultants for specialty %s: %w", specialty, err)
	}
	defer cursor.Close(ctx)

	var consultants []models.Consultant
	for cursor.Next(ctx) {
		var c models.Consultant
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode consultant: %w", err)
		}
		consultants = append(consultants, c)
	}
	return consultants, nil
}

// AddBookedShift writes a confirmed reservation into the consultant's
// booked-shift table. $addToSet keeps the slot list a set even if the
// write-back runs twice.
func (r *MongoConsultantRepo) AddBookedShift(id, dateKey string, slotID int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$addToSet": bson.M{"bookedShifts." + dateKey: slotID}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to record booked shift for consultant %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("consultant with id %s not found", id)
	}
	return nil
}
