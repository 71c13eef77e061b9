package data_access

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"beer-pong-backend/models"
)

type MatchRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewMatchRepository(db *MongoDB) *MatchRepository {
	return &MatchRepository{
		db:         db,
		collection: db.Collection("match"),
	}
}

func (r *MatchRepository) Create(ctx context.Context, match *models.Match) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, match)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// List returns the most recently created matches, newest first.
func (r *MatchRepository) List(ctx context.Context, limit int64) ([]models.Match, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	matches := []models.Match{}
	if err = cursor.All(ctx, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *MatchRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error) {
	var match models.Match
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&match)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// ApplyHit persists the outcome of one hit: the new cup count, status and
// winner together with the event append, as a single update.
func (r *MatchRepository) ApplyHit(ctx context.Context, id primitive.ObjectID, cupsField string, cupsRemaining int, status string, winner string, event *models.HitEvent) error {
	update := bson.M{
		"$set": bson.M{
			cupsField: cupsRemaining,
			"status":  status,
			"winner":  winner,
		},
		"$push": bson.M{"events": event},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// Reset puts a match back to its starting state.
func (r *MatchRepository) Reset(ctx context.Context, id primitive.ObjectID, cupsPerSide int) error {
	update := bson.M{
		"$set": bson.M{
			"cups_remaining_a": cupsPerSide,
			"cups_remaining_b": cupsPerSide,
			"status":           models.StatusOngoing,
			"winner":           "",
			"events":           []models.HitEvent{},
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
