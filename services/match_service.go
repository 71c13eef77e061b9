package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"beer-pong-backend/models"
)

const (
	DefaultCupsPerSide = 10
	DefaultListLimit   = 20

	defaultHitCups = 1
)

var (
	ErrInvalidMatchID = errors.New("invalid match id")
	ErrMatchNotFound  = errors.New("match not found")
	ErrMatchFinished  = errors.New("match already finished")
)

// MatchRepository is the persistence interface the service works against.
// Implemented by data_access.MatchRepository.
type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) (primitive.ObjectID, error)
	List(ctx context.Context, limit int64) ([]models.Match, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error)
	ApplyHit(ctx context.Context, id primitive.ObjectID, cupsField string, cupsRemaining int, status string, winner string, event *models.HitEvent) error
	Reset(ctx context.Context, id primitive.ObjectID, cupsPerSide int) error
}

type MatchService struct {
	matchRepo MatchRepository
}

func NewMatchService(matchRepo MatchRepository) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
	}
}

func (s *MatchService) Create(ctx context.Context, req *models.CreateMatchRequest) (string, error) {
	cups := req.CupsPerSide
	if cups == 0 {
		cups = DefaultCupsPerSide
	}

	match := &models.Match{
		TeamA:          req.TeamA,
		TeamB:          req.TeamB,
		CupsPerSide:    cups,
		CupsRemainingA: cups,
		CupsRemainingB: cups,
		Status:         models.StatusOngoing,
		Events:         []models.HitEvent{},
		CreatedAt:      time.Now().UTC(),
	}

	id, err := s.matchRepo.Create(ctx, match)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *MatchService) List(ctx context.Context, limit int64) ([]models.Match, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.matchRepo.List(ctx, limit)
}

func (s *MatchService) Get(ctx context.Context, matchID string) (*models.Match, error) {
	id, err := primitive.ObjectIDFromHex(matchID)
	if err != nil {
		return nil, ErrInvalidMatchID
	}

	match, err := s.matchRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	return match, nil
}

// hitOutcome is the computed result of applying one hit to a match.
type hitOutcome struct {
	cupsField     string
	cupsRemaining int
	status        string
	winner        string
}

// applyHit computes the state transition for a single hit. The payload's
// team is the team that made the hit, so the opposing side loses cups.
// The count clamps at zero; reaching zero finishes the match and the
// hitting team wins.
func applyHit(match *models.Match, team string, cups int) hitOutcome {
	outcome := hitOutcome{
		status: match.Status,
		winner: match.Winner,
	}

	var remaining int
	if team == models.TeamA {
		outcome.cupsField = "cups_remaining_b"
		remaining = match.CupsRemainingB
	} else {
		outcome.cupsField = "cups_remaining_a"
		remaining = match.CupsRemainingA
	}

	remaining -= cups
	if remaining < 0 {
		remaining = 0
	}
	outcome.cupsRemaining = remaining

	if remaining == 0 {
		outcome.status = models.StatusFinished
		outcome.winner = team
	}

	return outcome
}

func (s *MatchService) RecordHit(ctx context.Context, matchID string, req *models.HitRequest) (*models.HitResponse, error) {
	id, err := primitive.ObjectIDFromHex(matchID)
	if err != nil {
		return nil, ErrInvalidMatchID
	}

	match, err := s.matchRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	if match.Status == models.StatusFinished {
		return nil, ErrMatchFinished
	}

	cups := req.Cups
	if cups == 0 {
		cups = defaultHitCups
	}

	outcome := applyHit(match, req.Team, cups)

	event := &models.HitEvent{
		Team:      req.Team,
		Shooter:   req.Shooter,
		Cups:      cups,
		Timestamp: time.Now().UTC(),
	}

	if err := s.matchRepo.ApplyHit(ctx, id, outcome.cupsField, outcome.cupsRemaining, outcome.status, outcome.winner, event); err != nil {
		return nil, err
	}

	return &models.HitResponse{
		OK:     true,
		Status: outcome.status,
		Winner: outcome.winner,
	}, nil
}

func (s *MatchService) Reset(ctx context.Context, matchID string) error {
	id, err := primitive.ObjectIDFromHex(matchID)
	if err != nil {
		return ErrInvalidMatchID
	}

	match, err := s.matchRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if match == nil {
		return ErrMatchNotFound
	}

	return s.matchRepo.Reset(ctx, id, match.CupsPerSide)
}
