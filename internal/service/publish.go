package service

import (
	"context"
	"encoding/json"
	"fmt"

	"league-tracker-backend/internal/config"
	"league-tracker-backend/internal/logger"
	"league-tracker-backend/internal/publisher"

	"github.com/google/uuid"
)

// publisherFactory builds a publisher by mode. Swapped out in tests.
type publisherFactory func(mode, dest string, cfg *config.Config) (publisher.Publisher, error)

// PublishService pushes a league's current snapshot to an external location.
type PublishService struct {
	status       StatusServiceInterface
	cfg          *config.Config
	newPublisher publisherFactory
	log          *logger.Logger
}

// NewPublishService creates a new publish service
func NewPublishService(status StatusServiceInterface, cfg *config.Config) *PublishService {
	return &PublishService{
		status:       status,
		cfg:          cfg,
		newPublisher: publisher.ForMode,
		log:          logger.New(),
	}
}

// PublishRequest represents the request to publish a snapshot
type PublishRequest struct {
	Mode string `json:"mode" validate:"omitempty,oneof=file gist s3"`
	Dest string `json:"dest,omitempty"`
	Sims int    `json:"sims,omitempty" validate:"omitempty,min=1"`
	Seed int64  `json:"seed,omitempty"`
}

// PublishResponse reports where the snapshot landed
type PublishResponse struct {
	Mode     string `json:"mode"`
	Location string `json:"location"`
}

// Publish composes (or reuses) the snapshot and hands it to the publisher.
func (s *PublishService) Publish(ctx context.Context, leagueID uuid.UUID, req *PublishRequest) (*PublishResponse, error) {
	pub, err := s.newPublisher(req.Mode, req.Dest, s.cfg)
	if err != nil {
		return nil, err
	}

	snap, err := s.status.GetStatus(ctx, leagueID, req.Sims, req.Seed)
	if err != nil {
		return nil, err
	}

	document, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	location, err := pub.Publish(ctx, document)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"mode":     pub.Mode(),
		"location": location,
	}).Info("Snapshot published")
	return &PublishResponse{Mode: pub.Mode(), Location: location}, nil
}

var _ PublishServiceInterface = (*PublishService)(nil)
