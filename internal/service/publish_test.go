package service

import (
	"context"
	"encoding/json"
	"testing"

	"league-tracker-backend/internal/config"
	apperrors "league-tracker-backend/internal/errors"
	"league-tracker-backend/internal/publisher"
	"league-tracker-backend/internal/snapshot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	mode     string
	location string
	document []byte
	err      error
}

func (p *capturingPublisher) Mode() string { return p.mode }

func (p *capturingPublisher) Publish(_ context.Context, document []byte) (string, error) {
	p.document = document
	return p.location, p.err
}

func TestPublish_Success(t *testing.T) {
	snap := &snapshot.Snapshot{Meta: snapshot.Meta{Sims: 100, Seed: 7, Fingerprint: "fp"}}
	pub := &capturingPublisher{mode: "gist", location: "https://gist.example/raw"}

	svc := NewPublishService(&stubStatus{snap: snap}, &config.Config{})
	svc.newPublisher = func(mode, dest string, _ *config.Config) (publisher.Publisher, error) {
		assert.Equal(t, "gist", mode)
		return pub, nil
	}

	resp, err := svc.Publish(context.Background(), uuid.New(), &PublishRequest{Mode: "gist", Sims: 100, Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, "gist", resp.Mode)
	assert.Equal(t, "https://gist.example/raw", resp.Location)

	// The published document is the serialized snapshot
	var published snapshot.Snapshot
	require.NoError(t, json.Unmarshal(pub.document, &published))
	assert.Equal(t, snap.Meta, published.Meta)
}

func TestPublish_UnknownMode(t *testing.T) {
	svc := NewPublishService(&stubStatus{}, &config.Config{})

	_, err := svc.Publish(context.Background(), uuid.New(), &PublishRequest{Mode: "carrier-pigeon"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownPublishMode)
}

func TestPublish_StatusFailurePropagates(t *testing.T) {
	svc := NewPublishService(&stubStatus{err: apperrors.ErrLeagueNotFound}, &config.Config{})
	svc.newPublisher = func(string, string, *config.Config) (publisher.Publisher, error) {
		return &capturingPublisher{mode: "file"}, nil
	}

	_, err := svc.Publish(context.Background(), uuid.New(), &PublishRequest{Mode: "file"})
	assert.ErrorIs(t, err, apperrors.ErrLeagueNotFound)
}
