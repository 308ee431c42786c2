package publisher

import (
	"context"

	"league-tracker-backend/internal/config"
	apperrors "league-tracker-backend/internal/errors"
)

// Publisher pushes a serialized snapshot document somewhere readable and
// returns the location it can be fetched from.
type Publisher interface {
	Mode() string
	Publish(ctx context.Context, document []byte) (string, error)
}

// ForMode builds the named publisher from configuration. dest is the
// mode-specific target: a path for "file", an object key for "s3"; gist
// targets come from configuration.
func ForMode(mode, dest string, cfg *config.Config) (Publisher, error) {
	switch mode {
	case "file", "":
		return NewFilePublisher(dest), nil
	case "gist":
		return NewGistPublisher(cfg)
	case "s3":
		return NewS3Publisher(cfg, dest)
	default:
		return nil, apperrors.ErrUnknownPublishMode
	}
}
