package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this fixture"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error. Validation failures are always
// surfaced to the caller, never auto-corrected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// SolverInconclusiveError means a feasibility solve neither proved
// satisfiability nor unsatisfiability within its resource bound. It must
// propagate as a distinct state: collapsing it into "guaranteed" would declare
// a false mathematical certainty.
type SolverInconclusiveError struct {
	Team     string
	Scenario string // "top4" or "safety"
	Reason   string
}

func (e *SolverInconclusiveError) Error() string {
	return fmt.Sprintf("feasibility solve inconclusive for %s (%s): %s", e.Team, e.Scenario, e.Reason)
}

// SamplingParameterError represents invalid Monte Carlo parameters, e.g. a
// non-positive simulation count.
type SamplingParameterError struct {
	Parameter string
	Message   string
}

func (e *SamplingParameterError) Error() string {
	return fmt.Sprintf("invalid sampling parameter %s: %s", e.Parameter, e.Message)
}

// ProviderError represents a failure talking to an external match-data provider
type ProviderError struct {
	Provider string
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrLeagueNotFound   = &NotFoundError{Entity: "league"}
	ErrTeamNotFound     = &NotFoundError{Entity: "team"}
	ErrSnapshotNotFound = &NotFoundError{Entity: "snapshot"}
)

// Already Exists Errors
var (
	ErrLeagueExists  = &AlreadyExistsError{Entity: "league", Context: "with this name"}
	ErrFixtureExists = &AlreadyExistsError{Entity: "result", Context: "for this fixture"}
)

// Business Logic Errors
var (
	ErrUnknownTeam        = errors.New("unknown team name")
	ErrSameTeam           = errors.New("home and away cannot be the same team")
	ErrUnknownProvider    = errors.New("unknown provider")
	ErrUnknownPublishMode = errors.New("unknown publish mode")
	ErrSeasonRequired     = errors.New("season year is required for this provider")
)

// Configuration Errors
var (
	ErrFootballDataKeyMissing = &ConfigurationError{Message: "FOOTBALL_DATA_API_KEY not set"}
	ErrAPIFootballKeyMissing  = &ConfigurationError{Message: "APIFOOTBALL_API_KEY not set"}
	ErrGistTokenMissing       = &ConfigurationError{Message: "GITHUB_TOKEN not set for gist publish"}
	ErrGistIDMissing          = &ConfigurationError{Message: "gist id not configured"}
	ErrTelegramTokenMissing   = &ConfigurationError{Message: "TELEGRAM_BOT_TOKEN not set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsSolverInconclusive checks if an error is a SolverInconclusiveError
func IsSolverInconclusive(err error) bool {
	var inconclusiveErr *SolverInconclusiveError
	return errors.As(err, &inconclusiveErr)
}

// IsSamplingParameter checks if an error is a SamplingParameterError
func IsSamplingParameter(err error) bool {
	var samplingErr *SamplingParameterError
	return errors.As(err, &samplingErr)
}

// IsProvider checks if an error is a ProviderError
func IsProvider(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}
