package handlers

import (
	"net/http"
	"testing"

	apperrors "league-tracker-backend/internal/errors"
	"league-tracker-backend/internal/mocks"
	"league-tracker-backend/internal/snapshot"
	"league-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StatusHandlerTestSuite defines the test suite for StatusHandler
type StatusHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockStatusService *mocks.MockStatusServiceInterface
	handler           *StatusHandler
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *StatusHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStatusService = mocks.NewMockStatusServiceInterface(suite.ctrl)

	suite.handler = NewStatusHandler(suite.mockStatusService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.GET("/api/v1/leagues/:id/status", suite.handler.GetStatus)
}

// TearDownTest cleans up after each test
func (suite *StatusHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetStatus tests the snapshot endpoint with explicit parameters
func (suite *StatusHandlerTestSuite) TestGetStatus() {
	id := uuid.New()

	snap := &snapshot.Snapshot{
		Meta: snapshot.Meta{Sims: 5000, Seed: 99, TeamsCount: 20, Fingerprint: "fp"},
	}

	suite.mockStatusService.EXPECT().
		GetStatus(gomock.Any(), id, 5000, int64(99)).
		Return(snap, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leagues/"+id.String()+"/status?sims=5000&seed=99", nil)

	var response snapshot.Snapshot
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 5000, response.Meta.Sims)
	assert.Equal(suite.T(), "fp", response.Meta.Fingerprint)
}

// TestGetStatusDefaults tests that omitted parameters pass through as zero
func (suite *StatusHandlerTestSuite) TestGetStatusDefaults() {
	id := uuid.New()

	suite.mockStatusService.EXPECT().
		GetStatus(gomock.Any(), id, 0, int64(0)).
		Return(&snapshot.Snapshot{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leagues/"+id.String()+"/status", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetStatusNotFound tests the 404 mapping
func (suite *StatusHandlerTestSuite) TestGetStatusNotFound() {
	id := uuid.New()

	suite.mockStatusService.EXPECT().
		GetStatus(gomock.Any(), id, 0, int64(0)).
		Return(nil, apperrors.ErrLeagueNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leagues/"+id.String()+"/status", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestGetStatusBadSims tests rejecting malformed sampling parameters
func (suite *StatusHandlerTestSuite) TestGetStatusBadSims() {
	id := uuid.New()

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leagues/"+id.String()+"/status?sims=lots", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid sims")
}

// TestGetStatusSamplingError tests the sampling-parameter error mapping
func (suite *StatusHandlerTestSuite) TestGetStatusSamplingError() {
	id := uuid.New()

	suite.mockStatusService.EXPECT().
		GetStatus(gomock.Any(), id, 0, int64(0)).
		Return(nil, &apperrors.SamplingParameterError{Parameter: "sims", Message: "must be positive"}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leagues/"+id.String()+"/status", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "sims")
}

// TestStatusHandlerTestSuite runs the test suite
func TestStatusHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatusHandlerTestSuite))
}
