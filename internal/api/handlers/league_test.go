package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "league-tracker-backend/internal/errors"
	"league-tracker-backend/internal/mocks"
	"league-tracker-backend/internal/service"
	"league-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func handlerTeams() []string {
	teams := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		teams = append(teams, fmt.Sprintf("Team %02d", i))
	}
	return teams
}

// LeagueHandlerTestSuite defines the test suite for LeagueHandler
type LeagueHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockLeagueService *mocks.MockLeagueServiceInterface
	handler           *LeagueHandler
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *LeagueHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLeagueService = mocks.NewMockLeagueServiceInterface(suite.ctrl)

	suite.handler = NewLeagueHandler(suite.mockLeagueService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	leagues := v1.Group("/leagues")
	{
		leagues.GET("", suite.handler.ListLeagues)
		leagues.POST("", suite.handler.CreateLeague)
		leagues.GET("/:id", suite.handler.GetLeague)
		leagues.GET("/by-name/:name", suite.handler.GetLeagueByName)
		leagues.DELETE("/:id", suite.handler.DeleteLeague)
		leagues.POST("/:id/results", suite.handler.SubmitResult)
		leagues.GET("/:id/table", suite.handler.GetTable)
		leagues.GET("/:id/remaining", suite.handler.GetRemaining)
	}
}

// TearDownTest cleans up after each test
func (suite *LeagueHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateLeague tests creating a league
func (suite *LeagueHandlerTestSuite) TestCreateLeague() {
	id := uuid.New()
	requestBody := map[string]interface{}{
		"name":  "premier",
		"teams": handlerTeams(),
	}

	expectedResponse := &service.LeagueResponse{
		ID:             id,
		Name:           "premier",
		Teams:          handlerTeams(),
		RemainingCount: 380,
	}

	suite.mockLeagueService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/leagues", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.LeagueResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "premier", response.Name)
	assert.Equal(suite.T(), 380, response.RemainingCount)
}

// TestCreateLeagueConflict tests creating a league with a taken name
func (suite *LeagueHandlerTestSuite) TestCreateLeagueConflict() {
	suite.mockLeagueService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrLeagueExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/leagues", map[string]interface{}{
		"name":  "premier",
		"teams": handlerTeams(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

// TestCreateLeagueBadTeamList tests that domain validation surfaces as 400
func (suite *LeagueHandlerTestSuite) TestCreateLeagueBadTeamList() {
	suite.mockLeagueService.EXPECT().
		Create(gomock.Any()).
		Return(nil, &apperrors.ValidationError{Field: "teams", Message: "expected 20 teams, got 3"}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/leagues", map[string]interface{}{
		"name":  "premier",
		"teams": []string{"A", "B", "C"},
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "expected 20 teams")
}

// TestGetLeague tests retrieving a league by ID
func (suite *LeagueHandlerTestSuite) TestGetLeague() {
	id := uuid.New()

	suite.mockLeagueService.EXPECT().
		GetByID(id).
		Return(&service.LeagueResponse{ID: id, Name: "premier"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leagues/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetLeagueNotFound tests the 404 mapping
func (suite *LeagueHandlerTestSuite) TestGetLeagueNotFound() {
	id := uuid.New()

	suite.mockLeagueService.EXPECT().
		GetByID(id).
		Return(nil, apperrors.ErrLeagueNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leagues/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestGetLeagueInvalidID tests the invalid UUID mapping
func (suite *LeagueHandlerTestSuite) TestGetLeagueInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leagues/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid league ID")
}

// TestSubmitResult tests recording a result over HTTP
func (suite *LeagueHandlerTestSuite) TestSubmitResult() {
	id := uuid.New()
	requestBody := map[string]interface{}{
		"home": "Team 01",
		"away": "Team 02",
		"hg":   2,
		"ag":   1,
	}

	suite.mockLeagueService.EXPECT().
		SubmitResult(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.SubmitResultRequest) (*service.LeagueResponse, error) {
			assert.Equal(suite.T(), "Team 01", req.Home)
			assert.Equal(suite.T(), 2, req.HomeGoals)
			return &service.LeagueResponse{ID: id, ResultsCount: 1, RemainingCount: 379}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/leagues/"+id.String()+"/results", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestSubmitResultDuplicate tests that a second result for a fixture maps to 400
func (suite *LeagueHandlerTestSuite) TestSubmitResultDuplicate() {
	id := uuid.New()

	suite.mockLeagueService.EXPECT().
		SubmitResult(id, gomock.Any()).
		Return(nil, &apperrors.ValidationError{Field: "fixture", Message: "result already recorded"}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/leagues/"+id.String()+"/results", map[string]interface{}{
		"home": "Team 01", "away": "Team 02",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "already recorded")
}

// TestGetTable tests the table endpoint
func (suite *LeagueHandlerTestSuite) TestGetTable() {
	id := uuid.New()

	suite.mockLeagueService.EXPECT().
		Table(id).
		Return(&service.TableResponse{LeagueID: id, Table: []service.TableRowResponse{
			{Rank: 1, Team: "Team 01", Points: 3},
		}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leagues/"+id.String()+"/table", nil)

	var response service.TableResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Table, 1)
	assert.Equal(suite.T(), "Team 01", response.Table[0].Team)
}

// TestDeleteLeague tests deleting a league
func (suite *LeagueHandlerTestSuite) TestDeleteLeague() {
	id := uuid.New()

	suite.mockLeagueService.EXPECT().
		Delete(id).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/leagues/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestLeagueHandlerTestSuite runs the test suite
func TestLeagueHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeagueHandlerTestSuite))
}
