package league_test

import (
	"fmt"
	"testing"

	apperrors "league-tracker-backend/internal/errors"
	"league-tracker-backend/internal/league"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func twentyTeams() []string {
	names := make([]string, 0, league.TeamCount)
	for i := 1; i <= league.TeamCount; i++ {
		names = append(names, fmt.Sprintf("Team %02d", i))
	}
	return names
}

type LeagueTestSuite struct {
	suite.Suite
	league *league.League
}

func (suite *LeagueTestSuite) SetupTest() {
	l, err := league.New(twentyTeams())
	require.NoError(suite.T(), err)
	suite.league = l
}

func (suite *LeagueTestSuite) TestNew_TrimsAndPreservesOrder() {
	names := twentyTeams()
	names[0] = "  " + names[0] + "  "
	l, err := league.New(names)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Team 01", l.Teams()[0])
	assert.Equal(suite.T(), twentyTeams(), l.Teams())
}

func (suite *LeagueTestSuite) TestNew_RejectsWrongCount() {
	_, err := league.New(twentyTeams()[:19])
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeagueTestSuite) TestNew_RejectsDuplicates() {
	names := twentyTeams()
	names[5] = names[4]
	_, err := league.New(names)
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeagueTestSuite) TestNew_RejectsBlankAndCommentEntries() {
	blank := twentyTeams()
	blank[3] = "   "
	_, err := league.New(blank)
	assert.True(suite.T(), apperrors.IsValidation(err))

	commented := twentyTeams()
	commented[3] = "# not a team"
	_, err = league.New(commented)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeagueTestSuite) TestFreshLeague_ZeroStatsAndFullUniverse() {
	stats := suite.league.Standings()
	assert.Len(suite.T(), stats, league.TeamCount)
	for _, s := range stats {
		assert.Zero(suite.T(), s.Played)
		assert.Zero(suite.T(), s.Points)
		assert.Zero(suite.T(), s.GoalsFor)
		assert.Zero(suite.T(), s.GoalsAgainst)
	}
	assert.Len(suite.T(), suite.league.RemainingFixtures(), league.TotalFixtures)
	assert.False(suite.T(), suite.league.Complete())
}

func (suite *LeagueTestSuite) TestSubmitResult_FoldsStandings() {
	teams := suite.league.Teams()
	require.NoError(suite.T(), suite.league.SubmitResult(teams[0], teams[1], 3, 1))
	require.NoError(suite.T(), suite.league.SubmitResult(teams[1], teams[0], 2, 2))

	stats := suite.league.Standings()
	first := stats[teams[0]]
	second := stats[teams[1]]

	assert.Equal(suite.T(), 2, first.Played)
	assert.Equal(suite.T(), 1, first.Wins)
	assert.Equal(suite.T(), 1, first.Draws)
	assert.Equal(suite.T(), 4, first.Points)
	assert.Equal(suite.T(), 5, first.GoalsFor)
	assert.Equal(suite.T(), 3, first.GoalsAgainst)
	assert.Equal(suite.T(), 2, first.GoalDifference())

	assert.Equal(suite.T(), 1, second.Losses)
	assert.Equal(suite.T(), 1, second.Draws)
	assert.Equal(suite.T(), 1, second.Points)

	assert.Len(suite.T(), suite.league.RemainingFixtures(), league.TotalFixtures-2)
}

func (suite *LeagueTestSuite) TestSubmitResult_Validation() {
	teams := suite.league.Teams()

	err := suite.league.SubmitResult("Nowhere FC", teams[1], 1, 0)
	assert.True(suite.T(), apperrors.IsValidation(err))

	err = suite.league.SubmitResult(teams[0], teams[0], 1, 0)
	assert.True(suite.T(), apperrors.IsValidation(err))

	err = suite.league.SubmitResult(teams[0], teams[1], -1, 0)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeagueTestSuite) TestSubmitResult_DuplicateFixtureLeavesStandingsUntouched() {
	teams := suite.league.Teams()
	require.NoError(suite.T(), suite.league.SubmitResult(teams[0], teams[1], 2, 0))

	before := suite.league.Standings()
	err := suite.league.SubmitResult(teams[0], teams[1], 5, 5)
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))

	after := suite.league.Standings()
	assert.Equal(suite.T(), before, after)
	assert.Equal(suite.T(), 1, suite.league.ResultCount())
}

func (suite *LeagueTestSuite) TestPointsIdentity() {
	// sum(points) == 3*results - draws: decisive results hand out 3 points,
	// draws hand out 2.
	teams := suite.league.Teams()
	results := []league.Result{
		{Home: teams[0], Away: teams[1], HomeGoals: 2, AwayGoals: 1},
		{Home: teams[2], Away: teams[3], HomeGoals: 0, AwayGoals: 0},
		{Home: teams[4], Away: teams[5], HomeGoals: 1, AwayGoals: 1},
		{Home: teams[6], Away: teams[7], HomeGoals: 0, AwayGoals: 4},
		{Home: teams[1], Away: teams[0], HomeGoals: 3, AwayGoals: 3},
	}
	draws := 0
	for _, r := range results {
		require.NoError(suite.T(), suite.league.SubmitResult(r.Home, r.Away, r.HomeGoals, r.AwayGoals))
		if r.HomeGoals == r.AwayGoals {
			draws++
		}
	}

	total := 0
	for _, s := range suite.league.Standings() {
		total += s.Points
	}
	assert.Equal(suite.T(), 3*len(results)-draws, total)
}

func (suite *LeagueTestSuite) TestRemainingFixtures_StableDeclaredOrder() {
	teams := suite.league.Teams()
	remaining := suite.league.RemainingFixtures()
	assert.Equal(suite.T(), league.Fixture{Home: teams[0], Away: teams[1]}, remaining[0])
	assert.Equal(suite.T(), league.Fixture{Home: teams[0], Away: teams[2]}, remaining[1])

	require.NoError(suite.T(), suite.league.SubmitResult(teams[0], teams[1], 1, 0))
	remaining = suite.league.RemainingFixtures()
	assert.Equal(suite.T(), league.Fixture{Home: teams[0], Away: teams[2]}, remaining[0])
}

func (suite *LeagueTestSuite) TestTable_SortOrder() {
	teams := suite.league.Teams()
	// teams[2] wins big, teams[1] wins small, teams[0] loses both.
	require.NoError(suite.T(), suite.league.SubmitResult(teams[2], teams[0], 4, 0))
	require.NoError(suite.T(), suite.league.SubmitResult(teams[1], teams[0], 1, 0))

	table := suite.league.Table()
	assert.Equal(suite.T(), teams[2], table[0].Team)
	assert.Equal(suite.T(), teams[1], table[1].Team)
	assert.Equal(suite.T(), teams[0], table[league.TeamCount-1].Team)

	// Everyone with identical records sorts alphabetically.
	assert.Equal(suite.T(), teams[3], table[2].Team)
}

func (suite *LeagueTestSuite) TestFingerprint_TracksResults() {
	teams := suite.league.Teams()
	empty := suite.league.Fingerprint()

	require.NoError(suite.T(), suite.league.SubmitResult(teams[0], teams[1], 1, 1))
	one := suite.league.Fingerprint()
	assert.NotEqual(suite.T(), empty, one)

	// Same state rebuilds to the same fingerprint.
	rebuilt, err := league.FromState(suite.league.State())
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), one, rebuilt.Fingerprint())
}

func (suite *LeagueTestSuite) TestFromState_RejectsCorruptState() {
	teams := twentyTeams()
	st := league.State{
		Teams: teams,
		Results: []league.Result{
			{Home: teams[0], Away: teams[1], HomeGoals: 1, AwayGoals: 0},
			{Home: teams[0], Away: teams[1], HomeGoals: 2, AwayGoals: 2},
		},
	}
	_, err := league.FromState(st)
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LeagueTestSuite) TestClone_IsIndependent() {
	teams := suite.league.Teams()
	clone := suite.league.Clone()
	require.NoError(suite.T(), clone.SubmitResult(teams[0], teams[1], 1, 0))

	assert.Equal(suite.T(), 0, suite.league.ResultCount())
	assert.Equal(suite.T(), 1, clone.ResultCount())
}

func TestLeagueTestSuite(t *testing.T) {
	suite.Run(t, new(LeagueTestSuite))
}
