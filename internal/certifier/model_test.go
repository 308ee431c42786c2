package certifier

import (
	"fmt"
	"testing"

	"league-tracker-backend/internal/league"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLeague(t *testing.T) *league.League {
	t.Helper()
	names := make([]string, 0, league.TeamCount)
	for i := 1; i <= league.TeamCount; i++ {
		names = append(names, fmt.Sprintf("Team %02d", i))
	}
	l, err := league.New(names)
	require.NoError(t, err)
	return l
}

func TestBuildScenarioProblem_FreshLeagueShape(t *testing.T) {
	l := testLeague(t)
	p := buildScenarioProblem(l, l.Teams()[0], 4)

	// 3 outcome binaries per remaining fixture plus one indicator per rival.
	assert.Equal(t, 3*league.TotalFixtures+league.TeamCount-1, p.NumCols)
	// One one-outcome row per fixture, one catch row per rival, one quota row.
	assert.Len(t, p.Rows, league.TotalFixtures+league.TeamCount-1+1)

	for i := 0; i < league.TotalFixtures; i++ {
		row := p.Rows[i]
		assert.Equal(t, RowEqual, row.Kind)
		assert.Equal(t, 1.0, row.RHS)
		assert.Equal(t, []float64{1, 1, 1}, row.Coefs)
	}

	quota := p.Rows[len(p.Rows)-1]
	assert.Equal(t, RowAtLeast, quota.Kind)
	assert.Equal(t, 4.0, quota.RHS)
	assert.Len(t, quota.Cols, league.TeamCount-1)
}

func TestBuildScenarioProblem_ShrinksWithResults(t *testing.T) {
	l := testLeague(t)
	teams := l.Teams()
	require.NoError(t, l.SubmitResult(teams[0], teams[1], 1, 0))

	p := buildScenarioProblem(l, teams[0], 17)
	assert.Equal(t, 3*(league.TotalFixtures-1)+league.TeamCount-1, p.NumCols)
	assert.Equal(t, 17.0, p.Rows[len(p.Rows)-1].RHS)
}

func TestPointsSwingBound_FreshSeasonMatchesFullSwing(t *testing.T) {
	l := testLeague(t)
	// No accumulated gap, 38 matches remaining per team: 3*38.
	assert.Equal(t, 114, pointsSwingBound(l, l.Teams()[0]))
}

func TestPointsSwingBound_CoversAccumulatedGap(t *testing.T) {
	l := testLeague(t)
	teams := l.Teams()
	// Leader banks 6 points while everyone else stands still; the bound must
	// exceed the accumulated gap even once no swing remains for some teams.
	require.NoError(t, l.SubmitResult(teams[0], teams[1], 2, 0))
	require.NoError(t, l.SubmitResult(teams[1], teams[0], 0, 1))

	bound := pointsSwingBound(l, teams[0])
	assert.GreaterOrEqual(t, bound, 6+3*37)
}

func TestPointsSwingBound_NeverBelowFloor(t *testing.T) {
	l := testLeague(t)
	teams := l.Teams()
	// Lower-index team always wins; play the whole season out.
	for i, h := range teams {
		for j, a := range teams {
			if i == j {
				continue
			}
			if i < j {
				require.NoError(t, l.SubmitResult(h, a, 2, 0))
			} else {
				require.NoError(t, l.SubmitResult(h, a, 0, 1))
			}
		}
	}
	require.True(t, l.Complete())

	// Bottom team: no remaining matches, no positive gap over any rival.
	assert.Equal(t, 3, pointsSwingBound(l, teams[league.TeamCount-1]))
	// Top team: the bound is exactly its accumulated gap over the bottom team.
	assert.Equal(t, 114, pointsSwingBound(l, teams[0]))
}
