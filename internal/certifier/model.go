package certifier

import (
	"fmt"

	"league-tracker-backend/internal/league"
)

// RowKind distinguishes the two constraint shapes the feasibility model needs.
type RowKind int

const (
	// RowEqual constrains the row's linear expression to equal RHS.
	RowEqual RowKind = iota
	// RowAtLeast constrains the row's linear expression to be >= RHS.
	RowAtLeast
)

// Row is one linear constraint over the problem's binary columns.
type Row struct {
	Name  string
	Cols  []int // 1-based column indices
	Coefs []float64
	Kind  RowKind
	RHS   float64
}

// Problem is a pure 0/1 feasibility problem: every column is binary, there is
// no objective, and the only question is whether any assignment satisfies all
// rows.
type Problem struct {
	Name    string
	NumCols int
	Rows    []Row
}

// buildScenarioProblem constructs the feasibility model asking: does an
// assignment of outcomes to every remaining fixture exist in which at least
// minRivals other teams finish with points >= target's final points?
//
// Columns, in order:
//   - per remaining fixture i: W_i, D_i, L_i (home win, draw, home loss);
//   - per rival t: indicator y_t meaning "t finishes with points >= target".
//
// Rows:
//   - per fixture: W_i + D_i + L_i = 1;
//   - per rival: a big-constant row that only enforces the points inequality
//     when y_t = 1;
//   - sum of indicators >= minRivals.
//
// Final points are modeled purely on points; goal-difference tie-breaks are
// deliberately outside this model.
func buildScenarioProblem(l *league.League, target string, minRivals int) *Problem {
	teams := l.Teams()
	remaining := l.RemainingFixtures()
	standings := l.Standings()

	base := make(map[string]int, len(teams))
	for _, t := range teams {
		base[t] = standings[t].Points
	}

	// Column layout: 3 outcome vars per fixture, then one indicator per rival.
	outcomeCols := 3 * len(remaining)
	colW := func(i int) int { return 3*i + 1 }
	colD := func(i int) int { return 3*i + 2 }
	colL := func(i int) int { return 3*i + 3 }

	rivals := make([]string, 0, len(teams)-1)
	for _, t := range teams {
		if t != target {
			rivals = append(rivals, t)
		}
	}
	colY := func(r int) int { return outcomeCols + r + 1 }

	p := &Problem{
		Name:    fmt.Sprintf("scenario_%s_ge_%d", sanitize(target), minRivals),
		NumCols: outcomeCols + len(rivals),
	}

	// Exactly one outcome per remaining fixture.
	for i, f := range remaining {
		p.Rows = append(p.Rows, Row{
			Name:  fmt.Sprintf("one_outcome_%s__%s", sanitize(f.Home), sanitize(f.Away)),
			Cols:  []int{colW(i), colD(i), colL(i)},
			Coefs: []float64{1, 1, 1},
			Kind:  RowEqual,
			RHS:   1,
		})
	}

	bigM := pointsSwingBound(l, target)

	// Per rival t: pts(t) - pts(target) >= -bigM * (1 - y_t), i.e. the points
	// inequality only binds when the indicator is active. Rearranged with the
	// variable parts on the left:
	//   (v_t - v_target) - bigM*y_t >= base(target) - base(t) - bigM
	for r, rival := range rivals {
		coefs := make(map[int]float64)
		for i, f := range remaining {
			// Contribution of fixture i to rival's final points, minus its
			// contribution to the target's.
			if f.Home == rival {
				coefs[colW(i)] += 3
				coefs[colD(i)] += 1
			}
			if f.Away == rival {
				coefs[colL(i)] += 3
				coefs[colD(i)] += 1
			}
			if f.Home == target {
				coefs[colW(i)] -= 3
				coefs[colD(i)] -= 1
			}
			if f.Away == target {
				coefs[colL(i)] -= 3
				coefs[colD(i)] -= 1
			}
		}
		coefs[colY(r)] = -float64(bigM)

		row := Row{
			Name: fmt.Sprintf("catch_%s", sanitize(rival)),
			Kind: RowAtLeast,
			RHS:  float64(base[target] - base[rival] - bigM),
		}
		for col := 1; col <= p.NumCols; col++ {
			if c, ok := coefs[col]; ok && c != 0 {
				row.Cols = append(row.Cols, col)
				row.Coefs = append(row.Coefs, c)
			}
		}
		p.Rows = append(p.Rows, row)
	}

	// At least minRivals rivals catch the target.
	quota := Row{
		Name: "rival_quota",
		Kind: RowAtLeast,
		RHS:  float64(minRivals),
	}
	for r := range rivals {
		quota.Cols = append(quota.Cols, colY(r))
		quota.Coefs = append(quota.Coefs, 1)
	}
	p.Rows = append(p.Rows, quota)

	return p
}

// pointsSwingBound returns a constant no smaller than any reachable value of
// pts(target) - pts(rival), so a disabled indicator row can never bind. It is
// derived from the actual snapshot rather than hardcoded for a 38-match
// season: the current point gap covers the accumulated part and three points
// per remaining match covers the largest possible swing.
func pointsSwingBound(l *league.League, target string) int {
	standings := l.Standings()
	targetPts := standings[target].Points

	maxGap := 0
	for _, t := range l.Teams() {
		if t == target {
			continue
		}
		if gap := targetPts - standings[t].Points; gap > maxGap {
			maxGap = gap
		}
	}

	remainingPerTeam := make(map[string]int, league.TeamCount)
	for _, f := range l.RemainingFixtures() {
		remainingPerTeam[f.Home]++
		remainingPerTeam[f.Away]++
	}
	maxRemaining := 0
	for _, n := range remainingPerTeam {
		if n > maxRemaining {
			maxRemaining = n
		}
	}

	bound := maxGap + 3*maxRemaining
	if bound < 3 {
		bound = 3
	}
	return bound
}

// sanitize makes a team name safe for use inside a constraint identifier.
func sanitize(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
