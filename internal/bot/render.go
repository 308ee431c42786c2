package bot

import (
	"fmt"
	"strings"
	"time"

	"league-tracker-backend/internal/league"
	"league-tracker-backend/internal/snapshot"
)

// Telegram has no real table support, so the renders are fixed-width text
// wrapped in <pre> for monospace display.

func renderSnapshot(snap *snapshot.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("<pre>")
	sb.WriteString(fmt.Sprintf("%2s %-22s %2s %3s %4s %-6s %-6s %6s %6s\n",
		"#", "Team", "P", "GD", "Pts", "Top4", "Safe", "%Top4", "%Safe"))
	for _, row := range snap.Table {
		sb.WriteString(fmt.Sprintf("%2d %-22s %2d %3d %4d %-6s %-6s %5.1f%% %5.1f%%\n",
			row.Rank, truncate(row.Team, 22), row.Played, row.GoalDifference, row.Points,
			shortVerdict(row.Official.Top4), shortVerdict(row.Official.Safe),
			100*row.ProbTop4, 100*row.ProbSafe))
	}
	sb.WriteString("</pre>")
	generated := time.Unix(snap.Meta.GeneratedAt, 0).UTC().Format("2006-01-02 15:04:05")
	sb.WriteString(fmt.Sprintf("\nsims=%d seed=%d results=%d at %s",
		snap.Meta.Sims, snap.Meta.Seed, snap.Meta.ResultsCount, generated))
	return sb.String()
}

func renderTable(rows []league.TeamStanding) string {
	var sb strings.Builder
	sb.WriteString("<pre>")
	sb.WriteString(fmt.Sprintf("%2s %-22s %2s %2s %2s %2s %3s %3s %3s %4s\n",
		"#", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts"))
	for i, s := range rows {
		sb.WriteString(fmt.Sprintf("%2d %-22s %2d %2d %2d %2d %3d %3d %3d %4d\n",
			i+1, truncate(s.Team, 22), s.Played, s.Wins, s.Draws, s.Losses,
			s.GoalsFor, s.GoalsAgainst, s.GoalDifference(), s.Points))
	}
	sb.WriteString("</pre>")
	return sb.String()
}

func shortVerdict(v string) string {
	switch v {
	case "guaranteed":
		return "YES"
	case "open":
		return "-"
	default:
		return "?"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
