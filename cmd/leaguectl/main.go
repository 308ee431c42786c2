// leaguectl tracks a league in a local JSON state file, with no server or
// database involved. It drives the same core packages as the backend.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"league-tracker-backend/internal/certifier"
	"league-tracker-backend/internal/config"
	"league-tracker-backend/internal/forecast"
	"league-tracker-backend/internal/league"
	"league-tracker-backend/internal/logger"
	"league-tracker-backend/internal/providers"
	"league-tracker-backend/internal/publisher"
	"league-tracker-backend/internal/snapshot"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var statePath string

func main() {
	// Provider keys and publisher settings come from the environment
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "leaguectl",
		Short:         "Track a 20-team double round-robin league from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&statePath, "state", "league_state.json", "Path to state JSON file")

	root.AddCommand(initCmd())
	root.AddCommand(resultCmd())
	root.AddCommand(statusCmd())
	root.AddCommand(syncCmd())
	root.AddCommand(snapshotCmd())
	root.AddCommand(publishCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadLeague() (*league.League, error) {
	data, err := os.ReadFile(statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("state file %s not found, run 'leaguectl init' first", statePath)
		}
		return nil, err
	}
	var st league.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", statePath, err)
	}
	return league.FromState(st)
}

func saveLeague(l *league.League) error {
	data, err := json.MarshalIndent(l.State(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(statePath, data, 0o644)
}

func initCmd() *cobra.Command {
	var teamsList, teamsFile string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the league with 20 teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			var teams []string
			switch {
			case teamsFile != "":
				data, err := os.ReadFile(teamsFile)
				if err != nil {
					return err
				}
				for _, line := range strings.Split(string(data), "\n") {
					line = strings.TrimSpace(line)
					if line == "" || strings.HasPrefix(line, "#") {
						continue
					}
					teams = append(teams, line)
				}
			case teamsList != "":
				for _, t := range strings.Split(teamsList, ",") {
					teams = append(teams, strings.TrimSpace(t))
				}
			default:
				return fmt.Errorf("either --teams or --file is required")
			}

			l, err := league.New(teams)
			if err != nil {
				return err
			}
			if err := saveLeague(l); err != nil {
				return err
			}
			fmt.Printf("Initialized league with %d teams and empty results.\n", len(teams))
			return nil
		},
	}
	cmd.Flags().StringVar(&teamsList, "teams", "", "Comma-separated 20 team names")
	cmd.Flags().StringVar(&teamsFile, "file", "", "Text file with one team per line (20 lines)")
	return cmd
}

func resultCmd() *cobra.Command {
	var home, away string
	var hg, ag int

	cmd := &cobra.Command{
		Use:   "result",
		Short: "Record a match result",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLeague()
			if err != nil {
				return err
			}
			if err := l.SubmitResult(home, away, hg, ag); err != nil {
				return err
			}
			if err := saveLeague(l); err != nil {
				return err
			}
			fmt.Printf("Recorded: %s %d-%d %s\n", home, hg, ag, away)
			return nil
		},
	}
	cmd.Flags().StringVar(&home, "home", "", "Home team")
	cmd.Flags().StringVar(&away, "away", "", "Away team")
	cmd.Flags().IntVar(&hg, "hg", 0, "Home goals")
	cmd.Flags().IntVar(&ag, "ag", 0, "Away goals")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("away")
	_ = cmd.MarkFlagRequired("hg")
	_ = cmd.MarkFlagRequired("ag")
	return cmd
}

func statusCmd() *cobra.Command {
	var noSim bool
	var sims int
	var seed int64

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show table, guarantee verdicts, and probabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLeague()
			if err != nil {
				return err
			}

			ctx := context.Background()
			cert := certifier.New()

			if noSim {
				return printVerdictTable(ctx, cert, l)
			}

			composer := snapshot.NewComposer(cert, forecast.NewEstimator(), logger.New())
			snap, err := composer.Build(ctx, l, sims, seed)
			if err != nil {
				return err
			}
			printSnapshotTable(snap)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noSim, "no-sim", false, "Skip Monte Carlo")
	cmd.Flags().IntVar(&sims, "sims", 20000, "Number of simulations")
	cmd.Flags().Int64Var(&seed, "seed", 12345, "RNG seed for reproducibility")
	return cmd
}

func syncCmd() *cobra.Command {
	var providerName string
	var season int

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync finished matches from a provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLeague()
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			added, fetched, err := syncFromProvider(ctx, l, cfg, providerName, season)
			if err != nil {
				return err
			}
			if err := saveLeague(l); err != nil {
				return err
			}
			fmt.Printf("Fetched %d finished matches, added %d new results.\n", fetched, added)
			return nil
		},
	}
	cmd.Flags().StringVar(&providerName, "provider", "football-data", "Match data provider (football-data or api-football)")
	cmd.Flags().IntVar(&season, "season", 0, "Season start year, e.g. 2025 (auto-detected for football-data when omitted)")
	return cmd
}

func snapshotCmd() *cobra.Command {
	var sims int
	var seed int64
	var out string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Run the engines once and write a snapshot JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLeague()
			if err != nil {
				return err
			}
			snap, err := buildSnapshot(context.Background(), l, sims, seed)
			if err != nil {
				return err
			}
			if err := writeSnapshotFile(snap, out); err != nil {
				return err
			}
			fmt.Printf("Snapshot written to %s (sims=%d, seed=%d, results=%d).\n", out, sims, seed, l.ResultCount())
			return nil
		},
	}
	cmd.Flags().IntVar(&sims, "sims", 20000, "Number of simulations")
	cmd.Flags().Int64Var(&seed, "seed", 12345, "RNG seed")
	cmd.Flags().StringVar(&out, "out", "snapshot.json", "Output path")
	return cmd
}

func publishCmd() *cobra.Command {
	var sims int
	var seed int64
	var out, mode, dest string
	var withSync bool
	var season int

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Build a snapshot and publish it",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLeague()
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if withSync {
				added, fetched, err := syncFromProvider(ctx, l, cfg, "football-data", season)
				if err != nil {
					return err
				}
				if err := saveLeague(l); err != nil {
					return err
				}
				fmt.Printf("Pre-sync: fetched %d, added %d.\n", fetched, added)
			}

			snap, err := buildSnapshot(ctx, l, sims, seed)
			if err != nil {
				return err
			}
			if err := writeSnapshotFile(snap, out); err != nil {
				return err
			}
			fmt.Printf("Snapshot created: %s\n", out)

			document, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return err
			}
			pub, err := publisher.ForMode(mode, dest, cfg)
			if err != nil {
				return err
			}
			location, err := pub.Publish(ctx, document)
			if err != nil {
				return err
			}
			fmt.Printf("Published to: %s\n", location)
			return nil
		},
	}
	cmd.Flags().IntVar(&sims, "sims", 20000, "Number of simulations")
	cmd.Flags().Int64Var(&seed, "seed", 12345, "RNG seed")
	cmd.Flags().StringVar(&out, "out", "snapshot.json", "Local snapshot path to create before publishing")
	cmd.Flags().StringVar(&mode, "mode", "file", "Publish mode (file, gist or s3)")
	cmd.Flags().StringVar(&dest, "dest", "", "Destination path for mode=file, object key for mode=s3")
	cmd.Flags().BoolVar(&withSync, "with-sync", false, "Pre-sync finished matches from football-data before the snapshot")
	cmd.Flags().IntVar(&season, "season", 0, "Season start year for --with-sync (auto-detected when omitted)")
	return cmd
}

func buildSnapshot(ctx context.Context, l *league.League, sims int, seed int64) (*snapshot.Snapshot, error) {
	composer := snapshot.NewComposer(certifier.New(), forecast.NewEstimator(), logger.New())
	return composer.Build(ctx, l, sims, seed)
}

func writeSnapshotFile(snap *snapshot.Snapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// syncFromProvider merges the provider's finished matches into the league.
// Local results win and matches naming unknown teams are skipped.
func syncFromProvider(ctx context.Context, l *league.League, cfg *config.Config, providerName string, season int) (added, fetched int, err error) {
	provider, err := providers.ForName(providerName, cfg)
	if err != nil {
		return 0, 0, err
	}

	if season == 0 {
		if fd, ok := provider.(*providers.FootballDataProvider); ok {
			season, err = fd.DetectCurrentSeasonYear(ctx)
			if err != nil {
				return 0, 0, err
			}
		}
	}

	nameMap, err := providers.LoadNameMap(cfg.TeamNameMapPath)
	if err != nil {
		return 0, 0, err
	}

	matches, err := provider.FinishedMatches(ctx, season)
	if err != nil {
		return 0, 0, err
	}

	for _, m := range matches {
		home := nameMap.Canonical(m.Home)
		away := nameMap.Canonical(m.Away)
		if !l.HasTeam(home) || !l.HasTeam(away) {
			continue
		}
		if err := l.SubmitResult(home, away, m.HomeGoals, m.AwayGoals); err != nil {
			continue
		}
		added++
	}
	return added, len(matches), nil
}

func printSnapshotTable(snap *snapshot.Snapshot) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTeam\tP\tW\tD\tL\tGF\tGA\tGD\tPts\tTop4\tSafe\t%Top4\t%Safe")
	for _, row := range snap.Table {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%.1f%%\t%.1f%%\n",
			row.Rank, row.Team, row.Played, row.Wins, row.Draws, row.Losses,
			row.GoalsFor, row.GoalsAgainst, row.GoalDifference, row.Points,
			row.Official.Top4, row.Official.Safe,
			100*row.ProbTop4, 100*row.ProbSafe)
	}
	w.Flush()
	fmt.Printf("\nsims=%d seed=%d results=%d remaining=%d fingerprint=%s\n",
		snap.Meta.Sims, snap.Meta.Seed, snap.Meta.ResultsCount, snap.Meta.RemainingCount, snap.Meta.Fingerprint)
}

func printVerdictTable(ctx context.Context, cert *certifier.Certifier, l *league.League) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTeam\tP\tW\tD\tL\tGF\tGA\tGD\tPts\tTop4\tSafe")
	for i, s := range l.Table() {
		top4, err := cert.GuaranteedTop4(ctx, l, s.Team)
		if err != nil {
			return err
		}
		safe, err := cert.GuaranteedSafe(ctx, l, s.Team)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\n",
			i+1, s.Team, s.Played, s.Wins, s.Draws, s.Losses,
			s.GoalsFor, s.GoalsAgainst, s.GoalDifference(), s.Points,
			top4, safe)
	}
	return w.Flush()
}
