package main

import (
	"fmt"
	"log"
	"os"

	"league-tracker-backend/internal/config"
	"league-tracker-backend/internal/database"
	"league-tracker-backend/internal/database/models"
	"league-tracker-backend/internal/league"
	"league-tracker-backend/internal/repository"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SeedFile matches the YAML layout consumed by this loader: one league with
// its 20 teams in table-declaration order and any already-played results.
type SeedFile struct {
	Name    string       `yaml:"name"`
	Teams   []string     `yaml:"teams"`
	Results []SeedResult `yaml:"results,omitempty"`
}

type SeedResult struct {
	Home      string `yaml:"home"`
	Away      string `yaml:"away"`
	HomeGoals int    `yaml:"hg"`
	AwayGoals int    `yaml:"ag"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: seed_league <seed.yaml>")
	}
	seedPath := os.Args[1]

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	data, err := os.ReadFile(seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	// Validate the whole seed in memory before touching the database
	domain, err := league.New(seed.Teams)
	if err != nil {
		log.Fatalf("Invalid team list: %v", err)
	}
	for _, r := range seed.Results {
		if err := domain.SubmitResult(r.Home, r.Away, r.HomeGoals, r.AwayGoals); err != nil {
			log.Fatalf("Invalid result %s vs %s: %v", r.Home, r.Away, err)
		}
	}

	repo := repository.NewLeagueRepository(db)

	if existing, err := repo.GetByName(seed.Name); err == nil && existing != nil {
		log.Fatalf("League %q already exists (id=%s), refusing to reseed", seed.Name, existing.ID)
	}

	record := &models.League{Name: seed.Name}
	if err := repo.Create(record, domain.Teams()); err != nil {
		log.Fatalf("Failed to create league: %v", err)
	}

	for _, r := range seed.Results {
		result := &models.MatchResult{
			Home:      r.Home,
			Away:      r.Away,
			HomeGoals: r.HomeGoals,
			AwayGoals: r.AwayGoals,
		}
		if err := repo.AppendResult(record.ID, result); err != nil {
			log.Fatalf("Failed to append result %s vs %s: %v", r.Home, r.Away, err)
		}
	}

	fmt.Printf("Seeded league %q (id=%s) with %d teams and %d results.\n",
		seed.Name, record.ID, len(seed.Teams), len(seed.Results))
}
