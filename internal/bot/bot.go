// Package bot is the Telegram front end. It tracks a league in a local JSON
// state file, answers table and probability questions, and caches the last
// rendered status by league fingerprint so repeat asks for an unchanged
// league skip the simulation entirely.
package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"league-tracker-backend/internal/certifier"
	"league-tracker-backend/internal/config"
	apperrors "league-tracker-backend/internal/errors"
	"league-tracker-backend/internal/forecast"
	"league-tracker-backend/internal/league"
	"league-tracker-backend/internal/logger"
	"league-tracker-backend/internal/providers"
	"league-tracker-backend/internal/snapshot"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Composer abstracts snapshot building for tests.
type Composer interface {
	Build(ctx context.Context, l *league.League, sims int, seed int64) (*snapshot.Snapshot, error)
}

// Bot wires the Telegram API to the league engines over a file-backed state.
type Bot struct {
	api       *tgbotapi.BotAPI
	cfg       *config.Config
	composer  Composer
	statePath string
	cachePath string
	log       *logger.Logger

	mu    sync.Mutex
	cache *statusCache
}

type cacheMeta struct {
	Timestamp    int64  `json:"timestamp"`
	Sims         int    `json:"sims"`
	Seed         int64  `json:"seed"`
	ResultsCount int    `json:"results_count"`
	Fingerprint  string `json:"fingerprint"`
}

type statusCache struct {
	Text string    `json:"text"`
	Meta cacheMeta `json:"meta"`
}

// New creates a bot from configuration. The Telegram token is required.
func New(cfg *config.Config) (*Bot, error) {
	if cfg.TelegramBotToken == "" {
		return nil, apperrors.ErrTelegramTokenMissing
	}
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("connecting to telegram: %w", err)
	}

	composer := snapshot.NewComposer(
		certifier.New(certifier.WithTimeLimit(cfg.SolverTimeLimit())),
		forecast.NewEstimator(forecast.WithWorkers(cfg.ForecastWorkers)),
		logger.New(),
	)

	b := &Bot{
		api:       api,
		cfg:       cfg,
		composer:  composer,
		statePath: cfg.BotStatePath,
		cachePath: cfg.BotCachePath,
		log:       logger.New(),
	}
	b.loadCache()
	return b, nil
}

// Run polls for updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	b.log.WithField("username", b.api.Self.UserName).Info("Bot started")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.dispatch(ctx, update.Message)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, msg *tgbotapi.Message) {
	var reply string
	var html bool

	switch msg.Command() {
	case "start", "help":
		reply = b.handleStart()
	case "init":
		reply = b.handleInit(msg.CommandArguments())
	case "result":
		reply = b.handleResult(msg.CommandArguments())
	case "status":
		reply, html = b.handleStatus(ctx, msg.CommandArguments())
	case "laststatus":
		reply, html = b.handleLastStatus()
	case "table":
		reply, html = b.handleTable()
	case "fixtures":
		reply = b.handleFixtures()
	case "teams":
		reply = b.handleTeams()
	case "sync":
		reply = b.handleSync(ctx, msg.CommandArguments())
	default:
		reply = "Unknown command. Try /help."
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply)
	if html {
		out.ParseMode = tgbotapi.ModeHTML
	}
	if _, err := b.api.Send(out); err != nil {
		b.log.WithField("error", err.Error()).Error("Failed to send message")
	}
}

func (b *Bot) handleStart() string {
	return "League tracker ready.\n" +
		"Commands:\n" +
		"/init team1,team2,...,team20\n" +
		"/result Home;Away;HG;AG\n" +
		"/status [sims]\n" +
		"/laststatus\n" +
		"/table\n" +
		"/fixtures\n" +
		"/teams\n" +
		"/sync <provider> <season>"
}

func (b *Bot) handleInit(args string) string {
	if strings.TrimSpace(args) == "" {
		return "Usage: /init team1,team2,...,team20"
	}
	var teams []string
	for _, t := range strings.Split(strings.ReplaceAll(args, "\n", ","), ",") {
		if t = strings.TrimSpace(t); t != "" {
			teams = append(teams, t)
		}
	}
	l, err := league.New(teams)
	if err != nil {
		return "Init error: " + err.Error()
	}
	if err := b.saveLeague(l); err != nil {
		return "Init error: " + err.Error()
	}
	return fmt.Sprintf("Initialized league with %d teams.", len(teams))
}

func (b *Bot) handleResult(args string) string {
	parts := strings.Split(args, ";")
	if len(parts) != 4 {
		return "Bad format. Use: /result Home;Away;HG;AG"
	}
	home := strings.TrimSpace(parts[0])
	away := strings.TrimSpace(parts[1])
	hg, err1 := strconv.Atoi(strings.TrimSpace(parts[2]))
	ag, err2 := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err1 != nil || err2 != nil {
		return "Bad format. Use: /result Home;Away;HG;AG"
	}

	l, err := b.loadLeague()
	if err != nil {
		return err.Error()
	}
	if err := l.SubmitResult(home, away, hg, ag); err != nil {
		return "Record error: " + err.Error()
	}
	if err := b.saveLeague(l); err != nil {
		return "Record error: " + err.Error()
	}
	return fmt.Sprintf("Recorded: %s %d-%d %s", home, hg, ag, away)
}

func (b *Bot) handleStatus(ctx context.Context, args string) (string, bool) {
	sims := b.cfg.DefaultSims
	if args = strings.TrimSpace(args); args != "" {
		if n, err := strconv.Atoi(args); err == nil {
			sims = n
		}
	}
	seed := b.cfg.DefaultSeed

	l, err := b.loadLeague()
	if err != nil {
		return err.Error(), false
	}

	// Unchanged league plus identical sampling parameters means an
	// identical answer, so serve the cached render.
	fingerprint := l.Fingerprint()
	key := snapshot.CacheKey(fingerprint, sims, seed)
	b.mu.Lock()
	if c := b.cache; c != nil && snapshot.CacheKey(c.Meta.Fingerprint, c.Meta.Sims, c.Meta.Seed) == key {
		text := c.Text
		b.mu.Unlock()
		return text, true
	}
	b.mu.Unlock()

	snap, err := b.composer.Build(ctx, l, sims, seed)
	if err != nil {
		return "Status error: " + err.Error(), false
	}

	text := renderSnapshot(snap)
	b.storeCache(&statusCache{
		Text: text,
		Meta: cacheMeta{
			Timestamp:    time.Now().Unix(),
			Sims:         sims,
			Seed:         seed,
			ResultsCount: snap.Meta.ResultsCount,
			Fingerprint:  fingerprint,
		},
	})
	return text, true
}

func (b *Bot) handleLastStatus() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cache == nil || b.cache.Text == "" {
		return "Nothing cached yet. Run /status first.", false
	}
	return b.cache.Text, true
}

func (b *Bot) handleTable() (string, bool) {
	l, err := b.loadLeague()
	if err != nil {
		return err.Error(), false
	}
	return renderTable(l.Table()), true
}

func (b *Bot) handleFixtures() string {
	l, err := b.loadLeague()
	if err != nil {
		return err.Error()
	}
	remaining := l.RemainingFixtures()
	if len(remaining) == 0 {
		return "No remaining fixtures."
	}
	sample := remaining
	if len(sample) > 20 {
		sample = sample[:20]
	}
	var sb strings.Builder
	sb.WriteString("Remaining fixtures (sample):\n")
	for _, f := range sample {
		fmt.Fprintf(&sb, "- %s vs %s\n", f.Home, f.Away)
	}
	if len(remaining) > len(sample) {
		fmt.Fprintf(&sb, "... (+%d more)", len(remaining)-len(sample))
	}
	return sb.String()
}

func (b *Bot) handleTeams() string {
	l, err := b.loadLeague()
	if err != nil {
		return err.Error()
	}
	return "Teams:\n" + strings.Join(l.Teams(), "\n")
}

func (b *Bot) handleSync(ctx context.Context, args string) string {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return "Usage: /sync <provider> <season>. Provider: football-data | api-football"
	}
	season, err := strconv.Atoi(fields[1])
	if err != nil {
		return "Season must be a year, e.g. 2025"
	}

	provider, err := providers.ForName(fields[0], b.cfg)
	if err != nil {
		return "Provider error: " + err.Error()
	}

	l, err := b.loadLeague()
	if err != nil {
		return err.Error()
	}

	matches, err := provider.FinishedMatches(ctx, season)
	if err != nil {
		return "Provider error: " + err.Error()
	}

	nameMap, err := providers.LoadNameMap(b.cfg.TeamNameMapPath)
	if err != nil {
		return "Name map error: " + err.Error()
	}

	added := 0
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
	if err := b.saveLeague(l); err != nil {
		return "Sync error: " + err.Error()
	}
	return fmt.Sprintf("Fetched %d matches from %s. Added %d.", len(matches), fields[0], added)
}

func (b *Bot) loadLeague() (*league.League, error) {
	data, err := os.ReadFile(b.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no league initialized yet, run /init first")
		}
		return nil, err
	}
	var st league.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}
	return league.FromState(st)
}

func (b *Bot) saveLeague(l *league.League) error {
	data, err := json.MarshalIndent(l.State(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(b.statePath, data, 0o644)
}

func (b *Bot) loadCache() {
	data, err := os.ReadFile(b.cachePath)
	if err != nil {
		return
	}
	var c statusCache
	if err := json.Unmarshal(data, &c); err != nil {
		return
	}
	b.mu.Lock()
	b.cache = &c
	b.mu.Unlock()
}

func (b *Bot) storeCache(c *statusCache) {
	b.mu.Lock()
	b.cache = c
	b.mu.Unlock()

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(b.cachePath, data, 0o644); err != nil {
		b.log.WithField("error", err.Error()).Warn("Failed to persist status cache")
	}
}
