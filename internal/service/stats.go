package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gamehub/internal/entity"
)

// StatsService records finished games of one hub session and aggregates them.
type StatsService interface {
	SessionID() string
	Record(ctx context.Context, game entity.GameKind, verdict, detail string) error
	Scoreboard(ctx context.Context) ([]entity.ScoreLine, error)
	Close(ctx context.Context) error
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	ListBySession(ctx context.Context, sessionID string) ([]*entity.Result, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type statsService struct {
	logger *slog.Logger

	sessionID  string
	resultRepo resultRepo
	now        func() time.Time
}

func NewStatsService(logger *slog.Logger, resultRepo resultRepo) StatsService {
	sessionID := uuid.NewString()

	return &statsService{
		logger:     logger.With("component", "stats", "session", sessionID),
		sessionID:  sessionID,
		resultRepo: resultRepo,
		now:        time.Now,
	}
}

func (that *statsService) SessionID() string {
	return that.sessionID
}

func (that *statsService) Record(ctx context.Context, game entity.GameKind, verdict, detail string) error {
	result := &entity.Result{
		ID:        uuid.NewString(),
		SessionID: that.sessionID,
		Game:      game,
		Verdict:   verdict,
		Detail:    detail,
		At:        that.now().UTC(),
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	that.logger.Debug("result recorded", "game", game, "verdict", verdict)

	return nil
}

// Scoreboard - counts results per game and verdict, ordered by game then verdict.
func (that *statsService) Scoreboard(ctx context.Context) ([]entity.ScoreLine, error) {
	results, err := that.resultRepo.ListBySession(ctx, that.sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	type key struct {
		game    entity.GameKind
		verdict string
	}

	counts := make(map[key]int)
	for _, result := range results {
		counts[key{game: result.Game, verdict: result.Verdict}]++
	}

	lines := make([]entity.ScoreLine, 0, len(counts))
	for k, count := range counts {
		lines = append(lines, entity.ScoreLine{Game: k.game, Verdict: k.verdict, Count: count})
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Game != lines[j].Game {
			return lines[i].Game < lines[j].Game
		}
		return lines[i].Verdict < lines[j].Verdict
	})

	return lines, nil
}

// Close - forgets the session; nothing outlives the process.
func (that *statsService) Close(ctx context.Context) error {
	if err := that.resultRepo.DeleteBySession(ctx, that.sessionID); err != nil {
		return fmt.Errorf("failed to delete session results: %w", err)
	}

	return nil
}
