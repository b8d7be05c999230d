package progressport

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/primary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/secondary"
)

const (
	solvedSetKey      = "progress:solved"
	solvedAtPrefix    = "progress:solved_at:"
	solvedAtRetention = 90 * 24 * time.Hour
)

var _ secondary.ProgressReporter = (*ProgressRepository)(nil)

// ProgressRepository implements the ProgressReporter port with Redis
type ProgressRepository struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewProgressRepository creates a new Redis progress repository
func NewProgressRepository(redisClient *redis.Client, logger primary.Logger) *ProgressRepository {
	return &ProgressRepository{
		redisClient: redisClient,
		logger:      logger,
	}
}

// ReportSolved marks a problem as solved in the progress store.
func (r *ProgressRepository) ReportSolved(ctx context.Context, problemID string) error {
	if err := r.redisClient.SAdd(ctx, solvedSetKey, problemID).Err(); err != nil {
		r.logger.Error("Failed to add problem to solved set", "problem_id", problemID, "error", err)
		return fmt.Errorf("failed to add problem to solved set: %w", err)
	}

	solvedAtKey := fmt.Sprintf("%s%s", solvedAtPrefix, problemID)
	if err := r.redisClient.Set(ctx, solvedAtKey, time.Now().UTC().Format(time.RFC3339), solvedAtRetention).Err(); err != nil {
		r.logger.Error("Failed to record solve timestamp", "problem_id", problemID, "error", err)
		return fmt.Errorf("failed to record solve timestamp: %w", err)
	}

	return nil
}

// IsSolved reports whether a problem is already in the solved set.
func (r *ProgressRepository) IsSolved(ctx context.Context, problemID string) (bool, error) {
	solved, err := r.redisClient.SIsMember(ctx, solvedSetKey, problemID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check solved set: %w", err)
	}
	return solved, nil
}
