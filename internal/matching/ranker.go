package matching

import (
	"context"
	"sort"
	"time"

	"gostaff/internal/models"
	"gostaff/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Ranker scores one side of a batch against a fixed counterpart and sorts
// the results descending by overall score. Ties keep their incoming order:
// the sort is stable and no secondary key is applied. Each pairwise score is
// independent, so batches above Parallelism fan out across goroutines.
type Ranker struct {
	scorer *Scorer
	logger *logger.Logger

	// Parallelism bounds concurrent scoring goroutines; values below 2 keep
	// ranking sequential.
	Parallelism int
}

func NewRanker(scorer *Scorer, log *logger.Logger) *Ranker {
	return &Ranker{
		scorer: scorer,
		logger: log,
	}
}

// RankShiftsForWorker scores every shift for one worker and returns them
// sorted best-first.
func (r *Ranker) RankShiftsForWorker(ctx context.Context, worker models.WorkerProfile, shifts []models.ShiftRequirements) ([]models.RankedShift, error) {
	started := time.Now()

	scores, err := r.scoreAll(ctx, len(shifts), func(i int) (*models.MatchScore, error) {
		return r.scorer.Score(worker, shifts[i])
	})
	if err != nil {
		return nil, err
	}

	ranked := make([]models.RankedShift, len(shifts))
	for i, shift := range shifts {
		ranked[i] = models.RankedShift{Shift: shift, Score: *scores[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.OverallScore > ranked[j].Score.OverallScore
	})

	if r.logger != nil {
		r.logger.WithWorkerID(worker.ID).LogMatchEvent("shifts_ranked", map[string]interface{}{
			"candidates":  len(shifts),
			"duration_ms": time.Since(started).Milliseconds(),
		})
	}

	return ranked, nil
}

// RankWorkersForShift scores every worker for one shift and returns them
// sorted best-first.
func (r *Ranker) RankWorkersForShift(ctx context.Context, shift models.ShiftRequirements, workers []models.WorkerProfile) ([]models.RankedWorker, error) {
	started := time.Now()

	scores, err := r.scoreAll(ctx, len(workers), func(i int) (*models.MatchScore, error) {
		return r.scorer.Score(workers[i], shift)
	})
	if err != nil {
		return nil, err
	}

	ranked := make([]models.RankedWorker, len(workers))
	for i, worker := range workers {
		ranked[i] = models.RankedWorker{Worker: worker, Score: *scores[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.OverallScore > ranked[j].Score.OverallScore
	})

	if r.logger != nil {
		r.logger.WithShiftID(shift.ID).LogMatchEvent("workers_ranked", map[string]interface{}{
			"candidates":  len(workers),
			"duration_ms": time.Since(started).Milliseconds(),
		})
	}

	return ranked, nil
}

// scoreAll fills an index-aligned score slice, fanning out when the batch
// and configured parallelism warrant it.
func (r *Ranker) scoreAll(ctx context.Context, n int, score func(i int) (*models.MatchScore, error)) ([]*models.MatchScore, error) {
	scores := make([]*models.MatchScore, n)

	if r.Parallelism < 2 || n < 2 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			result, err := score(i)
			if err != nil {
				return nil, err
			}
			scores[i] = result
		}
		return scores, nil
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.Parallelism)
	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := score(i)
			if err != nil {
				return err
			}
			scores[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
