package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/epl-stats/internal/platform/cache"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
)

const defaultWarmupWorkers = 2

type WarmupInput struct {
	Players  []string
	Table    bool
	Fixtures bool
	Results  bool
	// MaxWorkers overrides the service default when positive.
	MaxWorkers int
}

type WarmupResult struct {
	TaskCount    int                `json:"task_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	WorkerCount  int                `json:"worker_count"`
	Tasks        []WarmupTaskResult `json:"tasks"`
}

type WarmupTaskResult struct {
	Kind       string `json:"kind"`
	Target     string `json:"target,omitempty"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

const (
	warmupStatusSuccess = "success"
	warmupStatusFailed  = "failed"

	warmupKindPlayer   = "player_stats"
	warmupKindTable    = "table"
	warmupKindFixtures = "fixtures"
	warmupKindResults  = "results"
)

type warmupTask struct {
	kind   string
	target string
}

// WarmupService fills the result cache ahead of requests by running the
// scraping use cases on a bounded worker pool.
type WarmupService struct {
	players *PlayerStatsService
	table   *LeagueTableService
	matches *MatchService
	workers int
	logger  *logging.Logger
}

func NewWarmupService(players *PlayerStatsService, table *LeagueTableService, matches *MatchService, workers int, logger *logging.Logger) *WarmupService {
	if workers <= 0 {
		workers = defaultWarmupWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &WarmupService{
		players: players,
		table:   table,
		matches: matches,
		workers: workers,
		logger:  logger.With("component", "warmup_service"),
	}
}

func (s *WarmupService) Warm(ctx context.Context, input WarmupInput) (WarmupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmupService.Warm")
	defer span.End()

	tasks := buildWarmupTasks(input)
	if len(tasks) == 0 {
		return WarmupResult{}, fmt.Errorf("%w: nothing to warm", ErrInvalidInput)
	}

	workerCount := s.workers
	if input.MaxWorkers > 0 {
		workerCount = input.MaxWorkers
	}
	workerCount = min(workerCount, len(tasks))

	result := WarmupResult{
		TaskCount:   len(tasks),
		WorkerCount: workerCount,
		Tasks:       make([]WarmupTaskResult, 0, len(tasks)),
	}

	results := make(chan WarmupTaskResult, len(tasks))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := WarmupTaskResult{Kind: task.kind, Target: task.target}

			records, err := s.runWarmupTask(ctx, task)
			row.Records = records
			row.DurationMs = time.Since(start).Milliseconds()
			if err != nil {
				row.Status = warmupStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "warmup task failed", "kind", task.kind, "target", task.target, "error", err)
			} else {
				row.Status = warmupStatusSuccess
				successCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return WarmupResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].Kind != result.Tasks[j].Kind {
			return result.Tasks[i].Kind < result.Tasks[j].Kind
		}
		return result.Tasks[i].Target < result.Tasks[j].Target
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	s.logger.InfoContext(ctx, "warmup finished",
		"tasks", result.TaskCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

func (s *WarmupService) runWarmupTask(ctx context.Context, task warmupTask) (int, error) {
	switch task.kind {
	case warmupKindPlayer:
		items, err := s.players.Search(ctx, task.target)
		return len(items), err
	case warmupKindTable:
		items, err := s.table.Table(ctx)
		return len(items), err
	case warmupKindFixtures:
		items, err := s.matches.Fixtures(ctx)
		return len(items), err
	case warmupKindResults:
		items, err := s.matches.Results(ctx)
		return len(items), err
	default:
		return 0, fmt.Errorf("%w: unknown warmup kind %q", ErrInvalidInput, task.kind)
	}
}

func buildWarmupTasks(input WarmupInput) []warmupTask {
	tasks := make([]warmupTask, 0, len(input.Players)+3)
	seen := make(map[string]struct{}, len(input.Players))
	for _, name := range input.Players {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := cache.PlayerStatsKey(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tasks = append(tasks, warmupTask{kind: warmupKindPlayer, target: name})
	}
	if input.Table {
		tasks = append(tasks, warmupTask{kind: warmupKindTable})
	}
	if input.Fixtures {
		tasks = append(tasks, warmupTask{kind: warmupKindFixtures})
	}
	if input.Results {
		tasks = append(tasks, warmupTask{kind: warmupKindResults})
	}
	return tasks
}
