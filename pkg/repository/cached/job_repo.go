package cached

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/skillstat/pkg/cache"
	"github.com/artem13815/skillstat/pkg/job"
)

const keyPrefix = "skillstat:jobs:"

// JobRepository кэширует базовый набор вакансий поверх другого репозитория.
// Любая ошибка кэша не мешает чтению из исходного репозитория.
type JobRepository struct {
	next   job.Repository
	cache  cache.Cache
	key    string
	ttl    time.Duration
	logger *zap.Logger
}

func NewJobRepository(next job.Repository, c cache.Cache, name string, ttl time.Duration, logger *zap.Logger) *JobRepository {
	return &JobRepository{
		next:   next,
		cache:  c,
		key:    keyPrefix + name,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *JobRepository) Key() string { return r.key }

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	data, err := r.cache.Get(ctx, r.key)
	switch {
	case err == nil:
		var jobs []job.Job
		uerr := json.Unmarshal(data, &jobs)
		if uerr == nil {
			r.logger.Debug("Jobs cache hit", zap.String("key", r.key), zap.Int("jobs", len(jobs)))
			return jobs, nil
		}
		r.logger.Warn("Corrupt jobs cache entry", zap.String("key", r.key), zap.Error(uerr))
	case errors.Is(err, cache.ErrNotFound):
	default:
		r.logger.Warn("Jobs cache read failed", zap.String("key", r.key), zap.Error(err))
	}

	jobs, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(jobs)
	if err != nil {
		r.logger.Warn("Encode jobs for cache", zap.Error(err))
		return jobs, nil
	}
	if err := r.cache.Set(ctx, r.key, data, r.ttl); err != nil {
		r.logger.Warn("Jobs cache write failed", zap.String("key", r.key), zap.Error(err))
	}
	return jobs, nil
}
