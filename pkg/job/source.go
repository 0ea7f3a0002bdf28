package job

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/artem13815/skillstat/pkg/errors"
)

// DefaultMaxScale caps how many copies of the base set a request may ask for.
const DefaultMaxScale = 1000

// Source отдаёт набор вакансий для одного запроса. Ошибки хранилища
// не выходят наружу: они логируются, а результатом становится пустой набор.
type Source struct {
	repo     Repository
	logger   *zap.Logger
	maxScale int
}

func NewSource(repo Repository, logger *zap.Logger, maxScale int) *Source {
	if maxScale <= 0 {
		maxScale = DefaultMaxScale
	}
	return &Source{repo: repo, logger: logger, maxScale: maxScale}
}

// Load returns the base records expanded to scale copies. Never nil.
func (s *Source) Load(ctx context.Context, scale int) []Job {
	base, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("Job source unavailable, using empty set",
			zap.Error(err),
			zap.String("error_type", string(apperrors.TypeOf(err))),
		)
		return []Job{}
	}
	if base == nil {
		base = []Job{}
	}
	if scale > s.maxScale {
		s.logger.Debug("Scale clamped", zap.Int("requested", scale), zap.Int("max", s.maxScale))
		scale = s.maxScale
	}
	return Scale(base, scale)
}

// Scale повторяет базовый набор scale раз. Копия i берётся из base[i%n];
// к непустым Title и Company добавляется " (sample i)", ID пересчитывается.
// При scale <= 1 или пустом base возвращается base.
func Scale(base []Job, scale int) []Job {
	if scale <= 1 || len(base) == 0 {
		return base
	}
	n := len(base)
	out := make([]Job, 0, scale*n)
	for i := 0; i < scale*n; i++ {
		j := base[i%n]
		suffix := fmt.Sprintf(" (sample %d)", i)
		if j.Title != "" {
			j.Title += suffix
		}
		if j.Company != "" {
			j.Company += suffix
		}
		j.ID = j.DerivedID()
		out = append(out, j)
	}
	return out
}
