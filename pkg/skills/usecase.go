package skills

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/artem13815/skillstat/pkg/job"
	"github.com/artem13815/skillstat/pkg/nlp"
	"github.com/artem13815/skillstat/pkg/telemetry"
)

// JobLoader отдаёт вакансии для запроса (см. job.Source).
type JobLoader interface {
	Load(ctx context.Context, scale int) []job.Job
}

// UseCase: подсчёт навыков по вакансиям, опционально отфильтрованным по роли.
type UseCase interface {
	Analyze(ctx context.Context, q Query) Summary
}

type service struct {
	jobs       JobLoader
	normalizer nlp.Normalizer
	counter    nlp.SkillCounter
	tracer     trace.Tracer
}

func NewService(jobs JobLoader, normalizer nlp.Normalizer, counter nlp.SkillCounter) UseCase {
	return &service{
		jobs:       jobs,
		normalizer: normalizer,
		counter:    counter,
		tracer:     telemetry.GetTracer("skillstat/skills"),
	}
}

func (s *service) Analyze(ctx context.Context, q Query) Summary {
	ctx, span := s.tracer.Start(ctx, "skills.Analyze")
	defer span.End()

	role := strings.TrimSpace(q.Role)
	scale := q.Scale
	if scale < 1 {
		scale = 1
	}

	jobs := s.jobs.Load(ctx, scale)
	selected := job.Filter(jobs, role, s.normalizer)
	counts := s.counter.Count(job.Texts(selected))

	span.SetAttributes(
		telemetry.String("skills.role", role),
		telemetry.Bool("skills.role_filter", role != ""),
		telemetry.Int("skills.scale", scale),
		telemetry.Int("skills.jobs_loaded", len(jobs)),
		telemetry.Int("skills.jobs_matched", len(selected)),
	)

	sum := Summary{JobCount: len(selected), Skills: counts}
	if role != "" {
		sum.Role = &role
	}
	return sum
}
