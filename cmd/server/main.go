// @title         skillstat API
// @version       1.0
// @description   Подсчёт востребованных навыков по тестовому набору вакансий.
// @BasePath      /api
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	// internal imports
	httpapi "github.com/artem13815/skillstat/api/http"
	"github.com/artem13815/skillstat/api/http/handlers"
	_ "github.com/artem13815/skillstat/docs"
	"github.com/artem13815/skillstat/pkg/cache"
	rediscache "github.com/artem13815/skillstat/pkg/cache/redis"
	"github.com/artem13815/skillstat/pkg/config"
	"github.com/artem13815/skillstat/pkg/health"
	"github.com/artem13815/skillstat/pkg/health/checkers"
	"github.com/artem13815/skillstat/pkg/job"
	"github.com/artem13815/skillstat/pkg/logger"
	"github.com/artem13815/skillstat/pkg/nlp"
	"github.com/artem13815/skillstat/pkg/repository/cached"
	filerepo "github.com/artem13815/skillstat/pkg/repository/file"
	pgrepo "github.com/artem13815/skillstat/pkg/repository/postgres"
	"github.com/artem13815/skillstat/pkg/skills"
	"github.com/artem13815/skillstat/pkg/storage/postgres"
	"github.com/artem13815/skillstat/pkg/telemetry"
)

const version = "1.0.0"

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogDev)
}

// newPool returns nil when DATABASE_URL is not set; jobs then come from the file.
func newPool(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}
	pool, err := postgres.Connect(context.Background(), postgres.Options{DSN: cfg.DatabaseURL})
	if err != nil {
		return nil, err
	}
	log.Info("Connected to PostgreSQL")
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

// newCache returns nil when REDIS_URL is not set.
func newCache(lc fx.Lifecycle, cfg config.Config) (cache.Cache, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}
	c, err := rediscache.New(cache.Options{RedisURL: cfg.RedisURL, DefaultTTL: cfg.CacheTTL})
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return c.Close() },
	})
	return c, nil
}

func newRepository(cfg config.Config, pool *pgxpool.Pool, c cache.Cache, log *zap.Logger) (job.Repository, error) {
	fileRepo := filerepo.NewJobRepository(cfg.JobsFile)

	var repo job.Repository = fileRepo
	name := "file"
	if pool != nil {
		pg, err := pgrepo.NewJobRepository(pool)
		if err != nil {
			return nil, err
		}
		if cfg.SeedFromFile {
			seedFromFile(pg, fileRepo, log)
		}
		repo = pg
		name = "postgres"
	}
	if c != nil {
		repo = cached.NewJobRepository(repo, c, name, cfg.CacheTTL, log)
	}
	log.Info("Job repository ready", zap.String("backend", name), zap.Bool("cached", c != nil))
	return repo, nil
}

func seedFromFile(pg *pgrepo.JobRepository, src *filerepo.JobRepository, log *zap.Logger) {
	ctx := context.Background()
	n, err := pg.Count(ctx)
	if err != nil {
		log.Warn("Count job_postings failed, skipping seed", zap.Error(err))
		return
	}
	if n > 0 {
		return
	}
	jobs, err := src.List(ctx)
	if err != nil {
		log.Warn("Seed file unavailable", zap.String("path", src.Path()), zap.Error(err))
		return
	}
	inserted, err := pg.Seed(ctx, jobs)
	if err != nil {
		log.Warn("Seed job_postings failed", zap.Error(err))
		return
	}
	log.Info("Seeded job_postings", zap.Int("inserted", inserted))
}

func newReadiness(cfg config.Config, pool *pgxpool.Pool, c cache.Cache) health.ReadinessUseCase {
	var checks []health.Checker
	if pool != nil {
		checks = append(checks, checkers.NewPingChecker("postgres", pool))
	} else {
		checks = append(checks, checkers.NewFileChecker(cfg.JobsFile))
	}
	if c != nil {
		checks = append(checks, checkers.NewPingChecker("redis", c))
	}
	return health.NewService(checks...)
}

func newSource(repo job.Repository, cfg config.Config, log *zap.Logger) *job.Source {
	return job.NewSource(repo, log, cfg.MaxScale)
}

func newSkillsService(src *job.Source, cfg config.Config) skills.UseCase {
	return skills.NewService(src, nlp.NewNormalizer(cfg.Stopwords), nlp.NewSkillCounter(cfg.SkillVocabulary))
}

func newHTTPServer(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, hh *handlers.HealthHandler, sh *handlers.SkillsHandler) *fiber.App {
	app := httpapi.NewApp()
	httpapi.Register(app, httpapi.Options{
		StaticDir:   cfg.StaticDir,
		CORSOrigins: cfg.CORSOrigins,
		Docs:        swagger.HandlerDefault,
	}, log, hh, sh)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", ":"+cfg.Port)
			if err != nil {
				return err
			}
			log.Info("HTTP server listening", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := app.Listener(ln); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			return app.ShutdownWithContext(ctx)
		},
	})
	return app
}

func initTracing(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) error {
	if cfg.OTelCollectorURL == "" {
		return nil
	}
	shutdown, err := telemetry.InitTracer(context.Background(), "skillstat", version, cfg.OTelCollectorURL)
	if err != nil {
		return err
	}
	log.Info("Tracing enabled", zap.String("collector", cfg.OTelCollectorURL))
	lc.Append(fx.Hook{OnStop: shutdown})
	return nil
}

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Provide(
			config.Load,
			newLogger,
			newPool,
			newCache,
			newRepository,
			newReadiness,
			newSource,
			newSkillsService,
			handlers.NewHealthHandler,
			handlers.NewSkillsHandler,
			newHTTPServer,
		),
		fx.Invoke(
			initTracing,
			func(*fiber.App) {},
		),
	)
	app.Run()
}
