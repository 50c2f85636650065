package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"Dashboard/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
)

type App struct {
	cfg      config.Config
	db       *pgxpool.Pool
	redis    *redis.Client
	router   *gin.Engine
	degraded bool
}

// New wires the application. Database init is retried with a fixed backoff;
// if every attempt fails the app comes up degraded, serving only the health
// endpoint instead of crashlooping while the database starts.
func New(cfg config.Config) (*App, error) {
	a := &App{cfg: cfg}

	db, err := initPostgresWithRetry(cfg.PG)
	if err != nil {
		log.Printf("database init exhausted: %v; serving health endpoint only", err)
		a.degraded = true
		a.router = newDegradedRouter(cfg)
		return a, nil
	}
	a.db = db

	// Redis is optional: without it the profile cache is simply disabled.
	if cfg.Redis.Addr != "" {
		rdb, err := newRedis(cfg.Redis)
		if err != nil {
			log.Printf("redis unavailable, profile cache disabled: %v", err)
		} else {
			a.redis = rdb
		}
	}

	a.router = newRouter(cfg, a.db, a.redis)
	return a, nil
}

// Router returns the HTTP handler.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Degraded reports whether the app failed database init and serves only health.
func (a *App) Degraded() bool {
	return a.degraded
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
	return nil
}

// initPostgresWithRetry connects, pings and migrates with bounded attempts
// and a fixed delay between them.
func initPostgresWithRetry(cfg config.PGConfig) (*pgxpool.Pool, error) {
	var lastErr error
	for attempt := 1; attempt <= cfg.InitRetries; attempt++ {
		db, err := initPostgres(cfg.DSN)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.Printf("database init failed (attempt %d/%d): %v", attempt, cfg.InitRetries, err)
		if attempt < cfg.InitRetries {
			time.Sleep(cfg.InitBackoff.Duration())
		}
	}
	return nil, fmt.Errorf("after %d attempts: %w", cfg.InitRetries, lastErr)
}

func initPostgres(dsn string) (*pgxpool.Pool, error) {
	pool, err := newPostgres(dsn)
	if err != nil {
		return nil, err
	}
	if err := runMigrations(dsn, "./migrations"); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func newPostgres(dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}

	return pool, nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func runMigrations(dsn string, migrationsDir string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("goose open db: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func newRouter(cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, db, rdb)
	return r
}

// newDegradedRouter serves only the liveness probe.
func newDegradedRouter(cfg config.Config) *gin.Engine {
	r := gin.Default()
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "degraded", "env": cfg.App.Env, "timestamp": time.Now().UTC()})
	})
	return r
}
