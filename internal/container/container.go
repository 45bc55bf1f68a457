package container

import (
	"context"
	"fmt"
	"time"

	"brickset/client/internal/config"
	"brickset/client/internal/proxy"
	"brickset/client/internal/queue"
	"brickset/client/internal/repository"
	"brickset/client/internal/service"
	"brickset/client/internal/session"
	"brickset/client/internal/state"
	"brickset/client/internal/transport"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const minIdleTime = time.Minute

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Session    *session.Session
	Tokens     state.TokenStore
	Repository repository.ArchiveRepository
	Queue      queue.Queue

	Service *service.Service

	transport *transport.RestyTransport
	db        *pgxpool.Pool
	redis     *redis.Client
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	proxySupplier := proxy.NewProxySupplier(ctx, cfg.Brickset.Proxies, cfg.Brickset.BaseURL)

	container.transport = transport.NewRestyTransport(cfg.Brickset, proxySupplier)
	container.Session = session.New(container.transport, cfg.Brickset.APIKey, cfg.Brickset.BaseURL)

	db, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	container.db = db

	archive := repository.NewArchiveRepository(db)
	if err := archive.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	container.Repository = archive

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})
	container.redis = rdb

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("✅ Connected to Redis successfully")

	redisQueue, err := queue.NewRedisQueue(ctx, rdb, cfg.Redis)
	if err != nil {
		return nil, err
	}
	container.Queue = redisQueue

	container.Tokens = state.NewRedisTokenStore(rdb, time.Duration(cfg.Redis.TokenTTL)*time.Second)

	container.Service = service.NewService(
		container.Session,
		archive,
		redisQueue,
		cfg.Brickset.PageSize,
		cfg.Brickset.MaxWorkers,
		minIdleTime,
	)

	return container, nil
}

// Authenticate reuses the cached user hash when the server still accepts it,
// otherwise logs in with the password and caches the new hash.
func (c *Container) Authenticate(ctx context.Context, password string) error {
	username := c.Config.Brickset.Username

	hash, ok, err := c.Tokens.Load(ctx, username)
	if err != nil {
		log.Warnf("⚠️ Could not read cached user hash: %v", err)
	}

	if ok {
		if err := c.Session.ReuseLogin(ctx, hash); err == nil {
			log.Infof("🔑 Reusing saved login for %s", username)
			return nil
		}
		log.Infof("🔄 Saved login for %s expired", username)
		if err := c.Tokens.Delete(ctx, username); err != nil {
			log.Warnf("⚠️ Could not drop stale user hash: %v", err)
		}
	}

	hash, err = c.Session.LogIn(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := c.Tokens.Save(ctx, username, hash); err != nil {
		log.Warnf("⚠️ Could not cache user hash: %v", err)
	}

	return nil
}

// Run syncs the collection once and then applies queued changes until ctx
// is cancelled.
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := c.Service.SyncCollection(ctx)
		return err
	})

	g.Go(func() error {
		return c.Service.RunWorkers(ctx, c.Config.Brickset.MaxWorkers)
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if c.transport != nil {
		_ = c.transport.Close()
	}
	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		_ = c.redis.Close()
	}

	log.Info("Container shut down successfully")
	return nil
}
