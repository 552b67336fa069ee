package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"frame-inbox/internal/api/http/handler"
	"frame-inbox/internal/api/http/route"
	"frame-inbox/internal/apperrors"
	"frame-inbox/internal/config"
	"frame-inbox/internal/model"
	"frame-inbox/internal/msg/outbox"
	"frame-inbox/internal/repository"
	"frame-inbox/internal/service"
	"frame-inbox/migrations"
	"frame-inbox/pkg/filestore"
	"frame-inbox/pkg/kafka"
	"frame-inbox/pkg/postgres"
	"frame-inbox/pkg/redis"
	"frame-inbox/pkg/server"
)

type FrameService interface {
	Upload(ctx context.Context, requestCode int64, images []io.Reader) ([]model.InboxEntry, error)
	List(ctx context.Context, requestCode int64) ([]model.InboxEntry, error)
	Delete(ctx context.Context, requestCode int64) ([]model.InboxEntry, error)
}

type HealthService interface {
	IsOK(ctx context.Context) (bool, error)
	CountFrames(ctx context.Context) (int64, error)
}

type HealthHandler interface {
	Ping(c *gin.Context)
	Health(c *gin.Context)
}

type FrameHandler interface {
	UploadFrames(c *gin.Context)
	ListFrames(c *gin.Context)
	DeleteFrames(c *gin.Context)
}

type Publisher interface {
	Run(ctx context.Context)
}

type App struct {
	Cfg        *config.Config
	Log        *zap.Logger
	Handler    *Handler
	Service    *Service
	DB         postgres.Postgres
	RDB        redis.Redis
	Producer   kafka.Producer
	HTTPServer server.HTTPServer
	EBus       *EBus
}

type Repository struct {
	TxManager        *repository.TxManager
	HealthRepository *repository.HealthRepository
	InboxRepository  *repository.InboxRepository
	OutboxRepository *repository.OutboxRepository
	FrameCache       *repository.FrameCacheRepository
}

type Service struct {
	HealthService HealthService
	FrameService  FrameService
}

type Handler struct {
	HealthHandler HealthHandler
	FrameHandler  FrameHandler
}

// EBus - OutboxPublisher равен nil, когда kafka выключена.
type EBus struct {
	OutboxPublisher Publisher
}

func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	db, err := initDB(&cfg.Database)
	if err != nil {
		log.Error("Failed to initialize database", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log.Debug("Database initialized")

	var rdb redis.Redis

	if cfg.Redis.Enable {
		rdb, err = initRedis(&cfg.Redis)
		if err != nil {
			db.Close()
			log.Error("Failed to initialize redis", zap.Error(err))
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}

		log.Debug("Redis initialized")
	}

	store, err := initStorage(&cfg.Storage)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Debug("Frame storage initialized", zap.String("root", store.Root()))

	repo := initRepository(log, db, rdb, cfg.Redis.TTL)

	var producer kafka.Producer

	eBus := &EBus{}

	if cfg.Kafka.Enable {
		producer, eBus, err = initEBus(log, &cfg.Kafka, repo)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize ebus: %w", err)
		}
	}

	svc := initService(log, cfg, repo, store)

	hdl := initHandler(log, svc)

	httpServer := initHTTPServer(log, cfg, hdl)

	return &App{
		Cfg:        cfg,
		Log:        log,
		Handler:    hdl,
		Service:    svc,
		DB:         db,
		RDB:        rdb,
		Producer:   producer,
		HTTPServer: httpServer,
		EBus:       eBus,
	}, nil
}

func MustNew(cfg *config.Config, log *zap.Logger) *App {
	app, err := New(cfg, log)
	if err != nil {
		panic(err)
	}
	return app
}

// Run blocks until the HTTP server fails or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("Http server started",
			zap.String("host", a.Cfg.HTTPServer.Host),
			zap.Uint16("port", a.Cfg.HTTPServer.Port),
		)

		return a.HTTPServer.Run()
	})

	if a.EBus.OutboxPublisher != nil {
		g.Go(func() error {
			a.EBus.OutboxPublisher.Run(ctx)
			return nil
		})
	}

	return g.Wait()
}

func (a *App) Shutdown() error {
	err := apperrors.ErrShutdown

	if srvErr := a.HTTPServer.Shutdown(); srvErr != nil {
		err = fmt.Errorf("%w, failed to shutdown http server: %w", err, srvErr)
	}

	a.Log.Debug("Http server shutdown")

	if a.Producer != nil {
		if pErr := a.Producer.Close(); pErr != nil {
			err = fmt.Errorf("%w, failed to close kafka producer: %w", err, pErr)
		}

		a.Log.Debug("Kafka producer closed")
	}

	if a.RDB != nil {
		if rdbErr := a.RDB.Close(); rdbErr != nil {
			err = fmt.Errorf("%w, failed to close RDB: %w", err, rdbErr)
		}

		a.Log.Debug("Redis closed")
	}

	a.DB.Close()
	a.Log.Debug("Database closed")

	if err == apperrors.ErrShutdown { //nolint:errorlint // only the bare sentinel means nothing failed
		return nil
	}

	return err
}

func initDB(cfg *config.Database) (postgres.Postgres, error) {
	postgresCfg := &postgres.Config{
		URL:             cfg.URL,
		MaxConns:        cfg.MaxConns,
		MinConns:        cfg.MinConns,
		MaxConnLifetime: cfg.MaxConnLifetime,
		MaxConnIdleTime: cfg.MaxConnIdleTime,
		ConnectTimeout:  cfg.ConnectTimeout,
		Migration: postgres.Migration{
			AutoApply: cfg.Migration.AutoApply,
			Source:    migrations.FS,
		},
	}

	db, err := postgres.New(postgresCfg)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func initRedis(cfg *config.Redis) (redis.Redis, error) {
	redisCfg := &redis.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	rdb, err := redis.New(redisCfg)
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func initStorage(cfg *config.Storage) (*filestore.Store, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return filestore.New(cfg.Root, loc)
}

func initRepository(log *zap.Logger, db postgres.Postgres, rdb redis.Redis, cacheTTL time.Duration) *Repository {
	repo := &Repository{
		TxManager:        repository.NewTxManager(db.Pool()),
		HealthRepository: repository.NewHealthRepository(db.Pool()),
		InboxRepository:  repository.NewInboxRepository(db.Pool()),
		OutboxRepository: repository.NewOutboxRepository(db.Pool()),
	}

	log.Debug("Postgres repositories initialized")

	if rdb != nil {
		repo.FrameCache = repository.NewFrameCacheRepository(rdb.Client(), cacheTTL)
		log.Debug("Frame cache repository initialized")
	}

	return repo
}

func initService(log *zap.Logger, cfg *config.Config, repo *Repository, store *filestore.Store) *Service {
	healthSvc := service.NewHealthService(log, repo.HealthRepository)
	log.Debug("Health service initialized")

	var cache service.FrameCache
	if repo.FrameCache != nil {
		cache = repo.FrameCache
	}

	frameCfg := service.FrameConfig{
		EventsEnabled: cfg.Kafka.Enable,
		UploadedTopic: cfg.Kafka.Topics.Uploaded,
		DeletedTopic:  cfg.Kafka.Topics.Deleted,
	}

	frameSvc := service.NewFrameService(
		log,
		frameCfg,
		repo.InboxRepository,
		repo.OutboxRepository,
		repo.TxManager,
		store,
		cache,
	)
	log.Debug("Frame service initialized")

	return &Service{
		HealthService: healthSvc,
		FrameService:  frameSvc,
	}
}

func initHandler(log *zap.Logger, svc *Service) *Handler {
	healthHandler := handler.NewHealthHandler(log, svc.HealthService)
	log.Debug("Health handler initialized")

	frameHandler := handler.NewFrameHandler(log, svc.FrameService)
	log.Debug("Frame handler initialized")

	return &Handler{
		HealthHandler: healthHandler,
		FrameHandler:  frameHandler,
	}
}

func initHTTPServer(log *zap.Logger, cfg *config.Config, hdl *Handler) server.HTTPServer {
	router := route.SetupRouter(
		log,
		cfg,
		hdl.HealthHandler,
		hdl.FrameHandler,
	)

	httpServer := server.NewHTTPServer(
		server.WithAddr(cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		server.WithTimeout(cfg.HTTPServer.Timeout.Read, cfg.HTTPServer.Timeout.Write, cfg.HTTPServer.Timeout.Idle),
		server.WithHandler(router),
	)

	return httpServer
}

func initEBus(log *zap.Logger, cfg *config.Kafka, repo *Repository) (kafka.Producer, *EBus, error) {
	producer, err := kafka.NewProducer(
		cfg.Brokers,
		kafka.WithBalancer(kafka.Hash),
		kafka.WithRequiredAcks(kafka.RequireAll),
		kafka.WithClientID(cfg.Producer.Name),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init kafka producer: %w", err)
	}

	log.Debug("Kafka producer initialized")

	outboxCfg := outbox.Config{
		Name:         cfg.Producer.Name,
		WorkerCount:  cfg.Producer.WorkerCount,
		PollInterval: cfg.Producer.PollInterval,
		BatchSize:    cfg.Producer.BatchSize,
	}

	publisher := outbox.NewPublisher(
		log,
		outboxCfg,
		producer,
		repo.OutboxRepository,
		repo.TxManager,
	)

	log.Debug("Outbox publisher initialized")

	return producer, &EBus{OutboxPublisher: publisher}, nil
}
