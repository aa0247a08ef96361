package di

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wedding-invitation/application/serviceimpl"
	"wedding-invitation/domain/assets"
	"wedding-invitation/domain/models"
	"wedding-invitation/domain/repositories"
	"wedding-invitation/domain/services"
	"wedding-invitation/infrastructure/filestore"
	"wedding-invitation/infrastructure/memory"
	"wedding-invitation/infrastructure/postgres"
	"wedding-invitation/infrastructure/redis"
	"wedding-invitation/infrastructure/sqlite"
	"wedding-invitation/infrastructure/websocket"
	"wedding-invitation/infrastructure/worker"
	"wedding-invitation/interfaces/api/handlers"
	"wedding-invitation/interfaces/web"
	"wedding-invitation/pkg/config"
	"wedding-invitation/pkg/logger"
	"wedding-invitation/pkg/scheduler"
)

const (
	// GalleryPruneJobID drops view state of guests gone for galleryIdleTTL.
	// It runs on the GALLERY_PRUNE_CRON schedule.
	GalleryPruneJobID = "gallery-prune"
	galleryIdleTTL    = 6 * time.Hour
)

type Container struct {
	// Configuration
	Config  *config.Config
	Wedding *models.WeddingDetails

	// Infrastructure
	KVStore        repositories.KVStore
	Manifest       *assets.Manifest
	EventScheduler scheduler.EventScheduler
	WebSocket      *websocket.WebSocketManager
	Renderer       *web.Renderer

	// Repositories
	PhotoRepository repositories.PhotoRepository

	// Services
	GalleryService services.GalleryService
	RSVPService    services.RSVPService
	WeddingService services.WeddingService

	// Workers
	CelebrationWorker *worker.CelebrationWorker
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	if err := c.initWorkers(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	return c.scheduleJobs()
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg

	if err := logger.Init(cfg.Log.Dir, cfg.Log.Console); err != nil {
		fmt.Printf("Warning: Failed to initialize logger: %v\n", err)
	}
	logger.Startup("config_loaded", "Configuration loaded", map[string]interface{}{
		"env":            cfg.App.Env,
		"storage_driver": cfg.Storage.Driver,
		"log_dir":        cfg.Log.Dir,
	})

	wedding, err := config.LoadWedding(cfg.Wedding.DetailsFile)
	if err != nil {
		return err
	}
	c.Wedding = wedding
	logger.Startup("wedding_loaded", "Wedding details loaded", map[string]interface{}{
		"file":   cfg.Wedding.DetailsFile,
		"date":   wedding.Date,
		"photos": len(wedding.Photos),
	})
	return nil
}

func (c *Container) initInfrastructure() error {
	kv, err := OpenKVStore(c.Config)
	if err != nil {
		return err
	}
	c.KVStore = kv

	// A store that cannot be reached yet is not fatal; every read falls back.
	if err := kv.Ping(context.Background()); err != nil {
		logger.StartupWarn("storage_ping_failed", "Storage not reachable", map[string]interface{}{
			"driver": kv.Driver(),
			"error":  err.Error(),
		})
	} else {
		logger.Startup("storage_connected", "Storage connected", map[string]interface{}{"driver": kv.Driver()})
	}

	manifest, err := LoadManifest(c.Config)
	if err != nil {
		return err
	}
	c.Manifest = manifest
	thumbs, large := manifest.Len(assets.TierThumb), manifest.Len(assets.TierLarge)
	if thumbs == 0 || large == 0 {
		logger.StartupWarn("assets_missing", "Image folders are empty, photos will have no images", map[string]interface{}{
			"dir":    c.Config.Assets.Dir,
			"thumbs": thumbs,
			"large":  large,
		})
	} else {
		logger.Startup("assets_scanned", "Image manifest built", map[string]interface{}{
			"thumbs": thumbs,
			"large":  large,
		})
	}

	c.WebSocket = websocket.Manager

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}
	c.Renderer = renderer
	logger.Startup("templates_parsed", "Page templates parsed", nil)

	return nil
}

// OpenKVStore picks the backend named by STORAGE_DRIVER. weddingctl
// opens the same store the server uses.
func OpenKVStore(cfg *config.Config) (repositories.KVStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.NewKVStore(), nil

	case config.DriverFile:
		return filestore.NewKVStore(filepath.Join(cfg.Storage.DataDir, "wedding.json"))

	case config.DriverSQLite:
		return sqlite.NewKVStore(cfg.SQLite.Path)

	case config.DriverRedis:
		return redis.NewRedisClient(redis.RedisConfig{
			Host:      cfg.Redis.Host,
			Port:      cfg.Redis.Port,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		}), nil

	case config.DriverPostgres:
		db, err := postgres.NewDatabase(postgres.DatabaseConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			return nil, err
		}
		logger.Startup("db_connected", "Database connected", nil)

		if err := postgres.Migrate(db); err != nil {
			return nil, err
		}
		logger.Startup("db_migrated", "Database migrated", nil)
		return postgres.NewKVStore(db), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// LoadManifest scans the thumbnail and large image folders under ASSETS_DIR.
func LoadManifest(cfg *config.Config) (*assets.Manifest, error) {
	assetsFS := os.DirFS(cfg.Assets.Dir)
	thumbs, err := assets.ScanDir(assetsFS, cfg.Assets.ThumbDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan thumbnails: %w", err)
	}
	large, err := assets.ScanDir(assetsFS, cfg.Assets.LargeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan large images: %w", err)
	}
	return assets.NewManifest(thumbs, large), nil
}

func (c *Container) initRepositories() error {
	photos := assets.BindPhotos(c.Wedding.Photos, c.Manifest)
	c.PhotoRepository = memory.NewPhotoRepository(photos)
	logger.Startup("repositories_initialized", "Repositories initialized", map[string]interface{}{"photos": len(photos)})
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()
	logger.Startup("scheduler_started", "Event scheduler started", nil)
	return nil
}

func (c *Container) initWorkers() error {
	c.CelebrationWorker = worker.NewCelebrationWorker(c.WebSocket)
	c.CelebrationWorker.Start()
	return nil
}

func (c *Container) initServices() error {
	c.GalleryService = serviceimpl.NewGalleryService(c.PhotoRepository)
	c.RSVPService = serviceimpl.NewRSVPService(c.KVStore, c.CelebrationWorker, c.WebSocket)

	weddingService, err := serviceimpl.NewWeddingService(*c.Wedding, c.Manifest, c.EventScheduler, c.WebSocket)
	if err != nil {
		return err
	}
	c.WeddingService = weddingService

	logger.Startup("services_initialized", "Services initialized", nil)
	return nil
}

func (c *Container) scheduleJobs() error {
	if err := c.WeddingService.StartCountdownBroadcast(); err != nil {
		return fmt.Errorf("failed to schedule countdown: %w", err)
	}

	err := c.EventScheduler.AddJob(GalleryPruneJobID, c.Config.Jobs.GalleryPruneCron, func() {
		if n := c.GalleryService.PruneIdle(galleryIdleTTL); n > 0 {
			logger.Scheduler("gallery_pruned", "Idle gallery sessions dropped", map[string]interface{}{"count": n})
		}
	})
	if err != nil {
		logger.StartupWarn("gallery_prune_schedule_failed", "Failed to schedule gallery prune job", map[string]interface{}{
			"cron":  c.Config.Jobs.GalleryPruneCron,
			"error": err.Error(),
		})
	}

	logger.Startup("jobs_scheduled", "Background jobs scheduled", map[string]interface{}{"count": len(c.EventScheduler.ListJobs())})
	return nil
}

func (c *Container) Cleanup() error {
	logger.Startup("cleanup_started", "Starting cleanup...", nil)

	if c.CelebrationWorker != nil && c.CelebrationWorker.IsRunning() {
		c.CelebrationWorker.Stop()
	}

	if c.EventScheduler != nil {
		if c.EventScheduler.IsRunning() {
			c.EventScheduler.Stop()
			logger.Startup("scheduler_stopped", "Event scheduler stopped", nil)
		} else {
			logger.Startup("scheduler_already_stopped", "Event scheduler was already stopped", nil)
		}
	}

	// Closes the postgres pool too when that driver is in use.
	if c.KVStore != nil {
		if err := c.KVStore.Close(); err != nil {
			logger.StartupWarn("storage_close_failed", "Failed to close storage", map[string]interface{}{"error": err.Error()})
		} else {
			logger.Startup("storage_closed", "Storage closed", map[string]interface{}{"driver": c.KVStore.Driver()})
		}
	}

	logger.Startup("cleanup_completed", "Cleanup completed", nil)
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetRenderer() *web.Renderer {
	return c.Renderer
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		GalleryService:        c.GalleryService,
		RSVPService:           c.RSVPService,
		WeddingService:        c.WeddingService,
		RSVPConfirmationDelay: serviceimpl.ConfirmationDelay,
	}
}

func (c *Container) GetHandlerInfrastructure() *handlers.Infrastructure {
	return &handlers.Infrastructure{
		KVStore:      c.KVStore,
		Scheduler:    c.EventScheduler,
		Celebrations: c.CelebrationWorker,
		WebSocket:    c.WebSocket,
	}
}
