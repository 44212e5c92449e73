package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/assets"
	googleauth "portfolio-backend/internal/auth"
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/services/health"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server"
	"portfolio-backend/internal/shared/storage/db"
	"portfolio-backend/internal/shared/storage/object"
	localstore "portfolio-backend/internal/shared/storage/object/local"
	s3store "portfolio-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	ContentStore   content.Store
	ContentService *content.Service
	ContentHandler *content.Handler
	AssetStore     object.ObjectStore
	AssetService   *assets.Service
	AssetHandler   *assets.Handler
	GoogleAuth     *googleauth.GoogleService
	Health         *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.AssetStoreType) == "" {
		cfg.AssetStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	contentStore := buildContentStore(cfg, sqlDB)

	assetStore, err := buildAssetStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:       cfg,
		DB:           sqlDB,
		ContentStore: contentStore,
		AssetStore:   assetStore,
		Health:       health.NewService(),
	}

	app.ContentService = content.NewService(contentStore)
	app.ContentHandler = content.NewHandler(app.ContentService)
	app.AssetService = &assets.Service{Store: assetStore, BaseURL: cfg.AssetBaseURL}
	app.AssetHandler = assets.NewHandler(app.AssetService)
	app.GoogleAuth = googleauth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		cfg.AdminEmails,
	)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		ContentHandler: app.ContentHandler,
		AssetsHandler:  app.AssetHandler,
		GoogleAuth:     app.GoogleAuth,
		Health:         app.Health,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using file-backed content store: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using file-backed content store: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

// buildContentStore prefers Postgres when a database is available; otherwise
// the document lives in a single JSON file on disk.
func buildContentStore(cfg config.Config, sqlDB *sql.DB) content.Store {
	if sqlDB != nil {
		return &content.PGStore{DB: sqlDB}
	}
	return content.NewFileStore(cfg.ContentFile)
}

func buildAssetStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.AssetStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalAssetDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "development", "local", "":
		return true
	default:
		return false
	}
}
