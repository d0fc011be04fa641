// Package server initializes and runs the files-manager server. It connects
// the metadata and session stores, builds the blob backend, wires the
// services and serves the HTTP API until the process is signalled to stop.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ASLawan/alx-files-manager/internal/logging"
	"github.com/ASLawan/alx-files-manager/internal/server/config"
	"github.com/ASLawan/alx-files-manager/internal/server/httpapi"
	filesrepo "github.com/ASLawan/alx-files-manager/internal/server/repositories/files"
	usersrepo "github.com/ASLawan/alx-files-manager/internal/server/repositories/users"
	"github.com/ASLawan/alx-files-manager/internal/server/services"
	"github.com/ASLawan/alx-files-manager/internal/server/sessions"
	"github.com/ASLawan/alx-files-manager/internal/server/storage"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const shutdownTimeout = 10 * time.Second

// App owns the server's long-lived resources and the wired HTTP handler.
type App struct {
	config  *config.Config
	logger  logging.Logger
	mongo   *mongo.Client
	redis   *redis.Client
	handler *httpapi.Handler
}

// mongoPinger adapts the Mongo client to the health-check interface.
type mongoPinger struct {
	client *mongo.Client
}

func (p *mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI()))
	if err != nil {
		return nil, fmt.Errorf("mongo init error: %w", err)
	}
	db := mongoClient.Database(cfg.DBDatabase)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	users := usersrepo.NewMongoRepository(db)
	files := filesrepo.NewMongoRepository(db)
	store := sessions.NewRedisStore(redisClient)

	handler := httpapi.NewHandler(
		services.NewUserService(users, store),
		services.NewFileService(files, users, store, blobs),
		services.NewAppService(store, &mongoPinger{client: mongoClient}, users, files),
		logger,
	)

	return &App{
		config:  cfg,
		logger:  logger,
		mongo:   mongoClient,
		redis:   redisClient,
		handler: handler,
	}, nil
}

func newBlobStore(ctx context.Context, cfg *config.Config) (storage.BlobStore, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendS3:
		return storage.NewS3Store(ctx, storage.S3Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			AccessKey:    cfg.S3RootUser,
			SecretKey:    cfg.S3RootPassword,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
	default:
		return storage.NewDiskStore(cfg.FolderPath), nil
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the HTTP API until ctx is cancelled or a termination signal
// arrives, then shuts down gracefully and releases the store clients.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.Addr,
		Handler: app.handler.Routes(),
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "shutdown error", "error", err.Error())
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.Addr, "storage", app.config.StorageBackend)

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return app.Close()
}

// Close disconnects the metadata and session store clients.
func (app *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := app.mongo.Disconnect(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := app.redis.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
