// Package server wires the CardBoard server together: Postgres, object
// storage, domain services, the gRPC API and the HTTP functions, and runs
// them until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/cardboard/internal/logging"
	"github.com/dmitrijs2005/cardboard/internal/server/config"
	"github.com/dmitrijs2005/cardboard/internal/server/functions"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/cardboard/internal/server/services"
	"github.com/dmitrijs2005/cardboard/internal/server/storage"
	"github.com/dmitrijs2005/cardboard/internal/server/telemetry"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/cardboard/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	services gs.Services
	buckets  []*storage.Bucket
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	s3c, err := storage.NewClient(ctx, storage.Options{
		Region:    c.S3Region,
		AccessKey: c.S3RootUser,
		SecretKey: c.S3RootPassword,
		Endpoint:  c.S3BaseEndpoint,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	icons := storage.NewBucket(s3c, c.CardIconsBucket, c.S3BaseEndpoint)
	avatars := storage.NewBucket(s3c, c.AvatarsBucket, c.S3BaseEndpoint)

	notifications := services.NewNotificationService(db, rm)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		services: gs.Services{
			Users:         services.NewUserService(db, rm, c),
			Cards:         services.NewCardService(db, rm, icons, logger),
			Shares:        services.NewShareService(db, rm, icons, notifications, c.NotificationTimeout, logger),
			Notifications: notifications,
			Profiles:      services.NewProfileService(db, rm, avatars, logger),
		},
		buckets: []*storage.Bucket{icons, avatars},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// ensureBuckets creates missing buckets. Failure is logged only: uploads
// will fail later with ErrTransport while the rest keeps working.
func (app *App) ensureBuckets(ctx context.Context) {
	for _, b := range app.buckets {
		if err := b.EnsureExists(ctx); err != nil {
			app.logger.Warn(ctx, "bucket check failed", "bucket", b.Name(), "error", err)
		}
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := functions.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.services.Users, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	shutdownTracing, err := telemetry.Setup(ctx, "cardboard-server", app.config.OTLPEndpoint)
	if err != nil {
		app.logger.Warn(ctx, "tracing disabled", "error", err)
	}

	app.ensureBuckets(ctx)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
		app.logger.Warn(ctx, "tracing shutdown failed", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
