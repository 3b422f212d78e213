// Package app wires backend adapters, the session, gateways and stores together.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/and161185/fishlog/internal/config"
	"github.com/and161185/fishlog/internal/gateway"
	"github.com/and161185/fishlog/internal/photostore"
	"github.com/and161185/fishlog/internal/repository"
	"github.com/and161185/fishlog/internal/repository/postgres"
	"github.com/and161185/fishlog/internal/service"
	"github.com/and161185/fishlog/internal/session"
	"github.com/and161185/fishlog/internal/store"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Deps are the backend-facing collaborators of an App.
type Deps struct {
	Users   repository.UserRepository
	Diaries repository.DiaryRepository
	Catches repository.CatchRepository
	Spots   repository.SpotRepository
	Photos  gateway.PhotoStore // nil disables photo uploads

	SignKey   []byte
	AccessTTL time.Duration
}

// App is one signed-in client: session, gateways and stores.
type App struct {
	Session *session.Manager
	Auth    service.AuthService

	DiaryGateway *gateway.Diary
	Diary        *store.Diary
	Catches      *store.Catches
	Spots        *store.Spots

	log         *zap.Logger
	ctx         context.Context
	unsubscribe func()
	closeDB     func()

	mu        sync.Mutex
	reloadErr error
}

// New connects to the backend described by cfg and assembles an App.
// ctx bounds reloads triggered by principal changes.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	deps := Deps{
		Users:     postgres.NewUserRepo(db),
		Diaries:   postgres.NewDiaryRepo(db),
		Catches:   postgres.NewCatchRepo(db),
		Spots:     postgres.NewSpotRepo(db),
		SignKey:   []byte(cfg.JWTSignKey),
		AccessTTL: cfg.AccessTTL,
	}
	if cfg.PhotosEnabled() {
		client, err := photostore.NewS3Client(ctx, photostore.Options{
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("s3 client: %w", err)
		}
		deps.Photos = photostore.New(client, cfg.S3Bucket, cfg.PhotoBaseURL())
	}

	a := Assemble(ctx, deps, log)
	a.closeDB = db.Close
	return a, nil
}

// Assemble builds an App over already constructed collaborators.
func Assemble(ctx context.Context, d Deps, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	sess := session.NewManager(d.SignKey, log.Named("session"))
	a := &App{
		Session:      sess,
		Auth:         service.NewAuthService(d.Users, d.SignKey, d.AccessTTL, log.Named("auth")),
		DiaryGateway: gateway.NewDiary(d.Diaries, sess, log.Named("gateway")),
		log:          log,
		ctx:          ctx,
	}
	a.Diary = store.NewDiary(a.DiaryGateway, log.Named("store"))
	a.Catches = store.NewCatches(gateway.NewCatch(d.Catches, d.Photos, sess, log.Named("gateway")), log.Named("store"))
	a.Spots = store.NewSpots(gateway.NewSpot(d.Spots, sess, log.Named("gateway")), log.Named("store"))
	a.unsubscribe = sess.Subscribe(a.onPrincipalChange)
	return a
}

func (a *App) onPrincipalChange(userID uuid.UUID) {
	err := a.Reload(a.ctx, userID)
	if err != nil {
		a.log.Warn("reload after principal change failed", zap.Error(err))
	}
	a.mu.Lock()
	a.reloadErr = err
	a.mu.Unlock()
}

// Reload moves every store to userID concurrently and returns the first error.
func (a *App) Reload(ctx context.Context, userID uuid.UUID) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Diary.OnPrincipalChange(ctx, userID) })
	g.Go(func() error { return a.Catches.OnPrincipalChange(ctx, userID) })
	g.Go(func() error { return a.Spots.OnPrincipalChange(ctx, userID) })
	return g.Wait()
}

// SignIn hands token to the session and reports the outcome of the reload it triggers.
func (a *App) SignIn(token string) error {
	a.mu.Lock()
	a.reloadErr = nil
	a.mu.Unlock()

	if err := a.Session.SignIn(token); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reloadErr
}

// Close detaches from the session and releases the backend connection.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.closeDB != nil {
		a.closeDB()
	}
}
