// Package engine implements the emulated document analysis operations on
// top of the sqlite workspace, the object store and the analyzer.
package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"docanalysis/internal/config"
	"docanalysis/internal/domain"
	"docanalysis/internal/engine/auth"
	"docanalysis/internal/events"
	"docanalysis/internal/logger"
	"docanalysis/internal/objectstore"
	"docanalysis/internal/repo"
	"docanalysis/internal/telemetry"
)

type Engine struct {
	DB     *sql.DB
	Repo   repo.Repo
	Events events.Writer
	Auth   auth.Service
	Config *config.Config
	Store  objectstore.Store
	Now    func() time.Time

	limiter *rate.Limiter
	log     *logrus.Entry
}

func New(db *sql.DB, cfg *config.Config, store objectstore.Store) Engine {
	r := repo.Repo{DB: db}
	limit := rate.Inf
	if cfg.Limits.SyncRate > 0 {
		limit = rate.Limit(cfg.Limits.SyncRate)
	}
	return Engine{
		DB:      db,
		Repo:    r,
		Events:  events.Writer{DB: db},
		Auth:    auth.Service{Repo: r, Config: cfg},
		Config:  cfg,
		Store:   store,
		Now:     time.Now,
		limiter: rate.NewLimiter(limit, max(cfg.Limits.SyncBurst, 1)),
		log:     logger.For("engine"),
	}
}

func (e Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e Engine) stamp() string { return domain.Stamp(e.now()) }

// span opens the trace span of one operation.
func (e Engine) span(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("docanalysis.operation", op))
	return telemetry.Tracer().Start(ctx, "docanalysis."+op, trace.WithAttributes(attrs...))
}

// throttle takes a token from the synchronous operation bucket.
func (e Engine) throttle() error {
	if e.limiter != nil && !e.limiter.Allow() {
		return apiError(errProvisionedThroughput, "synchronous request rate exceeded")
	}
	return nil
}

func (e Engine) modelVersion() *string {
	return ptr(e.Config.Service.ModelVersion)
}

func ptr[T any](v T) *T { return &v }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// parseStamp converts a stored timestamp for output; unparsable values are
// left absent.
func parseStamp(s string) *time.Time {
	t, err := domain.ParseStamp(s)
	if err != nil {
		return nil
	}
	return &t
}
