package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/The-Gleb/product_banner/internal/domain/editor"
	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/The-Gleb/product_banner/internal/domain/usecase"
	"github.com/The-Gleb/product_banner/internal/errors"
	"github.com/The-Gleb/product_banner/internal/metrics"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

var _ usecase.EditorService = new(editorService)

const minSweepInterval = time.Second

type sessionEntry struct {
	session *editor.Session
	touched atomic.Int64
}

func (e *sessionEntry) touch(now time.Time) {
	e.touched.Store(now.UnixNano())
}

func (e *sessionEntry) idleFor(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, e.touched.Load()))
}

type editorService struct {
	ctx      context.Context
	deps     editor.Deps
	sessions *xsync.MapOf[string, *sessionEntry]
	idleTTL  time.Duration
	now      func() time.Time
}

// NewEditorService keeps mounted sessions in memory. Their fetches are bound
// to ctx rather than to the request that mounted them. Sessions untouched for
// idleTTL are closed by a sweep that runs until ctx is done; a non-positive
// idleTTL keeps them until Close.
func NewEditorService(ctx context.Context, deps editor.Deps, idleTTL time.Duration) *editorService {
	service := &editorService{
		ctx:      ctx,
		deps:     deps,
		sessions: xsync.NewMapOf[string, *sessionEntry](),
		idleTTL:  idleTTL,
		now:      time.Now,
	}

	if idleTTL > 0 {
		go service.sweepLoop(max(idleTTL/2, minSweepInterval))
	}

	return service
}

func (service *editorService) Mount(ctx context.Context, raw map[string]any) (string, editor.State) {
	id := uuid.NewString()
	attrs := entity.ParseAttributes(raw)

	session := editor.Mount(service.ctx, attrs, func(patch entity.AttributePatch, attrs entity.BannerAttributes) {
		slog.Debug("editor attributes replaced", "session_id", id, "attributes", attrs)
	}, service.deps)

	entry := &sessionEntry{session: session}
	entry.touch(service.now())
	service.sessions.Store(id, entry)
	metrics.SessionMounted()
	slog.Info("editor session mounted", "session_id", id, "product_id", attrs.ProductID)

	return id, session.State()
}

// State returns the session state. With wait set it first lets in-flight
// fetches settle, bounded by ctx.
func (service *editorService) State(ctx context.Context, id string, wait bool) (editor.State, error) {
	session, err := service.load(id)
	if err != nil {
		return editor.State{}, err
	}

	if wait {
		settle(ctx, session)
	}

	return session.State(), nil
}

func (service *editorService) Dispatch(ctx context.Context, id string, action editor.Action, wait bool) (editor.State, error) {
	session, err := service.load(id)
	if err != nil {
		return editor.State{}, err
	}

	if err := session.Dispatch(action); err != nil {
		return editor.State{}, err
	}

	if wait {
		settle(ctx, session)
	}

	return session.State(), nil
}

func (service *editorService) Close(ctx context.Context, id string) error {
	entry, ok := service.sessions.LoadAndDelete(id)
	if !ok {
		return errors.NewDomainError(errors.ErrSessionNotFound, "session %s", id)
	}

	entry.session.Close()
	metrics.SessionClosed()
	slog.Info("editor session closed", "session_id", id)

	return nil
}

// CloseAll drops every session, cancelling their fetches.
func (service *editorService) CloseAll() {
	service.sessions.Range(func(id string, entry *sessionEntry) bool {
		if _, ok := service.sessions.LoadAndDelete(id); ok {
			entry.session.Close()
			metrics.SessionClosed()
		}
		return true
	})
}

func (service *editorService) load(id string) (*editor.Session, error) {
	entry, ok := service.sessions.Load(id)
	if !ok {
		return nil, errors.NewDomainError(errors.ErrSessionNotFound, "session %s", id)
	}
	entry.touch(service.now())
	return entry.session, nil
}

func (service *editorService) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-service.ctx.Done():
			return
		case <-ticker.C:
			service.sweep(service.now())
		}
	}
}

// sweep closes sessions idle for at least idleTTL and returns how many it
// closed.
func (service *editorService) sweep(now time.Time) int {
	var expired []*editor.Session

	service.sessions.Range(func(id string, _ *sessionEntry) bool {
		service.sessions.Compute(id, func(entry *sessionEntry, loaded bool) (*sessionEntry, bool) {
			if !loaded {
				return entry, true
			}
			if entry.idleFor(now) < service.idleTTL {
				return entry, false
			}
			expired = append(expired, entry.session)
			slog.Info("editor session expired", "session_id", id)
			return entry, true
		})
		return true
	})

	for _, session := range expired {
		session.Close()
		metrics.SessionClosed()
	}

	return len(expired)
}

func settle(ctx context.Context, session *editor.Session) {
	select {
	case <-session.Settled():
	case <-ctx.Done():
	}
}
