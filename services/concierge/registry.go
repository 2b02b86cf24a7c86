package concierge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"silesiagrand/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry tracks the sessions of every mounted concierge widget.
type Registry struct {
	completer     Completer
	store         TranscriptStore
	logger        *zap.Logger
	historyWindow int
	idleTTL       time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

type RegistryConfig struct {
	HistoryWindow int
	// IdleTTL is how long a quiet session stays resident before Prune drops it.
	IdleTTL time.Duration
}

func NewRegistry(completer Completer, store TranscriptStore, logger *zap.Logger, cfg RegistryConfig) *Registry {
	if store == nil {
		store = NopTranscriptStore{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		completer:     completer,
		store:         store,
		logger:        logger,
		historyWindow: cfg.HistoryWindow,
		idleTTL:       cfg.IdleTTL,
		sessions:      make(map[string]*Session),
	}
}

// Create starts a new greeted session.
func (r *Registry) Create(ctx context.Context) *Session {
	s := NewSession(uuid.New().String(), r.completer, r.sessionOptions()...)
	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	r.persist(s.Snapshot())
	r.logger.Info("Concierge session created", zap.String("session", s.ID()))
	return s
}

// Get returns a resident session or restores it from the transcript store.
func (r *Registry) Get(ctx context.Context, id string) (*Session, error) {
	r.mu.Lock()
	if s, ok := r.sessions[id]; ok {
		r.mu.Unlock()
		s.touch()
		return s, nil
	}
	r.mu.Unlock()

	snap, err := r.store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}

	restored := RestoreSession(id, snap.Transcript, r.completer, r.sessionOptions()...)
	restored.open = snap.Open

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another request may have restored it first.
	if s, ok := r.sessions[id]; ok {
		return s, nil
	}
	r.sessions[id] = restored
	r.logger.Info("Concierge session restored", zap.String("session", id), zap.Int("turns", len(snap.Transcript)))
	return restored, nil
}

// Prune drops sessions that have been idle longer than the configured TTL and returns
// how many were removed. Their transcripts stay in the store.
func (r *Registry) Prune(now time.Time) int {
	if r.idleTTL <= 0 {
		return 0
	}
	cutoff := now.Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.idleSince(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor prunes idle sessions every interval until ctx is done.
func (r *Registry) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := r.Prune(now); n > 0 {
					r.logger.Debug("Pruned idle concierge sessions", zap.Int("count", n))
				}
			}
		}
	}()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) sessionOptions() []SessionOption {
	return []SessionOption{
		WithLogger(r.logger),
		WithHistoryWindow(r.historyWindow),
		WithSettledHook(r.persist),
	}
}

func (r *Registry) persist(snap models.SessionSnapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.store.Save(ctx, snap); err != nil {
		r.logger.Warn("Failed to mirror concierge transcript", zap.String("session", snap.ID), zap.Error(err))
	}
}
