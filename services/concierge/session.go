package concierge

import (
	"context"
	"strings"
	"sync"
	"time"

	"silesiagrand/models"

	"go.uber.org/zap"
)

// Completer produces the next concierge reply from the new utterance and the prior
// history. The history never contains the utterance itself.
type Completer interface {
	Complete(ctx context.Context, utterance string, history []models.ChatTurn) (string, error)
}

// Session owns one guest conversation. At most one completion is in flight at a time;
// submissions that arrive while busy are dropped.
type Session struct {
	id        string
	completer Completer
	logger    *zap.Logger

	historyWindow int
	onSettled     func(models.SessionSnapshot)

	mu         sync.Mutex
	transcript []models.ChatTurn
	busy       bool
	open       bool
	lastActive time.Time
	// seq numbers settled snapshots so the hook never sees them out of order.
	seq uint64

	hookMu     sync.Mutex
	settledSeq uint64
}

type SessionOption func(*Session)

// WithLogger sets the session logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithHistoryWindow caps how many prior turns are replayed to the completer.
// Zero replays the whole transcript.
func WithHistoryWindow(n int) SessionOption {
	return func(s *Session) { s.historyWindow = n }
}

// WithSettledHook registers fn to be called with a snapshot whenever the session
// reaches a settled state (no unanswered user turn). Calls are serialized and a
// snapshot older than one already delivered is skipped.
func WithSettledHook(fn func(models.SessionSnapshot)) SessionOption {
	return func(s *Session) { s.onSettled = fn }
}

// NewSession creates a session seeded with the concierge greeting.
func NewSession(id string, completer Completer, opts ...SessionOption) *Session {
	return RestoreSession(id, []models.ChatTurn{models.AssistantTurn(models.ConciergeGreeting)}, completer, opts...)
}

// RestoreSession rebuilds a session from a previously settled transcript.
func RestoreSession(id string, transcript []models.ChatTurn, completer Completer, opts ...SessionOption) *Session {
	s := &Session{
		id:         id,
		completer:  completer,
		logger:     zap.NewNop(),
		transcript: append([]models.ChatTurn(nil), transcript...),
		lastActive: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string { return s.id }

// Submit appends utterance as a user turn, asks the completer for a reply and appends
// exactly one assistant turn. It returns ErrEmptyUtterance for blank input and
// ErrSessionBusy when another submission is still waiting on its reply; neither
// changes the transcript.
func (s *Session) Submit(ctx context.Context, utterance string) (models.ChatTurn, error) {
	if strings.TrimSpace(utterance) == "" {
		return models.ChatTurn{}, ErrEmptyUtterance
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		s.logger.Debug("Dropping submission while busy", zap.String("session", s.id))
		return models.ChatTurn{}, ErrSessionBusy
	}
	history := s.historyLocked()
	s.transcript = append(s.transcript, models.UserTurn(utterance))
	s.busy = true
	s.lastActive = time.Now()
	s.mu.Unlock()

	// The reply must land even if the caller goes away.
	reply := s.complete(context.WithoutCancel(ctx), utterance, history)

	s.mu.Lock()
	turn := models.AssistantTurn(reply)
	s.transcript = append(s.transcript, turn)
	s.busy = false
	s.lastActive = time.Now()
	snap, seq := s.settledLocked()
	s.mu.Unlock()

	s.settle(snap, seq)
	return turn, nil
}

// ReceiveExternalIntent reveals the conversation and submits a booking request that
// another surface synthesized on the guest's behalf.
func (s *Session) ReceiveExternalIntent(ctx context.Context, message string) (models.ChatTurn, error) {
	s.Open()
	return s.Submit(ctx, message)
}

func (s *Session) complete(ctx context.Context, utterance string, history []models.ChatTurn) string {
	text, err := s.completer.Complete(ctx, utterance, history)
	if err != nil {
		s.logger.Error("Completion failed", zap.String("session", s.id), zap.Error(err))
		return models.ConciergeFallbackReply
	}
	if strings.TrimSpace(text) == "" {
		s.logger.Warn("Completion returned no text", zap.String("session", s.id))
		return models.EmptyReplyFallback
	}
	return text
}

// historyLocked copies the prior turns, honouring the history window.
func (s *Session) historyLocked() []models.ChatTurn {
	turns := s.transcript
	if s.historyWindow > 0 && len(turns) > s.historyWindow {
		turns = turns[len(turns)-s.historyWindow:]
	}
	return append([]models.ChatTurn(nil), turns...)
}

func (s *Session) Open() { s.setOpen(true) }
func (s *Session) Close() { s.setOpen(false) }

// setOpen toggles the widget. While a reply is pending the toggle is carried by the
// snapshot taken when that reply lands.
func (s *Session) setOpen(open bool) {
	s.mu.Lock()
	s.open = open
	s.lastActive = time.Now()
	if s.busy {
		s.mu.Unlock()
		return
	}
	snap, seq := s.settledLocked()
	s.mu.Unlock()

	s.settle(snap, seq)
}

func (s *Session) settledLocked() (models.SessionSnapshot, uint64) {
	s.seq++
	return s.snapshotLocked(), s.seq
}

func (s *Session) settle(snap models.SessionSnapshot, seq uint64) {
	if s.onSettled == nil {
		return
	}
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	if seq <= s.settledSeq {
		return
	}
	s.settledSeq = seq
	s.onSettled(snap)
}

// touch marks the session as in use by a visible widget.
func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Transcript returns a copy of the turns in conversation order.
func (s *Session) Transcript() []models.ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatTurn(nil), s.transcript...)
}

func (s *Session) Snapshot() models.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() models.SessionSnapshot {
	return models.SessionSnapshot{
		ID:         s.id,
		Transcript: append([]models.ChatTurn(nil), s.transcript...),
		Busy:       s.busy,
		Open:       s.open,
	}
}

// idleSince reports whether the session is quiet and was last touched before t.
func (s *Session) idleSince(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.busy && s.lastActive.Before(t)
}
