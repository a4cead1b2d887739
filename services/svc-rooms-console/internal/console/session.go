package console

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/ports"
	"github.com/google/uuid"
)

type (
	// ToastQueue is the feedback channel of one session that the page drains.
	ToastQueue interface {
		ports.Feedback
		Drain() []model.Notification
	}

	Session struct {
		ID     string
		List   *RoomsList
		Toasts ToastQueue

		mu         sync.Mutex
		createdAt  time.Time
		lastSeen   time.Time
		navigation map[model.RoomID]Navigation
	}

	SessionInfo struct {
		ID        string    `json:"id"`
		CreatedAt time.Time `json:"createdAt"`
		LastSeen  time.Time `json:"lastSeen"`
		Page      uint      `json:"page"`
		Rows      uint      `json:"rowsPerPage"`
		Loading   bool      `json:"loading"`
		Dialog    string    `json:"dialog"`
	}

	// SessionFactory builds the controller and toast queue for a new session.
	SessionFactory func(id string) (*RoomsList, ToastQueue)

	SessionsConfig struct {
		IdleTTL     time.Duration
		MaxSessions uint
	}

	Sessions struct {
		mu       sync.Mutex
		sessions map[string]*Session
		factory  SessionFactory
		cfg      SessionsConfig
		logger   logger.Logger
		now      func() time.Time
	}
)

// StoreNavigation keeps edit state until the edit page reads it once.
func (s *Session) StoreNavigation(id model.RoomID, nav Navigation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.navigation == nil {
		s.navigation = make(map[model.RoomID]Navigation)
	}

	s.navigation[id] = nav
}

// TakeNavigation returns and forgets the stored edit state for id.
func (s *Session) TakeNavigation(id model.RoomID) (Navigation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nav, ok := s.navigation[id]
	delete(s.navigation, id)

	return nav, ok
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSeen
}

func (s *Session) info() SessionInfo {
	snapshot := s.List.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionInfo{
		ID:        s.ID,
		CreatedAt: s.createdAt,
		LastSeen:  s.lastSeen,
		Page:      snapshot.Page,
		Rows:      snapshot.RowsPerPage,
		Loading:   snapshot.Loading,
		Dialog:    string(snapshot.Dialog.Phase),
	}
}

func NewSessions(factory SessionFactory, cfg SessionsConfig, log logger.Logger) *Sessions {
	return &Sessions{
		sessions: make(map[string]*Session),
		factory:  factory,
		cfg:      cfg,
		logger:   log.Component("sessions"),
		now:      time.Now,
	}
}

// Get returns a live session and marks it as used.
func (r *Sessions) Get(id string) (*Session, bool) {
	r.mu.Lock()
	session, ok := r.sessions[id]
	r.mu.Unlock()

	if !ok {
		return nil, false
	}

	session.touch(r.now())

	return session, true
}

// Exists reports whether id names a live session without marking it used.
func (r *Sessions) Exists(id string) bool {
	if id == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[id]

	return ok
}

// GetOrCreate returns the session for id, creating a fresh one under a new
// id when it is unknown. The least recently used session is evicted when
// the registry is full.
func (r *Sessions) GetOrCreate(id string) (*Session, bool) {
	if session, ok := r.Get(id); ok {
		return session, false
	}

	now := r.now()
	newID := uuid.NewString()
	list, toasts := r.factory(newID)

	session := &Session{
		ID:        newID,
		List:      list,
		Toasts:    toasts,
		createdAt: now,
		lastSeen:  now,
	}

	var evicted *Session

	r.mu.Lock()
	if r.cfg.MaxSessions > 0 && uint(len(r.sessions)) >= r.cfg.MaxSessions {
		evicted = r.oldestLocked()
		if evicted != nil {
			delete(r.sessions, evicted.ID)
		}
	}
	r.sessions[newID] = session
	r.mu.Unlock()

	if evicted != nil {
		evicted.List.Unmount()
		r.logger.Info().Str("evicted_session", evicted.ID).Msg("session registry full, evicted least recently used")
	}

	return session, true
}

func (r *Sessions) Remove(id string) bool {
	r.mu.Lock()
	session, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		session.List.Unmount()
	}

	return ok
}

// EvictIdle ends every session unused for longer than the idle TTL.
func (r *Sessions) EvictIdle() int {
	cutoff := r.now().Add(-r.cfg.IdleTTL)

	var expired []*Session

	r.mu.Lock()
	for id, session := range r.sessions {
		if session.idleSince().Before(cutoff) {
			expired = append(expired, session)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, session := range expired {
		session.List.Unmount()
	}

	return len(expired)
}

// Purge ends all sessions.
func (r *Sessions) Purge() int {
	r.mu.Lock()
	purged := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, session := range purged {
		session.List.Unmount()
	}

	return len(purged)
}

func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

func (r *Sessions) List() []SessionInfo {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, session := range r.sessions {
		sessions = append(sessions, session)
	}
	r.mu.Unlock()

	infos := make([]SessionInfo, 0, len(sessions))
	for _, session := range sessions {
		infos = append(infos, session.info())
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.Before(infos[j].CreatedAt)
	})

	return infos
}

// RunJanitor evicts idle sessions every interval until ctx is done.
func (r *Sessions) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := r.EvictIdle(); evicted > 0 {
				r.logger.Debug().Int("evicted", evicted).Msg("evicted idle sessions")
			}
		}
	}
}

func (r *Sessions) oldestLocked() *Session {
	var oldest *Session

	for _, session := range r.sessions {
		if oldest == nil || session.idleSince().Before(oldest.idleSince()) {
			oldest = session
		}
	}

	return oldest
}
