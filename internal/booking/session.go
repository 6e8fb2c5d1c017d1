package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brightdental/booking-web/internal/i18n"
)

// Session одна сессия мастера бронирования. Черновик внутри принадлежит
// исключительно этой сессии; межвкладочной синхронизации нет.
type Session struct {
	ID       string
	Locale   i18n.Locale
	Wizard   *Wizard
	LastSeen time.Time

	// mu сериализует все операции мастера в рамках сессии
	mu sync.Mutex
}

// Store in-memory хранилище сессий с TTL. Истёкшие и брошенные сессии
// выметаются джанитором: результат запроса, завершившегося после смерти
// сессии, просто отбрасывается.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	clock    TimeProvider
	log      Logger
}

// NewStore создает хранилище сессий
func NewStore(ttl time.Duration, clock TimeProvider, log Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		clock:    clock,
		log:      log,
	}
}

// Create создает новую сессию, привязанную к локали
func (s *Store) Create(locale i18n.Locale) *Session {
	sess := &Session{
		ID:       uuid.NewString(),
		Locale:   locale,
		Wizard:   NewWizard(),
		LastSeen: s.clock.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.log.Info("session store: created session id=%s locale=%s", sess.ID, locale)
	return sess
}

// Get возвращает живую сессию и обновляет её LastSeen
func (s *Store) Get(id string) (*Session, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if now.Sub(sess.LastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}

	sess.LastSeen = now
	return sess, nil
}

// Sweep удаляет истёкшие сессии, возвращает число удалённых
func (s *Store) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len текущее число сессий
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartJanitor запускает периодическую уборку до отмены контекста
func (s *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := s.Sweep(); removed > 0 {
					s.log.Info("session store: swept %d expired sessions", removed)
				}
			}
		}
	}()
}
