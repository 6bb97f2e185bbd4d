package memory

import (
	"context"
	"sync"
	"time"

	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.UserSession // keyed by session_id
}

func NewUserSessionRepository() *UserSessionRepository {
	return &UserSessionRepository{
		sessions: make(map[string]*entity.UserSession),
	}
}

func (r *UserSessionRepository) Upsert(ctx context.Context, session *entity.UserSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.sessions[session.SessionId]; ok {
		session.Id = existing.Id
		session.CreatedAt = existing.CreatedAt
	} else {
		if session.Id == uuid.Nil {
			session.Id = uuid.New()
		}
		if session.CreatedAt.IsZero() {
			session.CreatedAt = time.Now()
		}
	}
	stored := *session
	r.sessions[session.SessionId] = &stored
	return nil
}

func (r *UserSessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if matchSession(s, specs) {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *UserSessionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, s := range r.sessions {
		if matchSession(s, specs) {
			count++
		}
	}
	return count, nil
}

func (r *UserSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expired := []specification.Specification{specification.ExpiredBy{At: time.Now()}}
	var removed int64
	for id, s := range r.sessions {
		if matchSession(s, expired) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func matchSession(s *entity.UserSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.BySessionID:
			if s.SessionId != sp.SessionID {
				return false
			}
		case specification.ActiveAt:
			if s.Expired(sp.At) {
				return false
			}
		case specification.ExpiredBy:
			if !s.Expired(sp.At) {
				return false
			}
		}
	}
	return true
}
