// Package memory keeps notices in process memory. It is used when Redis is
// not configured and loses everything on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ds124wfegd/listings/internal/database/repository"
	"github.com/ds124wfegd/listings/internal/entity"
)

type pending struct {
	notices   []entity.Notice
	expiresAt time.Time
}

type noticeRepository struct {
	mu       sync.Mutex
	sessions map[string]*pending
	ttl      time.Duration
	now      func() time.Time
}

func NewNoticeRepository(ttl time.Duration) repository.NoticeRepository {
	return &noticeRepository{
		sessions: make(map[string]*pending),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *noticeRepository) Push(_ context.Context, sessionID string, notice entity.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictExpired(now)

	p, ok := r.sessions[sessionID]
	if !ok {
		p = &pending{}
		r.sessions[sessionID] = p
	}
	p.notices = append(p.notices, notice)
	if r.ttl > 0 {
		p.expiresAt = now.Add(r.ttl)
	}
	return nil
}

func (r *noticeRepository) Pop(_ context.Context, sessionID string) ([]entity.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpired(r.now())

	p, ok := r.sessions[sessionID]
	if !ok {
		return []entity.Notice{}, nil
	}
	delete(r.sessions, sessionID)
	return p.notices, nil
}

func (r *noticeRepository) evictExpired(now time.Time) {
	for id, p := range r.sessions {
		if !p.expiresAt.IsZero() && !now.Before(p.expiresAt) {
			delete(r.sessions, id)
		}
	}
}
