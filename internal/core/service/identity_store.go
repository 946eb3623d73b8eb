package service

import (
	"sync"

	"github.com/payd/web/internal/core/domain"
)

type subscriber struct {
	id int
	fn func(*domain.UserClaims)
}

// IdentityStore is a process-wide cell holding the last decoded user, or nil.
// It is not persisted and may disagree with the cookie the browser holds. In the
// gateway it reflects the most recent navigation or logout across all users.
//
// Subscribers are called synchronously, in subscription order, outside the lock.
type IdentityStore struct {
	mu     sync.Mutex
	value  *domain.UserClaims
	subs   []subscriber
	nextID int
}

func NewIdentityStore() *IdentityStore {
	return &IdentityStore{}
}

// Get returns a copy of the current user, or nil.
func (s *IdentityStore) Get() *domain.UserClaims {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneClaims(s.value)
}

// Set replaces the current user and notifies subscribers.
func (s *IdentityStore) Set(user *domain.UserClaims) {
	s.mu.Lock()
	s.value = cloneClaims(user)
	subs := append([]subscriber(nil), s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(cloneClaims(user))
	}
}

// Update sets the result of fn applied to the current user.
func (s *IdentityStore) Update(fn func(*domain.UserClaims) *domain.UserClaims) {
	s.Set(fn(s.Get()))
}

// Subscribe registers fn and calls it immediately with the current value.
// The returned function removes the subscription; calling it twice is a no-op.
func (s *IdentityStore) Subscribe(fn func(*domain.UserClaims)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	current := cloneClaims(s.value)
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func cloneClaims(u *domain.UserClaims) *domain.UserClaims {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
