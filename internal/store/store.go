// Package store owns all mutable per-run session state. Everything lives in
// process memory; sessions vanish when the process exits, which matches the
// tool's no-persistence contract.
package store

import (
	"errors"
	"sync"

	"careinspect/internal/model"
)

// ErrSessionNotFound is returned when a session id is unknown. Reading state
// for a session that was never created is a caller bug, not a degraded case.
var ErrSessionNotFound = errors.New("session not found")

// InspectionStore holds open-ended inspection sessions keyed by id.
type InspectionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.InspectionSession
}

// NewInspectionStore creates an empty inspection store.
func NewInspectionStore() *InspectionStore {
	return &InspectionStore{sessions: make(map[string]*model.InspectionSession)}
}

// Put stores a session under its id, replacing any existing one.
func (s *InspectionStore) Put(sess *model.InspectionSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess.Clone()
}

// Get returns a copy of the session, or ErrSessionNotFound.
func (s *InspectionStore) Get(id string) (*model.InspectionSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess.Clone(), nil
}

// Update applies fn to the session under the store lock and returns a copy
// of the result. If fn errors the session is left unchanged.
func (s *InspectionStore) Update(id string, fn func(*model.InspectionSession) error) (*model.InspectionSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	draft := sess.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}
	s.sessions[id] = draft
	return draft.Clone(), nil
}

// Delete removes a session; deleting an unknown id is a no-op.
func (s *InspectionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// AuditStore holds compliance-audit sessions keyed by id.
type AuditStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.AuditSession
}

// NewAuditStore creates an empty audit store.
func NewAuditStore() *AuditStore {
	return &AuditStore{sessions: make(map[string]*model.AuditSession)}
}

// Put stores a session under its id, replacing any existing one.
func (s *AuditStore) Put(sess *model.AuditSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess.Clone()
}

// Get returns a copy of the session, or ErrSessionNotFound.
func (s *AuditStore) Get(id string) (*model.AuditSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess.Clone(), nil
}

// Update applies fn to the session under the store lock and returns a copy
// of the result. If fn errors the session is left unchanged.
func (s *AuditStore) Update(id string, fn func(*model.AuditSession) error) (*model.AuditSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	draft := sess.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}
	s.sessions[id] = draft
	return draft.Clone(), nil
}

// Delete removes a session; deleting an unknown id is a no-op.
func (s *AuditStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
