package main

import (
	"database/sql"
	"sync"

	"github.com/rench/blog/status"
)

type DBWrapper interface {
	DB() (*sql.DB, error)
}

// SwappableDB lets the HTTP server start before the database is reachable;
// the connection is swapped in once the background connect succeeds.
type SwappableDB struct {
	mu    sync.RWMutex
	db    *sql.DB
	ready bool
}

func NewSwappableDB() *SwappableDB {
	return &SwappableDB{}
}

func (s *SwappableDB) Swap(db *sql.DB) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db = db
	s.ready = db != nil
}

func (s *SwappableDB) DB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return nil, status.ErrDatabaseNotReady
	}
	return s.db, nil
}

// Close releases the current connection and marks the wrapper not ready, so
// requests arriving during shutdown fall back instead of hitting a closed pool.
func (s *SwappableDB) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil
	}
	s.ready = false
	db := s.db
	s.db = nil
	return db.Close()
}
