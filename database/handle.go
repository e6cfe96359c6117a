package database

import (
	"sync"
	"time"

	"gorm.io/gorm"
)

// Clock produces unix-second timestamps for server-assigned fields. Repos
// take it as an injected capability so tests can pin time.
type Clock func() int64

// SystemClock is the production Clock.
func SystemClock() int64 {
	return time.Now().Unix()
}

// Handle guards the shared database connection with a reader/writer lock.
// Any number of reads may proceed together; a mutation holds the connection
// exclusively for the duration of its transaction. The handle is passed
// explicitly to every repository, never kept as a global.
type Handle struct {
	mu sync.RWMutex
	db *gorm.DB
}

func NewHandle(db *gorm.DB) *Handle {
	return &Handle{db: db}
}

// Read runs fn under the shared lock.
func (h *Handle) Read(fn func(db *gorm.DB) error) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return fn(h.db)
}

// Write runs fn under the exclusive lock.
func (h *Handle) Write(fn func(db *gorm.DB) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn(h.db)
}

// DB returns the underlying database connection for debugging purposes
func (h *Handle) DB() *gorm.DB {
	return h.db
}
