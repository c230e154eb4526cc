// Package dialog holds the state of the delete-confirmation dialogs: the id
// of the record the operator is about to delete.
package dialog

import (
	"errors"
	"sync"
)

type Kind string

const (
	KindPost Kind = "post"
	KindUser Kind = "user"
)

var ErrNothingPending = errors.New("no record selected for deletion")

// Cell stores the id most recently populated into one dialog.
type Cell interface {
	Load() (string, bool)
	Store(id string) error
	Clear() error
}

type MemoryCell struct {
	mu  sync.Mutex
	id  string
	set bool
}

func NewMemoryCell() *MemoryCell {
	return &MemoryCell{}
}

func (c *MemoryCell) Load() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id, c.set
}

func (c *MemoryCell) Store(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id, c.set = id, true
	return nil
}

func (c *MemoryCell) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id, c.set = "", false
	return nil
}
