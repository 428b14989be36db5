package bus

import (
	"context"
	"fmt"
	"sync"

	"github.com/yungbote/catalog-backend/internal/realtime"
)

// memoryBus delivers events inside the process. It backs single-instance
// deployments without REDIS_ADDR and the tests.
type memoryBus struct {
	mu       sync.RWMutex
	handlers []func(ev realtime.CatalogEvent)
	closed   bool
}

func NewMemoryBus() Bus { return &memoryBus{} }

func (b *memoryBus) Publish(_ context.Context, ev realtime.CatalogEvent) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return fmt.Errorf("event bus closed")
	}
	handlers := append([]func(realtime.CatalogEvent){}, b.handlers...)
	b.mu.RUnlock()

	// Handlers run unlocked so they may subscribe or close the bus.
	for _, h := range handlers {
		h(ev)
	}
	return nil
}

func (b *memoryBus) StartForwarder(ctx context.Context, onMsg func(ev realtime.CatalogEvent)) error {
	if onMsg == nil {
		return fmt.Errorf("onMsg callback required")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return fmt.Errorf("event bus closed")
	}
	b.handlers = append(b.handlers, onMsg)
	return nil
}

func (b *memoryBus) Close() error {
	b.mu.Lock()
	b.closed = true
	b.handlers = nil
	b.mu.Unlock()
	return nil
}
