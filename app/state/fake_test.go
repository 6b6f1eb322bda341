package state

import (
	"context"
	"errors"
	"sync"

	"github.com/Black-And-White-Club/golf-tracker/app/kvstore"
)

type publishedEvent struct {
	topic   string
	payload any
}

// FakePublisher records every published event.
type FakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	Err    error
}

func (f *FakePublisher) Publish(_ context.Context, topic string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{topic: topic, payload: payload})
	return f.Err
}

func (f *FakePublisher) Topics() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.topic
	}
	return out
}

var errDiskFull = errors.New("disk full")

// FailingKV wraps a memory store and fails writes while Fail is set.
type FailingKV struct {
	*kvstore.Memory
	Fail bool
}

func (f *FailingKV) PutMany(ctx context.Context, entries map[string][]byte) error {
	if f.Fail {
		return errDiskFull
	}
	return f.Memory.PutMany(ctx, entries)
}
