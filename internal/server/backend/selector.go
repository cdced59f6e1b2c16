// Package backend holds the process-wide storage mode: durable (PostgreSQL)
// or volatile (in-process tables). The mode starts volatile and may flip to
// durable exactly once, when the startup connectivity probe succeeds.
package backend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/skillbridge/internal/common"
)

// Mode selects which backend every store operation addresses.
type Mode int32

const (
	Volatile Mode = iota
	Durable
)

func (m Mode) String() string {
	if m == Durable {
		return "durable"
	}
	return "volatile"
}

// Selector is a publish-once flag. Request-handling code only ever reads it;
// the single write happens from the startup probe goroutine.
type Selector struct {
	mode    atomic.Int32
	decided atomic.Bool
}

func NewSelector() *Selector {
	return &Selector{}
}

// Mode returns the currently active storage mode. Safe for concurrent use
// without further synchronization.
func (s *Selector) Mode() Mode {
	return Mode(s.mode.Load())
}

// Probe runs the bounded-timeout connectivity check against the durable
// backend and resolves the storage mode for the rest of the process
// lifetime. The first call decides; any later call is a no-op, so a probe
// failure is permanent even if the backend comes up afterwards.
//
// ping is the connectivity check itself, typically (*sql.DB).PingContext.
// Returns common.ErrStorageUnavailable (non-fatal) when the probe fails.
func (s *Selector) Probe(ctx context.Context, ping func(context.Context) error, timeout time.Duration) error {
	if !s.decided.CompareAndSwap(false, true) {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	s.mode.Store(int32(Durable))
	return nil
}
