package assets

import (
	"context"
	"errors"
	"time"

	"github.com/memories-timeline/memories-backend/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned while the blob store is considered unavailable
var ErrCircuitOpen = errors.New("blob store circuit breaker is open")

const (
	defaultBreakerMaxFailures = 5
	defaultBreakerTimeout     = 30 * time.Second
)

// BreakerStore stops calling the wrapped store after consecutive failures and lets a
// trial request through once the timeout has elapsed.
type BreakerStore struct {
	store   BlobStore
	breaker *gobreaker.CircuitBreaker
}

func NewBreakerStore(store BlobStore, cfg config.Breaker) *BreakerStore {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = defaultBreakerMaxFailures
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultBreakerTimeout
	}

	settings := gobreaker.Settings{
		Name:        "BlobStore",
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			// A missing key or a caller that went away says nothing about the store's health
			return err == nil || errors.Is(err, ErrObjectNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state changed")
		},
	}
	return &BreakerStore{store: store, breaker: gobreaker.NewCircuitBreaker(settings)}
}

func (b *BreakerStore) Put(ctx context.Context, key string, body []byte, meta ObjectMeta) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, b.store.Put(ctx, key, body, meta)
	})
	return translateBreakerError(err)
}

func (b *BreakerStore) Get(ctx context.Context, key string) (*Object, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.store.Get(ctx, key)
	})
	if err != nil {
		return nil, translateBreakerError(err)
	}
	return result.(*Object), nil
}

// State returns closed, half-open or open
func (b *BreakerStore) State() string {
	return b.breaker.State().String()
}

func translateBreakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrCircuitOpen
	}
	return err
}
