package notifier

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"
)

// Strategy delivers one notification over a single channel. Deliver never
// returns an error: every outcome is captured by mutating the record's status
// and error message through the store.
type Strategy interface {
	Deliver(ctx context.Context, n *models.Notification)
	Channel() models.Channel
	Priority() int
}

// Registry maps each channel to its delivery strategy. Completeness is
// validated at construction: every channel must have exactly one strategy.
type Registry struct {
	strategies map[models.Channel]Strategy
}

// NewRegistry builds the channel registry, failing fast on missing or
// duplicate channels.
func NewRegistry(strategies ...Strategy) (*Registry, error) {
	m := make(map[models.Channel]Strategy, len(strategies))
	for _, s := range strategies {
		if _, dup := m[s.Channel()]; dup {
			return nil, fmt.Errorf("duplicate delivery strategy for channel %s", s.Channel())
		}
		m[s.Channel()] = s
	}
	for _, ch := range models.AllChannels() {
		if _, ok := m[ch]; !ok {
			return nil, fmt.Errorf("no delivery strategy registered for channel %s", ch)
		}
	}
	return &Registry{strategies: m}, nil
}

// For returns the strategy assigned to the channel.
func (r *Registry) For(ch models.Channel) (Strategy, bool) {
	s, ok := r.strategies[ch]
	return s, ok
}

// Dispatcher runs deliveries on a bounded worker pool, decoupling the
// consumer's ack from channel sends. Callers needing a final status poll the
// notification record.
type Dispatcher struct {
	registry *Registry
	timeout  time.Duration
	jobs     chan *models.Notification
	wg       sync.WaitGroup
}

// NewDispatcher starts the worker pool.
func NewDispatcher(registry *Registry, workers int, deliveryTimeout time.Duration) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	d := &Dispatcher{
		registry: registry,
		timeout:  deliveryTimeout,
		jobs:     make(chan *models.Notification, workers*4),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// Dispatch queues one notification for delivery.
func (d *Dispatcher) Dispatch(n *models.Notification) {
	d.jobs <- n
}

// Close drains the queue and stops the workers.
func (d *Dispatcher) Close() {
	close(d.jobs)
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for n := range d.jobs {
		strategy, ok := d.registry.For(n.Channel)
		if !ok {
			// Unreachable once NewRegistry validated, kept as a guard.
			log.Printf("[Notifier] No strategy for channel %s notification_id=%d", n.Channel, n.ID)
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		strategy.Deliver(ctx, n)
		cancel()
	}
}
