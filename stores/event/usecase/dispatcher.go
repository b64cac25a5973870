package usecase

import (
	"sync"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/base/log"
	"github.com/x-xyz/ledger/base/metrics"
	"github.com/x-xyz/ledger/domain/ledger"
)

const defaultQueueLength = 1024

type DispatcherCfg struct {
	Subscribers []ledger.Subscriber
	// Workers per subscriber. Events reach a subscriber in ledger order only
	// with a single worker.
	Workers int
	// QueueLength is the number of published batches a subscriber may lag
	// behind before new batches are dropped
	QueueLength int
}

type batch struct {
	c      ctx.Ctx
	events []*ledger.Event
}

type subscription struct {
	subscriber ledger.Subscriber
	queue      chan batch
	pool       *goroutines.Pool
}

type dispatcher struct {
	met metrics.Service

	mu     sync.Mutex
	closed bool
	subs   []*subscription
	// draining counts the drain loops still running
	draining sync.WaitGroup
}

func NewDispatcher(cfg *DispatcherCfg) ledger.Dispatcher {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	queueLength := cfg.QueueLength
	if queueLength <= 0 {
		queueLength = defaultQueueLength
	}

	d := &dispatcher{
		met: metrics.New("events"),
	}
	for _, s := range cfg.Subscribers {
		sub := &subscription{
			subscriber: s,
			queue:      make(chan batch, queueLength),
			pool:       goroutines.NewPool(workers, goroutines.WithPreAllocWorkers(workers)),
		}
		for i := 0; i < workers; i++ {
			d.draining.Add(1)
			if err := sub.pool.Schedule(func() {
				defer d.draining.Done()
				d.drain(sub)
			}); err != nil {
				d.draining.Done()
				log.Log().WithFields(log.Fields{
					"err":        err,
					"subscriber": s.Name(),
				}).Error("pool.Schedule failed")
			}
		}
		d.subs = append(d.subs, sub)
	}
	return d
}

// Publish queues events for every subscriber and returns at once. A
// subscriber whose queue is full loses the batch. Events are copied,
// subscribers never share them with the ledger.
func (d *dispatcher) Publish(c ctx.Ctx, events []*ledger.Event) {
	if len(events) == 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		c.WithField("count", len(events)).Warn("dispatcher closed, events dropped")
		return
	}

	detached := ctx.Detach(c)
	for _, sub := range d.subs {
		b := batch{c: detached, events: make([]*ledger.Event, 0, len(events))}
		for _, e := range events {
			b.events = append(b.events, e.Clone())
		}

		select {
		case sub.queue <- b:
		default:
			d.met.BumpSum("subscriber.drop", float64(len(b.events)), "subscriber", sub.subscriber.Name())
			c.WithFields(log.Fields{
				"subscriber": sub.subscriber.Name(),
				"count":      len(b.events),
				"firstSeq":   b.events[0].Seq,
			}).Error("subscriber queue full, events dropped")
		}
	}
}

func (d *dispatcher) drain(sub *subscription) {
	for b := range sub.queue {
		d.deliver(b.c, sub.subscriber, b.events)
	}
}

func (d *dispatcher) deliver(c ctx.Ctx, s ledger.Subscriber, events []*ledger.Event) {
	name := s.Name()
	for _, e := range events {
		if err := d.handle(c, s, e); err != nil {
			d.met.BumpSum("subscriber.err", 1, "subscriber", name)
			c.WithFields(log.Fields{
				"err":        err,
				"subscriber": name,
				"seq":        e.Seq,
				"type":       e.Type,
			}).Error("subscriber.Handle failed")
		}
	}
}

func (d *dispatcher) handle(c ctx.Ctx, s ledger.Subscriber, e *ledger.Event) (err error) {
	defer d.met.BumpTime("subscriber.time", "subscriber", s.Name()).End()
	defer func() {
		if p := recover(); p != nil {
			err = xerrors.Errorf("subscriber panic: %v", p)
		}
	}()
	return s.Handle(c, e)
}

// Close stops accepting events and waits until queued ones are delivered
func (d *dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, sub := range d.subs {
		close(sub.queue)
	}
	d.mu.Unlock()

	d.draining.Wait()
	for _, sub := range d.subs {
		sub.pool.Release()
	}
}
