package sync

import (
	"context"
	"log"
	gosync "sync"
	"time"

	"importafacil/internal/domain/entities"
	"importafacil/internal/store"
)

const (
	pushAttempts    = 3
	pushBackoffBase = 500 * time.Millisecond
	pushTimeout     = 30 * time.Second
)

// Client owns the sync lifecycle for one store. Local mutations stay the
// optimistic truth: a failed push is logged and eventually dropped, never
// rolled back and never surfaced to the caller.
//
// Pushes are coalesced latest-dataset-wins. Every push carries the whole
// dataset, so skipping an intermediate snapshot loses nothing.
type Client struct {
	remote Remote
	store  *store.Store

	queue chan entities.Dataset
	wg    gosync.WaitGroup

	// closeMu orders Enqueue against Close: a mutation that lands after
	// Close must become a no-op, not a send on a closed channel.
	closeMu gosync.Mutex
	closed  bool

	// overridable in tests
	attempts int
	backoff  time.Duration
}

var _ store.Pusher = (*Client)(nil)

// New wires a sync client to the store and starts the push worker. The
// store's pusher is attached here; call Close to drain the worker.
func New(remote Remote, st *store.Store) *Client {
	c := &Client{
		remote:   remote,
		store:    st,
		queue:    make(chan entities.Dataset, 1),
		attempts: pushAttempts,
		backoff:  pushBackoffBase,
	}
	st.SetPusher(c)
	c.wg.Add(1)
	go c.worker()
	return c
}

// Init pulls the whole dataset and atomically replaces the local cache.
// On failure the existing cache is left untouched; there is no retry and
// no partial merge.
func (c *Client) Init(ctx context.Context) error {
	ds, err := c.remote.Pull(ctx)
	if err != nil {
		log.Printf("[sync][init] pull failed, keeping local cache err=%v", err)
		return err
	}
	c.store.Replace(ds)
	log.Printf("[sync][init] dataset loaded clients=%d invoices=%d expenses=%d",
		len(ds.Clients), len(ds.Invoices), len(ds.Expenses))
	return nil
}

// Enqueue hands a snapshot to the push worker without blocking. A snapshot
// still waiting in the queue is replaced by the newer one. After Close the
// snapshot is dropped.
func (c *Client) Enqueue(ds entities.Dataset) {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	if c.closed {
		log.Printf("[sync][push] client closed, dropping snapshot")
		return
	}
	for {
		select {
		case c.queue <- ds:
			return
		default:
			select {
			case <-c.queue:
			default:
			}
		}
	}
}

// Close stops accepting snapshots and waits for in-flight pushes to settle.
func (c *Client) Close() {
	c.closeMu.Lock()
	if !c.closed {
		c.closed = true
		close(c.queue)
	}
	c.closeMu.Unlock()
	c.wg.Wait()
}

func (c *Client) worker() {
	defer c.wg.Done()
	for ds := range c.queue {
		c.pushWithRetry(ds)
	}
}

func (c *Client) pushWithRetry(ds entities.Dataset) {
	delay := c.backoff
	for attempt := 1; attempt <= c.attempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		err := c.remote.Push(ctx, ds)
		cancel()
		if err == nil {
			return
		}
		log.Printf("[sync][push] attempt=%d/%d failed err=%v", attempt, c.attempts, err)
		if attempt == c.attempts {
			log.Printf("[sync][push] giving up, local cache remains authoritative")
			return
		}
		// Abandon the stale snapshot early if a newer one is queued.
		select {
		case newer, ok := <-c.queue:
			if !ok {
				return
			}
			ds = newer
		case <-time.After(delay):
		}
		delay *= 2
	}
}
