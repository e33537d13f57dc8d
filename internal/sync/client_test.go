package sync

import (
	"context"
	"errors"
	gosync "sync"
	"testing"
	"time"

	"importafacil/internal/domain/entities"
	"importafacil/internal/store"
)

type fakeRemote struct {
	mu        gosync.Mutex
	dataset   entities.Dataset
	pullErr   error
	pushErrs  int // fail this many pushes before succeeding
	pulls     int
	pushes    []entities.Dataset
	pushedSig chan struct{}
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{pushedSig: make(chan struct{}, 64)}
}

func (f *fakeRemote) Pull(ctx context.Context) (entities.Dataset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pulls++
	if f.pullErr != nil {
		return entities.Dataset{}, f.pullErr
	}
	return f.dataset, nil
}

func (f *fakeRemote) Push(ctx context.Context, ds entities.Dataset) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pushErrs > 0 {
		f.pushErrs--
		return errors.New("remote unavailable")
	}
	f.pushes = append(f.pushes, ds)
	f.pushedSig <- struct{}{}
	return nil
}

func (f *fakeRemote) pushCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pushes)
}

func waitPush(t *testing.T, f *fakeRemote) {
	t.Helper()
	select {
	case <-f.pushedSig:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a push")
	}
}

func TestInitReplacesCache(t *testing.T) {
	remote := newFakeRemote()
	remote.dataset = entities.Dataset{
		Clients:  []entities.Client{{ID: "c1", Name: "Maria"}},
		Settings: entities.Settings{ExchangeRate: 41, PricePerKg: 16},
	}
	st := store.New()
	c := New(remote, st)
	defer c.Close()

	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := st.Clients(); len(got) != 1 || got[0].Name != "Maria" {
		t.Fatalf("cache not replaced: %+v", got)
	}
	if st.Settings().ExchangeRate != 41 {
		t.Fatalf("settings not replaced: %+v", st.Settings())
	}
}

func TestInitFailureKeepsCache(t *testing.T) {
	st := store.New()
	st.SaveClient(entities.Client{Name: "local"})

	remote := newFakeRemote()
	remote.pullErr = errors.New("boom")
	c := New(remote, st)
	defer c.Close()

	if err := c.Init(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if got := st.Clients(); len(got) != 1 || got[0].Name != "local" {
		t.Fatalf("failed init must leave cache untouched: %+v", got)
	}
}

func TestMutationTriggersPush(t *testing.T) {
	remote := newFakeRemote()
	st := store.New()
	c := New(remote, st)
	defer c.Close()

	st.SaveClient(entities.Client{Name: "Maria"})
	waitPush(t, remote)

	remote.mu.Lock()
	defer remote.mu.Unlock()
	if len(remote.pushes) == 0 || len(remote.pushes[0].Clients) != 1 {
		t.Fatalf("push should carry the whole dataset, got %+v", remote.pushes)
	}
}

func TestPushRetriesThenSucceeds(t *testing.T) {
	remote := newFakeRemote()
	remote.pushErrs = 2
	st := store.New()
	c := New(remote, st)
	c.backoff = time.Millisecond
	defer c.Close()

	st.SaveClient(entities.Client{Name: "Maria"})
	waitPush(t, remote)

	if remote.pushCount() != 1 {
		t.Fatalf("expected exactly one successful push, got %d", remote.pushCount())
	}
}

func TestPushFailureNeverSurfaces(t *testing.T) {
	remote := newFakeRemote()
	remote.pushErrs = 1000
	st := store.New()
	c := New(remote, st)
	c.backoff = time.Millisecond

	if _, err := st.SaveClient(entities.Client{Name: "Maria"}); err != nil {
		t.Fatalf("save must not observe push failures: %v", err)
	}
	c.Close()

	if remote.pushCount() != 0 {
		t.Fatalf("pushes should all have failed")
	}
	if got := st.Clients(); len(got) != 1 {
		t.Fatalf("local cache stays authoritative, got %+v", got)
	}
}

func TestEnqueueCoalescesToLatest(t *testing.T) {
	remote := newFakeRemote()
	st := store.New()
	c := &Client{
		remote:   remote,
		store:    st,
		queue:    make(chan entities.Dataset, 1),
		attempts: 1,
		backoff:  time.Millisecond,
	}

	// Worker not started yet: enqueue three snapshots, only the last stays.
	c.Enqueue(entities.Dataset{Clients: []entities.Client{{ID: "1"}}})
	c.Enqueue(entities.Dataset{Clients: []entities.Client{{ID: "2"}}})
	c.Enqueue(entities.Dataset{Clients: []entities.Client{{ID: "3"}}})

	c.wg.Add(1)
	go c.worker()
	c.Close()

	if remote.pushCount() != 1 {
		t.Fatalf("expected one coalesced push, got %d", remote.pushCount())
	}
	remote.mu.Lock()
	defer remote.mu.Unlock()
	if remote.pushes[0].Clients[0].ID != "3" {
		t.Fatalf("expected the latest snapshot, got %+v", remote.pushes[0].Clients)
	}
}

func TestMutationAfterCloseIsDropped(t *testing.T) {
	remote := newFakeRemote()
	st := store.New()
	c := New(remote, st)

	st.SaveClient(entities.Client{Name: "Maria"})
	waitPush(t, remote)
	c.Close()

	// The store still holds the client as pusher; a late mutation must be a
	// silent local write, not a panic on the drained queue.
	if _, err := st.SaveClient(entities.Client{Name: "Pedro"}); err != nil {
		t.Fatalf("mutation after close must still succeed locally: %v", err)
	}
	if got := st.Clients(); len(got) != 2 {
		t.Fatalf("local cache should carry both clients, got %+v", got)
	}
	if remote.pushCount() != 1 {
		t.Fatalf("closed client must not push, got %d pushes", remote.pushCount())
	}

	// Close stays idempotent.
	c.Close()
}
