// Package store is the in-memory mirror of the whole dataset: the sole
// source of truth for a running session. The remote document store is a
// durability layer behind it, reached only through the sync client.
package store

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"importafacil/internal/domain/entities"
	"importafacil/internal/domain/finance"
	"importafacil/internal/numeric"
)

var (
	ErrClientNameRequired       = errors.New("client name is required")
	ErrInvoiceClientRequired    = errors.New("invoice requires a client")
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrExpenseDescriptionEmpty  = errors.New("expense description is required")
	ErrExpenseAmountNotPositive = errors.New("expense amount must be positive")
)

// Pusher receives a snapshot of the dataset after every local mutation.
// The store never blocks on it and never observes the push outcome.
type Pusher interface {
	Enqueue(ds entities.Dataset)
}

// Store holds the four collections plus settings behind a single mutex.
//
// Mutation ordering: mutate, notify subscribers synchronously, then hand a
// snapshot to the pusher. Subscribers therefore always observe the newest
// local state before any network traffic starts.
type Store struct {
	mu     sync.Mutex
	data   entities.Dataset
	pusher Pusher

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int

	now func() time.Time
}

// New returns an empty store with default settings. Each test constructs
// its own store; nothing is process-global.
func New() *Store {
	return &Store{
		data: entities.Dataset{Settings: entities.DefaultSettings()},
		subs: make(map[int]func()),
		now:  time.Now,
	}
}

// SetPusher attaches the sync pusher. A nil pusher (tests, offline use)
// simply skips the remote leg of every mutation.
func (s *Store) SetPusher(p Pusher) {
	s.mu.Lock()
	s.pusher = p
	s.mu.Unlock()
}

// Subscribe registers a zero-argument callback fired synchronously after
// every mutation, including remote-pull replacements. The returned function
// unsubscribes.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Clients returns a defensive copy of all clients.
func (s *Store) Clients() []entities.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Client(nil), s.data.Clients...)
}

// Invoices returns recomputed views of all invoices. Persisted derived
// totals are never trusted on the read path.
func (s *Store) Invoices() []entities.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Invoice, len(s.data.Invoices))
	for i, inv := range s.data.Invoices {
		inv.Items = append([]entities.ProductItem(nil), inv.Items...)
		finance.Recompute(&inv, s.data.Settings)
		out[i] = inv
	}
	return out
}

// InvoiceByID returns the recomputed view of one invoice.
func (s *Store) InvoiceByID(id string) (entities.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.data.Invoices {
		if inv.ID == id {
			inv.Items = append([]entities.ProductItem(nil), inv.Items...)
			finance.Recompute(&inv, s.data.Settings)
			return inv, nil
		}
	}
	return entities.Invoice{}, ErrInvoiceNotFound
}

// Expenses returns a defensive copy of all expenses.
func (s *Store) Expenses() []entities.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Expense(nil), s.data.Expenses...)
}

// Settings returns the current settings.
func (s *Store) Settings() entities.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Settings
}

// Summary computes the portfolio aggregation over the current invoices.
// Items are copied along with the invoices: Portfolio recomputes through
// them, and that must never touch the store's live backing arrays.
func (s *Store) Summary() finance.Summary {
	s.mu.Lock()
	invoices := make([]entities.Invoice, len(s.data.Invoices))
	for i, inv := range s.data.Invoices {
		inv.Items = append([]entities.ProductItem(nil), inv.Items...)
		invoices[i] = inv
	}
	settings := s.data.Settings
	s.mu.Unlock()
	return finance.Portfolio(invoices, settings)
}

// SaveClient upserts a client by id, assigning a fresh id on first save.
func (s *Store) SaveClient(c entities.Client) (entities.Client, error) {
	if c.Name == "" {
		return entities.Client{}, ErrClientNameRequired
	}
	s.mu.Lock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.data.Clients = upsert(s.data.Clients, c, func(e entities.Client) string { return e.ID })
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.afterMutation(snap)
	return c, nil
}

// DeleteClient removes a client by id. Invoices referencing it are left
// untouched; the dangling reference is tolerated by design.
func (s *Store) DeleteClient(id string) {
	s.mu.Lock()
	s.data.Clients = removeByID(s.data.Clients, id, func(e entities.Client) string { return e.ID })
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.afterMutation(snap)
}

// SaveInvoice validates, normalizes and upserts an invoice. All derived
// fields are recomputed before the write lands; whatever the caller put in
// them is discarded.
func (s *Store) SaveInvoice(inv entities.Invoice) (entities.Invoice, error) {
	if inv.ClientID == "" {
		return entities.Invoice{}, ErrInvoiceClientRequired
	}
	s.mu.Lock()
	now := s.now().UTC()
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = now
	}
	inv.UpdatedAt = now
	for i := range inv.Items {
		if inv.Items[i].ID == "" {
			inv.Items[i].ID = uuid.NewString()
		}
	}
	finance.Recompute(&inv, s.data.Settings)
	s.data.Invoices = upsert(s.data.Invoices, inv, func(e entities.Invoice) string { return e.ID })
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.afterMutation(snap)
	return inv, nil
}

// DeleteInvoice removes an invoice by id.
func (s *Store) DeleteInvoice(id string) {
	s.mu.Lock()
	s.data.Invoices = removeByID(s.data.Invoices, id, func(e entities.Invoice) string { return e.ID })
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.afterMutation(snap)
}

// SetInvoiceStatus applies a status transition with its forced amount
// writes (paid/delivered collect in full, pending zeroes).
func (s *Store) SetInvoiceStatus(id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	return s.mutateInvoice(id, func(inv *entities.Invoice) {
		finance.ApplyStatus(inv, status)
	})
}

// SetInvoiceAmountPaid records a collected amount and derives the status
// from it, honoring the draft and delivered exceptions.
func (s *Store) SetInvoiceAmountPaid(id string, amount float64) (entities.Invoice, error) {
	return s.mutateInvoice(id, func(inv *entities.Invoice) {
		finance.ApplyAmountPaid(inv, amount)
	})
}

func (s *Store) mutateInvoice(id string, apply func(*entities.Invoice)) (entities.Invoice, error) {
	s.mu.Lock()
	idx := -1
	for i, inv := range s.data.Invoices {
		if inv.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	inv := s.data.Invoices[idx]
	inv.Items = append([]entities.ProductItem(nil), inv.Items...)
	finance.Recompute(&inv, s.data.Settings)
	apply(&inv)
	inv.UpdatedAt = s.now().UTC()
	s.data.Invoices[idx] = inv
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.afterMutation(snap)
	return inv, nil
}

// SaveExpense validates and upserts an expense.
func (s *Store) SaveExpense(e entities.Expense) (entities.Expense, error) {
	if e.Description == "" {
		return entities.Expense{}, ErrExpenseDescriptionEmpty
	}
	if numeric.SafeNumber(e.Amount) <= 0 {
		return entities.Expense{}, ErrExpenseAmountNotPositive
	}
	s.mu.Lock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Category == "" {
		e.Category = entities.ExpenseCategoryOtro
	}
	if e.Date.IsZero() {
		e.Date = s.now().UTC()
	}
	s.data.Expenses = upsert(s.data.Expenses, e, func(x entities.Expense) string { return x.ID })
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.afterMutation(snap)
	return e, nil
}

// DeleteExpense removes an expense by id.
func (s *Store) DeleteExpense(id string) {
	s.mu.Lock()
	s.data.Expenses = removeByID(s.data.Expenses, id, func(e entities.Expense) string { return e.ID })
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.afterMutation(snap)
}

// SetExchangeRate updates the global exchange rate.
func (s *Store) SetExchangeRate(rate float64) {
	s.updateSettings(func(st *entities.Settings) { st.ExchangeRate = numeric.SafeNumber(rate) })
}

// SetPricePerKg updates the global logistics rate.
func (s *Store) SetPricePerKg(price float64) {
	s.updateSettings(func(st *entities.Settings) { st.PricePerKg = numeric.SafeNumber(price) })
}

// SetFormulaVersion pins the formula version for the whole dataset.
func (s *Store) SetFormulaVersion(version int) {
	s.updateSettings(func(st *entities.Settings) { st.FormulaVersion = version })
}

func (s *Store) updateSettings(apply func(*entities.Settings)) {
	s.mu.Lock()
	apply(&s.data.Settings)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.afterMutation(snap)
}

// Replace atomically swaps the entire dataset, used by the sync client
// after a successful remote pull. Subscribers are notified once; nothing is
// pushed back to the remote that just supplied the data.
func (s *Store) Replace(ds entities.Dataset) {
	ds = ds.Clone()
	if ds.Settings == (entities.Settings{}) {
		ds.Settings = entities.DefaultSettings()
	}
	for i := range ds.Invoices {
		finance.Recompute(&ds.Invoices[i], ds.Settings)
	}
	s.mu.Lock()
	s.data = ds
	s.mu.Unlock()
	s.notify()
}

// Snapshot returns a deep copy of the current dataset with invoice views
// recomputed, suitable for pushing or serving.
func (s *Store) Snapshot() entities.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() entities.Dataset {
	snap := s.data.Clone()
	for i := range snap.Invoices {
		finance.Recompute(&snap.Invoices[i], snap.Settings)
	}
	return snap
}

func (s *Store) afterMutation(snap entities.Dataset) {
	s.notify()
	s.mu.Lock()
	p := s.pusher
	s.mu.Unlock()
	if p != nil {
		p.Enqueue(snap)
	}
}

// notify fires every subscriber, each isolated so a panicking listener
// cannot stop the rest.
func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[store][notify] subscriber panic recovered err=%v", r)
				}
			}()
			fn()
		}()
	}
}

func upsert[T any](list []T, v T, id func(T) string) []T {
	for i, existing := range list {
		if id(existing) == id(v) {
			list[i] = v
			return list
		}
	}
	return append(list, v)
}

func removeByID[T any](list []T, target string, id func(T) string) []T {
	out := list[:0]
	for _, e := range list {
		if id(e) != target {
			out = append(out, e)
		}
	}
	return out
}
