package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"importafacil/internal/domain/entities"
	"importafacil/internal/domain/finance"
	"importafacil/internal/sheetcodec"
	"importafacil/internal/usecase/interfaces"
)

// IDatasetUseCase is the document-service behavior behind the webhook
// endpoint: whole-dataset read and whole-dataset overwrite.
type IDatasetUseCase interface {
	Fetch(ctx context.Context) (entities.Dataset, error)
	Overwrite(ctx context.Context, ds entities.Dataset) error
}

// DatasetUseCase assembles and overwrites the dataset tabs.
//
// Overwrite always re-encodes with the canonical headers, so a sheet whose
// header row drifted (hand edits, older schema) is healed on the next
// write: columns are rewritten in canonical order, rows from before a new
// column simply carry its zero value.
type DatasetUseCase struct {
	tabs interfaces.ITabStore
	// One overwrite at a time; the lock is the only concurrency control the
	// service offers across sessions.
	mu sync.Mutex
}

var _ IDatasetUseCase = (*DatasetUseCase)(nil)

func NewDatasetUseCase(tabs interfaces.ITabStore) *DatasetUseCase {
	return &DatasetUseCase{tabs: tabs}
}

// Fetch reads all four tabs and decodes them defensively. Invoice derived
// fields are recomputed before return; the persisted copies are for sheet
// readers only.
func (u *DatasetUseCase) Fetch(ctx context.Context) (entities.Dataset, error) {
	var ds entities.Dataset

	headers, rows, err := u.tabs.ReadTab(ctx, sheetcodec.TabSettings)
	if err != nil {
		return entities.Dataset{}, fmt.Errorf("read settings: %w", err)
	}
	ds.Settings = sheetcodec.DecodeSettings(headers, rows)

	headers, rows, err = u.tabs.ReadTab(ctx, sheetcodec.TabClients)
	if err != nil {
		return entities.Dataset{}, fmt.Errorf("read clients: %w", err)
	}
	ds.Clients = sheetcodec.DecodeClients(headers, rows)

	headers, rows, err = u.tabs.ReadTab(ctx, sheetcodec.TabInvoices)
	if err != nil {
		return entities.Dataset{}, fmt.Errorf("read invoices: %w", err)
	}
	ds.Invoices = sheetcodec.DecodeInvoices(headers, rows)

	headers, rows, err = u.tabs.ReadTab(ctx, sheetcodec.TabExpenses)
	if err != nil {
		return entities.Dataset{}, fmt.Errorf("read expenses: %w", err)
	}
	ds.Expenses = sheetcodec.DecodeExpenses(headers, rows)

	for i := range ds.Invoices {
		finance.Recompute(&ds.Invoices[i], ds.Settings)
	}
	return ds, nil
}

// Overwrite replaces every tab with the incoming dataset. Collections are
// fully replaced, never merged.
func (u *DatasetUseCase) Overwrite(ctx context.Context, ds entities.Dataset) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if ds.Settings == (entities.Settings{}) {
		ds.Settings = entities.DefaultSettings()
	}
	for i := range ds.Invoices {
		finance.Recompute(&ds.Invoices[i], ds.Settings)
	}

	if err := u.tabs.WriteTab(ctx, sheetcodec.TabSettings, sheetcodec.SettingsHeaders, sheetcodec.EncodeSettings(ds.Settings)); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := u.tabs.WriteTab(ctx, sheetcodec.TabClients, sheetcodec.ClientHeaders, sheetcodec.EncodeClients(ds.Clients)); err != nil {
		return fmt.Errorf("write clients: %w", err)
	}
	if err := u.tabs.WriteTab(ctx, sheetcodec.TabInvoices, sheetcodec.InvoiceHeaders, sheetcodec.EncodeInvoices(ds.Invoices)); err != nil {
		return fmt.Errorf("write invoices: %w", err)
	}
	if err := u.tabs.WriteTab(ctx, sheetcodec.TabExpenses, sheetcodec.ExpenseHeaders, sheetcodec.EncodeExpenses(ds.Expenses)); err != nil {
		return fmt.Errorf("write expenses: %w", err)
	}

	log.Printf("[dataset][usecase] overwrite done clients=%d invoices=%d expenses=%d",
		len(ds.Clients), len(ds.Invoices), len(ds.Expenses))
	return nil
}
