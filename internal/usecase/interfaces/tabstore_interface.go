package interfaces

import "context"

// ITabStore abstracts the tabular persistence behind the document service:
// named tabs, each a header row plus string-cell data rows.
//
// WriteTab replaces the whole tab, headers included. Writing the canonical
// headers on every overwrite is the self-healing migration for drifted
// sheets; there is no versioned migration.
type ITabStore interface {
	ReadTab(ctx context.Context, tab string) (headers []string, rows [][]string, err error)
	WriteTab(ctx context.Context, tab string, headers []string, rows [][]string) error
}
