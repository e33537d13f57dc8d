// Package tabstore provides the tabular persistence backends behind the
// document service: in-memory (tests, ephemeral deployments), DynamoDB and
// Google Sheets. Each tab is a header row plus rows of string cells; tabs
// are always replaced wholesale.
package tabstore

import (
	"context"
	"os"
	"sync"

	"importafacil/internal/usecase/interfaces"
)

// Memory keeps tabs in process memory. Reading an absent tab yields an
// empty tab, matching a never-written sheet.
type Memory struct {
	mu   sync.RWMutex
	tabs map[string]memoryTab
}

type memoryTab struct {
	headers []string
	rows    [][]string
}

var _ interfaces.ITabStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{tabs: make(map[string]memoryTab)}
}

func (m *Memory) ReadTab(_ context.Context, tab string) ([]string, [][]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tabs[tab]
	if !ok {
		return nil, nil, nil
	}
	headers := append([]string(nil), t.headers...)
	rows := make([][]string, len(t.rows))
	for i, r := range t.rows {
		rows[i] = append([]string(nil), r...)
	}
	return headers, rows, nil
}

func (m *Memory) WriteTab(_ context.Context, tab string, headers []string, rows [][]string) error {
	copied := make([][]string, len(rows))
	for i, r := range rows {
		copied[i] = append([]string(nil), r...)
	}
	m.mu.Lock()
	m.tabs[tab] = memoryTab{headers: append([]string(nil), headers...), rows: copied}
	m.mu.Unlock()
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
