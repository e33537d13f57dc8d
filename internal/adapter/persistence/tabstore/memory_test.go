package tabstore

import (
	"context"
	"testing"
)

func TestMemoryReadAbsentTab(t *testing.T) {
	m := NewMemory()
	headers, rows, err := m.ReadTab(context.Background(), "clients")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if headers != nil || rows != nil {
		t.Fatalf("absent tab should read empty, got %v %v", headers, rows)
	}
}

func TestMemoryWriteReplacesTab(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.WriteTab(ctx, "clients", []string{"id", "name"}, [][]string{{"c1", "Maria"}, {"c2", "Jose"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.WriteTab(ctx, "clients", []string{"id", "name", "phone"}, [][]string{{"c1", "Maria", "0414"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	headers, rows, err := m.ReadTab(ctx, "clients")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(headers) != 3 || headers[2] != "phone" {
		t.Fatalf("headers should be replaced wholesale, got %v", headers)
	}
	if len(rows) != 1 {
		t.Fatalf("rows should be replaced wholesale, got %v", rows)
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	m.WriteTab(ctx, "t", []string{"id"}, [][]string{{"a"}})

	_, rows, _ := m.ReadTab(ctx, "t")
	rows[0][0] = "mutated"

	_, again, _ := m.ReadTab(ctx, "t")
	if again[0][0] != "a" {
		t.Fatalf("reader mutation leaked into the store")
	}
}
