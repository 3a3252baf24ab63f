package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/spent/internal/model"
)

func sampleExpenses() []model.Expense {
	return []model.Expense{
		{ID: 1700000000000, Category: "food", Amount: 10},
		{ID: 1700000000001, Category: "travel", Amount: 5.5},
		{ID: 1700000000002, Category: "food", Amount: 2.25},
	}
}

func roundTrip(t *testing.T, s Slot) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on fresh slot = %v, want ErrNotFound", err)
	}

	payload, err := EncodeExpenses(sampleExpenses())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, payload); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	decoded, err := DecodeExpenses(got)
	if err != nil {
		t.Fatalf("DecodeExpenses: %v", err)
	}
	want := sampleExpenses()
	if len(decoded) != len(want) {
		t.Fatalf("decoded %d records, want %d", len(decoded), len(want))
	}
	for i := range want {
		if decoded[i] != want[i] {
			t.Fatalf("record %d = %+v, want %+v", i, decoded[i], want[i])
		}
	}
}

func TestSQLiteSlot_RoundTrip(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "spent.db"), DefaultSlot)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer func() { _ = s.Close() }()

	roundTrip(t, s)

	at, err := s.UpdatedAt(context.Background())
	if err != nil {
		t.Fatalf("UpdatedAt: %v", err)
	}
	if at.IsZero() {
		t.Fatal("UpdatedAt is zero after Save")
	}
}

func TestSQLiteSlot_ReopenKeepsPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spent.db")
	ctx := context.Background()

	first, err := OpenSQLite(path, DefaultSlot)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Save(ctx, []byte(`[{"id":1,"category":"food","amount":3}]`)); err != nil {
		t.Fatal(err)
	}
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	// Migrations must be a no-op on the second open.
	second, err := OpenSQLite(path, DefaultSlot)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = second.Close() }()

	got, err := second.Load(ctx)
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if string(got) != `[{"id":1,"category":"food","amount":3}]` {
		t.Fatalf("payload = %s", got)
	}
}

func TestSQLiteSlot_SlotsAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spent.db")
	ctx := context.Background()

	a, err := OpenSQLite(path, "a")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = a.Close() }()
	if err := a.Save(ctx, []byte(`[]`)); err != nil {
		t.Fatal(err)
	}

	b, err := OpenSQLite(path, "b")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = b.Close() }()
	if _, err := b.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("slot b Load = %v, want ErrNotFound", err)
	}
}

func TestFileSlot_RoundTrip(t *testing.T) {
	roundTrip(t, NewFileSlot(filepath.Join(t.TempDir(), "nested", "expenses.json")))
}

func TestFileSlot_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileSlot(filepath.Join(dir, "expenses.json"))
	for i := 0; i < 3; i++ {
		if err := s.Save(context.Background(), []byte(`[]`)); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir has %d entries, want 1", len(entries))
	}
}

func TestMemorySlot_RoundTrip(t *testing.T) {
	roundTrip(t, NewMemorySlot(DefaultSlot))
}

func TestOpen_UnknownBackend(t *testing.T) {
	if _, err := Open("redis", t.TempDir(), ""); err == nil {
		t.Fatal("Open(redis) returned nil error")
	}
}

func TestSlotPath(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		backend, name, want string
	}{
		{BackendSQLite, "expenses", filepath.Join(dir, "spent.db")},
		{"", "", filepath.Join(dir, "spent.db")},
		{BackendFile, "", filepath.Join(dir, DefaultSlot+".json")},
		{BackendFile, "trip", filepath.Join(dir, "trip.json")},
		{BackendMemory, "expenses", ""},
	}
	for _, tc := range cases {
		got, err := SlotPath(tc.backend, dir, tc.name)
		if err != nil {
			t.Fatalf("SlotPath(%q, %q): %v", tc.backend, tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("SlotPath(%q, %q) = %q, want %q", tc.backend, tc.name, got, tc.want)
		}
	}
	if _, err := SlotPath("redis", dir, ""); err == nil {
		t.Fatal("SlotPath(redis) returned nil error")
	}
	// Computing the path touches nothing on disk.
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Fatalf("data dir has %d entries, want 0", len(entries))
	}
}

func TestDecodeExpenses_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":       `{{{`,
		"object":         `{"id":1}`,
		"null":           `null`,
		"string":         `"expenses"`,
		"missing amount": `[{"id":1,"category":"food"}]`,
		"zero amount":    `[{"id":1,"category":"food","amount":0}]`,
		"empty category": `[{"id":1,"category":"  ","amount":4}]`,
		"fractional id":  `[{"id":1.5,"category":"food","amount":4}]`,
		"duplicate id":   `[{"id":1,"category":"a","amount":1},{"id":1,"category":"b","amount":2}]`,
		"trailing data":  `[] []`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeExpenses([]byte(payload))
			if !errors.Is(err, ErrCorrupt) {
				t.Fatalf("DecodeExpenses(%s) = %v, want ErrCorrupt", payload, err)
			}
		})
	}
}

func TestDecodeExpenses_EmptyArray(t *testing.T) {
	got, err := DecodeExpenses([]byte(" [] \n"))
	if err != nil {
		t.Fatalf("DecodeExpenses: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestEncodeExpenses_NilIsEmptyArray(t *testing.T) {
	got, err := EncodeExpenses(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "[]" {
		t.Fatalf("EncodeExpenses(nil) = %s, want []", got)
	}
}
