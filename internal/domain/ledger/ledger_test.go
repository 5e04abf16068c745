package ledger

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func seqIDs() Option {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("cost-%d", n)
	})
}

func TestMerge(t *testing.T) {
	t.Run("union of both maps", func(t *testing.T) {
		l := Merge(
			map[string]float64{"flete": 100},
			map[string]float64{"flete": 150, "seguro": 20},
			seqIDs(),
		)
		got := l.Entries()
		want := []CostEntry{
			{ID: "cost-1", Name: "flete", RealAmount: 100, ClientAmount: 150},
			{ID: "cost-2", Name: "seguro", RealAmount: 0, ClientAmount: 20},
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("unexpected entries: %+v", got)
		}
		if !l.IsEdit() {
			t.Fatalf("expected snapshot to be captured")
		}
	})

	t.Run("empty maps yield one blank entry", func(t *testing.T) {
		l := Merge(nil, map[string]float64{}, seqIDs())
		got := l.Entries()
		if len(got) != 1 || got[0].Name != "" || got[0].RealAmount != 0 || got[0].ClientAmount != 0 {
			t.Fatalf("expected one blank entry, got %+v", got)
		}
		if got[0].ID == "" {
			t.Fatalf("expected blank entry to have an id")
		}
	})

	t.Run("snapshot is isolated from the input maps", func(t *testing.T) {
		reales := map[string]float64{"flete": 100}
		l := Merge(reales, nil)
		reales["flete"] = 999
		reales["aduana"] = 1

		snap := l.Original().Reales()
		if len(snap) != 1 || snap["flete"] != 100 {
			t.Fatalf("snapshot changed with input: %+v", snap)
		}
		snap["otro"] = 5
		if _, ok := l.Original().Reales()["otro"]; ok {
			t.Fatalf("snapshot changed through accessor copy")
		}
	})
}

func TestNew(t *testing.T) {
	l := New(seqIDs())
	if l.IsEdit() {
		t.Fatalf("create mode must not have a snapshot")
	}
	if got := l.Entries(); len(got) != 1 || got[0].ID != "cost-1" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestRestore(t *testing.T) {
	l := Restore(nil, NewSnapshot(map[string]float64{"a": 1}, nil), seqIDs())
	if len(l.Entries()) != 1 {
		t.Fatalf("restored ledger must never be empty")
	}
	res := l.Commit()
	if !reflect.DeepEqual(res.RealesToDelete, []string{"a"}) {
		t.Fatalf("expected snapshot to drive deletions, got %+v", res.RealesToDelete)
	}
}

func TestLedger_SetField(t *testing.T) {
	newLedger := func() *Ledger {
		return Merge(map[string]float64{"flete": 100, "seguro": 10}, nil, seqIDs())
	}

	t.Run("only the target entry changes", func(t *testing.T) {
		l := newLedger()
		if err := l.SetField("cost-1", FieldName, "Flete maritimo"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := l.SetField("cost-1", FieldClientAmount, "120.5"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := l.Entries()
		if got[0] != (CostEntry{ID: "cost-1", Name: "Flete maritimo", RealAmount: 100, ClientAmount: 120.5}) {
			t.Fatalf("unexpected entry: %+v", got[0])
		}
		if got[1] != (CostEntry{ID: "cost-2", Name: "seguro", RealAmount: 10}) {
			t.Fatalf("other entry changed: %+v", got[1])
		}
	})

	t.Run("unparseable amount becomes zero", func(t *testing.T) {
		l := newLedger()
		if err := l.SetField("cost-1", FieldRealAmount, "abc"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := l.Entries()[0].RealAmount; got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
		if err := l.SetField("cost-1", FieldRealAmount, "NaN"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := l.Entries()[0].RealAmount; got != 0 {
			t.Fatalf("expected 0 for NaN, got %v", got)
		}
	})

	t.Run("unknown entry", func(t *testing.T) {
		l := newLedger()
		if err := l.SetField("nope", FieldName, "x"); !errors.Is(err, ErrEntryNotFound) {
			t.Fatalf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		l := newLedger()
		if err := l.SetField("cost-1", Field("id"), "x"); !errors.Is(err, ErrUnknownField) {
			t.Fatalf("expected ErrUnknownField, got %v", err)
		}
		if l.Entries()[0].ID != "cost-1" {
			t.Fatalf("id must never change")
		}
	})
}

func TestLedger_AddRemove(t *testing.T) {
	t.Run("add appends blank entries with fresh ids", func(t *testing.T) {
		l := New(seqIDs())
		e := l.AddEntry()
		if e.ID != "cost-2" || e.Name != "" {
			t.Fatalf("unexpected entry: %+v", e)
		}
		if len(l.Entries()) != 2 {
			t.Fatalf("expected 2 entries")
		}
	})

	t.Run("removing every entry leaves one blank entry", func(t *testing.T) {
		l := Merge(map[string]float64{"a": 1, "b": 2}, map[string]float64{"c": 3}, seqIDs())
		for _, e := range l.Entries() {
			if err := l.RemoveEntry(e.ID); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		got := l.Entries()
		if len(got) != 1 || got[0].Name != "" {
			t.Fatalf("expected one blank entry, got %+v", got)
		}
		if got[0].ID == "cost-1" || got[0].ID == "cost-2" || got[0].ID == "cost-3" {
			t.Fatalf("removed id was reused: %s", got[0].ID)
		}
	})

	t.Run("remove unknown entry", func(t *testing.T) {
		l := New()
		if err := l.RemoveEntry("missing"); !errors.Is(err, ErrEntryNotFound) {
			t.Fatalf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("remove keeps order of the others", func(t *testing.T) {
		l := Merge(map[string]float64{"a": 1, "b": 2, "c": 3}, nil, seqIDs())
		if err := l.RemoveEntry("cost-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := l.Entries()
		if len(got) != 2 || got[0].Name != "a" || got[1].Name != "c" {
			t.Fatalf("unexpected entries: %+v", got)
		}
	})
}

func TestLedger_Totals(t *testing.T) {
	l := New(seqIDs())
	_ = l.SetRealAmount("cost-1", 0.1)
	e := l.AddEntry()
	_ = l.SetRealAmount(e.ID, 0.2)
	_ = l.SetClientAmount(e.ID, 5)

	tot := l.Totals()
	if tot.Real.String() != "0.3" {
		t.Fatalf("expected 0.3, got %s", tot.Real.String())
	}
	if tot.Client.String() != "5" {
		t.Fatalf("expected 5, got %s", tot.Client.String())
	}
}

func TestSum(t *testing.T) {
	got := Sum(map[string]float64{"flete": 100.1, "seguro": 20.2})
	if got.String() != "120.3" {
		t.Fatalf("expected 120.3, got %s", got.String())
	}
	if !Sum(nil).IsZero() {
		t.Fatalf("expected zero for nil map")
	}
}
