package entities

import (
	"testing"

	"import_admin/internal/domain/ledger"
)

func TestImportDraft(t *testing.T) {
	t.Run("ledger round trip through the draft", func(t *testing.T) {
		l := ledger.Merge(map[string]float64{"flete": 100}, nil)
		d := &ImportDraft{ImportID: "imp-1", Original: l.Original()}
		d.Apply(l)

		restored := d.Ledger()
		if len(restored.Entries()) != 1 || restored.Entries()[0].Name != "flete" {
			t.Fatalf("unexpected entries: %+v", restored.Entries())
		}
		if !restored.IsEdit() || !d.IsEdit() {
			t.Fatalf("expected edit mode")
		}
	})

	t.Run("delivery date", func(t *testing.T) {
		d := &ImportDraft{DeliveryDate: "2024-05-01", OriginalDeliveryDate: "2024-05-01"}
		if d.DeliveryChanged() {
			t.Fatalf("unchanged date reported as changed")
		}
		if got := d.DeliveryTime(); got == nil || got.Day() != 1 {
			t.Fatalf("unexpected time: %v", got)
		}
		d.DeliveryDate = ""
		if !d.DeliveryChanged() || d.DeliveryTime() != nil {
			t.Fatalf("cleared date not detected")
		}
		d.DeliveryDate = "01/05/2024"
		if d.DeliveryTime() != nil {
			t.Fatalf("malformed date should parse to nil")
		}
	})
}
