// Package ledger reconciles the two cost maps of an import (real and client
// costs) with the single editable list of named entries shown in the form.
package ledger

import (
	"maps"
	"sort"
)

// Field names one editable column of a CostEntry.
type Field string

const (
	FieldName         Field = "name"
	FieldRealAmount   Field = "realAmount"
	FieldClientAmount Field = "clientAmount"
)

func (f Field) IsValid() bool {
	switch f {
	case FieldName, FieldRealAmount, FieldClientAmount:
		return true
	}
	return false
}

// CostEntry is one row of the working list. ID is assigned once and never
// reused; Name is the reconciliation key once trimmed.
type CostEntry struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	RealAmount   float64 `json:"real_amount"`
	ClientAmount float64 `json:"client_amount"`
}

// Snapshot is the immutable copy of both cost maps taken at load time.
// Accessors always return copies.
type Snapshot struct {
	reales  map[string]float64
	cliente map[string]float64
}

func NewSnapshot(reales, cliente map[string]float64) *Snapshot {
	return &Snapshot{reales: copyMap(reales), cliente: copyMap(cliente)}
}

func (s *Snapshot) Reales() map[string]float64 {
	if s == nil {
		return map[string]float64{}
	}
	return copyMap(s.reales)
}

func (s *Snapshot) Cliente() map[string]float64 {
	if s == nil {
		return map[string]float64{}
	}
	return copyMap(s.cliente)
}

func copyMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	maps.Copy(out, m)
	return out
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
