package ledger

import (
	"sort"
	"strings"
)

// Result is what a save sends to the backend.
//
// CostosReales/CostosCliente hold every named entry with a positive amount in
// that column. The *ToDelete lists are keys of the snapshot missing from the
// new maps, ignoring snapshot keys whose amount is zero or negative; they are
// always empty in create mode. A renamed cost therefore
// shows up as a deletion of the old key plus the new key.
type Result struct {
	CostosReales    map[string]float64
	CostosCliente   map[string]float64
	RealesToDelete  []string
	ClienteToDelete []string
	// Duplicates lists trimmed names used by more than one entry. In the maps
	// the last entry with a positive amount wins.
	Duplicates []string
}

// Commit converts the working list into the backend vocabulary. It does not
// modify the ledger, so a failed save can be retried from the same state.
func (l *Ledger) Commit() Result {
	res := Result{
		CostosReales:  map[string]float64{},
		CostosCliente: map[string]float64{},
	}

	counts := map[string]int{}
	for _, e := range l.entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		counts[name]++
		if e.RealAmount > 0 {
			res.CostosReales[name] = e.RealAmount
		}
		if e.ClientAmount > 0 {
			res.CostosCliente[name] = e.ClientAmount
		}
	}
	for name, n := range counts {
		if n > 1 {
			res.Duplicates = append(res.Duplicates, name)
		}
	}
	sort.Strings(res.Duplicates)

	if l.original != nil {
		res.RealesToDelete = missingKeys(l.original.reales, res.CostosReales)
		res.ClienteToDelete = missingKeys(l.original.cliente, res.CostosCliente)
	}
	return res
}

// missingKeys lists snapshot keys absent from current. Snapshot keys with a
// non-positive amount were never sendable, so they are not a deletion baseline.
func missingKeys(original, current map[string]float64) []string {
	var out []string
	for _, k := range sortedKeys(original) {
		if original[k] <= 0 {
			continue
		}
		if _, ok := current[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}
