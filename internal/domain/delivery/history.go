package delivery

import (
	"sort"
	"time"

	"import_admin/internal/domain/entities"
)

// MergeHistory prefers the separately fetched history when it has entries,
// then the inline one. The result is never nil.
func MergeHistory(inline, fetched []entities.StatusHistoryEntry) []entities.StatusHistoryEntry {
	src := inline
	if len(fetched) > 0 {
		src = fetched
	}
	out := make([]entities.StatusHistoryEntry, len(src))
	copy(out, src)
	return out
}

type TimelineEntry struct {
	Status         entities.ImportStatus `json:"status"`
	StatusLabel    string                `json:"status_label"`
	ChangedAt      time.Time             `json:"changed_at"`
	ChangedAtLabel string                `json:"changed_at_label"`
	Notes          string                `json:"notes,omitempty"`
	Current        bool                  `json:"current"`
}

// TimelineView is the history ordered oldest first.
// Consistent is false when the latest entry disagrees with the live status;
// in that case no entry is marked current.
type TimelineView struct {
	Entries    []TimelineEntry       `json:"entries"`
	LiveStatus entities.ImportStatus `json:"live_status"`
	Consistent bool                  `json:"consistent"`
}

// Timeline sorts a copy of history by ChangedAt ascending. Upstream order is not trusted.
func (t *Tracker) Timeline(history []entities.StatusHistoryEntry, live entities.ImportStatus) TimelineView {
	sorted := make([]entities.StatusHistoryEntry, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ChangedAt.Before(sorted[j].ChangedAt.Time)
	})

	view := TimelineView{
		Entries:    make([]TimelineEntry, 0, len(sorted)),
		LiveStatus: live,
		Consistent: true,
	}
	for _, h := range sorted {
		view.Entries = append(view.Entries, TimelineEntry{
			Status:         h.Status,
			StatusLabel:    h.Status.Label(),
			ChangedAt:      h.ChangedAt.Time,
			ChangedAtLabel: t.FormatDateTime(h.ChangedAt.Time),
			Notes:          h.Notes,
		})
	}

	if n := len(view.Entries); n > 0 {
		if view.Entries[n-1].Status == live {
			view.Entries[n-1].Current = true
		} else {
			view.Consistent = false
		}
	}
	return view
}
