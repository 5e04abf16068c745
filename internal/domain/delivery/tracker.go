// Package delivery derives the delivery countdown and the status timeline of an import.
//
// Everything here is pure: the clock and the time zone are injected through Tracker.
package delivery

import (
	"fmt"
	"math"
	"time"
)

// Bucket is the urgency class of a delivery countdown.
type Bucket string

const (
	BucketNeutral  Bucket = "neutral"
	BucketOverdue  Bucket = "overdue"
	BucketDueToday Bucket = "due_today"
	BucketUrgent   Bucket = "urgent"
	BucketUpcoming Bucket = "upcoming"
	BucketNormal   Bucket = "normal"
)

// Locale selects the language of the descriptive texts.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

const day = 24 * time.Hour

type Tracker struct {
	Location *time.Location
	Locale   Locale
	Now      func() time.Time
}

func NewTracker(loc *time.Location, locale Locale) *Tracker {
	if loc == nil {
		loc = time.Local
	}
	if locale != LocaleES {
		locale = LocaleEN
	}
	return &Tracker{Location: loc, Locale: locale, Now: time.Now}
}

func (t *Tracker) location() *time.Location {
	if t.Location == nil {
		return time.Local
	}
	return t.Location
}

func (t *Tracker) now() time.Time {
	if t.Now == nil {
		return time.Now()
	}
	return t.Now()
}

// calendarDate reduces an estimate to its date. A value with no time of day is a
// date-only estimate and keeps its own calendar date; anything else is read in loc.
func calendarDate(v time.Time, loc *time.Location) time.Time {
	if h, m, s := v.Clock(); h != 0 || m != 0 || s != 0 || v.Nanosecond() != 0 {
		v = v.In(loc)
	}
	y, mo, d := v.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// DaysRemaining returns the whole days from today to the estimate, or nil without one.
// Zero means due today and negative values mean overdue.
func (t *Tracker) DaysRemaining(estimate *time.Time) *int {
	if estimate == nil || estimate.IsZero() {
		return nil
	}
	loc := t.location()
	y, mo, d := t.now().In(loc).Date()
	today := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	target := calendarDate(*estimate, loc)

	n := int(math.Ceil(float64(target.Sub(today)) / float64(day)))
	return &n
}

// BucketFor classifies a day count. Every integer and nil map to exactly one bucket.
func BucketFor(days *int) Bucket {
	switch {
	case days == nil:
		return BucketNeutral
	case *days < 0:
		return BucketOverdue
	case *days == 0:
		return BucketDueToday
	case *days <= 3:
		return BucketUrgent
	case *days <= 7:
		return BucketUpcoming
	default:
		return BucketNormal
	}
}

func Text(days *int) string {
	switch {
	case days == nil:
		return "No delivery estimate"
	case *days < 0:
		n := -*days
		if n == 1 {
			return "Overdue by 1 day"
		}
		return fmt.Sprintf("Overdue by %d days", n)
	case *days == 0:
		return "Due today"
	case *days == 1:
		return "1 day remaining"
	default:
		return fmt.Sprintf("%d days remaining", *days)
	}
}

// TextES is the Spanish wording shown by the admin UI.
func TextES(days *int) string {
	switch {
	case days == nil:
		return "Sin fecha tentativa"
	case *days < 0:
		n := -*days
		if n == 1 {
			return "Atrasado 1 día"
		}
		return fmt.Sprintf("Atrasado %d días", n)
	case *days == 0:
		return "Entrega hoy"
	case *days == 1:
		return "1 día restante"
	default:
		return fmt.Sprintf("%d días restantes", *days)
	}
}

func (t *Tracker) text(days *int) string {
	if t.Locale == LocaleES {
		return TextES(days)
	}
	return Text(days)
}

// Countdown is the full presentation of a delivery estimate.
type Countdown struct {
	Estimate      *time.Time `json:"fecha_tentativa_entrega"`
	DaysRemaining *int       `json:"days_remaining"`
	Bucket        Bucket     `json:"bucket"`
	Text          string     `json:"text"`
	DateLabel     string     `json:"date_label,omitempty"`
}

func (t *Tracker) Countdown(estimate *time.Time) Countdown {
	days := t.DaysRemaining(estimate)
	c := Countdown{
		DaysRemaining: days,
		Bucket:        BucketFor(days),
		Text:          t.text(days),
	}
	if days != nil {
		v := *estimate
		c.Estimate = &v
		c.DateLabel = t.FormatDate(v)
	}
	return c
}
