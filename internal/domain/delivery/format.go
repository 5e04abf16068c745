package delivery

import (
	"fmt"
	"time"
)

var monthsES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDate renders a long date: "15 de enero de 2024" or "January 15, 2024".
// Date-only values keep their calendar date.
func (t *Tracker) FormatDate(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	d := calendarDate(v, t.location())
	if t.Locale == LocaleES {
		return fmt.Sprintf("%d de %s de %d", d.Day(), monthsES[d.Month()-1], d.Year())
	}
	return d.Format("January 2, 2006")
}

// DateKey renders the calendar date of an estimate as YYYY-MM-DD, the form input format.
func (t *Tracker) DateKey(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return calendarDate(v, t.location()).Format("2006-01-02")
}

// FormatDateTime renders a short date with time: "15 ene 2024, 14:30" or "Jan 15, 2024, 14:30".
func (t *Tracker) FormatDateTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	l := v.In(t.location())
	if t.Locale == LocaleES {
		return fmt.Sprintf("%d %s %d, %s", l.Day(), monthsES[l.Month()-1][:3], l.Year(), l.Format("15:04"))
	}
	return l.Format("Jan 2, 2006, 15:04")
}
