package catalog

import (
	"fmt"
	"time"
)

// Names as rendered by the fr-FR locale
var (
	monthsShort = [...]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."}
	monthsLong  = [...]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"}

	weekdaysShort = [...]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."}
	weekdaysLong  = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}
)

func MonthShort(m time.Month) string     { return monthsShort[m-1] }
func MonthLong(m time.Month) string      { return monthsLong[m-1] }
func WeekdayShort(d time.Weekday) string { return weekdaysShort[d] }
func WeekdayLong(d time.Weekday) string  { return weekdaysLong[d] }

// LongDate "mardi 20 octobre 2026"
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s %d %s %d", WeekdayLong(t.Weekday()), t.Day(), MonthLong(t.Month()), t.Year())
}

// MonthLabel "octobre 2026"
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", MonthLong(t.Month()), t.Year())
}
