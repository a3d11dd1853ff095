// Package calendar implements workday arithmetic over a six-day work week.
//
// A Calendar excludes exactly one weekday. Dates are civil dates represented
// as time.Time values at UTC midnight; Truncate converts any instant to that
// form so day differences are exact.
package calendar
