// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (pairs, debtors, schedules), store and host
// contracts (interfaces), and the error sentinels callers match with
// errors.Is.
package domain
