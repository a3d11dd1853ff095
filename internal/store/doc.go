// Package store provides persistence for the duty rotation's documents.
//
// Every document is read and written whole through a DocumentBackend:
//   - FileBackend keeps one file per document under the home directory and
//     replaces it atomically on write
//   - SQLiteBackend keeps one row per document in a single table
//   - MemoryBackend keeps documents in process memory
//
// On top of a backend sit the typed stores:
//   - AnchorStore (start_date.txt)
//   - ExceptionStore (exceptions.json)
//   - DebtorStore (debtors.json)
//   - SimDateStore (sim_date.txt)
//   - ScheduleStore (schedule.json)
//
// A document that fails to decode is treated as absent: the store logs a
// warning and the caller gets the documented default. All methods are
// concurrency-safe via internal locking; there are no transactions across
// documents.
package store
