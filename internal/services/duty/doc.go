// Package duty owns the rotation state: the anchor date, the duty list, the
// per-date exceptions and the debtor queue.
//
// Reads resolve the pair for a date (an exception wins over the canonical
// rotation). Writers record absences, let debtors repay by displacing someone
// on a chosen date, and carry the displaced person forward to the nearest
// working day that can take them.
//
// # Concurrency
//
// Service serializes all writers behind one lock held for the whole
// operation, including the forward carry-over walk. Each document is saved
// on its own; a crash between two saves (for example after recording a
// debtor but before installing the corrected pair) leaves the first write in
// place and is not rolled back.
package duty
