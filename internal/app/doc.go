// Package app wires application dependencies for the CLI.
//
// It loads Config, opens the document backend it names (files or SQLite),
// builds the typed stores, the duty list and the high-level services, and
// exposes them via App for commands to use.
package app
