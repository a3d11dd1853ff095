// Package commands defines the dutyroster CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - today, tomorrow      Show the pair and lessons for the day
//   - who [date]           Show the pair for a date
//   - upcoming [n]         Table of the next n working days
//   - overrides            Table of the days with a pinned pair
//   - debtors              List people owing a makeup duty
//   - schedule [date]      Show the lessons for a date
//   - absent <name> [date] Mark someone absent and patch the pair
//   - repay <debtor> <target>  Let a debtor take someone's slot
//   - seed, seed-only      Realign the rotation or pin a one-off pair
//   - skip <n>             Advance the rotation by n pairs
//   - next, prev           Step the simulated date
//   - realtime             Drop the simulated date
//   - reset                Restart the rotation from today
//   - reload-roster        Reread the duty list file
//   - schedule-set         Edit lessons for a weekday or a date
//   - hash-passphrase      Print a bcrypt hash for the config file
//   - serve                Publish the rotation as read-only JSON over HTTP
//   - peek [date]          Read a pair from a remote serve
//
// # Implementation
//
// The root command loads the config and builds the dependency graph (backend,
// stores, services) before any subcommand runs. Mutating commands check the
// caller against the privilege guard first.
package commands
