// Package cli provides the interactive FinKeeper command-line client.
//
// It wires configuration, the API client, session state, and the local
// snapshot cache into an interactive REPL. Typical flow: probe the current
// identity, then execute user commands against the backend.
//
// Key features:
//   - Register / Login / Logout
//   - Record and list expenses and income
//   - Manage categories and budgets, view budget alerts
//   - Aggregated spending/earning statistics
//   - Cached list data shown when the server is unreachable
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
