// Package cli provides the interactive trace-console command-line client.
//
// It wires configuration, the credential store, the request gateway and the
// resource API clients into an interactive REPL. Typical flow: restore a
// persisted session (or login/signup), then manage instructors, courses and
// trace surveys against the remote API.
//
// Key features:
//   - Login / Signup / Logout backed by the session controller
//   - Instructor and course CRUD
//   - Department and semester lookups
//   - Trace-survey upload (PDF), listing, viewing and download
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Every command re-fetches from the server; nothing is cached between
// commands.
package cli
