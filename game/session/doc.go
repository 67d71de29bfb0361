// Package session provides in-memory game session management.
//
// Sessions pair a board with the preset it was created from and track
// creation and last-access times. IDs are short random hex strings and
// lookups are case-insensitive. Sessions are never persisted: the game
// holds no state across process runs, so a restart of the server starts
// from an empty session table. Stale sessions are pruned by the cleanup
// routine in main.
package session
