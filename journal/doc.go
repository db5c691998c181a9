// Package journal stores short text tasks in a single JSON file.
//
// The journal file holds one array of task objects:
//
//	[{"text":"buy milk","created_at":1700000000}]
//
// created_at is seconds since the Unix epoch. An empty (or whitespace-only)
// file is an empty journal, not an error. Every mutation reads the whole file,
// changes the collection in memory and rewrites the file from the start.
//
// Tasks are addressed by their 1-based position in the current listing.
// Positions shift when a task before them is completed, so they are only
// meaningful within one invocation.
//
// There is no locking: running two commands against the same journal at the
// same time can lose writes.
package journal
