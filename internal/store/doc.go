// Package store persists named collections of records as whole documents.
//
// A Collection loads and replaces its records as a unit through a Backend. Reads
// never fail: a missing collection loads as empty, and an unreadable or corrupt
// one is logged and also loads as empty. Writes replace the full document and
// report StorageUnavailable on failure.
//
// Each Collection serializes its load-mutate-save cycles with a mutex, so a
// Collection shared between goroutines never loses an update. Two Collection
// values pointing at the same backend document do not coordinate with each
// other; build one per collection name and share it.
//
// Backends:
//   - FileBackend: <dir>/<name>.json, replaced via temp file and rename
//   - MemoryBackend: process-local map, for tests and ephemeral runs
//   - RedisBackend: one string key per collection
//   - PostgresBackend: one jsonb row per collection in the collections table
//   - S3Backend: one object per collection
package store
