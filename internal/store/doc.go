// Package store caches fetched catalog snapshots in SQLite.
//
// The cache sits between the HTTP client and the listing engine: a fresh
// snapshot is served from disk, a stale or missing one triggers a fetch.
// The engine itself never touches the store; it always receives a fully
// materialized []catalog.Problem either way.
//
// One snapshot is kept per endpoint. Put replaces the previous snapshot
// in a single transaction, so readers never observe a half-written
// catalog.
package store
