// Package store provides a SQLite journal of built queries.
//
// Every recorded query gets a UUIDv7 id and a seq number from a monotonic
// logical clock. The clock resumes from MAX(seq) when a journal is
// reopened.
//
// # Ordering
//
// All reads use ORDER BY seq ASC, id ASC COLLATE BINARY. created_at is
// informational only.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
