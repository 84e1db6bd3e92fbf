// Package testutils provides testing utilities for the blog API.
//
// It contains:
//  1. MemoryPostStore, a thread-safe in-memory store.PostStore for
//     handler, service and router tests that should not need Postgres
//  2. Builders for domain.Post fixtures
//  3. HTTP helpers for executing requests against httptest servers and
//     asserting on responses
//
// Tests that need a real database use internal/testdb instead.
package testutils
