// Package service holds the application use cases for blog posts. It
// orchestrates calls to the store.PostStore interface, sets transaction
// boundaries for multi-step operations, and translates store errors into
// service-level errors the API layer maps to HTTP responses.
//
// The package depends only on the domain types and the store interfaces,
// never on a concrete storage implementation.
package service
