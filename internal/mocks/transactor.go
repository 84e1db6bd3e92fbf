package mocks

import (
	"context"

	"github.com/blogdev/blog-api/internal/store"
)

// MockTransactor implements store.Transactor for testing.
// Without RunInTxFn it calls fn directly with a nil transaction.
type MockTransactor struct {
	RunInTxFn func(ctx context.Context, fn store.TxFn) error

	// Calls counts RunInTx invocations
	Calls int
}

// RunInTx implements the Transactor.RunInTx method
func (m *MockTransactor) RunInTx(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.RunInTxFn != nil {
		return m.RunInTxFn(ctx, fn)
	}
	return fn(ctx, nil)
}
