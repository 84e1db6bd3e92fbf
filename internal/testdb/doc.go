//go:build integration

// Package testdb provides utilities for database integration tests.
//
// Each test runs in its own transaction which is rolled back when the test
// completes, so tests can run in parallel and need no cleanup:
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        postStore := postgres.NewPostgresPostStore(tx, nil)
//	        // ...
//	    })
//	}
//
// The database is located through DATABASE_URL, falling back to BLOG_TEST_DB_URL.
// Tests are skipped when neither is set.
package testdb
