// Package mocks provides centralized mock implementations for testing.
//
// Each mock has a function field per interface method. Tests set the
// fields they care about; unset methods fall back to the default return
// values on the struct.
//
//	postService := &mocks.MockPostService{
//	    GetPostFn: func(ctx context.Context, id int64) (*domain.Post, error) {
//	        return nil, service.ErrPostNotFound
//	    },
//	}
package mocks
