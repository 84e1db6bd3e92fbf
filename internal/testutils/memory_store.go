package testutils

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/blogdev/blog-api/internal/domain"
	"github.com/blogdev/blog-api/internal/store"
)

// MemoryPostStore is an in-memory store.PostStore. IDs are assigned from
// a counter starting at 1. Stored posts are copied on the way in and out
// so callers never share memory with the store.
type MemoryPostStore struct {
	mu     sync.Mutex
	nextID int64
	posts  map[int64]domain.Post

	// Err, when set, is returned by every method.
	Err error
}

var _ store.PostStore = (*MemoryPostStore)(nil)

// NewMemoryPostStore creates an empty MemoryPostStore, optionally seeded
// with posts. Seeded posts keep their IDs.
func NewMemoryPostStore(seed ...*domain.Post) *MemoryPostStore {
	s := &MemoryPostStore{
		nextID: 1,
		posts:  make(map[int64]domain.Post),
	}
	for _, p := range seed {
		s.posts[p.ID] = *p
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

// Save inserts new posts and updates existing ones.
func (s *MemoryPostStore) Save(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	saved := *post
	if saved.IsNew() {
		saved.ID = s.nextID
		s.nextID++
	} else if _, ok := s.posts[saved.ID]; !ok {
		return nil, store.ErrPostNotFound
	}

	s.posts[saved.ID] = saved
	out := saved
	return &out, nil
}

// FindAll returns all posts ordered by ID.
func (s *MemoryPostStore) FindAll(ctx context.Context) ([]*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	posts := make([]*domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		p := p
		posts = append(posts, &p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

// FindByID returns the post with the given ID or store.ErrPostNotFound.
func (s *MemoryPostStore) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	p, ok := s.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	return &p, nil
}

// ExistsByID reports whether a post with the given ID is stored.
func (s *MemoryPostStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return false, s.Err
	}

	_, ok := s.posts[id]
	return ok, nil
}

// DeleteByID removes the post with the given ID or returns store.ErrPostNotFound.
func (s *MemoryPostStore) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	if _, ok := s.posts[id]; !ok {
		return store.ErrPostNotFound
	}
	delete(s.posts, id)
	return nil
}

// WithTxPostStore returns the store itself; there are no transactions in memory.
func (s *MemoryPostStore) WithTxPostStore(tx *sql.Tx) store.PostStore {
	return s
}

// Len returns the number of stored posts.
func (s *MemoryPostStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}
