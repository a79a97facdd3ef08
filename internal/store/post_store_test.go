package store

import (
	"context"
	"strings"
	"testing"
)

func TestPostStoreListByEntityIDs(t *testing.T) {
	ctx := context.Background()
	store := NewPostStore(stubDB{
		selectFn: func(_ context.Context, dest any, query string, args ...any) error {
			if !strings.Contains(query, "WHERE author_id = ANY($1)") {
				t.Fatalf("unexpected filter: %s", query)
			}
			if !strings.Contains(query, "ORDER BY timestamp DESC") {
				t.Fatalf("unexpected ordering: %s", query)
			}
			if len(args) != 1 {
				t.Fatalf("unexpected args: %#v", args)
			}
			*dest.(*[]PostSummary) = []PostSummary{{ID: "p-1", Title: "New batch", AuthorID: "e-1"}}
			return nil
		},
	})
	posts, err := store.ListByEntityIDs(ctx, []string{"e-1", "e-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 || posts[0].AuthorID != "e-1" {
		t.Fatalf("unexpected posts: %#v", posts)
	}
}

func TestPostStoreListByEntityIDsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewPostStore(stubDB{
		selectFn: func(_ context.Context, _ any, query string, _ ...any) error {
			t.Fatalf("unexpected query: %s", query)
			return nil
		},
	})
	posts, err := store.ListByEntityIDs(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts != nil {
		t.Fatalf("unexpected posts: %#v", posts)
	}
}
