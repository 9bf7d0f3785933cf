package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
	"github.com/shandysiswandi/gocafe/internal/cafe/store"
	"github.com/shandysiswandi/gocafe/internal/cafe/usecase"
)

func TestInMemoryStore_Contract(t *testing.T) {
	t.Parallel()

	runStoreContract(t, func(t *testing.T) usecase.Store {
		return store.NewInMemoryStore()
	})
}

func TestInMemoryStore_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewInMemoryStore()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.CreateMenu(ctx, entity.Menu{Title: "m"})
			if err != nil {
				t.Errorf("CreateMenu() err = %v", err)
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d ids, got %d", n, len(seen))
	}
}

func TestInMemoryStore_ListReturnsCopiesInIDOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewInMemoryStore()

	for _, title := range []string{"a", "b", "c"} {
		if _, err := s.CreateMenu(ctx, entity.Menu{Title: title}); err != nil {
			t.Fatalf("CreateMenu() err = %v", err)
		}
	}

	menus, err := s.ListMenus(ctx)
	if err != nil {
		t.Fatalf("ListMenus() err = %v", err)
	}
	for i, m := range menus {
		if m.ID != int64(i+1) {
			t.Fatalf("menus[%d].ID = %d, want %d", i, m.ID, i+1)
		}
	}

	menus[0].Title = "changed"
	got, err := s.GetMenu(ctx, 1)
	if err != nil {
		t.Fatalf("GetMenu() err = %v", err)
	}
	if got.Title != "a" {
		t.Fatalf("store row mutated through list result: %q", got.Title)
	}
}
