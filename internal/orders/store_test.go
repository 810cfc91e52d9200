package orders

import (
	"fmt"
	"sync"
	"testing"
)

func TestStore_ReplaceAndCurrent(t *testing.T) {
	s := NewStore()
	if got := s.Current(); len(got) != 0 {
		t.Fatalf("fresh store should be empty, got %d orders", len(got))
	}

	s.Replace([]Order{{ID: "1"}})
	s.Replace([]Order{{ID: "2"}, {ID: "3"}})

	got := s.Current()
	if len(got) != 2 || got[0].ID != "2" {
		t.Fatalf("replacement must be wholesale, got %+v", got)
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	s := NewStore()

	older := s.Ticket()
	newer := s.Ticket()

	if !s.Commit(newer, []Order{{ID: "new"}}) {
		t.Fatalf("newer commit must apply")
	}
	// The older parse finishes late; it must not clobber the newer result.
	if s.Commit(older, []Order{{ID: "old"}}) {
		t.Fatalf("stale commit must be discarded")
	}

	got := s.Current()
	if len(got) != 1 || got[0].ID != "new" {
		t.Fatalf("stale data visible: %+v", got)
	}
}

func TestStore_ConcurrentReplaces(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ticket := s.Ticket()
			s.Commit(ticket, []Order{{ID: fmt.Sprintf("doc-%d", i)}, {ID: "second"}})
		}(i)
	}
	wg.Wait()

	// Whatever commit won, the snapshot must be complete: both orders of
	// one document, never an interleaving.
	got := s.Current()
	if len(got) != 2 || got[1].ID != "second" {
		t.Fatalf("snapshot not consistent: %+v", got)
	}
}
