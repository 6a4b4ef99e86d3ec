package server

import (
	"testing"

	"github.com/google/uuid"
)

func names(r *Registry) []string {
	var out []string
	for c := range r.All() {
		out = append(out, c.Name)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func client(name string) *Client {
	return &Client{ID: uuid.New(), Name: name}
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	ann, bob, carl := client("Ann"), client("Bob"), client("Carl")

	r.PushFront(ann)
	r.PushFront(bob)
	r.PushBack(carl)
	if got := names(r); !equal(got, []string{"Bob", "Ann", "Carl"}) {
		t.Fatalf("order = %v", got)
	}

	if !r.MoveToBack(bob.ID) {
		t.Fatalf("MoveToBack reported unknown client")
	}
	if got := names(r); !equal(got, []string{"Ann", "Carl", "Bob"}) {
		t.Fatalf("order after MoveToBack = %v", got)
	}

	if !r.Remove(carl.ID) || r.Remove(carl.ID) {
		t.Fatalf("Remove should succeed once")
	}
	if _, ok := r.Get(carl.ID); ok {
		t.Fatalf("removed client still found")
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if r.MoveToBack(carl.ID) {
		t.Fatalf("MoveToBack of removed client succeeded")
	}
}

func TestRegistryRemoveDuringIteration(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"a", "b", "c", "d"} {
		r.PushBack(client(n))
	}

	var seen []string
	for c := range r.All() {
		seen = append(seen, c.Name)
		if c.Name == "b" || c.Name == "c" {
			r.Remove(c.ID)
		}
	}
	if !equal(seen, []string{"a", "b", "c", "d"}) {
		t.Fatalf("visited %v", seen)
	}
	if got := names(r); !equal(got, []string{"a", "d"}) {
		t.Fatalf("remaining %v", got)
	}
}

func TestRegistryStopIteration(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"a", "b", "c"} {
		r.PushBack(client(n))
	}
	count := 0
	for range r.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("iterated %d times", count)
	}
	if len(r.Snapshot()) != 3 {
		t.Fatalf("Snapshot() len = %d", len(r.Snapshot()))
	}
}
