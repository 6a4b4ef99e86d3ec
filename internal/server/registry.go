package server

import (
	"container/list"
	"iter"

	"github.com/google/uuid"
)

// Registry keeps connected clients in matchmaking order. The front is scanned first.
type Registry struct {
	order *list.List
	index map[uuid.UUID]*list.Element
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		order: list.New(),
		index: make(map[uuid.UUID]*list.Element),
	}
}

// PushFront inserts c at the head.
func (r *Registry) PushFront(c *Client) {
	r.index[c.ID] = r.order.PushFront(c)
}

// PushBack inserts c at the tail.
func (r *Registry) PushBack(c *Client) {
	r.index[c.ID] = r.order.PushBack(c)
}

// Get looks a client up by handle.
func (r *Registry) Get(id uuid.UUID) (*Client, bool) {
	e, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return e.Value.(*Client), true
}

// Remove unlinks the client. It reports false if the handle is unknown.
func (r *Registry) Remove(id uuid.UUID) bool {
	e, ok := r.index[id]
	if !ok {
		return false
	}
	r.order.Remove(e)
	delete(r.index, id)
	return true
}

// MoveToBack requeues the client at the tail.
func (r *Registry) MoveToBack(id uuid.UUID) bool {
	e, ok := r.index[id]
	if !ok {
		return false
	}
	r.order.MoveToBack(e)
	return true
}

// Len returns the number of registered clients.
func (r *Registry) Len() int {
	return r.order.Len()
}

// All yields clients head to tail. The yielded client may be removed or
// requeued by the loop body without ending the iteration early.
func (r *Registry) All() iter.Seq[*Client] {
	return func(yield func(*Client) bool) {
		e := r.order.Front()
		for e != nil {
			next := e.Next()
			if !yield(e.Value.(*Client)) {
				return
			}
			e = next
		}
	}
}

// Snapshot returns the clients head to tail.
func (r *Registry) Snapshot() []*Client {
	clients := make([]*Client, 0, r.order.Len())
	for c := range r.All() {
		clients = append(clients, c)
	}
	return clients
}
