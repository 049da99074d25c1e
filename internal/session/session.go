// Package session tracks which principals are currently signed in and
// notifies observers of sign-in/sign-out transitions. The list membership
// store binds to it so per-user state is loaded eagerly on sign-in and
// dropped on sign-out.
package session

import "sync"

// Principal identifies a signed-in user.
type Principal struct {
	UserID uint
	Email  string
}

// Handler observes session transitions. signedIn is true when the principal
// just signed in and false when they signed out.
type Handler func(p Principal, signedIn bool)

// Registry holds the set of signed-in principals and their observers.
type Registry struct {
	mu        sync.Mutex
	active    map[uint]Principal
	observers map[int]Handler
	nextID    int
}

func NewRegistry() *Registry {
	return &Registry{
		active:    make(map[uint]Principal),
		observers: make(map[int]Handler),
	}
}

// Subscribe registers an observer. The observer is invoked immediately,
// once per currently signed-in principal, then again on every transition.
// The returned function unsubscribes it.
func (r *Registry) Subscribe(h Handler) (unsubscribe func()) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.observers[id] = h
	current := make([]Principal, 0, len(r.active))
	for _, p := range r.active {
		current = append(current, p)
	}
	r.mu.Unlock()

	for _, p := range current {
		h(p, true)
	}

	return func() {
		r.mu.Lock()
		delete(r.observers, id)
		r.mu.Unlock()
	}
}

// SignIn records the principal as signed in. Observers are notified only
// when this is an actual transition; signing in an already-active principal
// is a no-op.
func (r *Registry) SignIn(p Principal) {
	r.mu.Lock()
	if _, ok := r.active[p.UserID]; ok {
		r.mu.Unlock()
		return
	}
	r.active[p.UserID] = p
	handlers := r.snapshotObservers()
	r.mu.Unlock()

	for _, h := range handlers {
		h(p, true)
	}
}

// Ensure registers the principal if it is not already active. Used by the
// auth middleware so a valid token re-establishes the session after a
// server restart without going through the login handler again.
func (r *Registry) Ensure(p Principal) {
	r.SignIn(p)
}

// SignOut removes the principal and notifies observers. Unknown ids are
// ignored.
func (r *Registry) SignOut(userID uint) {
	r.mu.Lock()
	p, ok := r.active[userID]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.active, userID)
	handlers := r.snapshotObservers()
	r.mu.Unlock()

	for _, h := range handlers {
		h(p, false)
	}
}

// Current returns the signed-in principal for the id, if any.
func (r *Registry) Current(userID uint) (Principal, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.active[userID]
	return p, ok
}

// snapshotObservers must be called with the lock held.
func (r *Registry) snapshotObservers() []Handler {
	handlers := make([]Handler, 0, len(r.observers))
	for _, h := range r.observers {
		handlers = append(handlers, h)
	}
	return handlers
}
