package registry

import (
	"sort"
	"sync"

	"github.com/c360/cardkit/errors"
)

// Factory creates a blank instance of T for a registered type tag.
// The parser fills the instance from JSON after construction.
type Factory[T any] func() T

// Registration holds factory and metadata for a registered type.
type Registration[T any] struct {
	Factory     Factory[T]     `json:"-"`           // Factory function (not serializable)
	Tag         string         `json:"tag"`         // Type tag (e.g., "TextBlock", "Action.Submit")
	Description string         `json:"description"` // Human-readable description
	Version     string         `json:"version"`     // Schema version the type first appeared in
	Example     map[string]any `json:"example"`     // Optional example JSON payload
}

// Registry manages type factories for polymorphic deserialization.
// It provides thread-safe registration and lookup of factories by string
// type tag, enabling the parser to recreate typed nodes from JSON.
//
// Registration is upsert: registering a tag that already exists replaces
// its factory (last-write-wins). Lookup is by exact, case-sensitive match.
type Registry[T any] struct {
	registrations map[string]*Registration[T]
	mu            sync.RWMutex
}

// New creates a new empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		registrations: make(map[string]*Registration[T]),
	}
}

// Register registers a factory for a type tag with validation.
// If the tag is already registered its factory is replaced; hosts use this
// to override the built-in parsing for a standard type.
func (r *Registry[T]) Register(registration *Registration[T]) error {
	if registration == nil {
		return errors.WrapInvalid(
			errors.ErrInvalidConfig,
			"Registry",
			"Register",
			"registration validation",
		)
	}

	if registration.Factory == nil {
		return errors.WrapInvalid(errors.ErrNilFactory, "Registry", "Register", "factory function validation")
	}

	if registration.Tag == "" {
		return errors.WrapInvalid(errors.ErrEmptyTag, "Registry", "Register", "tag validation")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.registrations[registration.Tag] = registration
	return nil
}

// Unregister removes the registration for a tag.
// Unregistering an absent tag is a no-op.
func (r *Registry[T]) Unregister(tag string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.registrations, tag)
}

// CreateInstance creates a blank instance using the registered factory.
// The second return is false if the tag is not registered; callers must
// treat that as "unknown type" and recover locally, not as a crash.
func (r *Registry[T]) CreateInstance(tag string) (T, bool) {
	r.mu.RLock()
	registration, exists := r.registrations[tag]
	r.mu.RUnlock()

	if !exists {
		var zero T
		return zero, false
	}

	return registration.Factory(), true
}

// Contains reports whether a tag is registered.
func (r *Registry[T]) Contains(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.registrations[tag]
	return exists
}

// Clear resets the registry to empty.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.registrations = make(map[string]*Registration[T])
}

// Tags returns all registered type tags in sorted order.
func (r *Registry[T]) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.registrations))
	for tag := range r.registrations {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags
}

// List returns all registrations keyed by tag.
// Returns copies without the factory functions to prevent external
// modification of the registry's state.
func (r *Registry[T]) List() map[string]*Registration[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*Registration[T], len(r.registrations))
	for tag, registration := range r.registrations {
		result[tag] = &Registration[T]{
			Tag:         registration.Tag,
			Description: registration.Description,
			Version:     registration.Version,
			Example:     registration.Example,
			// Factory is intentionally not copied for safety
		}
	}

	return result
}
