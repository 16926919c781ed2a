// Package biota holds the process-wide registry of trait types. Trait
// types register a constructor once at startup and are looked up per
// organism thereafter, so the registry is write-once-then-read-mostly.
package biota

import (
	"sync"

	"github.com/evolib/evotable/pkg/dictionary"
	"github.com/evolib/evotable/pkg/hashtable"
)

// Trait is an organism-attached state object created by a registered trait
// type.
type Trait interface{}

// CreateFn constructs a new Trait instance.
type CreateFn func() Trait

// Library is a registry of trait types. The zero value is not usable; use
// New or the process-wide Instance. Every accessor takes the library mutex
// for the duration of the call, which makes a shared Library safe for
// concurrent use even though the underlying dictionary is not.
type Library struct {
	mu         sync.Mutex
	traitTypes dictionary.Dictionary[CreateFn]
}

var (
	instance *Library
	once     sync.Once
)

// Instance returns the process-wide library, creating it on first use.
func Instance() *Library {
	once.Do(func() {
		instance = New()
	})
	return instance
}

func New() *Library {
	// The size error is unreachable for a fixed preset.
	d, err := dictionary.New[CreateFn](hashtable.SizeDefault, nil)
	if err != nil {
		panic(err)
	}
	return &Library{traitTypes: d}
}

// RegisterTraitType registers create under typeName. It reports false when
// the name is already taken or create is nil.
func (r *Library) RegisterTraitType(typeName string, create CreateFn) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if create == nil || r.traitTypes.Has(typeName) {
		return false
	}
	r.traitTypes.Set(typeName, create)
	return true
}

// TraitTypeOf returns the constructor registered under typeName, or nil.
func (r *Library) TraitTypeOf(typeName string) CreateFn {
	r.mu.Lock()
	defer r.mu.Unlock()

	create, err := r.traitTypes.Get(typeName)
	if err != nil {
		return nil
	}
	return create
}

func (r *Library) IsTraitType(typeName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.traitTypes.Has(typeName)
}

// SuggestTraitType returns the closest registered type name, or "".
func (r *Library) SuggestTraitType(typeName string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.traitTypes.NearMatch(typeName)
}

// TraitTypes returns all registered type names in ascending order.
func (r *Library) TraitTypes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names, _ := r.traitTypes.Pairs()
	return names
}
