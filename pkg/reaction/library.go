package reaction

import (
	"fmt"
	"strings"

	"github.com/evolib/evotable/pkg/dictionary"
	"github.com/evolib/evotable/pkg/hashtable"
)

// Library indexes reactions by name and by id.
type Library interface {
	// Add registers a reaction under both its name and id. Duplicates of
	// either fail.
	Add(rx *Reaction) error
	GetByName(name string) (*Reaction, error)
	GetByID(id int) (*Reaction, error)
	// Suggest returns the closest registered reaction name to name, or "".
	Suggest(name string) string
	// Tune applies a "name=value" configuration line, setting the value of
	// the named reaction's first process.
	Tune(line string) error

	Count() int
	// Names returns all reaction names in ascending order.
	Names() []string
}

func NewLibrary() (Library, error) {
	byName, err := dictionary.New[*Reaction](hashtable.SizeDefault, nil)
	if err != nil {
		return nil, err
	}
	byID, err := hashtable.NewInt[*Reaction](hashtable.SizeDefault)
	if err != nil {
		return nil, err
	}
	return &library{byName: byName, byID: byID}, nil
}

type library struct {
	byName dictionary.Dictionary[*Reaction]
	byID   hashtable.Table[int, *Reaction]
}

func (r *library) Add(rx *Reaction) error {
	if rx.Name() == "" {
		return fmt.Errorf("reaction needs a name")
	}
	if r.byName.Has(rx.Name()) {
		return fmt.Errorf("reaction %q already exists", rx.Name())
	}
	if r.byID.Has(rx.ID()) {
		return fmt.Errorf("reaction id %d already exists", rx.ID())
	}
	r.byName.Set(rx.Name(), rx)
	r.byID.Set(rx.ID(), rx)
	return nil
}

func (r *library) GetByName(name string) (*Reaction, error) {
	return r.byName.Get(name)
}

func (r *library) GetByID(id int) (*Reaction, error) {
	return r.byID.Get(id)
}

func (r *library) Suggest(name string) string {
	return r.byName.NearMatch(name)
}

func (r *library) Tune(line string) error {
	name := line
	rest := ""
	if i := strings.IndexByte(line, '='); i >= 0 {
		name, rest = line[:i], line[i+1:]
	}
	value, err := dictionary.ConvertFloat(rest)
	if err != nil {
		return fmt.Errorf("tune %q: %w", name, err)
	}

	rx, err := r.byName.Get(name)
	if err != nil {
		if suggestion := r.Suggest(name); suggestion != "" {
			return fmt.Errorf("tune: unknown reaction %q (did you mean %q?)", name, suggestion)
		}
		return fmt.Errorf("tune: unknown reaction %q", name)
	}
	if !rx.ModifyValue(value, 0) {
		return fmt.Errorf("tune %q: reaction has no processes", name)
	}
	return nil
}

func (r *library) Count() int {
	return r.byName.Count()
}

func (r *library) Names() []string {
	names, _ := r.byName.Pairs()
	return names
}
