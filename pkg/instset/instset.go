// Package instset implements the instruction-set registry: instruction
// descriptors indexed by mnemonic and by opcode, with label-selector queries
// and typo-tolerant name resolution.
package instset

import (
	"fmt"

	"github.com/evolib/evotable/pkg/dictionary"
	"github.com/evolib/evotable/pkg/hashtable"
	"k8s.io/apimachinery/pkg/labels"
)

// Instruction describes one virtual-processor instruction. Properties holds
// free-form classification labels ("class": "nop", "flow": "true", ...).
type Instruction struct {
	Name       string
	Opcode     int
	Properties labels.Set
}

type InstSet interface {
	// Register adds an instruction under both its mnemonic and opcode.
	// Registering a duplicate of either fails.
	Register(inst Instruction) error
	GetByName(name string) (Instruction, error)
	GetByOpcode(opcode int) (Instruction, error)
	// Suggest returns the closest registered mnemonic to name, or "".
	Suggest(name string) string
	GetByLabel(selector labels.Selector) []Instruction

	Has(name string) bool
	Count() int
	// Names returns all mnemonics in ascending order.
	Names() []string
}

func New() (InstSet, error) {
	byName, err := dictionary.New[Instruction](hashtable.SizeDefault, nil)
	if err != nil {
		return nil, err
	}
	byOpcode, err := hashtable.NewInt[Instruction](hashtable.SizeDefault)
	if err != nil {
		return nil, err
	}
	return &instSet{
		byName:   byName,
		byOpcode: byOpcode,
	}, nil
}

type instSet struct {
	byName   dictionary.Dictionary[Instruction]
	byOpcode hashtable.Table[int, Instruction]
}

func (r *instSet) Register(inst Instruction) error {
	if inst.Name == "" {
		return fmt.Errorf("instruction needs a name")
	}
	if r.byName.Has(inst.Name) {
		return fmt.Errorf("instruction %q already exists", inst.Name)
	}
	if r.byOpcode.Has(inst.Opcode) {
		return fmt.Errorf("opcode %d already exists", inst.Opcode)
	}
	r.byName.Set(inst.Name, inst)
	r.byOpcode.Set(inst.Opcode, inst)
	return nil
}

func (r *instSet) GetByName(name string) (Instruction, error) {
	return r.byName.Get(name)
}

func (r *instSet) GetByOpcode(opcode int) (Instruction, error) {
	return r.byOpcode.Get(opcode)
}

func (r *instSet) Suggest(name string) string {
	return r.byName.NearMatch(name)
}

func (r *instSet) GetByLabel(selector labels.Selector) []Instruction {
	insts := []Instruction{}
	it := r.byOpcode.Iterate()
	for it.Next() {
		if selector.Matches(it.Value().Properties) {
			insts = append(insts, it.Value())
		}
	}
	return insts
}

func (r *instSet) Has(name string) bool {
	return r.byName.Has(name)
}

func (r *instSet) Count() int {
	return r.byName.Count()
}

func (r *instSet) Names() []string {
	names, _ := r.byName.Pairs()
	return names
}
