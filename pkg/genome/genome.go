// Package genome holds the genome sequence type and its text and internal
// file formats. Genomes reference instructions by opcode; mnemonics are
// resolved through an instruction set at load and save time.
package genome

import (
	"fmt"

	"github.com/evolib/evotable/pkg/instset"
)

// Genome is an ordered sequence of instruction opcodes.
type Genome []int

// Names renders the genome as mnemonics using set.
func (g Genome) Names(set instset.InstSet) ([]string, error) {
	names := make([]string, 0, len(g))
	for i, opcode := range g {
		inst, err := set.GetByOpcode(opcode)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		names = append(names, inst.Name)
	}
	return names, nil
}
