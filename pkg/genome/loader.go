package genome

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/evolib/evotable/pkg/instset"
)

// Load reads a genome file: one mnemonic per line, blank lines and
// #-comments skipped.
func Load(path string, set instset.InstSet) (Genome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f, set)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Read reads the text genome format from rd. An unknown mnemonic fails the
// load; the error carries a did-you-mean suggestion when the instruction
// set has a near match.
func Read(rd io.Reader, set instset.InstSet) (Genome, error) {
	g := Genome{}
	sc := bufio.NewScanner(rd)
	line := 0
	for sc.Scan() {
		line++
		name := strings.TrimSpace(sc.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		inst, err := set.GetByName(name)
		if err != nil {
			if suggestion := set.Suggest(name); suggestion != "" {
				return nil, fmt.Errorf("line %d: unknown instruction %q (did you mean %q?)", line, name, suggestion)
			}
			return nil, fmt.Errorf("line %d: unknown instruction %q", line, name)
		}
		g = append(g, inst.Opcode)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// Save writes the text genome format to w.
func Save(w io.Writer, set instset.InstSet, g Genome) error {
	names, err := g.Names(set)
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// SaveFile writes the text genome format to path.
func SaveFile(path string, set instset.InstSet, g Genome) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, set, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadInternal reads the internal genome format from a word-split scanner:
// a leading length followed by that many mnemonics. The internal format is
// used when a genome is embedded inside a larger file.
func ReadInternal(sc *bufio.Scanner, set instset.InstSet) (Genome, error) {
	if !sc.Scan() {
		return nil, fmt.Errorf("internal genome: missing length: %w", scanErr(sc))
	}
	var length int
	if _, err := fmt.Sscanf(sc.Text(), "%d", &length); err != nil {
		return nil, fmt.Errorf("internal genome: bad length %q", sc.Text())
	}
	if length < 0 {
		return nil, fmt.Errorf("internal genome: negative length %d", length)
	}

	g := make(Genome, 0, length)
	for i := 0; i < length; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("internal genome: want %d instructions, got %d: %w", length, i, scanErr(sc))
		}
		inst, err := set.GetByName(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("internal genome: position %d: %w", i, err)
		}
		g = append(g, inst.Opcode)
	}
	return g, nil
}

// SaveInternal writes the internal genome format to w.
func SaveInternal(w io.Writer, set instset.InstSet, g Genome) error {
	if _, err := fmt.Fprintln(w, len(g)); err != nil {
		return err
	}
	return Save(w, set, g)
}

func scanErr(sc *bufio.Scanner) error {
	if err := sc.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}
