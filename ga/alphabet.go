package ga

import (
	"fmt"
)

const (
	// MinSymbol and MaxSymbol bound the printable ASCII range every alphabet lives in.
	MinSymbol Gene = 0x20
	MaxSymbol Gene = 0x7E
)

// Gene is a single symbol of a chromosome.
type Gene byte

// Alphabet is the fixed set of symbols genes are sampled from.
type Alphabet struct {
	symbols []Gene
	member  [256]bool
}

// PrintableAlphabet returns the 95 symbols of the printable ASCII range [0x20, 0x7E].
func PrintableAlphabet() *Alphabet {
	a := &Alphabet{symbols: make([]Gene, 0, int(MaxSymbol-MinSymbol)+1)}
	for s := MinSymbol; s <= MaxSymbol; s++ {
		a.symbols = append(a.symbols, s)
		a.member[s] = true
	}
	return a
}

// NewAlphabet builds an alphabet from the given symbols.
// Symbols must be printable ASCII and must not repeat, otherwise sampling would be biased.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if symbols == "" {
		return nil, fmt.Errorf("alphabet must contain at least one symbol")
	}
	a := &Alphabet{symbols: make([]Gene, 0, len(symbols))}
	for i := 0; i < len(symbols); i++ {
		s := Gene(symbols[i])
		if s < MinSymbol || s > MaxSymbol {
			return nil, fmt.Errorf("alphabet symbol %q at offset %d is outside the printable range", symbols[i], i)
		}
		if a.member[s] {
			return nil, fmt.Errorf("alphabet symbol %q is repeated", symbols[i])
		}
		a.member[s] = true
		a.symbols = append(a.symbols, s)
	}
	return a, nil
}

// Len returns the number of distinct symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Contains reports whether s belongs to the alphabet.
func (a *Alphabet) Contains(s Gene) bool { return a.member[s] }

// Random samples one symbol uniformly.
func (a *Alphabet) Random(rng Source) Gene {
	if len(a.symbols) == 0 {
		panic("cannot sample from an empty alphabet")
	}
	return a.symbols[rng.IntN(len(a.symbols))]
}

func (a *Alphabet) String() string {
	b := make([]byte, len(a.symbols))
	for i, s := range a.symbols {
		b[i] = byte(s)
	}
	return string(b)
}
