// Package params holds the per-security-level constants for the Dilithium
// signature scheme. A Params value is threaded explicitly through every
// call instead of living behind a global, so KeyGen/Sign/Verify at
// different levels can run concurrently without coordination.
package params

import (
	"fmt"

	"github.com/dilithium-go/dilithium/internal/field"
)

// Level selects one of the three standardized security levels.
type Level int

const (
	L2 Level = iota
	L3
	L5
)

func (l Level) String() string {
	switch l {
	case L2:
		return "L2"
	case L3:
		return "L3"
	case L5:
		return "L5"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Scheme88 is the (q-1)/88 decomposition used by L2.
const Scheme88 = field.Scheme88

// Scheme32 is the (q-1)/32 decomposition used by L3 and L5.
const Scheme32 = field.Scheme32

// Params is the full parameter set for one security level. All byte-size
// fields are derived quantities, listed explicitly so packing code never
// has to recompute them.
type Params struct {
	Level Level

	K, L int // matrix dimensions
	Eta  int32
	Tau  int
	Beta int32

	Gamma1 int32
	Gamma2 int32
	Omega  int

	Scheme field.RoundingScheme

	PolyEtaBytes int
	PolyZBytes   int
	PolyW1Bytes  int

	PkBytes  int
	SkBytes  int
	SigBytes int
}

const (
	seedBytes = 32
	trBytes   = 32 // tr length per this spec's sk frame (see DESIGN.md)

	polyT1Bytes = 320 // 10 bits/coeff
	polyT0Bytes = 416 // 13 bits/coeff
)

var table = map[Level]Params{
	L2: {
		Level: L2, K: 4, L: 4, Eta: 2, Tau: 39, Beta: 78,
		Gamma1: 1 << 17, Gamma2: (8380417 - 1) / 88, Omega: 80,
		Scheme:       Scheme88,
		PolyEtaBytes: 96, PolyZBytes: 576, PolyW1Bytes: 192,
	},
	L3: {
		Level: L3, K: 6, L: 5, Eta: 4, Tau: 49, Beta: 196,
		Gamma1: 1 << 19, Gamma2: (8380417 - 1) / 32, Omega: 55,
		Scheme:       Scheme32,
		PolyEtaBytes: 128, PolyZBytes: 640, PolyW1Bytes: 128,
	},
	L5: {
		Level: L5, K: 8, L: 7, Eta: 2, Tau: 60, Beta: 120,
		Gamma1: 1 << 19, Gamma2: (8380417 - 1) / 32, Omega: 75,
		Scheme:       Scheme32,
		PolyEtaBytes: 96, PolyZBytes: 640, PolyW1Bytes: 128,
	},
}

func init() {
	for lvl, p := range table {
		p.PkBytes = seedBytes + p.K*polyT1Bytes
		p.SkBytes = seedBytes + seedBytes + trBytes + p.L*p.PolyEtaBytes + p.K*p.PolyEtaBytes + p.K*polyT0Bytes
		p.SigBytes = seedBytes + p.L*p.PolyZBytes + p.Omega + p.K
		table[lvl] = p
	}
}

// For returns the parameter set for the given level. It panics on an
// unrecognized level, a programmer error the type system can't catch
// since Level is just an int.
func For(level Level) Params {
	p, ok := table[level]
	if !ok {
		panic(fmt.Sprintf("params: unknown level %v", level))
	}
	return p
}
