// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package random provides a replayable pseudo-random generator whose full
// position is captured by a small serializable value.
//
// A State is a seed plus the number of 64-bit values consumed so far. Two
// generators built from equal states produce identical sequences, which
// makes stroke rendering reproducible across undo/redo and in tests.
package random

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"math/rand/v2"
)

// State is the serializable position of a Generator.
type State struct {
	Seed     uint64 `json:"seed"`
	Consumed uint64 `json:"consumed"`
}

// NewState returns the initial state for seed.
func NewState(seed uint64) State {
	return State{Seed: seed}
}

// String implements fmt.Stringer.
func (s State) String() string {
	return fmt.Sprintf("random.State{seed=%d, consumed=%d}", s.Seed, s.Consumed)
}

// pcgStream is the fixed second PCG seed word. Keeping it constant means
// the generator is fully determined by State.Seed.
const pcgStream = 0x9e3779b97f4a7c15

// Generator draws values and tracks how many it has consumed.
// Every draw consumes exactly one 64-bit value, so the state after n draws
// is independent of which methods were used.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	pcg      *rand.PCG
	seed     uint64
	consumed uint64
}

// NewGenerator returns a generator positioned at s. Restoring takes
// O(log s.Consumed) steps.
func NewGenerator(s State) *Generator {
	pcg := rand.NewPCG(s.Seed, pcgStream)
	if s.Consumed > 0 {
		st := jump(u128{hi: s.Seed, lo: pcgStream}, s.Consumed)
		buf := make([]byte, 0, 20)
		buf = append(buf, "pcg:"...)
		buf = binary.BigEndian.AppendUint64(buf, st.hi)
		buf = binary.BigEndian.AppendUint64(buf, st.lo)
		if err := pcg.UnmarshalBinary(buf); err != nil {
			panic("random: restore pcg state: " + err.Error())
		}
	}
	return &Generator{pcg: pcg, seed: s.Seed, consumed: s.Consumed}
}

// u128 is an unsigned 128-bit integer, arithmetic mod 2^128.
type u128 struct{ hi, lo uint64 }

func (a u128) mul(b u128) u128 {
	hi, lo := bits.Mul64(a.lo, b.lo)
	hi += a.hi*b.lo + a.lo*b.hi
	return u128{hi, lo}
}

func (a u128) add(b u128) u128 {
	lo, c := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(a.hi, b.hi, c)
	return u128{hi, lo}
}

// Multiplier and increment of the 128-bit LCG underlying rand.PCG.
var (
	pcgMul = u128{hi: 2549297995355413924, lo: 4865540595714422341}
	pcgInc = u128{hi: 6364136223846793005, lo: 1442695040888963407}
)

// jump advances the LCG state st by n steps using the square-and-multiply
// composition of affine maps x -> mul*x + inc.
func jump(st u128, n uint64) u128 {
	accMul, accInc := u128{lo: 1}, u128{}
	curMul, curInc := pcgMul, pcgInc
	for n > 0 {
		if n&1 == 1 {
			accMul = accMul.mul(curMul)
			accInc = accInc.mul(curMul).add(curInc)
		}
		curInc = curMul.add(u128{lo: 1}).mul(curInc)
		curMul = curMul.mul(curMul)
		n >>= 1
	}
	return accMul.mul(st).add(accInc)
}

// State returns the current position of g.
func (g *Generator) State() State {
	return State{Seed: g.seed, Consumed: g.consumed}
}

// Clone returns an independent generator at the same position.
func (g *Generator) Clone() *Generator {
	return NewGenerator(g.State())
}

// Uint64 returns the next raw 64-bit value.
func (g *Generator) Uint64() uint64 {
	g.consumed++
	return g.pcg.Uint64()
}

// Float64 returns a value in [0, 1).
func (g *Generator) Float64() float64 {
	return float64(g.Uint64()>>11) * (1.0 / (1 << 53))
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (g *Generator) IntN(n int) int {
	if n <= 0 {
		panic("random: IntN with non-positive n")
	}
	hi, _ := bits.Mul64(g.Uint64(), uint64(n))
	return int(hi) //nolint:gosec // hi < n
}

// Uniform returns a value in [lo, hi).
func (g *Generator) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.Float64()
}
