package ntt

import (
	"math/rand"
	"testing"

	"github.com/dilithium-go/dilithium/internal/field"
)

func TestForwardInverseRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	var cs [field.N]int32
	for i := range cs {
		cs[i] = int32(r.Intn(int(field.Q)))
	}
	orig := cs

	Forward(&cs)
	Inverse(&cs)

	for i := range cs {
		if field.Freeze(cs[i]) != field.Freeze(orig[i]) {
			t.Fatalf("round trip mismatch at %d: got %d, want %d", i, cs[i], orig[i])
		}
	}
}

// TestPointwiseMatchesSchoolbook checks that multiplying two polynomials
// via forward-NTT/pointwise/inverse-NTT matches a direct negacyclic
// schoolbook convolution over Z_q[x]/(x^256+1).
func TestPointwiseMatchesSchoolbook(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	var a, b [field.N]int32
	for i := range a {
		a[i] = int32(r.Intn(int(field.Q)))
		b[i] = int32(r.Intn(int(field.Q)))
	}

	want := schoolbookMul(a, b)

	aHat, bHat := a, b
	Forward(&aHat)
	Forward(&bHat)
	var prodHat [field.N]int32
	Pointwise(&aHat, &bHat, &prodHat)
	Inverse(&prodHat)

	for i := range prodHat {
		if field.Freeze(prodHat[i]) != field.Freeze(want[i]) {
			t.Fatalf("pointwise NTT product mismatch at %d: got %d, want %d", i, field.Freeze(prodHat[i]), field.Freeze(want[i]))
		}
	}
}

func schoolbookMul(a, b [field.N]int32) [field.N]int32 {
	var out [2 * field.N]int64
	for i, ai := range a {
		for j, bj := range b {
			out[i+j] += int64(ai) * int64(bj)
		}
	}
	var r [field.N]int32
	for i := 0; i < field.N; i++ {
		v := out[i] - out[i+field.N] // x^256 = -1
		r[i] = field.Freeze(int32(v % int64(field.Q)))
	}
	return r
}

func TestZetasAreDistinctNonZero(t *testing.T) {
	seen := make(map[int32]bool)
	for _, z := range Zetas {
		if z == 0 {
			t.Fatal("found a zero zeta entry")
		}
		seen[z] = true
	}
	if len(seen) != field.N {
		t.Fatalf("zetas table has %d distinct values, want %d", len(seen), field.N)
	}
}
