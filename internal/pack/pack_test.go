package pack

import (
	"math/rand"
	"testing"

	"github.com/dilithium-go/dilithium/internal/field"
	"github.com/dilithium-go/dilithium/internal/params"
)

func TestBitPackRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, width := range []int{3, 4, 6, 10, 13, 18, 20} {
		max := int32(1) << uint(width)
		cs := make([]int32, field.N)
		for i := range cs {
			cs[i] = int32(r.Intn(int(max)))
		}
		packed := packBits(cs, width)
		back := unpackBits(packed, field.N, width)
		for i := range cs {
			if back[i] != cs[i] {
				t.Fatalf("width=%d coeff %d: got %d, want %d", width, i, back[i], cs[i])
			}
		}
	}
}

func TestT1RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	cs := make([]int32, field.N)
	for i := range cs {
		cs[i] = int32(r.Intn(1 << 10))
	}
	back := UnpackT1(T1(cs))
	for i := range cs {
		if back[i] != cs[i] {
			t.Fatalf("T1 round trip mismatch at %d", i)
		}
	}
}

func TestT0RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	cs := make([]int32, field.N)
	for i := range cs {
		cs[i] = int32(r.Intn(1<<field.D)) - (1 << (field.D - 1)) + 1
	}
	back := UnpackT0(T0(cs))
	for i := range cs {
		want := field.Freeze(cs[i])
		if back[i] != want {
			t.Fatalf("T0 round trip mismatch at %d: got %d, want %d", i, back[i], want)
		}
	}
}

func TestEtaRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, eta := range []int32{2, 4} {
		cs := make([]int32, field.N)
		for i := range cs {
			cs[i] = field.Freeze(int32(r.Intn(int(2*eta+1))) - eta)
		}
		back := UnpackEta(Eta(cs, eta), eta)
		for i := range cs {
			if back[i] != cs[i] {
				t.Fatalf("eta=%d round trip mismatch at %d: got %d, want %d", eta, i, back[i], cs[i])
			}
		}
	}
}

func TestZRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for _, gamma1 := range []int32{1 << 17, 1 << 19} {
		cs := make([]int32, field.N)
		for i := range cs {
			cs[i] = field.Freeze(int32(r.Int63n(int64(2*gamma1))) - gamma1 + 1)
		}
		back := UnpackZ(Z(cs, gamma1), gamma1)
		for i := range cs {
			if back[i] != cs[i] {
				t.Fatalf("gamma1=%d round trip mismatch at %d: got %d, want %d", gamma1, i, back[i], cs[i])
			}
		}
	}
}

func TestW1RoundTrip(t *testing.T) {
	for _, scheme := range []field.RoundingScheme{field.Scheme88, field.Scheme32} {
		width := w1Width(scheme)
		cs := make([]int32, field.N)
		for i := range cs {
			cs[i] = int32(i) % (1 << uint(width))
		}
		back := UnpackW1(W1(cs, scheme), scheme)
		for i := range cs {
			if back[i] != cs[i] {
				t.Fatalf("scheme=%v round trip mismatch at %d", scheme, i)
			}
		}
	}
}

func TestHintRoundTrip(t *testing.T) {
	p := params.For(params.L3)
	hints := make([][]int32, p.K)
	total := 0
	for i := range hints {
		hints[i] = make([]int32, field.N)
		for j := 0; j < field.N; j += 17 {
			if total >= p.Omega {
				break
			}
			hints[i][j] = 1
			total++
		}
	}
	packed := Hint(hints, p.Omega, p.K)
	back, err := UnpackHint(packed, p.Omega, p.K, field.N)
	if err != nil {
		t.Fatalf("UnpackHint: %v", err)
	}
	for i := range hints {
		for j := range hints[i] {
			if back[i][j] != hints[i][j] {
				t.Fatalf("hint round trip mismatch at [%d][%d]", i, j)
			}
		}
	}
}

func TestUnpackHintRejectsNonMonotoneCounts(t *testing.T) {
	p := params.For(params.L2)
	buf := make([]byte, p.Omega+p.K)
	for j := 0; j < 5; j++ {
		buf[j] = byte(j) // valid ascending indices for the first polynomial
	}
	buf[p.Omega] = 5
	buf[p.Omega+1] = 2 // decreasing cumulative count
	_, err := UnpackHint(buf, p.Omega, p.K, field.N)
	if err == nil {
		t.Fatal("expected error for non-monotone cumulative counts")
	}
}

func TestUnpackHintRejectsNonZeroPadding(t *testing.T) {
	p := params.For(params.L2)
	buf := make([]byte, p.Omega+p.K)
	buf[p.Omega-1] = 7 // padding slot past cnt=0 for every poly
	_, err := UnpackHint(buf, p.Omega, p.K, field.N)
	if err == nil {
		t.Fatal("expected error for non-zero padding")
	}
}

func TestFrameRoundTrips(t *testing.T) {
	for _, level := range []params.Level{params.L2, params.L3, params.L5} {
		p := params.For(level)
		rho := make([]byte, 32)
		t1 := make([][]int32, p.K)
		for i := range t1 {
			t1[i] = make([]int32, field.N)
		}
		pk := PK(rho, t1, p)
		if len(pk) != p.PkBytes {
			t.Fatalf("level=%v PK length = %d, want %d", level, len(pk), p.PkBytes)
		}
		gotRho, gotT1, err := UnpackPK(pk, p)
		if err != nil {
			t.Fatalf("UnpackPK: %v", err)
		}
		if string(gotRho) != string(rho) {
			t.Fatalf("level=%v rho round trip mismatch", level)
		}
		if len(gotT1) != p.K {
			t.Fatalf("level=%v unpacked t1 rows = %d, want %d", level, len(gotT1), p.K)
		}
	}
}

func TestUnpackPKRejectsWrongLength(t *testing.T) {
	p := params.For(params.L2)
	_, _, err := UnpackPK(make([]byte, p.PkBytes-1), p)
	if err == nil {
		t.Fatal("expected error for wrong-length public key")
	}
}
