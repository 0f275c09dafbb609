package pack

import "github.com/pkg/errors"

// ErrMalformedHint is returned by UnpackHint when the encoded hint
// vector violates spec.md §4.7's structural rules: non-monotone
// cumulative counts, out-of-order indices within one polynomial's slice,
// or non-zero padding in unused slots.
var ErrMalformedHint = errors.New("pack: malformed hint vector encoding")

// Hint packs k polynomials of {0,1} coefficients into the index-list
// encoding: for each polynomial, the ascending list of set-coefficient
// indices is written starting at the running count, followed by the
// cumulative count written at offset omega+i. The output is exactly
// omega+k bytes; unused slots are left zero.
func Hint(hints [][]int32, omega, k int) []byte {
	out := make([]byte, omega+k)
	cnt := 0
	for i, h := range hints {
		for j, bit := range h {
			if bit != 0 {
				out[cnt] = byte(j)
				cnt++
			}
		}
		out[omega+i] = byte(cnt)
	}
	return out
}

// UnpackHint is Hint's inverse. It enforces every structural invariant
// spec.md §4.7 names, rejecting any encoding a malicious signer could
// have crafted to desynchronize the verifier's hint application.
func UnpackHint(buf []byte, omega, k, n int) ([][]int32, error) {
	if len(buf) != omega+k {
		return nil, errors.Wrap(ErrMalformedHint, "wrong length")
	}

	hints := make([][]int32, k)
	prevCnt := 0
	for i := 0; i < k; i++ {
		h := make([]int32, n)
		cnt := int(buf[omega+i])
		if cnt < prevCnt || cnt > omega {
			return nil, errors.Wrap(ErrMalformedHint, "cumulative count not monotone")
		}
		prevIdx := -1
		for j := prevCnt; j < cnt; j++ {
			idx := int(buf[j])
			if idx <= prevIdx {
				return nil, errors.Wrap(ErrMalformedHint, "indices not strictly increasing")
			}
			prevIdx = idx
			if idx >= n {
				return nil, errors.Wrap(ErrMalformedHint, "index out of range")
			}
			h[idx] = 1
		}
		hints[i] = h
		prevCnt = cnt
	}
	for j := prevCnt; j < omega; j++ {
		if buf[j] != 0 {
			return nil, errors.Wrap(ErrMalformedHint, "non-zero padding")
		}
	}
	return hints, nil
}

// PopCount returns the total number of set bits across all k hint
// polynomials.
func PopCount(hints [][]int32) int {
	n := 0
	for _, h := range hints {
		for _, bit := range h {
			if bit != 0 {
				n++
			}
		}
	}
	return n
}
