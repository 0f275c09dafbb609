package kattest_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dilithium-go/dilithium/internal/dilithium"
	"github.com/dilithium-go/dilithium/internal/kattest"
	"github.com/dilithium-go/dilithium/internal/params"
)

// TestRSPVectors runs the official NIST KAT vectors for each level if the
// fixture is present next to the test binary's working directory;
// otherwise it skips, matching the teacher's stress_vectors.json pattern.
func TestRSPVectors(t *testing.T) {
	fixtures := map[params.Level]string{
		params.L2: "testdata/PQCsignKAT_Dilithium2.rsp",
		params.L3: "testdata/PQCsignKAT_Dilithium3.rsp",
		params.L5: "testdata/PQCsignKAT_Dilithium5.rsp",
	}

	for level, path := range fixtures {
		level, path := level, path
		t.Run(fmt.Sprintf("level=%v", level), func(t *testing.T) {
			vectors, err := kattest.LoadRSP(path)
			if err != nil {
				t.Skipf("fixture %s not found, skipping KAT vectors: %v", path, err)
			}

			for _, v := range vectors {
				pk, sk, err := dilithium.KeyGen(level, v.Seed)
				require.NoError(t, err)
				require.Equal(t, v.PK, pk, "count=%d pk mismatch", v.Count)
				require.Equal(t, v.SK, sk, "count=%d sk mismatch", v.Count)

				sig, err := dilithium.Sign(level, sk, v.Msg)
				require.NoError(t, err)
				require.NoError(t, dilithium.Verify(level, pk, v.Msg, sig))
			}
		})
	}
}

// TestSeedBufferVectors exercises KeyGen against a SeedBuffer_Dilithium
// fixture if present, skipping otherwise.
func TestSeedBufferVectors(t *testing.T) {
	seeds, err := kattest.LoadSeedBuffer("testdata/SeedBuffer_Dilithium")
	if err != nil {
		t.Skipf("fixture not found, skipping seed buffer vectors: %v", err)
	}

	for i, seed := range seeds {
		pk, sk, err := dilithium.KeyGen(params.L2, seed)
		require.NoError(t, err, "seed %d", i)
		require.NotEmpty(t, pk)
		require.NotEmpty(t, sk)
	}
}
