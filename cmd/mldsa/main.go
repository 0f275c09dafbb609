// Command mldsa is a small CLI front end over pkg/mldsa: generate a key
// pair, sign a file, or verify a signature, at any of the three
// standardized security levels.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/dilithium-go/dilithium/internal/obs"
	"github.com/dilithium-go/dilithium/pkg/mldsa"
)

var buildVersion = "dev"

func main() {
	app := &cli.App{
		Name:    "mldsa",
		Usage:   "generate, sign, and verify with ML-DSA (Dilithium)",
		Version: buildVersion,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				obs.SetLevel(zerolog.DebugLevel)
			} else {
				obs.SetLevel(zerolog.InfoLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			keygenCommand,
			signCommand,
			verifyCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		obs.Log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCodeFor(err))
	}
}

var keygenCommand = &cli.Command{
	Name:  "keygen",
	Usage: "generate a key pair",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "level", Value: 3, Usage: "security level: 2, 3, or 5"},
		&cli.StringFlag{Name: "seed", Usage: "hex-encoded 32-byte seed (random if omitted)"},
		&cli.StringFlag{Name: "pub", Required: true, Usage: "output path for the public key"},
		&cli.StringFlag{Name: "priv", Required: true, Usage: "output path for the secret key"},
	},
	Action: func(c *cli.Context) error {
		level, err := levelFromInt(c.Int("level"))
		if err != nil {
			return cli.Exit(err, 2)
		}

		var pk, sk []byte
		if seedHex := c.String("seed"); seedHex != "" {
			seed, err := hex.DecodeString(seedHex)
			if err != nil {
				return cli.Exit(fmt.Errorf("invalid --seed: %w", err), 2)
			}
			pk, sk, err = mldsa.GenerateKey(level, seed)
			if err != nil {
				return err
			}
		} else {
			pk, sk, err = mldsa.GenerateKeyFrom(level, rand.Reader)
			if err != nil {
				return err
			}
		}

		if err := os.WriteFile(c.String("pub"), pk, 0o644); err != nil {
			return err
		}
		if err := os.WriteFile(c.String("priv"), sk, 0o600); err != nil {
			return err
		}
		obs.Log.Info().Str("level", level.String()).Msg("key pair written")
		return nil
	},
}

var signCommand = &cli.Command{
	Name:  "sign",
	Usage: "sign a message with a secret key",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "level", Value: 3, Usage: "security level: 2, 3, or 5"},
		&cli.StringFlag{Name: "priv", Required: true, Usage: "path to the secret key"},
		&cli.StringFlag{Name: "msg", Required: true, Usage: "path to the message to sign"},
		&cli.StringFlag{Name: "out", Required: true, Usage: "output path for the signature"},
		&cli.BoolFlag{Name: "random", Usage: "use non-deterministic signing"},
	},
	Action: func(c *cli.Context) error {
		level, err := levelFromInt(c.Int("level"))
		if err != nil {
			return cli.Exit(err, 2)
		}

		sk, err := os.ReadFile(c.String("priv"))
		if err != nil {
			return err
		}
		msg, err := os.ReadFile(c.String("msg"))
		if err != nil {
			return err
		}

		var sig []byte
		if c.Bool("random") {
			sig, err = mldsa.SignWithRandom(level, sk, msg, rand.Reader)
		} else {
			sig, err = mldsa.Sign(level, sk, msg)
		}
		if err != nil {
			return err
		}

		if err := os.WriteFile(c.String("out"), sig, 0o644); err != nil {
			return err
		}
		obs.Log.Info().Str("level", level.String()).Int("bytes", len(sig)).Msg("signature written")
		return nil
	},
}

var verifyCommand = &cli.Command{
	Name:  "verify",
	Usage: "verify a signature against a public key and message",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "level", Value: 3, Usage: "security level: 2, 3, or 5"},
		&cli.StringFlag{Name: "pub", Required: true, Usage: "path to the public key"},
		&cli.StringFlag{Name: "msg", Required: true, Usage: "path to the signed message"},
		&cli.StringFlag{Name: "sig", Required: true, Usage: "path to the signature"},
	},
	Action: func(c *cli.Context) error {
		level, err := levelFromInt(c.Int("level"))
		if err != nil {
			return cli.Exit(err, 2)
		}

		pk, err := os.ReadFile(c.String("pub"))
		if err != nil {
			return err
		}
		msg, err := os.ReadFile(c.String("msg"))
		if err != nil {
			return err
		}
		sig, err := os.ReadFile(c.String("sig"))
		if err != nil {
			return err
		}

		if err := mldsa.Verify(level, pk, msg, sig); err != nil {
			return cli.Exit(fmt.Sprintf("invalid signature: %v", err), 1)
		}
		fmt.Println("OK")
		return nil
	},
}

func levelFromInt(n int) (mldsa.Level, error) {
	switch n {
	case 2:
		return mldsa.L2, nil
	case 3:
		return mldsa.L3, nil
	case 5:
		return mldsa.L5, nil
	default:
		return 0, fmt.Errorf("invalid --level %d: must be 2, 3, or 5", n)
	}
}

// exitCodeFor returns the exit code carried by a cli.ExitCoder error: the
// actions use exit 1 for a bad signature and exit 2 for a bad --level or
// --seed value. Any other error (I/O failures, library errors, flag
// errors reported by the cli package) falls back to 1.
func exitCodeFor(err error) int {
	if ec, ok := err.(cli.ExitCoder); ok {
		return ec.ExitCode()
	}
	return 1
}
