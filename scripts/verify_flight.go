//go:build ignore

// Checks a running fwdad Flight server against local evaluation:
//
//	go run scripts/verify_flight.go localhost:9090
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/23skdu/fwdad/internal/client"
	"github.com/23skdu/fwdad/internal/grad"
	"github.com/23skdu/fwdad/internal/objective"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	addr := "localhost:9090"
	if len(os.Args) > 1 {
		addr = os.Args[1]
	}

	log.Info().Str("addr", addr).Msg("Connecting to fwdad Flight server")
	c, err := client.NewFlightClient(addr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create client")
	}
	defer c.Close()

	points := [][]float64{{0, 0}, {3, 2}, {-1.5, 0.25}, {1, 1}}
	reg := objective.Default()

	for _, name := range []string{"rosenbrock", "himmelblau", "booth", "beale"} {
		o, err := reg.Lookup(name)
		if err != nil {
			log.Fatal().Err(err).Msg("Unknown objective")
		}

		var remote []grad.Result
		// The server may still be starting.
		for i := 0; i < 10; i++ {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			remote, err = c.DoExchange(ctx, name, points)
			cancel()
			if err == nil {
				break
			}
			log.Warn().Err(err).Msg("Exchange failed, retrying...")
			time.Sleep(time.Second)
		}
		if err != nil {
			log.Fatal().Err(err).Str("objective", name).Msg("Exchange failed after retries")
		}

		for i, p := range points {
			local, err := grad.Evaluate(o, p)
			if err != nil {
				log.Fatal().Err(err).Msg("Local evaluation failed")
			}
			if !same(local, remote[i]) {
				log.Fatal().
					Str("objective", name).
					Floats64("point", p).
					Float64("local", local.Value).
					Float64("remote", remote[i].Value).
					Msg("Result mismatch")
			}
		}
		log.Info().Str("objective", name).Int("points", len(points)).Msg("Results match")
	}

	fmt.Println("VERIFICATION PASSED")
}

func same(a, b grad.Result) bool {
	if len(a.Gradient) != len(b.Gradient) || math.Abs(a.Value-b.Value) > 1e-12 {
		return false
	}
	for i := range a.Gradient {
		if math.Abs(a.Gradient[i]-b.Gradient[i]) > 1e-12 {
			return false
		}
	}
	return true
}
