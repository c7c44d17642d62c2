//go:build cgo && netlib

package main

// Built with -tags netlib, gonum's matrix code (the Jacobian and the
// quasi-Newton line searches) runs on the system BLAS instead of the pure
// Go implementation.

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/netlib/blas/netlib"
)

func init() {
	blas64.Use(netlib.Implementation{})
	log.Debug().Msg("netlib BLAS enabled")
}
