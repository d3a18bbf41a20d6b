// SPDX-License-Identifier: MIT

// Command lvrotate extracts and rotates factor loading matrices.
//
//	lvrotate rotate  -i loadings.yaml --criterion varimax --format table
//	lvrotate pca     -i data.yaml --factors 3 --plot loadings.png
//	lvrotate compare -i loadings.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
