package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dustinmichels/monte-carlo-tictactoe/experiments"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	const (
		games      = 50
		iterations = 1000
		confidence = 95.0
	)

	if err := experiments.RunBaselines("results", games, iterations, confidence); err != nil {
		log.Fatal().Err(err).Msg("baseline experiment failed")
	}
}
