package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TomaszKulowski/models"
)

func main() {
	scenarioPath := flag.String("scenario", "", "Path to a YAML scenario file (built-in demo when empty)")
	logLevel := flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", *logLevel).Msg("unknown log level")
	}
	// The report lines own stdout, so logging goes to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	sc := defaultScenario()
	if *scenarioPath != "" {
		sc, err = loadScenario(*scenarioPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *scenarioPath).Msg("unable to load scenario")
		}
	}

	book := models.NewOrderBook()
	for i, entry := range sc.Orders {
		order, err := entry.build()
		if err != nil {
			log.Fatal().Err(err).Int("entry", i+1).Msg("invalid order")
		}

		log.Debug().
			Int("id", book.NextID()).
			Str("transaction", order.TransactionType().String()).
			Str("type", order.OrderType().String()).
			Float64("total", order.Total()).
			Msg("placing order")
		book.AddOrder(order)
	}

	log.Info().Int("orders", book.Len()).Msg("replay finished")
}
