// Command catalog prints restaurant views as JSON, straight from the store.
//
//	catalog -status approved
//	catalog -client 0b6f7a3e-3c1a-4d7e-9a57-3f7c1f0e2a11
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"likeat/internal/catalog"
	"likeat/internal/config"
	"likeat/internal/logger"
	"likeat/internal/restaurant"
)

func main() {
	status := flag.String("status", "", "list restaurants in this status (pending, approved, rejected)")
	clientID := flag.String("client", "", "list restaurants owned by this client id")
	timeout := flag.Duration("timeout", 30*time.Second, "give up after this long")
	flag.Parse()

	if (*status == "") == (*clientID == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -status or -client is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// Logs go to stderr so stdout carries only the JSON.
	log := logger.New(cfg.Log)
	log.SetOutput(os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cat, err := catalog.Open(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("catalog init failed")
	}
	defer cat.Close()

	var views []restaurant.RestaurantView
	if *status != "" {
		views, err = cat.Restaurants.ListByStatus(ctx, *status)
	} else {
		views, err = cat.Restaurants.ListByClient(ctx, *clientID)
	}
	if err != nil {
		cat.Close()
		log.WithError(err).Fatal("listing failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(views); err != nil {
		cat.Close()
		log.WithError(err).Fatal("encode output")
	}

	log.WithField("count", len(views)).Info("done")
}
