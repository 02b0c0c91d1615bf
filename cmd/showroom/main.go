// Package main runs the scripted showroom demo on the console: list the
// floor, sell a bike, bounce a bike offered on the wrong floor, then walk a
// batch deal with simulated stock-outs.
package main

import (
	"log"
	"os"

	"github.com/abryzgalov/motostore/internal/app"
	"github.com/abryzgalov/motostore/internal/config"
	"github.com/abryzgalov/motostore/internal/showroom"
	"github.com/abryzgalov/motostore/pkg/configloader"
)

const serviceName = "motostore"

func main() {
	cfg, err := configloader.Load[*config.Config](serviceName, config.Defaults())
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	handlers := app.BuildInventories(cfg.Catalog)
	sr := showroom.New(handlers, os.Stdout, nil)

	sr.ShowInventory()

	cruisers, sport := handlers[0], handlers[1]

	// A straight sale at five percent off.
	sr.Buy(cruisers.Entries()[0], cruisers, 0.05)

	// A sport bike offered on the cruiser floor: rejected quietly.
	if !sr.Buy(sport.Entries()[0], cruisers, 0) {
		log.Printf("as expected, %s is not sold on the cruiser floor", sport.Entries()[0].Name)
	}

	// A batch deal over the whole sport floor plus a bike it does not stock.
	batch := append(sport.Entries(), cruisers.Entries()[0])
	sr.BuyMultiple(batch, sport, 0.1)
}
