// Package app contains the application setup for the dealership service.
package app

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/abryzgalov/motostore/internal/catalog"
	"github.com/abryzgalov/motostore/internal/config"
	"github.com/abryzgalov/motostore/internal/inventory"
	"github.com/abryzgalov/motostore/internal/service"
	"github.com/abryzgalov/motostore/internal/showroom"
	"github.com/abryzgalov/motostore/internal/transport/rest"
	"github.com/abryzgalov/motostore/pkg/messaging"
	"github.com/abryzgalov/motostore/pkg/server"
	"github.com/go-chi/chi/v5"
)

type Dependencies struct {
	Showroom      *showroom.Showroom
	DealerService service.DealerService
	Logger        *slog.Logger
}

// SetupDependencies builds the floor sections from the configured catalog
// and wires the showroom and service over them. Showroom text goes to out.
func SetupDependencies(cfg *config.Config, publisher messaging.Publisher, out io.Writer, logger *slog.Logger) *Dependencies {
	sr := showroom.New(BuildInventories(cfg.Catalog), out, nil)
	dealerService := service.NewService(sr, publisher, logger)

	return &Dependencies{
		Showroom:      sr,
		DealerService: dealerService,
		Logger:        logger,
	}
}

// BuildInventories turns the configured stock lists into handlers, one per
// category, in display order.
func BuildInventories(cfg config.CatalogConfig) []inventory.Handler {
	return []inventory.Handler{
		inventory.New(catalog.Cruiser, toEntries(cfg.Cruisers)),
		inventory.New(catalog.Sport, toEntries(cfg.Sport)),
		inventory.New(catalog.Touring, toEntries(cfg.Touring)),
	}
}

func toEntries(bikes []config.BikeConfig) []catalog.Entry {
	entries := make([]catalog.Entry, len(bikes))
	for i, b := range bikes {
		entries[i] = catalog.Entry{
			Name:       b.Name,
			EngineSize: b.EngineSize,
			BasePrice:  b.BasePrice,
			PrepRate:   b.PrepRate,
		}
	}
	return entries
}

// SetupHttpHandler initializes the HTTP router and routes for the service.
// Used by handler tests to set up the full middleware stack.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the dealership service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	dealerHandler := rest.NewHandler(deps.DealerService, deps.Logger)
	dealerHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
