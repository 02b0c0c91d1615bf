package config

import "fmt"

// CatalogConfig carries the literal per-category stock lists. The lists are
// the construction input of the whole system: each floor section is built
// from exactly one of them and never changes afterwards.
type CatalogConfig struct {
	Cruisers []BikeConfig `koanf:"cruisers"`
	Sport    []BikeConfig `koanf:"sport"`
	Touring  []BikeConfig `koanf:"touring"`
}

// BikeConfig describes one catalog entry as configured.
type BikeConfig struct {
	Name       string  `koanf:"name"`
	EngineSize int     `koanf:"engineSize"`
	BasePrice  float64 `koanf:"basePrice"`
	PrepRate   float64 `koanf:"prepRate"`
}

func (c *CatalogConfig) Validate() error {
	sections := map[string][]BikeConfig{
		"cruisers": c.Cruisers,
		"sport":    c.Sport,
		"touring":  c.Touring,
	}
	for name, bikes := range sections {
		if len(bikes) == 0 {
			return fmt.Errorf("catalog.%s must not be empty", name)
		}
		for i, b := range bikes {
			if err := b.validate(); err != nil {
				return fmt.Errorf("catalog.%s[%d]: %w", name, i, err)
			}
		}
	}
	return nil
}

func (b *BikeConfig) validate() error {
	if b.Name == "" {
		return fmt.Errorf("bike name is required")
	}
	if b.EngineSize <= 0 {
		return fmt.Errorf("engine size must be positive, got %d", b.EngineSize)
	}
	if b.BasePrice <= 0 {
		return fmt.Errorf("base price must be positive, got %v", b.BasePrice)
	}
	if b.PrepRate <= 0 {
		return fmt.Errorf("prep rate must be positive, got %v", b.PrepRate)
	}
	return nil
}

// Defaults returns the built-in configuration, including the stock catalog,
// so the binaries run without a config file. Any layered source overrides
// these values key by key.
func Defaults() map[string]any {
	return map[string]any{
		"server.port":               8080,
		"server.maxHeaderBytes":     1 << 20,
		"server.timeout.read":       "5s",
		"server.timeout.write":      "10s",
		"server.timeout.idle":       "120s",
		"server.timeout.readHeader": "2s",
		"log.level":                 "info",
		"pprof.enabled":             false,
		"pprof.addr":                ":6060",
		"shutdown.timeout":          "30s",
		"nats.enabled":              false,
		"nats.url":                  "",
		"nats.timeout":              "5s",
		"catalog.cruisers": []map[string]any{
			{"name": "Harley Low Rider", "engineSize": 1746, "basePrice": 18000.0, "prepRate": 0.01},
			{"name": "Indian Scout Bobber", "engineSize": 1133, "basePrice": 11500.0, "prepRate": 0.01},
			{"name": "Honda Rebel 500", "engineSize": 471, "basePrice": 6499.0, "prepRate": 0.02},
		},
		"catalog.sport": []map[string]any{
			{"name": "Yamaha YZF-R1", "engineSize": 998, "basePrice": 17950.0, "prepRate": 0.02},
			{"name": "Ducati Panigale V2", "engineSize": 955, "basePrice": 16495.0, "prepRate": 0.02},
			{"name": "Kawasaki Ninja 650", "engineSize": 649, "basePrice": 7999.0, "prepRate": 0.02},
		},
		"catalog.touring": []map[string]any{
			{"name": "BMW R 1250 RT", "engineSize": 1254, "basePrice": 22345.0, "prepRate": 0.01},
			{"name": "Honda Gold Wing", "engineSize": 1833, "basePrice": 25600.0, "prepRate": 0.01},
		},
	}
}
