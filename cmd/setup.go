package main

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/NIRMALT04/bunker-locate/internal/config"
	"github.com/NIRMALT04/bunker-locate/internal/registry"
	"github.com/NIRMALT04/bunker-locate/internal/resolver"
	"github.com/NIRMALT04/bunker-locate/internal/store"
	"github.com/NIRMALT04/bunker-locate/internal/validate"
	"github.com/NIRMALT04/bunker-locate/pkg/geocode"
)

// initRegistry builds the reference data: embedded defaults, optionally
// merged with a YAML snapshot and an XLSX gazetteer sheet.
func initRegistry(cfg *config.Config) (*registry.Registry, error) {
	reg := registry.Default()

	if path := cfg.Registry.SnapshotPath; path != "" {
		snap, err := registry.LoadYAML(path)
		if err != nil {
			return nil, eris.Wrap(err, "load registry snapshot")
		}
		reg = reg.Merge(snap)
	}
	if path := cfg.Registry.XLSXPath; path != "" {
		places, err := registry.LoadXLSXPlaces(path, "")
		if err != nil {
			return nil, eris.Wrap(err, "load registry xlsx")
		}
		reg = reg.Merge(registry.Snapshot{Places: places})
	}

	stats := reg.Stats()
	zap.L().Debug("registry loaded",
		zap.Int("companies", stats.Companies),
		zap.Int("landmarks", stats.Landmarks),
		zap.Int("universities", stats.Universities),
		zap.Int("places", stats.Places),
	)
	return reg, nil
}

// initValidator builds the result validator from the configured region, a
// shapefile-derived envelope, or the built-in India bounds.
func initValidator(cfg *config.Config) (*validate.Validator, error) {
	if path := cfg.Region.ShapefilePath; path != "" {
		bounds, err := validate.BoundsFromShapefile(path)
		if err != nil {
			return nil, eris.Wrap(err, "load region shapefile")
		}
		return validate.New(bounds), nil
	}
	if cfg.Region.HasBox() {
		bounds := geom.NewBounds(geom.XY).Set(
			cfg.Region.MinLng, cfg.Region.MinLat,
			cfg.Region.MaxLng, cfg.Region.MaxLat,
		)
		return validate.New(bounds), nil
	}
	return validate.New(nil), nil
}

// newEngine wires the resolution engine from config. Providers are attached
// only when configured, so offline stages still run without credentials.
func newEngine(cfg *config.Config) (*resolver.Engine, error) {
	reg, err := initRegistry(cfg)
	if err != nil {
		return nil, err
	}
	validator, err := initValidator(cfg)
	if err != nil {
		return nil, err
	}

	opts := []resolver.Option{resolver.WithValidator(validator)}
	if cfg.Providers.Mapbox.Token != "" {
		opts = append(opts, resolver.WithPrimary(geocode.NewMapboxClient(
			cfg.Providers.Mapbox.Token,
			geocode.WithMapboxRateLimit(cfg.Providers.Mapbox.RPS),
			geocode.WithMapboxLimit(cfg.Providers.Mapbox.Limit),
		)))
	}
	if cfg.Providers.Nominatim.Enabled {
		nopts := []geocode.NominatimOption{
			geocode.WithNominatimRateLimit(cfg.Providers.Nominatim.RPS),
			geocode.WithNominatimLimit(cfg.Providers.Nominatim.Limit),
		}
		if ua := cfg.Providers.Nominatim.UserAgent; ua != "" {
			nopts = append(nopts, geocode.WithNominatimUserAgent(ua))
		}
		opts = append(opts, resolver.WithSecondary(geocode.NewNominatimClient(nopts...)))
	}

	return resolver.New(reg, opts...), nil
}

// initStore opens the configured audit store and runs migrations. It
// returns nil without error when no driver is configured.
func initStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.Store.Driver {
	case "":
		return nil, nil
	case "sqlite":
		st, err = store.NewSQLite(cfg.Store.DatabaseURL)
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL, &store.PoolConfig{
			MaxConns: cfg.Store.MaxConns,
			MinConns: cfg.Store.MinConns,
		})
	default:
		return nil, eris.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

// record writes one audit row, logging instead of failing when the write
// does not go through.
func record(ctx context.Context, st store.Store, rec store.Record) {
	if st == nil {
		return
	}
	if _, err := st.SaveResolution(ctx, rec); err != nil {
		zap.L().Warn("audit record write failed", zap.Error(err))
	}
}
