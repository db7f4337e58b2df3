package store

import (
	"context"
	"fmt"

	"civicpulse/config"
	"civicpulse/fixtures"
)

// Open builds the Repository named by STORE_BACKEND. The returned close func
// releases any connection and is never nil.
func Open(ctx context.Context, cfg *config.Config) (Repository, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMemory, "":
		ds, err := fixtures.LoadFrom(cfg.FixturesDir)
		if err != nil {
			return nil, nil, err
		}
		return NewMemoryStore(ds), func() {}, nil
	case config.BackendMongo:
		db, err := config.ConnectDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return NewMongoStore(db), func() { config.DisconnectDB(db) }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StoreBackend)
	}
}
