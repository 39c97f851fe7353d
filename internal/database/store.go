package database

import (
	"context"
	"fmt"
	"time"

	"minerva-site/internal/config"
	"minerva-site/internal/repository"
)

// OpenRepository elige el almacenamiento del documento según STORE_BACKEND.
// La función devuelta cierra la conexión si la hay.
func OpenRepository(ctx context.Context, cfg *config.Config) (repository.DocumentRepository, func(), error) {
	switch cfg.StoreBackend {
	case "", config.BackendFile:
		return repository.NewFileRepository(cfg.DataPath), func() {}, nil
	case config.BackendMongo:
		client, err := Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		collection := client.Database(cfg.MongoDB).Collection(cfg.MongoCollection)
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			client.Disconnect(ctx)
		}
		return repository.NewMongoRepository(collection), closeFn, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
