package httpapi

import (
	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/config"
	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/repository"
	storage "github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/storage/mongo"
	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/pkg/logging"
	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/pkg/mongodb"
)

// Resources bundles everything the bootstrap layer needs to run and
// later tear down the server. The store client's lifecycle is owned by
// the caller, never by the repository.
type Resources struct {
	Server *Server
	Repo   repository.JobRepository
	Mongo  *mongodb.Client
}

// BuildResources connects to the store and wires the repository and
// HTTP server together.
func BuildResources(cfg config.Config, logger *logging.Logger) (*Resources, error) {
	client, err := mongodb.NewClient(provideMongoConfig(cfg))
	if err != nil {
		return nil, err
	}

	repo := storage.NewJobRepository(client)

	return &Resources{
		Server: NewServer(logger, cfg, repo),
		Repo:   repo,
		Mongo:  client,
	}, nil
}

// provideMongoConfig extracts store config from main config
func provideMongoConfig(cfg config.Config) mongodb.Config {
	return mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	}
}
