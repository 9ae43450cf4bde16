//go:build wireinject
// +build wireinject

package httpapi

import (
	"github.com/google/wire"

	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/config"
	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/repository"
	storage "github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/storage/mongo"
	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/pkg/logging"
	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/pkg/mongodb"
)

// InitializeResources creates Resources with all dependencies wired up
func InitializeResources(cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure - MongoDB
		provideMongoConfig,
		mongodb.NewClient,

		// Repositories
		storage.NewJobRepository,
		wire.Bind(new(repository.JobRepository), new(*storage.JobRepository)),

		// HTTP server
		NewServer,
		newResources,
	)

	return &Resources{}, nil
}

// newResources creates the Resources struct
func newResources(srv *Server, repo repository.JobRepository, client *mongodb.Client) *Resources {
	return &Resources{
		Server: srv,
		Repo:   repo,
		Mongo:  client,
	}
}
