package di

import (
	"context"

	"fairhall/config"
	"fairhall/infras/otel"
	"fairhall/shared/blobstore"

	directoryRepository "fairhall/internal/domains/directory/repository"
	floorplanRepository "fairhall/internal/domains/floorplan/repository"
	stallRepository "fairhall/internal/domains/stall/repository"
	vendorRepository "fairhall/internal/domains/vendors/repository"
)

// Repository providers start the change-feed watcher alongside each
// repository, so foreign writes invalidate snapshots for the process lifetime.

func ProvideStallRepository(store blobstore.Store, feed blobstore.Feed, cfg *config.Config, otel otel.Otel) stallRepository.Stall {
	repo := stallRepository.New(store, feed, cfg, otel)
	repo.Watch(context.Background())

	return repo
}

func ProvideAdminRepository(store blobstore.Store, feed blobstore.Feed, cfg *config.Config, otel otel.Otel) directoryRepository.Admin {
	repo := directoryRepository.New(store, feed, cfg, otel)
	repo.Watch(context.Background())

	return repo
}

func ProvideVendorRepository(store blobstore.Store, feed blobstore.Feed, cfg *config.Config, otel otel.Otel) vendorRepository.Vendor {
	repo := vendorRepository.New(store, feed, cfg, otel)
	repo.Watch(context.Background())

	return repo
}

func ProvideFloorPlanRepository(store blobstore.Store, feed blobstore.Feed, otel otel.Otel) floorplanRepository.FloorPlan {
	repo := floorplanRepository.New(store, feed, otel)
	repo.Watch(context.Background())

	return repo
}
