package app

import (
	"context"

	"github.com/doeshing/factlog/internal/domain"
	"github.com/doeshing/factlog/internal/infrastructure/config"
	"github.com/doeshing/factlog/internal/infrastructure/store"
	"github.com/doeshing/factlog/internal/pkg/logger"
	"github.com/doeshing/factlog/internal/ports"
	"github.com/doeshing/factlog/internal/services"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Records        *services.RecordService
	Engine         *services.Engine
	ConfigProvider ports.ConfigProvider
	Store          ports.StateStore
	State          *services.State
}

// BuildContainer constructs the dependency graph: config, the configured state
// store, the in-memory state hydrated from it, and the two services.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)

	var stateStore ports.StateStore
	switch cfg.GetStorageBackend() {
	case domain.StorageBackendSQLite:
		stateStore = store.NewSQLiteStore(cfg.Storage.DataDir)
	default:
		stateStore = store.NewFileStore(cfg.Storage.DataDir)
	}

	state := services.LoadState(stateStore)

	recordService := &services.RecordService{
		State:  state,
		Store:  stateStore,
		Logger: log,
	}
	engine := &services.Engine{
		State:        state,
		Store:        stateStore,
		Logger:       log,
		HistoryLimit: cfg.GetHistoryLimit(),
	}

	return &Container{
		Records:        recordService,
		Engine:         engine,
		ConfigProvider: cfgLoader,
		Store:          stateStore,
		State:          state,
	}, nil
}

// Close performs the final save of both collections and releases the store.
func (c *Container) Close() error {
	if err := c.Store.SaveRecords(c.State.Records()); err != nil {
		return err
	}
	if err := c.Store.SaveCommandRuns(c.State.Runs()); err != nil {
		return err
	}
	return c.Store.Close()
}
