package main

import (
	"fmt"
	"os"
	"path/filepath"

	"task-tracker/internal/config"
	"task-tracker/internal/repository"
	"task-tracker/internal/repository/postgres"
	"task-tracker/internal/repository/sqlite"
)

// RepositoryFactory creates repository instances based on the configured driver
type RepositoryFactory struct {
	cfg config.DatabaseConfig
}

// NewRepositoryFactory creates a new repository factory for the given database configuration
func NewRepositoryFactory(cfg config.DatabaseConfig) *RepositoryFactory {
	return &RepositoryFactory{cfg: cfg}
}

// CreateRepository creates a repository instance for the configured driver
func (rf *RepositoryFactory) CreateRepository() (repository.Repository, error) {
	switch rf.cfg.Driver {
	case config.DriverSQLite:
		return rf.createSQLiteRepository()
	case config.DriverPostgres:
		return rf.createPostgresRepository()
	default:
		return nil, fmt.Errorf("unknown database driver: %s", rf.cfg.Driver)
	}
}

func (rf *RepositoryFactory) createSQLiteRepository() (repository.Repository, error) {
	if rf.cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(rf.cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	repo, err := sqlite.New(rf.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sqlite database: %w", err)
	}
	return repo, nil
}

func (rf *RepositoryFactory) createPostgresRepository() (repository.Repository, error) {
	repo, err := postgres.New(rf.cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres database: %w", err)
	}
	return repo, nil
}
