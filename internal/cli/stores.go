package cli

import (
	"context"
	"fmt"

	"salesops/internal/adapter/persistence/repository"
	"salesops/internal/config"
	"salesops/internal/infrastructure/database"
	"salesops/internal/infrastructure/logging"
	"salesops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// stores bundles the repositories of the configured driver.
type stores struct {
	sales    interfaces.ISaleRepository
	projects interfaces.IProjectRepository
	audit    interfaces.IAuditLogRepository
	migrate  func(ctx context.Context) error
	close    func() error
}

func openStores(ctx context.Context, cfg config.Config, log *zap.Logger) (stores, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return stores{}, err
		}
		log.Info("using sqlite store", zap.String("path", cfg.Store.SQLitePath))
		return stores{
			sales:    repository.NewSaleSQLiteRepository(db),
			projects: repository.NewProjectSQLiteRepository(db),
			audit:    repository.NewAuditLogSQLiteRepository(db),
			migrate: func(ctx context.Context) error {
				return repository.EnsureSQLiteSchema(ctx, db)
			},
			close: db.Close,
		}, nil

	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return stores{}, err
		}
		log.Info("using dynamodb store",
			zap.String("sales_table", cfg.DynamoDB.SalesTable),
			zap.String("projects_table", cfg.DynamoDB.ProjectsTable),
			zap.String("audit_table", cfg.DynamoDB.AuditTable),
			zap.String("endpoint", cfg.DynamoDB.Endpoint))
		return stores{
			sales:    repository.NewSaleDynamoRepository(ddb, cfg.DynamoDB.SalesTable, cfg.DynamoDB.ProjectsTable, cfg.DynamoDB.AuditTable),
			projects: repository.NewProjectDynamoRepository(ddb, cfg.DynamoDB.ProjectsTable),
			audit:    repository.NewAuditLogDynamoRepository(ddb, cfg.DynamoDB.AuditTable),
			migrate: func(ctx context.Context) error {
				return repository.EnsureDynamoTables(ctx, ddb, cfg.DynamoDB.SalesTable, cfg.DynamoDB.ProjectsTable, cfg.DynamoDB.AuditTable)
			},
			close: func() error { return nil },
		}, nil
	}
	return stores{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// bootstrap loads the configuration and the logger shared by every command.
func bootstrap() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}
