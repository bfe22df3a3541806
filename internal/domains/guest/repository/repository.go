package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"posada/config"
	"posada/infras/otel"
	"posada/infras/postgres"
	"posada/internal/domains/guest/model"
	"posada/shared/constant"
	"posada/shared/logger"
)

// Guest is the record store for guests. List returns guests ordered by full
// name ascending.
type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	Exist(ctx context.Context, id string) (bool, error)
	Get(ctx context.Context, id string) (model.Guest, error)
	List(ctx context.Context) ([]model.Guest, error)
	Count(ctx context.Context) (int, error)
}

func New(cfg *config.Config, db *postgres.Connection, ot otel.Otel) Guest {
	if cfg.DB.Driver == postgres.DriverName {
		return &postgresImpl{db: db, otel: ot}
	}

	return newMemory()
}

type postgresImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func (repo *postgresImpl) Insert(ctx context.Context, guest model.Guest) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()

	query := fmt.Sprintf("INSERT INTO %s (id, full_name, email, phone) VALUES (:id, :full_name, :email, :phone)", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, guest); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *postgresImpl) Exist(ctx context.Context, id string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Exist")
	defer scope.End()

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false
	if err := repo.db.Read.GetContext(ctx, &exist, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", model.EntityName, err)
	}

	return exist, nil
}

func (repo *postgresImpl) Get(ctx context.Context, id string) (model.Guest, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Get")
	defer scope.End()

	query := fmt.Sprintf("SELECT id, full_name, email, phone FROM %s WHERE id = $1", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var guest model.Guest

	err := repo.db.Read.GetContext(ctx, &guest, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Guest{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Guest{}, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return guest, nil
}

func (repo *postgresImpl) List(ctx context.Context) ([]model.Guest, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".List")
	defer scope.End()

	query := fmt.Sprintf("SELECT id, full_name, email, phone FROM %s ORDER BY full_name ASC", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	guests := []model.Guest{}
	if err := repo.db.Read.SelectContext(ctx, &guests, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list data (%s): %w", model.EntityName, err)
	}

	return guests, nil
}

func (repo *postgresImpl) Count(ctx context.Context) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Count")
	defer scope.End()

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	count := 0
	if err := repo.db.Read.GetContext(ctx, &count, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", model.EntityName, err)
	}

	return count, nil
}
