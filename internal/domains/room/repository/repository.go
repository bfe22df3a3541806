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
	"posada/internal/domains/room/model"
	"posada/shared/constant"
	"posada/shared/logger"
)

// Room is the record store for rooms. List returns rooms ordered by room
// number ascending. Callers receive copies, never references into the store.
type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Exist(ctx context.Context, id string) (bool, error)
	Get(ctx context.Context, id string) (model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	Count(ctx context.Context) (int, error)
}

// New selects the store backend from config: the in-memory store by default,
// Postgres when DB_DRIVER=postgres.
func New(cfg *config.Config, db *postgres.Connection, ot otel.Otel) Room {
	if cfg.DB.Driver == postgres.DriverName {
		return &postgresImpl{db: db, otel: ot}
	}

	return newMemory()
}

type postgresImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func (repo *postgresImpl) Insert(ctx context.Context, room model.Room) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()

	query := fmt.Sprintf("INSERT INTO %s (id, number, type, nightly_rate) VALUES (:id, :number, :type, :nightly_rate)", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, room); err != nil {
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

func (repo *postgresImpl) Get(ctx context.Context, id string) (model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Get")
	defer scope.End()

	query := fmt.Sprintf("SELECT id, number, type, nightly_rate FROM %s WHERE id = $1", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var room model.Room

	err := repo.db.Read.GetContext(ctx, &room, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Room{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Room{}, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return room, nil
}

func (repo *postgresImpl) List(ctx context.Context) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".List")
	defer scope.End()

	query := fmt.Sprintf("SELECT id, number, type, nightly_rate FROM %s ORDER BY number ASC", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rooms := []model.Room{}
	if err := repo.db.Read.SelectContext(ctx, &rooms, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list data (%s): %w", model.EntityName, err)
	}

	return rooms, nil
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
