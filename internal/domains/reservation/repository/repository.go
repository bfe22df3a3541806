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
	"posada/internal/domains/reservation/model"
	"posada/shared/constant"
	"posada/shared/logger"
)

// ErrNotFound is returned by Replace and Delete when no reservation carries
// the given id.
var ErrNotFound = errors.New("reservation does not exist")

// Reservation is the record store for reservations. List returns reservations
// ordered by check-in ascending. ListForRoom returns the reservations holding
// a given room, skipping excludeID when non-empty so an update can be checked
// against everything but itself. Each mutation is atomic with respect to a
// single record.
type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, id string) (model.Reservation, error)
	Exist(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]model.Reservation, error)
	ListForRoom(ctx context.Context, roomID, excludeID string) ([]model.Reservation, error)
	Replace(ctx context.Context, id string, model model.Reservation) error
	Delete(ctx context.Context, id string) error
}

func New(cfg *config.Config, db *postgres.Connection, ot otel.Otel) Reservation {
	if cfg.DB.Driver == postgres.DriverName {
		return &postgresImpl{db: db, otel: ot}
	}

	return newMemory()
}

type postgresImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

const selectColumns = "id, room_id, guest_id, check_in, check_out, notes"

func (repo *postgresImpl) Insert(ctx context.Context, reservation model.Reservation) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (:id, :room_id, :guest_id, :check_in, :check_out, :notes)",
		model.TableName, selectColumns,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, reservation); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *postgresImpl) Get(ctx context.Context, id string) (model.Reservation, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Get")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", selectColumns, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var reservation model.Reservation

	err := repo.db.Read.GetContext(ctx, &reservation, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Reservation{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Reservation{}, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return reservation, nil
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

func (repo *postgresImpl) List(ctx context.Context) ([]model.Reservation, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".List")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY check_in ASC", selectColumns, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	reservations := []model.Reservation{}
	if err := repo.db.Read.SelectContext(ctx, &reservations, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list data (%s): %w", model.EntityName, err)
	}

	return reservations, nil
}

func (repo *postgresImpl) ListForRoom(ctx context.Context, roomID, excludeID string) ([]model.Reservation, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ListForRoom")
	defer scope.End()

	// Conflict checks must see committed rows, so this always reads the
	// write connection.
	query := fmt.Sprintf("SELECT %s FROM %s WHERE room_id = $1", selectColumns, model.TableName)
	args := []any{roomID}

	if excludeID != constant.Empty {
		query += " AND id != $2"
		args = append(args, excludeID)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	reservations := []model.Reservation{}
	if err := repo.db.Write.SelectContext(ctx, &reservations, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list data (%s): %w", model.EntityName, err)
	}

	return reservations, nil
}

func (repo *postgresImpl) Replace(ctx context.Context, id string, reservation model.Reservation) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Replace")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET room_id = :room_id, guest_id = :guest_id, check_in = :check_in, check_out = :check_out, notes = :notes WHERE id = :id",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	reservation.ID = id

	result, err := repo.db.Write.NamedExecContext(ctx, query, reservation)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to replace data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to replace data (%s): %w", model.EntityName, err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (repo *postgresImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Delete")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
