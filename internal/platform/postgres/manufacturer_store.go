package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/manufacturer-store/internal/domain"
	"github.com/phrazzld/manufacturer-store/internal/platform/logger"
	"github.com/phrazzld/manufacturer-store/internal/store"
)

// Statements issued by PostgresManufacturerStore.
const (
	insertManufacturerQuery     = "INSERT INTO manufacturers(name, country) values($1, $2) RETURNING id;"
	getManufacturerQuery        = "SELECT * FROM manufacturers WHERE is_deleted = false AND id = $1;"
	getAllManufacturersQuery    = "SELECT * FROM manufacturers WHERE is_deleted = false;"
	updateManufacturerQuery     = "UPDATE manufacturers SET name = $1, country = $2 WHERE is_deleted = false AND id = $3;"
	softDeleteManufacturerQuery = "UPDATE manufacturers SET is_deleted = true WHERE id = $1;"
)

const manufacturerEntity = "manufacturer"

// PostgresManufacturerStore implements the store.ManufacturerStore interface
// using a PostgreSQL database as the storage backend.
//
// It holds no mutable state. Each method runs a single statement on db, so
// concurrent calls only contend inside the database.
type PostgresManufacturerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresManufacturerStore creates a new PostgreSQL implementation of the ManufacturerStore interface.
// It accepts a database connection pool or transaction that is initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresManufacturerStore(db store.DBTX, logger *slog.Logger) *PostgresManufacturerStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresManufacturerStore{
		db:     db,
		logger: logger.With(slog.String("component", "manufacturer_store")),
	}
}

// Ensure PostgresManufacturerStore implements store.ManufacturerStore interface
var _ store.ManufacturerStore = (*PostgresManufacturerStore)(nil)

// WithTx implements store.ManufacturerStore.WithTx
func (s *PostgresManufacturerStore) WithTx(tx *sql.Tx) store.ManufacturerStore {
	return &PostgresManufacturerStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ManufacturerStore.Create
// The generated ID is read back from the RETURNING clause.
func (s *PostgresManufacturerStore) Create(
	ctx context.Context,
	m *domain.Manufacturer,
) (*domain.Manufacturer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var id int64
	err := s.db.QueryRowContext(ctx, insertManufacturerQuery, m.Name, m.Country).Scan(&id)
	if err != nil {
		log.Error("failed to create manufacturer",
			slog.String("error", err.Error()),
			slog.String("name", m.Name),
			slog.String("country", m.Country))
		return nil, store.NewStoreError(
			manufacturerEntity,
			"create",
			fmt.Sprintf("can't insert manufacturer to DB: %s", m),
			MapError(err),
		)
	}

	m.ID = id

	log.Info("manufacturer created successfully",
		slog.Int64("manufacturer_id", m.ID))
	return m, nil
}

// Get implements store.ManufacturerStore.Get
func (s *PostgresManufacturerStore) Get(
	ctx context.Context,
	id int64,
) (*domain.Manufacturer, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving manufacturer by ID", slog.Int64("manufacturer_id", id))

	manufacturers, err := s.query(ctx, getManufacturerQuery, id)
	if err != nil {
		log.Error("failed to get manufacturer by ID",
			slog.String("error", err.Error()),
			slog.Int64("manufacturer_id", id))
		return nil, false, store.NewStoreError(
			manufacturerEntity,
			"get",
			fmt.Sprintf("can't get manufacturer from DB by id: %d", id),
			MapError(err),
		)
	}

	if len(manufacturers) == 0 {
		log.Debug("manufacturer not found", slog.Int64("manufacturer_id", id))
		return nil, false, nil
	}

	return manufacturers[0], true, nil
}

// GetAll implements store.ManufacturerStore.GetAll
// No ORDER BY is applied; rows come back in whatever order PostgreSQL returns them.
func (s *PostgresManufacturerStore) GetAll(ctx context.Context) ([]*domain.Manufacturer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	manufacturers, err := s.query(ctx, getAllManufacturersQuery)
	if err != nil {
		log.Error("failed to get all manufacturers",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError(
			manufacturerEntity,
			"get_all",
			"can't get all manufacturers from DB",
			MapError(err),
		)
	}

	log.Debug("found manufacturers", slog.Int("count", len(manufacturers)))
	return manufacturers, nil
}

// Update implements store.ManufacturerStore.Update
// Zero affected rows means the ID is unknown or soft-deleted; this is reported
// as an error rather than silently inserting.
func (s *PostgresManufacturerStore) Update(
	ctx context.Context,
	m *domain.Manufacturer,
) (*domain.Manufacturer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	message := fmt.Sprintf("can't update manufacturer in DB: %s", m)

	result, err := s.db.ExecContext(ctx, updateManufacturerQuery, m.Name, m.Country, m.ID)
	if err != nil {
		log.Error("failed to update manufacturer",
			slog.String("error", err.Error()),
			slog.Int64("manufacturer_id", m.ID))
		return nil, store.NewStoreError(manufacturerEntity, "update", message, MapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("manufacturer_id", m.ID))
		return nil, store.NewStoreError(manufacturerEntity, "update", message, err)
	}

	if rowsAffected == 0 {
		log.Debug("manufacturer not found or deleted for update",
			slog.Int64("manufacturer_id", m.ID))
		return nil, store.NewStoreError(
			manufacturerEntity,
			"update",
			message,
			fmt.Errorf("id was not found or deleted: %w", store.ErrManufacturerNotFound),
		)
	}

	log.Info("manufacturer updated successfully",
		slog.Int64("manufacturer_id", m.ID))
	return m, nil
}

// Delete implements store.ManufacturerStore.Delete
// The row is kept and flagged with is_deleted.
func (s *PostgresManufacturerStore) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	message := fmt.Sprintf("can't delete manufacturer from DB by id: %d", id)

	result, err := s.db.ExecContext(ctx, softDeleteManufacturerQuery, id)
	if err != nil {
		log.Error("failed to delete manufacturer",
			slog.String("error", err.Error()),
			slog.Int64("manufacturer_id", id))
		return false, store.NewStoreError(manufacturerEntity, "delete", message, MapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("manufacturer_id", id))
		return false, store.NewStoreError(manufacturerEntity, "delete", message, err)
	}

	deleted := rowsAffected > 0
	log.Info("manufacturer delete executed",
		slog.Int64("manufacturer_id", id),
		slog.Bool("deleted", deleted))
	return deleted, nil
}

// query runs a SELECT returning manufacturer rows and maps every row.
// The returned slice is never nil.
func (s *PostgresManufacturerStore) query(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Manufacturer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	manufacturers := []*domain.Manufacturer{}
	for rows.Next() {
		var row manufacturerRow
		if err := rows.Scan(row.targets(columns)...); err != nil {
			return nil, fmt.Errorf("can't get information from result set: %w", err)
		}
		manufacturers = append(manufacturers, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return manufacturers, nil
}
