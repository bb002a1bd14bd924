package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"platerra/internal/sentinel"
	"platerra/internal/vehicle/models"
	id "platerra/pkg/domain"
)

// PostgresStore persists vehicles in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed vehicle store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, vehicle *models.Vehicle) error {
	if vehicle == nil {
		return fmt.Errorf("vehicle is required")
	}
	query := `
		INSERT INTO vehicles (id, user_id, plate, brand, model, year, color, type_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(vehicle.ID),
		uuid.UUID(vehicle.UserID),
		vehicle.Plate,
		vehicle.Brand,
		vehicle.Model,
		vehicle.Year,
		vehicle.Color,
		vehicle.TypeID,
		vehicle.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("save vehicle: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, userID id.UserID, vehicleID id.VehicleID) (*models.Vehicle, error) {
	query := `
		SELECT id, user_id, plate, brand, model, year, color, type_id, created_at
		FROM vehicles
		WHERE id = $1 AND user_id = $2
	`
	vehicle, err := scanVehicle(s.db.QueryRowContext(ctx, query, uuid.UUID(vehicleID), uuid.UUID(userID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *PostgresStore) FindByPlate(ctx context.Context, userID id.UserID, plate string) (*models.Vehicle, error) {
	query := `
		SELECT id, user_id, plate, brand, model, year, color, type_id, created_at
		FROM vehicles
		WHERE user_id = $1 AND upper(plate) = upper($2)
	`
	vehicle, err := scanVehicle(s.db.QueryRowContext(ctx, query, uuid.UUID(userID), plate))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find vehicle by plate: %w", err)
	}
	return vehicle, nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID id.UserID) ([]*models.Vehicle, error) {
	query := `
		SELECT id, user_id, plate, brand, model, year, color, type_id, created_at
		FROM vehicles
		WHERE user_id = $1
		ORDER BY created_at, plate
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]*models.Vehicle, 0)
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID id.UserID, vehicleID id.VehicleID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM vehicles WHERE id = $1 AND user_id = $2`,
		uuid.UUID(vehicleID), uuid.UUID(userID),
	)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete vehicle rows: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type vehicleRow interface {
	Scan(dest ...any) error
}

func scanVehicle(row vehicleRow) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	var vehicleID, userID uuid.UUID
	if err := row.Scan(
		&vehicleID,
		&userID,
		&vehicle.Plate,
		&vehicle.Brand,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.Color,
		&vehicle.TypeID,
		&vehicle.CreatedAt,
	); err != nil {
		return nil, err
	}
	vehicle.ID = id.VehicleID(vehicleID)
	vehicle.UserID = id.UserID(userID)
	return &vehicle, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
