package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
)

// BoatRepository defines the interface for boat database operations.
type BoatRepository interface {
	CreateBoat(ctx context.Context, executor SQLExecutor, boat *models.Boat) (*models.Boat, error)
	GetBoatByID(ctx context.Context, id int64) (*models.Boat, error)
	GetBoats(ctx context.Context) ([]models.Boat, error)
	UpdateBoat(ctx context.Context, executor SQLExecutor, boat *models.Boat) (*models.Boat, error)
	DeleteBoat(ctx context.Context, executor SQLExecutor, id int64) error
}

type boatRepository struct {
	db *sql.DB
}

// NewBoatRepository creates a new instance of BoatRepository.
func NewBoatRepository(db *sql.DB) BoatRepository {
	return &boatRepository{db: db}
}

func scanBoat(row scanner) (*models.Boat, error) {
	var b models.Boat
	if err := row.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *boatRepository) CreateBoat(ctx context.Context, executor SQLExecutor, boat *models.Boat) (*models.Boat, error) {
	query := `INSERT INTO boats (name, created_at, updated_at)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`

	currentTime := time.Now()
	err := executor.QueryRowContext(ctx, query, boat.Name, currentTime, currentTime).
		Scan(&boat.ID, &boat.CreatedAt, &boat.UpdatedAt)
	if err != nil {
		return nil, translatePQError(err, fmt.Sprintf("creating boat %q", boat.Name))
	}
	return boat, nil
}

func (r *boatRepository) GetBoatByID(ctx context.Context, id int64) (*models.Boat, error) {
	query := `SELECT id, name, created_at, updated_at FROM boats WHERE id = $1`
	boat, err := scanBoat(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translatePQError(err, fmt.Sprintf("getting boat by ID %d", id))
	}
	return boat, nil
}

func (r *boatRepository) GetBoats(ctx context.Context) ([]models.Boat, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at, updated_at FROM boats ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying boats: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	boats := []models.Boat{}
	for rows.Next() {
		boat, err := scanBoat(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning boat: %v", ErrDatabaseError, err)
		}
		boats = append(boats, *boat)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating boat rows: %v", ErrDatabaseError, err)
	}
	return boats, nil
}

func (r *boatRepository) UpdateBoat(ctx context.Context, executor SQLExecutor, boat *models.Boat) (*models.Boat, error) {
	query := `UPDATE boats SET name = $1, updated_at = $2 WHERE id = $3 RETURNING created_at, updated_at`
	err := executor.QueryRowContext(ctx, query, boat.Name, time.Now(), boat.ID).Scan(&boat.CreatedAt, &boat.UpdatedAt)
	if err != nil {
		return nil, translatePQError(err, fmt.Sprintf("updating boat ID %d", boat.ID))
	}
	return boat, nil
}

func (r *boatRepository) DeleteBoat(ctx context.Context, executor SQLExecutor, id int64) error {
	action := fmt.Sprintf("deleting boat ID %d", id)
	result, err := executor.ExecContext(ctx, `DELETE FROM boats WHERE id = $1`, id)
	if err != nil {
		return translatePQError(err, action)
	}
	return checkAffected(result, action)
}
