package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-service/internal/domain"
)

// ErrNotFound signals a keyed lookup miss. Callers translate it; it is
// never conflated with store-level faults.
var ErrNotFound = errors.New("staff not found")

// StaffRepository handles persistence for staff records.
type StaffRepository interface {
	GetAll(ctx context.Context) ([]domain.Staff, error)
	GetByID(ctx context.Context, id int) (*domain.Staff, error)
	Add(ctx context.Context, staff *domain.Staff) error
	Update(ctx context.Context, staff *domain.Staff) error
	Delete(ctx context.Context, id int) (*domain.Staff, error)
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the Postgres-backed repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) GetAll(ctx context.Context) ([]domain.Staff, error) {
	const query = `
        SELECT id, name, email, phone_number, starting_date
        FROM staff ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Staff, 0)
	for rows.Next() {
		var staff domain.Staff
		if err := rows.Scan(
			&staff.ID,
			&staff.Name,
			&staff.Email,
			&staff.PhoneNumber,
			&staff.StartingDate,
		); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}

func (r *staffRepository) GetByID(ctx context.Context, id int) (*domain.Staff, error) {
	const query = `
        SELECT id, name, email, phone_number, starting_date
        FROM staff WHERE id=$1`

	var staff domain.Staff
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&staff.ID,
		&staff.Name,
		&staff.Email,
		&staff.PhoneNumber,
		&staff.StartingDate,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) Add(ctx context.Context, staff *domain.Staff) error {
	const query = `
        INSERT INTO staff (name, email, phone_number, starting_date)
        VALUES ($1,$2,$3,$4)
        RETURNING id, starting_date`

	return r.pool.QueryRow(ctx, query,
		staff.Name,
		staff.Email,
		staff.PhoneNumber,
		staff.StartingDate,
	).Scan(&staff.ID, &staff.StartingDate)
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.Staff) error {
	const query = `
        UPDATE staff
        SET name=$1, email=$2, phone_number=$3, starting_date=$4
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		staff.Name,
		staff.Email,
		staff.PhoneNumber,
		staff.StartingDate,
		staff.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id int) (*domain.Staff, error) {
	const query = `
        DELETE FROM staff WHERE id=$1
        RETURNING id, name, email, phone_number, starting_date`

	var staff domain.Staff
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&staff.ID,
		&staff.Name,
		&staff.Email,
		&staff.PhoneNumber,
		&staff.StartingDate,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &staff, nil
}
