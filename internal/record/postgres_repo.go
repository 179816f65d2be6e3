package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Insert(ctx context.Context, rec NewRecord) (int64, error) {
	const insertSQL = `
		INSERT INTO countries (country, totalconfirmed, totaldeaths, totalrecovered, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var id int64
	err := r.db.QueryRow(timeoutCtx, insertSQL,
		rec.Country, rec.TotalConfirmed, rec.TotalDeaths, rec.TotalRecovered, rec.Date,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}
	return id, nil
}

// List returns every row in the order the database yields them.
func (r *PostgresRepo) List(ctx context.Context) ([]Record, error) {
	const listSQL = `
		SELECT id, country, totalconfirmed, totaldeaths, totalrecovered, date
		FROM countries`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.Country, &rec.TotalConfirmed, &rec.TotalDeaths, &rec.TotalRecovered, &rec.Date,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Record, error) {
	const query = `
		SELECT id, country, totalconfirmed, totaldeaths, totalrecovered, date
		FROM countries
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var rec Record
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&rec.ID, &rec.Country, &rec.TotalConfirmed, &rec.TotalDeaths, &rec.TotalRecovered, &rec.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("get record %d: %w", id, err)
	}
	return rec, nil
}

// Delete removes the row with id. Deleting a missing id is not an error.
func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, `DELETE FROM countries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}
	return nil
}
