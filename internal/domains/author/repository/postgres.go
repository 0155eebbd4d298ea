package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-manager/internal/domains/author/model"
	"book-manager/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (name, birth_date)
        VALUES ($1, $2)
        RETURNING id, name, birth_date
    `

	var created model.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.BirthDate).Scan(
		&created.ID,
		&created.Name,
		&created.BirthDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Author, error) {
	query := `
        SELECT id, name, birth_date
        FROM authors
        WHERE id = $1
    `

	var a model.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.BirthDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, patch model.AuthorPatch) (*model.Author, error) {
	query := `
        UPDATE authors
        SET name       = COALESCE($2::varchar, name),
            birth_date = COALESCE($3::date, birth_date)
        WHERE id = $1
        RETURNING id, name, birth_date
    `

	var updated model.Author
	err := r.pool.QueryRow(ctx, query, id, patch.Name, patch.BirthDate).Scan(
		&updated.ID,
		&updated.Name,
		&updated.BirthDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) ExistsAllByIDs(ctx context.Context, ids []int64) (bool, error) {
	distinct := utils.DedupIDs(ids)
	if len(distinct) == 0 {
		return false, nil
	}

	query := `SELECT COUNT(*) FROM authors WHERE id = ANY($1)`

	var count int
	if err := r.pool.QueryRow(ctx, query, distinct).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count authors: %w", err)
	}

	return count == len(distinct), nil
}
