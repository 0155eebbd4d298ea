package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	authorModel "book-manager/internal/domains/author/model"
	"book-manager/internal/domains/book/model"
	"book-manager/internal/shared/utils"
	"book-manager/pkg/database"
)

const pgForeignKeyViolation = "23503"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// querier is implemented by both the pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	authorIDs := utils.DedupIDs(b.AuthorIDs)

	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Book, error) {
		query := `
            INSERT INTO books (title, price, publication_status)
            VALUES ($1, $2, $3)
            RETURNING id, title, price, publication_status
        `

		var created model.Book
		err := tx.QueryRow(ctx, query, b.Title, b.Price, b.PublicationStatus).Scan(
			&created.ID,
			&created.Title,
			&created.Price,
			&created.PublicationStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert book: %w", err)
		}

		if err := insertLinks(ctx, tx, created.ID, authorIDs); err != nil {
			return nil, err
		}

		created.AuthorIDs = authorIDs
		return &created, nil
	})
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	return findByID(ctx, r.pool, id, false)
}

func (r *postgresRepository) Update(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Book, error) {
		current, err := findByID(ctx, tx, id, true)
		if err != nil {
			return nil, err
		}

		next := patch.Apply(*current)
		if !current.PublicationStatus.CanTransitionTo(next.PublicationStatus) {
			return nil, model.ErrStatusRegression
		}

		query := `
            UPDATE books
            SET title = $2, price = $3, publication_status = $4
            WHERE id = $1
        `
		if _, err := tx.Exec(ctx, query, id, next.Title, next.Price, next.PublicationStatus); err != nil {
			return nil, fmt.Errorf("failed to update book: %w", err)
		}

		if patch.AuthorIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM book_authors WHERE book_id = $1`, id); err != nil {
				return nil, fmt.Errorf("failed to clear book authors: %w", err)
			}
			if err := insertLinks(ctx, tx, id, next.AuthorIDs); err != nil {
				return nil, err
			}
		}

		next.AuthorIDs, err = authorIDsOf(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		return &next, nil
	})
}

func (r *postgresRepository) FindSummariesByAuthorID(ctx context.Context, authorID int64) ([]authorModel.BookSummary, error) {
	query := `
        SELECT b.id, b.title, b.price, b.publication_status
        FROM books b
        JOIN book_authors ba ON ba.book_id = b.id
        WHERE ba.author_id = $1
        ORDER BY b.id ASC
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by author: %w", err)
	}
	defer rows.Close()

	summaries := []authorModel.BookSummary{}
	for rows.Next() {
		var s authorModel.BookSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Price, &s.PublicationStatus); err != nil {
			return nil, fmt.Errorf("failed to scan book summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list books by author: %w", err)
	}

	return summaries, nil
}

func findByID(ctx context.Context, q querier, id int64, forUpdate bool) (*model.Book, error) {
	query := `
        SELECT id, title, price, publication_status
        FROM books
        WHERE id = $1
    `
	if forUpdate {
		query += " FOR UPDATE"
	}

	var b model.Book
	err := q.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Price, &b.PublicationStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	b.AuthorIDs, err = authorIDsOf(ctx, q, id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func authorIDsOf(ctx context.Context, q querier, bookID int64) ([]int64, error) {
	rows, err := q.Query(ctx, `SELECT author_id FROM book_authors WHERE book_id = $1 ORDER BY author_id ASC`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get book authors: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan book authors: %w", err)
	}
	return ids, nil
}

func insertLinks(ctx context.Context, tx pgx.Tx, bookID int64, authorIDs []int64) error {
	query := `
        INSERT INTO book_authors (book_id, author_id)
        SELECT $1, UNNEST($2::bigint[])
    `
	if _, err := tx.Exec(ctx, query, bookID, authorIDs); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return model.ErrUnknownAuthor
		}
		return fmt.Errorf("failed to link book authors: %w", err)
	}
	return nil
}
