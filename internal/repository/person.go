package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arco-app/backend/internal/db"
	"github.com/arco-app/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type personRepository struct {
	db *sqlx.DB
}

func newPersonRepository(db *sqlx.DB) *personRepository {
	return &personRepository{
		db: db,
	}
}

func (r *personRepository) GetAll(ctx context.Context) ([]domain.Person, error) {
	const query = `
	SELECT id, first_name, last_name, email, title, linkedin_url, github_url, twitter_url, image, slug, created_at, updated_at
	FROM person ORDER BY last_name, first_name;
	`
	var persons []domain.Person
	if err := r.db.SelectContext(ctx, &persons, query); err != nil {
		return nil, fmt.Errorf("select persons failed: %w", err)
	}

	return persons, nil
}

func (r *personRepository) GetBySlug(ctx context.Context, slug string) (*domain.Person, error) {
	const query = `
	SELECT id, first_name, last_name, email, title, linkedin_url, github_url, twitter_url, image, slug, created_at, updated_at
	FROM person WHERE slug = ?;
	`
	var person domain.Person
	if err := r.db.GetContext(ctx, &person, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select person by slug failed: %w", err)
	}

	return &person, nil
}

func (r *personRepository) Create(ctx context.Context, person *domain.Person) error {
	const query = `
	INSERT INTO person (first_name, last_name, email, title, linkedin_url, github_url, twitter_url, image, slug)
	VALUES (:first_name, :last_name, :email, :title, :linkedin_url, :github_url, :twitter_url, :image, :slug);
	`
	result, err := r.db.NamedExecContext(ctx, query, person)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert person: %w", err)
	}

	person.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id failed: %w", err)
	}

	return nil
}
