package articles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rench/blog/status"
)

const (
	listArticlesQuery = `
		SELECT id, name, description, published_at
		FROM articles
		ORDER BY published_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	getArticleQuery = `
		SELECT id, name, description, published_at
		FROM articles
		WHERE id = $1`
)

type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) List(ctx context.Context, page, size int) (Page, error) {
	page, size = normalize(page, size)

	start, ok := offset(page, size)
	if !ok {
		return Page{Items: []Article{}, Number: page}, nil
	}

	// One extra row tells us whether there is a next page.
	rows, err := p.db.QueryContext(ctx, listArticlesQuery, size+1, start)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %v", status.ErrDB, err)
	}
	defer rows.Close()

	items := make([]Article, 0, size)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return Page{}, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return Page{}, fmt.Errorf("%w: %v", status.ErrDB, err)
	}

	hasNext := len(items) > size
	if hasNext {
		items = items[:size]
	}

	return Page{Items: items, Number: page, HasNext: hasNext}, nil
}

func (p *Postgres) Get(ctx context.Context, id uint64) (Article, error) {
	a, err := scanArticle(p.db.QueryRowContext(ctx, getArticleQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Article{}, status.ErrArticleNotFound
	}
	return a, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(s scanner) (Article, error) {
	var a Article
	if err := s.Scan(&a.ID, &a.Name, &a.Description, &a.PublishedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Article{}, err
		}
		return Article{}, fmt.Errorf("%w: %v", status.ErrDB, err)
	}
	a.URL = URLFor(a.ID)
	a.PublishedAt = a.PublishedAt.UTC()
	return a, nil
}
