package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/macro_dashboard_app/internal/models"
	"github.com/SscSPs/macro_dashboard_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNewsRepository struct {
	BaseRepository
}

func newPgxNewsRepository(pool *pgxpool.Pool) portsrepo.NewsRepositoryFacade {
	return &PgxNewsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NewsRepositoryFacade = (*PgxNewsRepository)(nil)

const newsColumns = `id, title, content, source, published_at`

func scanNewsItem(row pgx.Row) (models.NewsItem, error) {
	var n models.NewsItem
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Source, &n.PublishedAt)
	return n, err
}

// ListNews retrieves news ordered by publication time, oldest first.
func (r *PgxNewsRepository) ListNews(ctx context.Context) ([]domain.NewsItem, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+newsColumns+` FROM news ORDER BY published_at, seq;`)
	if err != nil {
		return nil, r.classifyError(err, "list news", "", "")
	}
	defer rows.Close()

	modelNews, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.NewsItem, error) {
		return scanNewsItem(row)
	})
	if err != nil {
		return nil, r.classifyError(err, "scan news", "", "")
	}
	return mapping.ToDomainNewsSlice(modelNews), nil
}

func (r *PgxNewsRepository) AddNews(ctx context.Context, item domain.NewsItem) (*domain.NewsItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now().UTC()
	}
	m := mapping.ToModelNewsItem(item)

	query := `
		INSERT INTO news (id, title, content, source, published_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + newsColumns + `;
	`
	created, err := scanNewsItem(r.Pool.QueryRow(ctx, query, m.ID, m.Title, m.Content, m.Source, m.PublishedAt))
	if err != nil {
		return nil, r.classifyError(err, "add news", "", "news item already exists")
	}
	domainItem := mapping.ToDomainNewsItem(created)
	return &domainItem, nil
}
