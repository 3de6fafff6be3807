package pgsql

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/macro_dashboard_app/internal/models"
	"github.com/SscSPs/macro_dashboard_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMarketQuoteRepository struct {
	BaseRepository
}

func newPgxMarketQuoteRepository(pool *pgxpool.Pool) portsrepo.MarketQuoteRepositoryFacade {
	return &PgxMarketQuoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MarketQuoteRepositoryFacade = (*PgxMarketQuoteRepository)(nil)

const marketQuoteColumns = `id, symbol, price, change_percent`

func scanMarketQuote(row pgx.Row) (models.MarketQuote, error) {
	var q models.MarketQuote
	err := row.Scan(&q.ID, &q.Symbol, &q.Price, &q.ChangePercent)
	return q, err
}

func (r *PgxMarketQuoteRepository) ListMarketQuotes(ctx context.Context) ([]domain.MarketQuote, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+marketQuoteColumns+` FROM market_quotes ORDER BY seq;`)
	if err != nil {
		return nil, r.classifyError(err, "list market quotes", "", "")
	}
	defer rows.Close()

	modelQuotes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MarketQuote, error) {
		return scanMarketQuote(row)
	})
	if err != nil {
		return nil, r.classifyError(err, "scan market quotes", "", "")
	}
	return mapping.ToDomainMarketQuoteSlice(modelQuotes), nil
}

func (r *PgxMarketQuoteRepository) CreateMarketQuote(ctx context.Context, quote domain.MarketQuote) (*domain.MarketQuote, error) {
	if quote.ID == "" {
		quote.ID = uuid.NewString()
	}
	m := mapping.ToModelMarketQuote(quote)

	query := `
		INSERT INTO market_quotes (id, symbol, price, change_percent)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + marketQuoteColumns + `;
	`
	created, err := scanMarketQuote(r.Pool.QueryRow(ctx, query, m.ID, m.Symbol, m.Price, m.ChangePercent))
	if err != nil {
		return nil, r.classifyError(err, "create market quote", "", "market symbol '"+quote.Symbol+"' already exists")
	}
	domainQuote := mapping.ToDomainMarketQuote(created)
	return &domainQuote, nil
}

func (r *PgxMarketQuoteRepository) UpdateMarketQuote(ctx context.Context, symbol string, patch domain.MarketQuotePatch) (*domain.MarketQuote, error) {
	query := `
		UPDATE market_quotes SET
			symbol = COALESCE($2, symbol),
			price = COALESCE($3, price),
			change_percent = COALESCE($4, change_percent)
		WHERE symbol = $1
		RETURNING ` + marketQuoteColumns + `;
	`
	updated, err := scanMarketQuote(r.Pool.QueryRow(ctx, query, symbol, patch.Symbol, patch.Price, patch.ChangePercent))
	if err != nil {
		conflict := ""
		if patch.Symbol != nil {
			conflict = "market symbol '" + *patch.Symbol + "' already exists"
		}
		return nil, r.classifyError(err, "update market quote", "market symbol '"+symbol+"' not found", conflict)
	}
	domainQuote := mapping.ToDomainMarketQuote(updated)
	return &domainQuote, nil
}
