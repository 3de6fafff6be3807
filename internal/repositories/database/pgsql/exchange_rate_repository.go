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

// PgxExchangeRateRepository implements the exchange rate repository using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const exchangeRateColumns = `id, "type", buy, sell, trend, updated_at`

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var rate models.ExchangeRate
	err := row.Scan(
		&rate.ID,
		&rate.Type,
		&rate.Buy,
		&rate.Sell,
		&rate.Trend,
		&rate.UpdatedAt,
	)
	return rate, err
}

// ListExchangeRates retrieves all exchange rates in insertion order.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates ORDER BY seq;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, r.classifyError(err, "list exchange rates", "", "")
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return nil, r.classifyError(err, "scan exchange rates", "", "")
	}
	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}

// CreateExchangeRate inserts a new rate; a taken type is reported as a conflict.
func (r *PgxExchangeRateRepository) CreateExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	if rate.ID == "" {
		rate.ID = uuid.NewString()
	}
	if rate.UpdatedAt.IsZero() {
		rate.UpdatedAt = time.Now().UTC()
	}
	m := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (id, "type", buy, sell, trend, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + exchangeRateColumns + `;
	`
	created, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, m.ID, m.Type, m.Buy, m.Sell, m.Trend, m.UpdatedAt))
	if err != nil {
		return nil, r.classifyError(err, "create exchange rate", "", "exchange rate type '"+rate.Type+"' already exists")
	}
	domainRate := mapping.ToDomainExchangeRate(created)
	return &domainRate, nil
}

// UpdateExchangeRate applies a partial update in a single statement. updated_at never
// moves backwards.
func (r *PgxExchangeRateRepository) UpdateExchangeRate(ctx context.Context, rateType string, patch domain.ExchangeRatePatch) (*domain.ExchangeRate, error) {
	var trend *string
	if patch.Trend != nil {
		t := string(*patch.Trend)
		trend = &t
	}

	query := `
		UPDATE exchange_rates SET
			"type" = COALESCE($2, "type"),
			buy = COALESCE($3, buy),
			sell = COALESCE($4, sell),
			trend = COALESCE($5, trend),
			updated_at = GREATEST($6, updated_at)
		WHERE "type" = $1
		RETURNING ` + exchangeRateColumns + `;
	`
	updated, err := scanExchangeRate(r.Pool.QueryRow(ctx, query,
		rateType, patch.Type, patch.Buy, patch.Sell, trend, time.Now().UTC(),
	))
	if err != nil {
		conflict := ""
		if patch.Type != nil {
			conflict = "exchange rate type '" + *patch.Type + "' already exists"
		}
		return nil, r.classifyError(err, "update exchange rate", "exchange rate '"+rateType+"' not found", conflict)
	}
	domainRate := mapping.ToDomainExchangeRate(updated)
	return &domainRate, nil
}
