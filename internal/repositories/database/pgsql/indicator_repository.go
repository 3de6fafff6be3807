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

type PgxIndicatorRepository struct {
	BaseRepository
}

func newPgxIndicatorRepository(pool *pgxpool.Pool) portsrepo.IndicatorRepositoryFacade {
	return &PgxIndicatorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.IndicatorRepositoryFacade = (*PgxIndicatorRepository)(nil)

const indicatorColumns = `id, "key", label, "value", category, trend, description`

func scanIndicator(row pgx.Row) (models.EconomicIndicator, error) {
	var ind models.EconomicIndicator
	err := row.Scan(
		&ind.ID,
		&ind.Key,
		&ind.Label,
		&ind.Value,
		&ind.Category,
		&ind.Trend,
		&ind.Description,
	)
	return ind, err
}

// ListIndicators retrieves all indicators in insertion order.
func (r *PgxIndicatorRepository) ListIndicators(ctx context.Context) ([]domain.EconomicIndicator, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+indicatorColumns+` FROM economic_indicators ORDER BY seq;`)
	if err != nil {
		return nil, r.classifyError(err, "list indicators", "", "")
	}
	defer rows.Close()

	modelIndicators, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.EconomicIndicator, error) {
		return scanIndicator(row)
	})
	if err != nil {
		return nil, r.classifyError(err, "scan indicators", "", "")
	}
	return mapping.ToDomainIndicatorSlice(modelIndicators), nil
}

func (r *PgxIndicatorRepository) CreateIndicator(ctx context.Context, indicator domain.EconomicIndicator) (*domain.EconomicIndicator, error) {
	if indicator.ID == "" {
		indicator.ID = uuid.NewString()
	}
	m := mapping.ToModelIndicator(indicator)

	query := `
		INSERT INTO economic_indicators (id, "key", label, "value", category, trend, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + indicatorColumns + `;
	`
	created, err := scanIndicator(r.Pool.QueryRow(ctx, query,
		m.ID, m.Key, m.Label, m.Value, m.Category, m.Trend, m.Description,
	))
	if err != nil {
		return nil, r.classifyError(err, "create indicator", "", "indicator '"+indicator.Key+"' already exists")
	}
	domainInd := mapping.ToDomainIndicator(created)
	return &domainInd, nil
}

func (r *PgxIndicatorRepository) UpdateIndicator(ctx context.Context, key string, patch domain.EconomicIndicatorPatch) (*domain.EconomicIndicator, error) {
	var category *string
	if patch.Category != nil {
		c := string(*patch.Category)
		category = &c
	}

	query := `
		UPDATE economic_indicators SET
			"key" = COALESCE($2, "key"),
			label = COALESCE($3, label),
			"value" = COALESCE($4, "value"),
			category = COALESCE($5, category),
			trend = COALESCE($6, trend),
			description = COALESCE($7, description)
		WHERE "key" = $1
		RETURNING ` + indicatorColumns + `;
	`
	updated, err := scanIndicator(r.Pool.QueryRow(ctx, query,
		key, patch.Key, patch.Label, patch.Value, category, patch.Trend, patch.Description,
	))
	if err != nil {
		conflict := ""
		if patch.Key != nil {
			conflict = "indicator '" + *patch.Key + "' already exists"
		}
		return nil, r.classifyError(err, "update indicator", "indicator '"+key+"' not found", conflict)
	}
	domainInd := mapping.ToDomainIndicator(updated)
	return &domainInd, nil
}
