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

type PgxChartRepository struct {
	BaseRepository
}

func newPgxChartRepository(pool *pgxpool.Pool) portsrepo.ChartRepositoryFacade {
	return &PgxChartRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ChartRepositoryFacade = (*PgxChartRepository)(nil)

const chartColumns = `id, series_name, "time", "value"`

func scanChartPoint(row pgx.Row) (models.ChartDataPoint, error) {
	var p models.ChartDataPoint
	err := row.Scan(&p.ID, &p.SeriesName, &p.Time, &p.Value)
	return p, err
}

// ListChartPoints retrieves points in insertion order, optionally for one series.
func (r *PgxChartRepository) ListChartPoints(ctx context.Context, seriesName *string) ([]domain.ChartDataPoint, error) {
	query := `SELECT ` + chartColumns + ` FROM chart_data_points`
	args := []interface{}{}
	if seriesName != nil {
		query += ` WHERE series_name = $1`
		args = append(args, *seriesName)
	}
	query += ` ORDER BY seq;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, r.classifyError(err, "list chart points", "", "")
	}
	defer rows.Close()

	modelPoints, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ChartDataPoint, error) {
		return scanChartPoint(row)
	})
	if err != nil {
		return nil, r.classifyError(err, "scan chart points", "", "")
	}
	return mapping.ToDomainChartPointSlice(modelPoints), nil
}

// AddChartPoint appends a point. There is no uniqueness on (series_name, time).
func (r *PgxChartRepository) AddChartPoint(ctx context.Context, point domain.ChartDataPoint) (*domain.ChartDataPoint, error) {
	if point.ID == "" {
		point.ID = uuid.NewString()
	}
	m := mapping.ToModelChartPoint(point)

	query := `
		INSERT INTO chart_data_points (id, series_name, "time", "value")
		VALUES ($1, $2, $3, $4)
		RETURNING ` + chartColumns + `;
	`
	created, err := scanChartPoint(r.Pool.QueryRow(ctx, query, m.ID, m.SeriesName, m.Time, m.Value))
	if err != nil {
		return nil, r.classifyError(err, "add chart point", "", "chart point already exists")
	}
	domainPoint := mapping.ToDomainChartPoint(created)
	return &domainPoint, nil
}
