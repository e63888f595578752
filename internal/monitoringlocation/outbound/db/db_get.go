package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation/entity"
)

func (s *DB) GetByID(ctx context.Context, id int64) (_ *entity.MonitoringLocation, err error) {
	ctx, span := s.startSpan(ctx, "GetByID")
	defer func() { s.endSpan(span, err) }()

	return s.queryOne(ctx, `SELECT `+columns+` FROM monitoring_location WHERE monitoring_location_id = $1`, id)
}

func (s *DB) GetByAlternateKey(ctx context.Context, key entity.AlternateKey) (_ *entity.MonitoringLocation, err error) {
	ctx, span := s.startSpan(ctx, "GetByAlternateKey")
	defer func() { s.endSpan(span, err) }()

	return s.queryOne(ctx,
		`SELECT `+columns+` FROM monitoring_location WHERE agency_code = $1 AND site_number = $2`,
		key.AgencyCode, key.SiteNumber,
	)
}

func (s *DB) GetByNormalizedName(ctx context.Context, filter entity.NormalizedNameFilter) (_ []entity.MonitoringLocation, err error) {
	ctx, span := s.startSpan(ctx, "GetByNormalizedName")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx,
		`SELECT `+columns+` FROM monitoring_location WHERE station_ix = $1 ORDER BY monitoring_location_id`,
		filter.StationIx,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[monitoringLocationRow])
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]entity.MonitoringLocation, 0, len(items))
	for _, item := range items {
		result = append(result, item.toEntity())
	}

	return result, nil
}

func (s *DB) queryOne(ctx context.Context, sql string, args ...any) (*entity.MonitoringLocation, error) {
	rows, err := s.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, s.mapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[monitoringLocationRow])
	if err != nil {
		return nil, s.mapError(err)
	}

	ml := row.toEntity()
	return &ml, nil
}
