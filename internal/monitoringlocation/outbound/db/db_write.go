package db

import (
	"context"

	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation/entity"
)

func (s *DB) CreateMonitoringLocation(ctx context.Context, ml entity.MonitoringLocation) (_ *entity.MonitoringLocation, err error) {
	ctx, span := s.startSpan(ctx, "CreateMonitoringLocation")
	defer func() { s.endSpan(span, err) }()

	return s.queryOne(ctx, `
		INSERT INTO monitoring_location (
			agency_code, site_number, station_name, station_ix,
			state_fips_code, county_code, site_type_code, transaction_type,
			decimal_latitude, decimal_longitude, created_by, updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+columns,
		ml.AgencyCode, ml.SiteNumber, ml.StationName, ml.StationIx,
		ml.StateFipsCode, ml.CountyCode, ml.SiteTypeCode, ml.TransactionType,
		ml.DecimalLatitude, ml.DecimalLongitude, ml.CreatedBy, ml.UpdatedBy,
	)
}

// UpdateMonitoringLocation patches the row identified by ml.ID. Nil fields keep
// their stored value.
func (s *DB) UpdateMonitoringLocation(ctx context.Context, ml entity.MonitoringLocation) (_ *entity.MonitoringLocation, err error) {
	ctx, span := s.startSpan(ctx, "UpdateMonitoringLocation")
	defer func() { s.endSpan(span, err) }()

	var id int64
	if ml.ID != nil {
		id = *ml.ID
	}

	return s.queryOne(ctx, `
		UPDATE monitoring_location SET
			agency_code       = COALESCE($2, agency_code),
			site_number       = COALESCE($3, site_number),
			station_name      = COALESCE($4, station_name),
			station_ix        = COALESCE($5, station_ix),
			state_fips_code   = COALESCE($6, state_fips_code),
			county_code       = COALESCE($7, county_code),
			site_type_code    = COALESCE($8, site_type_code),
			transaction_type  = COALESCE($9, transaction_type),
			decimal_latitude  = COALESCE($10, decimal_latitude),
			decimal_longitude = COALESCE($11, decimal_longitude),
			updated_by        = $12,
			updated           = now()
		WHERE monitoring_location_id = $1
		RETURNING `+columns,
		id, ml.AgencyCode, ml.SiteNumber, ml.StationName, ml.StationIx,
		ml.StateFipsCode, ml.CountyCode, ml.SiteTypeCode, ml.TransactionType,
		ml.DecimalLatitude, ml.DecimalLongitude, ml.UpdatedBy,
	)
}
