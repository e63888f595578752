package db

import (
	"time"

	"github.com/shandysiswandi/mlrlegacy/internal/monitoringlocation/entity"
)

const columns = `monitoring_location_id, agency_code, site_number, station_name, station_ix,
	state_fips_code, county_code, site_type_code, transaction_type,
	decimal_latitude, decimal_longitude, created, created_by, updated, updated_by`

type monitoringLocationRow struct {
	ID               int64     `db:"monitoring_location_id"`
	AgencyCode       *string   `db:"agency_code"`
	SiteNumber       *string   `db:"site_number"`
	StationName      *string   `db:"station_name"`
	StationIx        *string   `db:"station_ix"`
	StateFipsCode    *string   `db:"state_fips_code"`
	CountyCode       *string   `db:"county_code"`
	SiteTypeCode     *string   `db:"site_type_code"`
	TransactionType  *string   `db:"transaction_type"`
	DecimalLatitude  *string   `db:"decimal_latitude"`
	DecimalLongitude *string   `db:"decimal_longitude"`
	Created          time.Time `db:"created"`
	CreatedBy        string    `db:"created_by"`
	Updated          time.Time `db:"updated"`
	UpdatedBy        string    `db:"updated_by"`
}

func (r monitoringLocationRow) toEntity() entity.MonitoringLocation {
	id := r.ID
	return entity.MonitoringLocation{
		ID:               &id,
		AgencyCode:       r.AgencyCode,
		SiteNumber:       r.SiteNumber,
		StationName:      r.StationName,
		StationIx:        r.StationIx,
		StateFipsCode:    r.StateFipsCode,
		CountyCode:       r.CountyCode,
		SiteTypeCode:     r.SiteTypeCode,
		TransactionType:  r.TransactionType,
		DecimalLatitude:  r.DecimalLatitude,
		DecimalLongitude: r.DecimalLongitude,
		Created:          r.Created,
		CreatedBy:        r.CreatedBy,
		Updated:          r.Updated,
		UpdatedBy:        r.UpdatedBy,
	}
}
