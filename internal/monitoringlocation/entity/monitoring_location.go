package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shandysiswandi/mlrlegacy/internal/pkg/goerror"
)

// Field names used to attribute violations. They match the names the record
// store and API clients use for the same values.
const (
	FieldAgencyCode = "agencyCode"
	FieldSiteNumber = "siteNumber"
	FieldStationIx  = "stationIx"
)

// MonitoringLocation is a candidate or persisted monitoring location record.
//
// A nil ID means the record has never been persisted, so validating it is a
// create. Optional values are pointers so "absent" and "empty" stay distinct.
type MonitoringLocation struct {
	ID               *int64
	AgencyCode       *string
	SiteNumber       *string
	StationName      *string
	StationIx        *string
	StateFipsCode    *string
	CountyCode       *string
	SiteTypeCode     *string
	TransactionType  *string
	DecimalLatitude  *string
	DecimalLongitude *string
	Created          time.Time
	CreatedBy        string
	Updated          time.Time
	UpdatedBy        string
}

// IsCreate reports whether the record has no identifier yet.
func (m *MonitoringLocation) IsCreate() bool {
	return m.ID == nil
}

// IsUpdate reports whether the record refers to an existing row.
func (m *MonitoringLocation) IsUpdate() bool {
	return !m.IsCreate()
}

// SameID reports whether both records carry the same identifier.
// It returns goerror.ErrMissingID when either side has no identifier.
func (m *MonitoringLocation) SameID(other *MonitoringLocation) (bool, error) {
	if m == nil || other == nil || m.ID == nil || other.ID == nil {
		return false, goerror.ErrMissingID
	}
	return *m.ID == *other.ID, nil
}

// AlternateKey returns the (agency code, site number) key and whether both parts are present.
func (m *MonitoringLocation) AlternateKey() (AlternateKey, bool) {
	if m.AgencyCode == nil || m.SiteNumber == nil {
		return AlternateKey{}, false
	}
	return AlternateKey{AgencyCode: *m.AgencyCode, SiteNumber: *m.SiteNumber}, true
}

// String renders the record for human-facing messages.
func (m MonitoringLocation) String() string {
	var b strings.Builder
	b.WriteString("MonitoringLocation [")

	id := "null"
	if m.ID != nil {
		id = strconv.FormatInt(*m.ID, 10)
	}
	fmt.Fprintf(&b, "id=%s", id)

	for _, f := range []struct {
		name string
		val  *string
	}{
		{"agencyCode", m.AgencyCode},
		{"siteNumber", m.SiteNumber},
		{"stationName", m.StationName},
		{"stationIx", m.StationIx},
		{"stateFipsCode", m.StateFipsCode},
		{"countyCode", m.CountyCode},
		{"siteTypeCode", m.SiteTypeCode},
	} {
		v := "null"
		if f.val != nil {
			v = *f.val
		}
		fmt.Fprintf(&b, ", %s=%s", f.name, v)
	}

	b.WriteString("]")
	return b.String()
}

// AlternateKey is the secondary uniqueness key of a monitoring location.
type AlternateKey struct {
	AgencyCode string
	SiteNumber string
}

// NormalizedNameFilter selects monitoring locations by normalized station name.
type NormalizedNameFilter struct {
	StationIx string
}
