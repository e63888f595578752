package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/goerror"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Schema creates the monitoring_location table. The unique indexes back up
// the uniqueness checks done before every write.
const Schema = `
CREATE TABLE IF NOT EXISTS monitoring_location (
	monitoring_location_id BIGSERIAL PRIMARY KEY,
	agency_code            VARCHAR(5),
	site_number            VARCHAR(15),
	station_name           VARCHAR(50),
	station_ix             VARCHAR(50),
	state_fips_code        VARCHAR(2),
	county_code            VARCHAR(3),
	site_type_code         VARCHAR(7),
	transaction_type       VARCHAR(1),
	decimal_latitude       VARCHAR(20),
	decimal_longitude      VARCHAR(20),
	created                TIMESTAMPTZ NOT NULL DEFAULT now(),
	created_by             VARCHAR(8)  NOT NULL,
	updated                TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_by             VARCHAR(8)  NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS monitoring_location_ak ON monitoring_location (agency_code, site_number);
CREATE UNIQUE INDEX IF NOT EXISTS monitoring_location_station_ix ON monitoring_location (station_ix);
`

type DB struct {
	conn *pgxpool.Pool
	ins  instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{
		conn: conn,
		ins:  ins,
	}
}

// EnsureSchema applies Schema. It is idempotent.
func (s *DB) EnsureSchema(ctx context.Context) (err error) {
	ctx, span := s.startSpan(ctx, "EnsureSchema")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, Schema)
	return err
}

// - 23505 unique violation → goerror.ErrConflict
// - no rows → goerror.ErrNotFound
func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return goerror.ErrConflict
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("monitoringlocation.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
