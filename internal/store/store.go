// Package store reads the daily traffic table from SQL databases.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// TrafficTable is the table written by the traffic collector.
const TrafficTable = "traffic"

// TrafficStore implements contract.SeriesLoader over database/sql.
type TrafficStore struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.SeriesLoader = &TrafficStore{} // Compile-time check

// driverFor returns the database/sql driver name of a backend.
func driverFor(backend schema.DatabaseBackend) (string, error) {
	switch backend {
	case schema.SQLiteBackend:
		return "sqlite", nil
	case schema.MySQLBackend:
		return "mysql", nil
	case schema.PostgreSQLBackend:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported backend: %s", backend)
	}
}

// Open opens and pings a database for the backend.
func Open(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	driverName, err := driverFor(backend)
	if err != nil {
		return nil, err
	}
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.DefaultDBPath
	}

	db, err := sql.Open(driverName, connStr)
	if err != nil {
		switch backend {
		case schema.MySQLBackend:
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		case schema.PostgreSQLBackend:
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=...", err)
		default:
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w", connStr, err)
		}
	}
	if backend == schema.SQLiteBackend {
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Check that the directory exists and is readable."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}
	return db, nil
}

// NewTrafficStore opens the traffic database for reading.
func NewTrafficStore(backend schema.DatabaseBackend, connStr string) (*TrafficStore, error) {
	db, err := Open(backend, connStr)
	if err != nil {
		return nil, err
	}
	return &TrafficStore{db: db, backend: backend}, nil
}

// quoteIdent quotes a table or column name for the backend.
func quoteIdent(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("\"%s\"", name)
	}
}

// seriesQuery returns the select for every stored day.
func seriesQuery(backend schema.DatabaseBackend) string {
	return fmt.Sprintf(`
		SELECT %s,
			COALESCE(clones, 0),
			COALESCE(views, 0),
			COALESCE(total_downloads, 0),
			COALESCE(total_stars, 0)
		FROM %s
		ORDER BY %s
	`, quoteIdent("timestamp", backend), quoteIdent(TrafficTable, backend), quoteIdent("timestamp", backend))
}

// LoadSeries implements contract.SeriesLoader.
// Rows that share a calendar date collapse into the later row.
func (s *TrafficStore) LoadSeries(ctx context.Context) (schema.TrafficSeries, error) {
	rows, err := s.db.QueryContext(ctx, seriesQuery(s.backend))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s table: %w. Run 'repulse db migrate' or point --db-connect at a populated database", TrafficTable, err)
	}
	defer func() { _ = rows.Close() }()

	byDate := make(map[time.Time]int)
	var series schema.TrafficSeries
	for rows.Next() {
		var ts sql.NullString
		var r schema.TrafficRecord
		if err := rows.Scan(&ts, &r.Clones, &r.Views, &r.TotalDownloads, &r.TotalStars); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", TrafficTable, err)
		}
		if !ts.Valid {
			continue
		}
		r.Date, err = ParseTimestamp(ts.String)
		if err != nil {
			return nil, err
		}
		if i, ok := byDate[r.Date]; ok {
			series[i] = r
			continue
		}
		byDate[r.Date] = len(series)
		series = append(series, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series, nil
}

// GetStatus implements contract.SeriesLoader.
func (s *TrafficStore) GetStatus(ctx context.Context) (schema.SeriesStatus, error) {
	status := schema.SeriesStatus{Backend: string(s.backend)}
	if err := s.db.PingContext(ctx); err != nil {
		return status, nil
	}
	status.Connected = true

	query := fmt.Sprintf(`SELECT COUNT(*), MIN(%s), MAX(%s) FROM %s`,
		quoteIdent("timestamp", s.backend), quoteIdent("timestamp", s.backend), quoteIdent(TrafficTable, s.backend))
	var first, last sql.NullString
	if err := s.db.QueryRowContext(ctx, query).Scan(&status.TotalRows, &first, &last); err != nil {
		return status, fmt.Errorf("failed to query %s status: %w", TrafficTable, err)
	}
	if first.Valid {
		if t, err := ParseTimestamp(first.String); err == nil {
			status.FirstDate = t
		}
	}
	if last.Valid {
		if t, err := ParseTimestamp(last.String); err == nil {
			status.LastDate = t
		}
	}
	return status, nil
}

// Close implements contract.SeriesLoader.
func (s *TrafficStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// timestampLayouts are tried in order before falling back to the date prefix.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseTimestamp reads a stored timestamp and returns its calendar date
// as UTC midnight. The date is taken in the timestamp's own offset.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return schema.TruncateDay(t), nil
		}
	}
	if len(s) >= 10 {
		if t, err := time.Parse(time.DateOnly, s[:10]); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q in %s table", s, TrafficTable)
}
