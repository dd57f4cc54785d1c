package filter

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Dialect supplies the backend-specific pieces of statement text.
// Compiler logic never writes backend syntax itself.
type Dialect interface {
	Name() string
	BindType() int
	Lower(column string) string
	LikeEscape() string
	// Distance returns the text surrounding a bound target so that
	// prefix + ? + suffix evaluates to |column - target|.
	Distance(kind DistanceKind, column string) (prefix, suffix string)
	// Value adapts a bound value to what the driver expects.
	Value(v interface{}) interface{}
}

// DialectFor resolves the dialect for a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "postgres", "pgx":
		return Postgres{}, nil
	case "mysql":
		return MySQL{}, nil
	case "sqlite3":
		return SQLite{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// Postgres targets PostgreSQL through lib/pq.
type Postgres struct{}

func (Postgres) Name() string                    { return "postgres" }
func (Postgres) BindType() int                   { return sqlx.DOLLAR }
func (Postgres) Lower(column string) string      { return "LOWER(" + column + ")" }
func (Postgres) LikeEscape() string              { return ` ESCAPE '\'` }
func (Postgres) Value(v interface{}) interface{} { return v }

func (Postgres) Distance(kind DistanceKind, column string) (string, string) {
	switch kind {
	case DistanceSeconds:
		return "ABS(EXTRACT(EPOCH FROM (" + column + " - CAST(", " AS TIMESTAMP))))"
	case DistanceDays:
		return "ABS(" + column + " - CAST(", " AS DATE))"
	default:
		return "ABS(" + column + " - CAST(", " AS NUMERIC))"
	}
}

// MySQL targets MySQL and MariaDB through go-sql-driver/mysql.
// Backslash is already the default LIKE escape there.
type MySQL struct{}

func (MySQL) Name() string                    { return "mysql" }
func (MySQL) BindType() int                   { return sqlx.QUESTION }
func (MySQL) Lower(column string) string      { return "LOWER(" + column + ")" }
func (MySQL) LikeEscape() string              { return "" }
func (MySQL) Value(v interface{}) interface{} { return v }

func (MySQL) Distance(kind DistanceKind, column string) (string, string) {
	switch kind {
	case DistanceSeconds:
		return "ABS(TIMESTAMPDIFF(SECOND, " + column + ", ", "))"
	case DistanceDays:
		return "ABS(DATEDIFF(" + column + ", ", "))"
	default:
		return "ABS(" + column + " - CAST(", " AS DECIMAL(30,10)))"
	}
}

// SQLite targets SQLite through mattn/go-sqlite3.
type SQLite struct{}

const sqliteTimestampLayout = "2006-01-02 15:04:05"

func (SQLite) Name() string               { return "sqlite3" }
func (SQLite) BindType() int              { return sqlx.QUESTION }
func (SQLite) Lower(column string) string { return "LOWER(" + column + ")" }
func (SQLite) LikeEscape() string         { return ` ESCAPE '\'` }

func (SQLite) Distance(kind DistanceKind, column string) (string, string) {
	switch kind {
	case DistanceSeconds:
		return "ABS(julianday(" + column + ") - julianday(", ")) * 86400"
	case DistanceDays:
		return "ABS(julianday(" + column + ") - julianday(", "))"
	default:
		return "ABS(" + column + " - CAST(", " AS NUMERIC))"
	}
}

// Value stores times as UTC text so julianday can read them.
func (SQLite) Value(v interface{}) interface{} {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(sqliteTimestampLayout)
	}
	return v
}
