package pgconn

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/blnkfinance/purchase-lookup/config"

	_ "github.com/go-sql-driver/mysql" // Import the mysql driver
	_ "github.com/lib/pq"              // Import the postgres driver
	_ "github.com/mattn/go-sqlite3"    // Import the sqlite driver
)

// ConnectDB opens the shared connection pool. It is called once at startup and the
// returned handle is passed to everything that talks to the database.
func ConnectDB(cfg config.DataSourceConfig) (*sqlx.DB, error) {
	if cfg.Dns == "" {
		return nil, errors.New("data source DNS is required")
	}
	driver := cfg.Driver
	if driver == "" {
		driver = config.DEFAULT_DRIVER
	}

	db, err := sqlx.Open(driver, cfg.Dns)
	if err != nil {
		return nil, err
	}

	// Apply connection pooling settings
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Verify connection
	if err := ping(db, cfg.ConnectTimeout); err != nil {
		logrus.WithError(err).Error("Database connection error ❌")
		_ = db.Close()
		return nil, err
	}

	logrus.WithField("driver", driver).Info("Database connection established ✅")
	return db, nil
}

// ping retries with exponential backoff until timeout elapses. A non-positive
// timeout means a single attempt.
func ping(db *sqlx.DB, timeout time.Duration) error {
	if timeout <= 0 {
		return db.Ping()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = timeout

	return backoff.RetryNotify(func() error {
		return db.PingContext(ctx)
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		logrus.WithError(err).WithField("retry_in", next).Warn("database not ready, retrying")
	})
}
