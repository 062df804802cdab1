package dal

import (
	"civilprotection-backend/models"
	"context"
	"errors"
	"fmt"
	"time"

	"civilprotection-backend/utils/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 500 * time.Millisecond

// DatabaseClient wraps the GORM connection shared by all repositories
type DatabaseClient struct {
	db     *gorm.DB
	config *models.Config
	logger logger.Logger
}

// NewDatabaseClient opens the database configured in cfg
func NewDatabaseClient(cfg *models.Config, log logger.Logger) (*DatabaseClient, error) {
	dialector, err := dialectorFor(cfg.DatabaseDriver, cfg.DSN())
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if cfg.DatabaseDebug {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(log, level, slowQueryThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DatabaseDriver, err)
	}

	if cfg.DatabaseDriver == "sqlite" {
		// SQLite allows a single writer; a shared in-memory database also
		// needs every statement on the same connection.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Infof("Database client initialized (driver=%s)", cfg.DatabaseDriver)

	return &DatabaseClient{
		db:     db,
		config: cfg,
		logger: log,
	}, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// DB returns a session bound to ctx
func (c *DatabaseClient) DB(ctx context.Context) *gorm.DB {
	return c.db.WithContext(ctx)
}

// Ping checks that the database is reachable
func (c *DatabaseClient) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool
func (c *DatabaseClient) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates every table the application uses
func (c *DatabaseClient) Migrate(ctx context.Context) error {
	c.logger.Info("Running database migrations")
	if err := c.DB(ctx).AutoMigrate(allModels()...); err != nil {
		c.logger.Errorf("Migration failed: %v", err)
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Reset drops every table and migrates again. ALL DATA IS LOST.
func (c *DatabaseClient) Reset(ctx context.Context) error {
	c.logger.Warn("Dropping all tables")
	migrator := c.DB(ctx).Migrator()
	tables := joinTables()
	all := allModels()
	for i := len(all) - 1; i >= 0; i-- {
		tables = append(tables, all[i])
	}
	for _, table := range tables {
		if err := migrator.DropTable(table); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	return c.Migrate(ctx)
}

func allModels() []interface{} {
	return []interface{}{
		&models.Role{},
		&models.Group{},
		&models.Vehicle{},
		&models.Volunteer{},
		&models.Service{},
	}
}

func joinTables() []interface{} {
	return []interface{}{"volunteer_groups", "service_volunteers", "service_vehicles"}
}

// gormLogger routes GORM's logging through the application logger. Failed
// queries go to Error and slow queries to Warn; the rest is Debug.
type gormLogger struct {
	log           logger.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormLogger(log logger.Logger, level gormlogger.LogLevel, slowThreshold time.Duration) *gormLogger {
	return &gormLogger{log: log, level: level, slowThreshold: slowThreshold}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.Infof(msg, data...)
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.Warnf(msg, data...)
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.Errorf(msg, data...)
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	query := func() logger.Logger {
		sql, rows := fc()
		return l.log.WithFields(map[string]interface{}{
			"sql":        sql,
			"rows":       rows,
			"elapsed_ms": float64(elapsed.Microseconds()) / 1000,
		})
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		query().Errorf("Query failed: %v", err)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		query().Warnf("Slow query took %s (threshold %s)", elapsed, l.slowThreshold)
	case l.level >= gormlogger.Info:
		query().Debugf("Query executed in %s", elapsed)
	}
}
