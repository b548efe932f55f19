// Package dbconn opens the gorm connection used by the task store. SQLite is
// the default; URLs starting with postgres:// or postgresql:// go through
// lib/pq instead.
package dbconn

import (
	"database/sql"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type DBConf struct {
	URL         string
	MaxIdle     int
	MaxOpen     int
	MaxLifetime time.Duration
	Logger      gormlogger.Interface
}

type DBOpts func(*DBConf)

func NewConf() *DBConf {
	return &DBConf{
		URL:         "file:taskhub.db",
		MaxIdle:     25,
		MaxOpen:     25,
		MaxLifetime: 300 * time.Second,
	}
}

func WithURL(url string) DBOpts {
	return func(d *DBConf) {
		d.URL = url
	}
}

func WithMaxIdle(idle int) DBOpts {
	return func(d *DBConf) {
		d.MaxIdle = idle
	}
}

func WithMaxOpen(open int) DBOpts {
	return func(d *DBConf) {
		d.MaxOpen = open
	}
}

func WithMaxLifetime(lifetime time.Duration) DBOpts {
	return func(d *DBConf) {
		d.MaxLifetime = lifetime
	}
}

// WithLogger routes gorm's SQL logging through w, e.g. a *logrus.Logger.
func WithLogger(w gormlogger.Writer, level gormlogger.LogLevel) DBOpts {
	return func(d *DBConf) {
		d.Logger = gormlogger.New(w, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		})
	}
}

// IsPostgres reports whether url targets a PostgreSQL server.
func IsPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// Open connects to the database described by options and verifies the
// connection with a ping.
func Open(options ...DBOpts) (*gorm.DB, error) {
	dbConf := NewConf()
	for _, o := range options {
		o(dbConf)
	}

	gormConf := &gorm.Config{}
	if dbConf.Logger != nil {
		gormConf.Logger = dbConf.Logger
	}

	var dialector gorm.Dialector
	if IsPostgres(dbConf.URL) {
		pq, err := sql.Open("postgres", dbConf.URL)
		if err != nil {
			return nil, err
		}
		dialector = postgres.New(postgres.Config{Conn: pq})
	} else {
		dialector = sqlite.Open(dbConf.URL)
	}

	db, err := gorm.Open(dialector, gormConf)
	if err != nil {
		return nil, err
	}

	sdb, err := db.DB()
	if err != nil {
		return nil, err
	}

	sdb.SetMaxIdleConns(dbConf.MaxIdle)
	sdb.SetMaxOpenConns(dbConf.MaxOpen)
	sdb.SetConnMaxLifetime(dbConf.MaxLifetime)

	if err := sdb.Ping(); err != nil {
		sdb.Close()
		return nil, err
	}

	return db, nil
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sdb, err := db.DB()
	if err != nil {
		return err
	}
	return sdb.Close()
}
