package database

import (
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/thereayou/classlink/internal/models"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Connect открывает БД для driver и мигрирует схему
func Connect(driver, dsn string) (*Database, error) {
	if dsn == "" {
		return nil, errors.New("database dsn is not set")
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, errors.Wrap(ErrUnsupportedDriver, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", driver)
	}

	if err := db.AutoMigrate(&models.Teacher{}, &models.Parent{}, &models.Message{}); err != nil {
		return nil, errors.Wrap(err, "migrate")
	}

	return NewDatabase(db), nil
}
