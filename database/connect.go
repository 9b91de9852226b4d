package database

import (
	"fsdine_restaurant/config"
	"fsdine_restaurant/logger"
	"fsdine_restaurant/model"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	logger.Get().WithField("host", cfg.DBHost).Info("connection opened to database")
	return db, nil
}

// Migrate creates or updates every table. Mappings are migrated before
// orders because orders reference them.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.MenuCategory{},
		&model.MenuItem{},
		&model.Admin{},
		&model.TableMapping{},
		&model.TableOrder{},
		&model.TableNotification{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}
	logger.Get().Info("database migrated")
	return nil
}
