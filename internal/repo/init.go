package repo

import (
	"github.com/sumever1205/listing-watch/internal/entity"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Listing{})
}
