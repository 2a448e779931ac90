package ioc

import (
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	type Config struct {
		DSN string `mapstructure:"dsn"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("db", &cfg); err != nil {
		panic(err)
	}
	if cfg.DSN == "" {
		cfg.DSN = "./data/records.db"
	}

	// an existing but unreadable database is fatal, a missing one is
	// created here and triggers the bootstrap pass later
	db, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	return db
}
