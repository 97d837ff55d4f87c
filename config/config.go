package config

import (
	"github.com/glebarez/sqlite"
	"github.com/romana/rlog"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-api/models"
)

// DB is the shared connection handle, set once by InitDB.
var DB *gorm.DB

func init() {
	viper.SetDefault("PORT", "8089")
	viper.SetDefault("JWT_SECRET", "restaurant_super_secret_2024")
	viper.SetDefault("FRONTEND_URL", "http://localhost:5173")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("MP_ACCESS_TOKEN", "")
	viper.AutomaticEnv()
}

// JWTSecret returns the token signing key.
func JWTSecret() []byte {
	return []byte(viper.GetString("JWT_SECRET"))
}

// Port returns the listen port.
func Port() string {
	return viper.GetString("PORT")
}

// FrontendURL is the origin allowed by CORS.
func FrontendURL() string {
	return viper.GetString("FRONTEND_URL")
}

// MPAccessToken is the payment processor credential.
func MPAccessToken() string {
	return viper.GetString("MP_ACCESS_TOKEN")
}

// InitDB connects to Postgres when DATABASE_URL is set, otherwise to a
// local sqlite file, and migrates the schema.
func InitDB() {
	var (
		db  *gorm.DB
		err error
	)
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	if dsn := viper.GetString("DATABASE_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	} else {
		db, err = gorm.Open(sqlite.Open("restaurant.db"), gormCfg)
	}
	if err != nil {
		rlog.Criticalf("failed to connect to database: %v", err)
		panic(err)
	}

	if err := Migrate(db); err != nil {
		rlog.Criticalf("failed to migrate database: %v", err)
		panic(err)
	}

	DB = db
	rlog.Info("database connected and migrated")
}

// Migrate creates or updates the schema and seeds reference data. Split
// out of InitDB so tests can run it against their own handle.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
	if err != nil {
		return err
	}
	return seedCategories(db)
}

var defaultCategories = []string{"Entradas", "Platos", "Bebidas", "Postres"}

func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range defaultCategories {
		if err := db.Create(&models.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
