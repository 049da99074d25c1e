package database

import (
	"log"
	"os"
	"time"
	"videogamehub/backend/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string, appLogger zerolog.Logger) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to database")
	}

	appLogger.Info().Msg("database connection established")

	if err := Migrate(DB); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to migrate database")
	}

	appLogger.Info().Msg("database migrated successfully")
}

// Migrate runs the schema migrations. Split out so tests can run it
// against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.ListEntry{}, &models.Review{})
}
