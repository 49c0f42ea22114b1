package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"warehouse-app/config"
	"warehouse-app/migration"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenStore memilih backend penyimpanan sesuai DB_DRIVER
func OpenStore() (Store, error) {
	if config.DBDriver == DriverMemory {
		log.Println("Using in-memory store, data hilang saat restart")
		return NewMemoryStore(), nil
	}

	if err := EnsureDatabaseExists(config.DBName); err != nil {
		return nil, err
	}

	db, err := OpenDatabase(config.DBName)
	if err != nil {
		return nil, err
	}

	if err := migration.Migrate(db); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return NewGormStore(db), nil
}

func OpenDatabase(dbName string) (*gorm.DB, error) {
	_, dialector, err := getDSNAndDialector(dbName)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, &gorm.Config{Logger: newGormLogger()})
}

func newGormLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}

func getDSNAndDialector(dbName string) (string, gorm.Dialector, error) {
	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, dbName, config.DBPort)
		return dsn, postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		return dsn, mysql.Open(dsn), nil
	case "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		return dsn, sqlserver.Open(dsn), nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, config.DBDriver)
	}
}

// serverDialector connects to the server without selecting the application database.
func serverDialector() (gorm.Dialector, error) {
	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=postgres port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, config.DBPort)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort)
		return mysql.Open(dsn), nil
	case "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=master",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort)
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, config.DBDriver)
	}
}

func EnsureDatabaseExists(dbName string) error {
	dialector, err := serverDialector()
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newGormLogger()})
	if err != nil {
		return fmt.Errorf("connect to DB server: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("connect to DB server: %w", err)
	}
	defer sqlDB.Close()

	exists, err := checkDatabaseExists(db, dbName)
	if err != nil {
		return fmt.Errorf("check database %s: %w", dbName, err)
	}
	if exists {
		return nil
	}

	log.Printf("Creating database %s", dbName)
	return db.Exec("CREATE DATABASE " + dbName).Error
}

func checkDatabaseExists(db *gorm.DB, dbName string) (bool, error) {
	var count int64
	switch config.DBDriver {
	case "postgres":
		err := db.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", dbName).Scan(&count).Error
		return count > 0, err
	case "mysql":
		err := db.Raw("SELECT COUNT(*) FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?", dbName).Scan(&count).Error
		return count > 0, err
	case "mssql":
		err := db.Raw("SELECT COUNT(*) FROM master.sys.databases WHERE name = ?", dbName).Scan(&count).Error
		return count > 0, err
	default:
		return false, fmt.Errorf("%w: %s", ErrUnsupportedDriver, config.DBDriver)
	}
}
