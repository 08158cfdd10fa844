package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/m04kA/NC-SessionService/internal/config"
	appmigrations "github.com/m04kA/NC-SessionService/migrations"
)

// Применяет миграции схемы БД из встроенных SQL файлов
// Использование:
//
//	migrate            - применить все миграции
//	migrate down       - откатить одну миграцию
//	migrate force <v>  - принудительно выставить версию (после dirty state)
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Printf("Failed to ping database: %v\n", err)
		os.Exit(1)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		fmt.Printf("Failed to create database driver: %v\n", err)
		os.Exit(1)
	}

	srcDriver, err := iofs.New(appmigrations.FS, ".")
	if err != nil {
		fmt.Printf("Failed to create source driver: %v\n", err)
		os.Exit(1)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		fmt.Printf("Failed to create migrator: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "down":
			if err := m.Steps(-1); err != nil {
				fmt.Printf("Failed to rollback migration: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Rolled back one migration")
			return

		case "force":
			if len(os.Args) < 3 {
				fmt.Println("Usage: migrate force <version>")
				os.Exit(1)
			}
			version, err := strconv.Atoi(os.Args[2])
			if err != nil {
				fmt.Printf("Invalid version: %v\n", err)
				os.Exit(1)
			}
			if err := m.Force(version); err != nil {
				fmt.Printf("Failed to force version: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Forced version to %d\n", version)
			return
		}
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fmt.Printf("Failed to apply migrations: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Migrations applied successfully")
}
