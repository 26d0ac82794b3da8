// Applies the SQL migrations under migrations/ to the bot's PostgreSQL
// schema. DATABASE_URL is read from the environment (or .env) the same
// way the bot itself reads it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with migration files")
	flag.Parse()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set to run migrations")
	}

	m, err := migrate.New("file://"+*dir, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open migrations: %v", err)
	}

	switch cmd := flag.Arg(0); cmd {
	case "up":
		switch err := m.Up(); {
		case errors.Is(err, migrate.ErrNoChange):
			fmt.Println("schema already up to date")
		case err != nil:
			log.Fatalf("up: %v", err)
		default:
			fmt.Println("schema migrated up")
		}
	case "down":
		switch err := m.Down(); {
		case errors.Is(err, migrate.ErrNoChange):
			fmt.Println("nothing to roll back")
		case err != nil:
			log.Fatalf("down: %v", err)
		default:
			fmt.Println("schema rolled back")
		}
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("version: %v", err)
		}
		fmt.Printf("schema version %d (dirty: %t)\n", version, dirty)
	case "force":
		if flag.Arg(1) == "" {
			log.Fatal("force needs a version number")
		}
		v, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			log.Fatalf("bad version %q: %v", flag.Arg(1), err)
		}
		if err := m.Force(v); err != nil {
			log.Fatalf("force: %v", err)
		}
		fmt.Printf("schema version forced to %d\n", v)
	default:
		fmt.Println("usage: migrate [-dir migrations] up|down|version|force <version>")
	}
}
