// Command migrate manages the airquote database schema.
//
//	migrate up            apply all pending migrations
//	migrate down 1        roll back N migrations (default 1)
//	migrate force VERSION clear a dirty flag after a failed run
//	migrate status        print the current schema version
//
// The migrations directory defaults to db/migrations and can be overridden
// with AIRQUOTE_MIGRATIONS_DIR; the database connection comes from the same
// configuration the server uses.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"airquote/internal/config"
)

const usage = "usage: migrate up | down [N] | force VERSION | status"

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	dir := os.Getenv("AIRQUOTE_MIGRATIONS_DIR")
	if dir == "" {
		dir = "db/migrations"
	}

	m, err := migrate.New("file://"+dir, cfg.DB.DSN())
	if err != nil {
		log.Fatalf("open migrations at %s: %v", dir, err)
	}
	defer m.Close()

	switch cmd := os.Args[1]; cmd {
	case "up":
		err := m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("schema already up to date")
			return
		}
		if err != nil {
			log.Fatalf("up: %v", err)
		}
		log.Println("schema migrated")

	case "down":
		n := 1
		if len(os.Args) > 2 {
			n, err = strconv.Atoi(os.Args[2])
			if err != nil || n < 1 {
				log.Fatalf("down: N must be a positive integer, got %q", os.Args[2])
			}
		}
		err := m.Steps(-n)
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("nothing to roll back")
			return
		}
		if err != nil {
			log.Fatalf("down: %v", err)
		}
		log.Printf("rolled back %d migration(s)", n)

	case "force":
		if len(os.Args) < 3 {
			log.Fatal("force: VERSION argument required")
		}
		v, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("force: invalid version %q", os.Args[2])
		}
		if err := m.Force(v); err != nil {
			log.Fatalf("force: %v", err)
		}
		log.Printf("schema version forced to %d", v)

	case "status":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("schema version: none (no migrations applied)")
			return
		}
		if err != nil {
			log.Fatalf("status: %v", err)
		}
		fmt.Printf("schema version: %d dirty: %v\n", version, dirty)

	default:
		fmt.Printf("unknown command %q\n%s\n", cmd, usage)
		os.Exit(2)
	}
}
