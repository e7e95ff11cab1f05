// Command migrate runs schema operations for the forum database.
//
//	migrate up             apply pending SQL migrations
//	migrate auto           run GORM AutoMigrate on the forum models
//	migrate status         list applied and pending versions
//	migrate down <version> roll back one applied version
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"forumapi/internal/config"
	"forumapi/internal/database"

	"gorm.io/gorm"
)

var errUsage = errors.New("usage: migrate <up|auto|status|down> [version]")

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatal(errUsage)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer func() { _ = sqlDB.Close() }()
	}

	if err := run(context.Background(), db, cfg, flag.Args(), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run executes one migrate command against db and reports to out.
func run(ctx context.Context, db *gorm.DB, cfg *config.Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "up":
		if err := database.RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
		fmt.Fprintln(out, "sql migrations applied")

	case "auto":
		auto := *cfg
		auto.DBSchemaMode = database.SchemaModeAuto
		if err := database.ApplySchema(ctx, db, &auto); err != nil {
			return fmt.Errorf("auto schema apply failed: %w", err)
		}
		fmt.Fprintln(out, "automigrations applied")

	case "status":
		status, err := database.GetSchemaStatus(ctx, db, cfg)
		if err != nil {
			return fmt.Errorf("schema status failed: %w", err)
		}
		fmt.Fprintf(out, "mode=%s env=%s applied=%d pending=%d\n",
			status.Mode, status.Environment, len(status.AppliedVersions), len(status.PendingMigrations))
		for _, v := range status.AppliedVersions {
			if m := database.GetMigrationByVersion(v); m != nil {
				fmt.Fprintf(out, "applied: %s\n", m)
			}
		}
		for _, m := range status.PendingMigrations {
			fmt.Fprintf(out, "pending: %s\n", m.String())
		}

	case "down":
		if len(args) < 2 {
			return errors.New("usage: migrate down <version>")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[1], err)
		}
		if err := database.RollbackMigration(ctx, db, version); err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}
		fmt.Fprintf(out, "rolled back migration %06d\n", version)

	default:
		return errUsage
	}
	return nil
}
