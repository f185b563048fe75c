package main

import (
	"fmt"
	"os"
	"time"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/memories-timeline/memories-backend/pkg/config"
	"github.com/memories-timeline/memories-backend/pkg/db"
	"github.com/memories-timeline/memories-backend/pkg/seeds"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const migrationsDir = "./db/migrations"

func createMigrationFile(migrationName string) error {
	// datetime format in YYYYMMDDhhmmss - uses the reference time Mon Jan 2 15:04:05 MST 2006
	datetime := time.Now().Format("20060102150405")

	migrationTemplate := "" +
		"BEGIN;\n" +
		"-- your migration here\n" +
		"COMMIT;\n"

	for _, direction := range []string{"up", "down"} {
		filename := fmt.Sprintf("%s/%s_%s.%s.sql", migrationsDir, datetime, migrationName, direction)
		if err := os.WriteFile(filename, []byte(migrationTemplate), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func migrateAction(direction string) cli.ActionFunc {
	return func(c *cli.Context) error {
		if err := db.MigrateDB(db.GetUrl(), direction, c.Int("steps")); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", direction, err)
		}
		log.Debug().Msgf("Successfully migrated %s", direction)
		return nil
	}
}

func newAction(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("usage: dbmigrate new <migration_name>")
	}
	return createMigrationFile(name)
}

func seedAction(c *cli.Context) error {
	if err := db.Connect(); err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Could not close database")
		}
	}()

	step := c.Duration("step")
	_, err := seeds.SeedMemories(db.DB, c.Int("count"), seeds.SeedOptions{
		UserID: c.String("user"),
		Step:   &step,
		Types:  config.MemoryTypes[:],
	})
	if err != nil {
		return err
	}
	log.Debug().Msg("Successfully seeded")
	return nil
}

func main() {
	config.Load()
	config.ConfigureLogging()

	stepsFlag := &cli.IntFlag{Name: "steps", Usage: "number of migrations to apply, 0 for all"}
	app := &cli.App{
		Name:  "dbmigrate",
		Usage: "Manage the memories database schema",
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "Apply migrations",
				Flags:  []cli.Flag{stepsFlag},
				Action: migrateAction("up"),
			},
			{
				Name:   "down",
				Usage:  "Roll back migrations",
				Flags:  []cli.Flag{stepsFlag},
				Action: migrateAction("down"),
			},
			{
				Name:      "new",
				Usage:     "Create an empty up and down migration pair",
				ArgsUsage: "<migration_name>",
				Action:    newAction,
			},
			{
				Name:  "seed",
				Usage: "Insert sample memories for local development",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Value: 50, Usage: "number of memories"},
					&cli.StringFlag{Name: "user", Value: seeds.DefaultSeedUser, Usage: "owner of the seeded memories"},
					&cli.DurationFlag{Name: "step", Value: 24 * time.Hour, Usage: "gap between memory dates"},
				},
				Action: seedAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("dbmigrate failed")
	}
}
