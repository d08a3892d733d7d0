package main

import (
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/talentgrid-io/talentgrid/pkg/configuration"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	conf := configuration.Use()
	db, err := goose.OpenDBWithDriver("pgx", conf.Database.ConnectionString())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("failed to close database: %v", err)
		}
	}()

	var args []string
	if len(os.Args) > 2 {
		args = os.Args[2:]
	}
	if err := goose.Run(command, db, conf.MigrationsDir, args...); err != nil {
		log.Fatalf("migrate %s: %v", command, err)
	}
}
