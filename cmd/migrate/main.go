package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/salonsphere/booking-service/internal/config"
)

const usage = `Usage: migrate [flags] <command>

Commands:
  up          применить все новые миграции
  down        откатить последнюю миграцию
  status      показать статус миграций
  version     показать текущую версию схемы

Flags:
  -config     путь к файлу конфигурации (default: config.toml)
  -dir        каталог с миграциями (default: migrations)
`

func main() {
	var (
		configPath = flag.String("config", "config.toml", "path to config file")
		dir        = flag.String("dir", "migrations", "directory with migration files")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Print(usage)
		os.Exit(1)
	}
	command := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Printf("Failed to ping database: %v\n", err)
		os.Exit(1)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		fmt.Printf("Failed to set goose dialect: %v\n", err)
		os.Exit(1)
	}

	if err := goose.Run(command, db, *dir, flag.Args()[1:]...); err != nil {
		fmt.Printf("Migration command %q failed: %v\n", command, err)
		os.Exit(1)
	}
}
