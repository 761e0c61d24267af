package config

import (
	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
}

type App struct {
	Workers   int
	BatchSize int
	Overwrite bool
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			Workers:   int(cmd.Int("workers")),
			BatchSize: int(cmd.Int("batch-size")),
			Overwrite: cmd.Bool("overwrite"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
	}
}
