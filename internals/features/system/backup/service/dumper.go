package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"skm_backend/internals/configs"
)

// Dumper menjalankan dump/restore database. Implementasi produksi memanggil pg_dump/psql.
type Dumper interface {
	Dump(ctx context.Context, dst string) error
	Restore(ctx context.Context, src io.Reader) error
}

type PgDumper struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string

	DumpBin    string
	RestoreBin string
}

func NewPgDumper() *PgDumper {
	return &PgDumper{
		Host:       configs.GetEnv("DB_HOST", "localhost"),
		Port:       configs.GetEnv("DB_PORT", "5432"),
		User:       configs.GetEnv("DB_USER"),
		Password:   configs.GetEnv("DB_PASSWORD"),
		Name:       configs.GetEnv("DB_NAME"),
		DumpBin:    configs.GetEnv("PG_DUMP_BIN", "pg_dump"),
		RestoreBin: configs.GetEnv("PSQL_BIN", "psql"),
	}
}

func (d *PgDumper) validate() error {
	if d.User == "" || d.Name == "" {
		return fmt.Errorf("database configuration is missing")
	}
	return nil
}

func (d *PgDumper) env() []string {
	return append(os.Environ(), "PGPASSWORD="+d.Password)
}

func (d *PgDumper) Dump(ctx context.Context, dst string) error {
	if err := d.validate(); err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, d.DumpBin,
		"--host", d.Host,
		"--port", d.Port,
		"--username", d.User,
		"--no-owner",
		"--clean",
		"--if-exists",
		"--file", dst,
		d.Name,
	)
	return d.run(cmd)
}

func (d *PgDumper) Restore(ctx context.Context, src io.Reader) error {
	if err := d.validate(); err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, d.RestoreBin,
		"--host", d.Host,
		"--port", d.Port,
		"--username", d.User,
		"--dbname", d.Name,
		"--set", "ON_ERROR_STOP=1",
		"--quiet",
	)
	cmd.Stdin = src
	return d.run(cmd)
}

func (d *PgDumper) run(cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	cmd.Env = d.env()
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("%s: %w", cmd.Path, err)
		}
		return fmt.Errorf("%s: %w: %s", cmd.Path, err, msg)
	}
	return nil
}
