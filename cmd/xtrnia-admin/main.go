// Command xtrnia-admin provisions admins and maintains competition data
// directly against the configured database.
// File: cmd/xtrnia-admin/main.go
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"gorm.io/gorm"

	"xtrnia/config"
	"xtrnia/database"
	"xtrnia/services"
)

const usage = `usage: xtrnia-admin <command> [flags]

commands:
  create-admin        -username NAME [-password PASS] [-overwrite]
  list-admins
  reset-competitions
  seed                -file seed.json
`

func main() {
	dbCfg, err := config.LoadDatabase()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, func() (*gorm.DB, error) {
		return database.Open(*dbCfg)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run dispatches one command. openDB is called only by commands that need
// the database.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, openDB func() (*gorm.DB, error)) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return errors.New("missing command")
	}
	cmd, rest := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stdout)

	switch cmd {
	case "create-admin":
		username := fs.String("username", "", "admin username")
		password := fs.String("password", "", "admin password (read from stdin when empty)")
		overwrite := fs.Bool("overwrite", false, "reset the password if the admin exists")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *password == "" {
			fmt.Fprint(stdout, "Password: ")
			line, err := bufio.NewReader(stdin).ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("read password: %w", err)
			}
			*password = strings.TrimRight(line, "\r\n")
			fmt.Fprintln(stdout)
		}
		return withDB(openDB, func(db *gorm.DB) error {
			return createAdmin(ctx, db, stdout, *username, *password, *overwrite)
		})

	case "list-admins":
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return withDB(openDB, func(db *gorm.DB) error { return listAdmins(ctx, db, stdout) })

	case "reset-competitions":
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return withDB(openDB, func(db *gorm.DB) error {
			n, err := services.NewCompetitionService(db).ResetAllToUpcoming(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Set %d competition(s) to upcoming\n", n)
			return nil
		})

	case "seed":
		file := fs.String("file", "", "JSON file with a competitions array")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *file == "" {
			return errors.New("seed: -file is required")
		}
		inputs, err := readSeed(*file)
		if err != nil {
			return err
		}
		return withDB(openDB, func(db *gorm.DB) error {
			created, err := services.NewCompetitionService(db).ReplaceAll(ctx, inputs)
			if err != nil {
				return err
			}
			for _, c := range created {
				fmt.Fprintf(stdout, "  added %s (%s)\n", c.Name, c.Type)
			}
			fmt.Fprintf(stdout, "Seeded %d competition(s)\n", len(created))
			return nil
		})

	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil

	default:
		fmt.Fprint(stdout, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func withDB(openDB func() (*gorm.DB, error), fn func(db *gorm.DB) error) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer database.Close(db)
	return fn(db)
}

func createAdmin(ctx context.Context, db *gorm.DB, out io.Writer, username, password string, overwrite bool) error {
	admin, created, err := services.NewAdminService(db).Provision(ctx, username, password, overwrite)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(out, "Created admin %q (id %s)\n", admin.Username, admin.ID)
	} else {
		fmt.Fprintf(out, "Reset password for admin %q\n", admin.Username)
	}
	return nil
}

func listAdmins(ctx context.Context, db *gorm.DB, out io.Writer) error {
	admins, err := services.NewAdminService(db).List(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tCREATED")
	for _, a := range admins {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.ID, a.Username, a.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

type seedFile struct {
	Competitions []services.CompetitionInput `json:"competitions"`
}

func readSeed(path string) ([]services.CompetitionInput, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(seed.Competitions) == 0 {
		return nil, errors.New("seed file has no competitions")
	}
	return seed.Competitions, nil
}
