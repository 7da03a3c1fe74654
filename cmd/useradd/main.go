// Command useradd creates a chirpy user account directly in the database,
// prompting for the password without echo. Useful for seeding accounts
// without going through the HTTP API.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/avekseev/chirpy/internal/common"
	"github.com/avekseev/chirpy/internal/server/auth"
	"github.com/avekseev/chirpy/internal/server/config"
	"github.com/avekseev/chirpy/internal/server/repositories/repomanager"
	"github.com/avekseev/chirpy/internal/server/services"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func main() {
	cfg := config.LoadConfig()

	email, err := promptEmail(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("reading email: %v", err)
	}

	fmt.Print("Enter password: ")
	password, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		log.Fatalf("reading password: %v", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	svc := services.NewUserService(db, m, auth.NewHasher(cfg.HashWorkers))
	user, err := svc.Register(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			log.Fatalf("user %s already exists", email)
		}
		log.Fatalf("creating user: %v", err)
	}

	fmt.Printf("created user %s (%s)\n", user.Email, user.ID)
}

func promptEmail(r *os.File, w *os.File) (string, error) {
	fmt.Fprint(w, "Enter email\n> ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	email := strings.TrimSpace(line)
	if email == "" {
		return "", errors.New("email must not be empty")
	}
	return email, nil
}
