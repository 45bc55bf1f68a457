package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"brickset/client/internal/config"
	"brickset/client/internal/container"
	"brickset/client/internal/request"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Failed to read .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Invalid log level %q: %v", cfg.Log.Level, err)
	}
	log.SetLevel(level)

	log.Info("Starting Brickset client...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := container.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer app.Close()

	if err := app.Session.CheckKey(ctx); err != nil {
		log.Fatalf("API key rejected: %v", err)
	}

	password := cfg.Brickset.Password
	if password == "" {
		password, err = promptPassword(cfg.Brickset.Username)
		if err != nil {
			log.Fatalf("Failed to read password: %v", err)
		}
	}

	if err := app.Authenticate(ctx, password); err != nil {
		log.Fatalf("Failed to authenticate: %v", err)
	}

	wanted, err := app.Session.GetWantedSets(ctx, request.NewSetsParams().
		OrderBy(request.OrderByPiecesDesc).
		PageSize(request.MaxPageSize))
	if err != nil {
		log.Fatalf("Failed to fetch wanted sets: %v", err)
	}

	fmt.Printf("%d wanted sets\n", wanted.Matches)
	for _, set := range wanted.Sets {
		pieces := "?"
		if set.Pieces != nil {
			pieces = fmt.Sprint(*set.Pieces)
		}
		fmt.Printf("%-10s %-50s %6s pieces\n", set.FullNumber(), set.Name.OrElse("(unnamed)"), pieces)
	}

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		log.Errorf("Application exited with error: %v", err)
		return
	}

	log.Info("Application finished successfully")
}

func promptPassword(username string) (string, error) {
	fmt.Fprintf(os.Stderr, "Brickset password for %s: ", username)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
