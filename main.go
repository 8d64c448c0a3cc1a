package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"empirek/app/notify"
	"empirek/app/repositories"
	"empirek/app/routes"
	"empirek/config"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/crypto/bcrypt"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("empirek version %s\n", cliVersion)
	case "hash-token":
		hashToken()
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: empirek <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  hash-token <token>             Print the bcrypt hash of a moderator token.
  serve                          Run the submission and moderation API server.
`
	fmt.Println(helpText)
}

// hashToken prints the bcrypt hash to put in EMPIREK_MODERATOR_TOKEN_HASH.
func hashToken() {
	if len(os.Args) < 3 {
		fmt.Println("Error: a token is required for the hash-token command")
		os.Exit(1)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[2]), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash token: %v", err)
	}
	fmt.Println(string(hash))
}

func serve() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	var mailer notify.Mailer
	if cfg.SMTPHost != "" {
		mailer = notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		log.Println("No SMTP host configured, logging notifications instead")
		mailer = notify.LogMailer{}
	}

	router := routes.SetupRoutes(db, mailer, cfg.OperatorEmail, cfg.ModeratorTokenHash)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Retry queued contact messages in the background.
	outbox := notify.NewOutbox(repositories.NewBadgerContactRepository(db), mailer, cfg.OperatorEmail, cfg.OutboxInterval)
	go outbox.Run(ctx)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Starting submission API on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
