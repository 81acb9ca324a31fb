package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"inkwell/config"
	"inkwell/routes"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
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
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command>
Commands:
  help        Display this help message.
  version     Show version information.
  serve       Run the blog API server (configured via environment / .env).
`
	fmt.Println(helpText)
}

func serve() {
	cfg := config.Load()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open badger db")
	}
	defer db.Close()

	router := routes.SetupRoutes(db, cfg, logger)

	logger.Info().Str("addr", cfg.Addr).Bool("comment_need_approval", cfg.CommentNeedApproval).Msg("starting inkwell")
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
