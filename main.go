package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"video_script_generator/config"
	"video_script_generator/generator"
	"video_script_generator/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	serve := flag.Bool("serve", false, "start the web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config)")
	topic := flag.String("topic", "", "video topic (one-shot CLI mode)")
	duration := flag.Int("duration", generator.DefaultDuration, "target video length in minutes (1-15)")
	flag.Parse()

	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogging(cfg.Logging.Level)

	creds := generator.Credentials{
		ModelAPIKey:  cfg.ModelAPIKey(),
		SearchAPIKey: cfg.SearchAPIKey(),
	}
	opts := generator.Options{
		Model:      cfg.LLM.Model,
		BaseURL:    cfg.LLM.BaseURL,
		SearchTopK: cfg.Search.MaxResults,
	}

	if *serve {
		runServer(cfg, creds, opts, *addr)
		return
	}

	if strings.TrimSpace(*topic) == "" {
		fmt.Fprintln(os.Stderr, "--topic is required (or use --serve for the web UI)")
		os.Exit(1)
	}
	runOnce(cfg, creds, opts, *topic, *duration)
}

// runOnce generates a single script and prints the Markdown to stdout.
func runOnce(cfg config.Config, creds generator.Credentials, opts generator.Options, topic string, duration int) {
	gen, err := generator.Bootstrap(creds, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.GenerateTimeoutSeconds)*time.Second)
	defer cancel()

	slog.Info("generating script", "topic", topic, "duration_minutes", duration)
	result, err := gen.Generate(ctx, generator.Request{Topic: topic, DurationMinutes: duration})
	if err != nil {
		var cfgErr *generator.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintln(os.Stderr, "configuration error:", cfgErr.Reason)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	fmt.Println(result.Markdown)
}

func runServer(cfg config.Config, creds generator.Credentials, opts generator.Options, addrOverride string) {
	bootstrap := func(c generator.Credentials) (server.ScriptGenerator, error) {
		return generator.Bootstrap(c, opts)
	}

	srv, err := server.New(bootstrap, creds,
		time.Duration(cfg.Server.GenerateTimeoutSeconds)*time.Second)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	listen := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	if addrOverride != "" {
		listen = addrOverride
	}

	httpSrv := &http.Server{
		Addr:         listen,
		Handler:      srv.Routes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	slog.Info("starting server", "addr", listen,
		"baseline_keys", creds.ModelAPIKey != "" && creds.SearchAPIKey != "")
	if err := httpSrv.ListenAndServe(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}
