package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hazwanhalim/suaraform/internal/apply"
	"github.com/hazwanhalim/suaraform/internal/cli"
	"github.com/hazwanhalim/suaraform/internal/extract"
	"github.com/hazwanhalim/suaraform/internal/model"
	"github.com/hazwanhalim/suaraform/internal/server"
	"github.com/hazwanhalim/suaraform/internal/session"
	"github.com/hazwanhalim/suaraform/internal/store"
	"github.com/hazwanhalim/suaraform/internal/stt"
	"github.com/hazwanhalim/suaraform/internal/tlsutils"
	"github.com/hazwanhalim/suaraform/internal/tts"
	"github.com/hazwanhalim/suaraform/pkg/config"
)

func main() {
	_ = godotenv.Load()

	configFile := "/etc/suaraform/config.yaml"
	cfg, err := config.FromFile(configFile)
	configFlag := &config.Flag{File: configFile, Config: &cfg}

	listenAddr := ":8443"
	webDir := "/var/lib/suaraform/ui"
	tlsEnabled := false
	tlsCert := ""
	tlsKey := ""

	flag.Var(configFlag, "config", "Path to the configuration file")
	flag.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "URL of the aid portal backend (transcription, extraction, submission)")
	flag.StringVar(&cfg.Language, "language", cfg.Language, "conversation language (en, ms, zh, ta)")
	flag.StringVar(&cfg.TTSServerURL, "tts-server-url", cfg.TTSServerURL, "URL of the OpenAI-compatible speech synthesis server")
	flag.StringVar(&cfg.TTSModel, "tts-model", cfg.TTSModel, "name of the TTS model to use")
	flag.StringVar(&cfg.TTSVoice, "tts-voice", cfg.TTSVoice, "name of the TTS voice to use")
	flag.StringVar(&cfg.Redis.Address, "redis-address", cfg.Redis.Address, "Redis address for draft persistence (empty disables drafts)")
	flag.StringVar(&listenAddr, "listen", listenAddr, "Address the server should listen on")
	flag.StringVar(&webDir, "web-dir", webDir, "Path to the web UI directory")
	flag.BoolVar(&tlsEnabled, "tls", tlsEnabled, "Serve securely via HTTPS/TLS")
	flag.StringVar(&tlsKey, "tls-key", tlsKey, "Path to the TLS key file")
	flag.StringVar(&tlsCert, "tls-cert", tlsCert, "Path to the TLS certificate file")
	cli.ParseFlagsWithEnvVars(flag.CommandLine, "SUARAFORM_")

	if !configFlag.IsSet && err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error(err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = runServer(ctx, cfg, listenAddr, webDir, tlsEnabled, tlsCert, tlsKey)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func runServer(ctx context.Context, cfg config.Configuration, listenAddr, webDir string, tlsEnabled bool, tlsCert, tlsKey string) error {
	loc, err := model.ParseLocale(cfg.Language)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: time.Duration(cfg.RequestTimeout) * time.Second}

	ttsURL := cfg.TTSServerURL
	if ttsURL == "" {
		ttsURL = cfg.BackendURL
	}

	deps := session.Dependencies{
		Locale:      loc,
		Transcriber: &stt.Client{URL: cfg.BackendURL, Client: httpClient},
		Synthesizer: &tts.Client{
			URL:    ttsURL,
			Model:  cfg.TTSModel,
			Voice:  cfg.TTSVoice,
			APIKey: cfg.APIKey,
			Client: httpClient,
		},
		Extractor: newExtractor(cfg, loc, httpClient),
		Backend: &apply.Client{
			URL:    cfg.BackendURL,
			Locale: loc,
			Client: httpClient,
		},
	}

	if cfg.Redis.Address != "" {
		drafts := store.NewDraftStore(
			cfg.Redis.Address,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.DraftTTLHours)*time.Hour,
		)
		defer drafts.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := drafts.Ping(pingCtx)
		cancel()
		if err != nil {
			return err
		}

		deps.Drafts = drafts
	}

	sessions := session.NewSessions(deps)
	defer sessions.Stop()

	mux := http.NewServeMux()
	srv := &http.Server{
		Addr:        listenAddr,
		BaseContext: func(net.Listener) context.Context { return ctx },
		Handler:     mux,
	}

	server.AddRoutes(sessions, webDir, mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	go func() {
		<-ctx.Done()
		slog.Info("terminating")
		srv.Shutdown(ctx)
	}()

	if tlsEnabled {
		if tlsCert == "" && tlsKey == "" {
			slog.Info("generating self-signed TLS certificate")

			var cleanup func()

			tlsCert, tlsKey, cleanup, err = tlsutils.GenerateSelfSignedTLSCertificate()
			if err != nil {
				return fmt.Errorf("generating tls certificate: %w", err)
			}

			defer cleanup()
		}

		slog.Info(fmt.Sprintf("listening on %s", srv.Addr))

		err = srv.ListenAndServeTLS(tlsCert, tlsKey)
	} else {
		slog.Info(fmt.Sprintf("listening on %s", srv.Addr))

		err = srv.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func newExtractor(cfg config.Configuration, loc model.Locale, httpClient *http.Client) *extract.Chain {
	extractors := []extract.Extractor{
		&extract.Client{URL: cfg.BackendURL, Locale: loc, Client: httpClient},
	}

	if cfg.LLMServerURL != "" {
		extractors = append(extractors, &extract.LLMExtractor{
			ServerURL:   cfg.LLMServerURL,
			APIKey:      cfg.APIKey,
			Model:       cfg.LLMModel,
			Temperature: cfg.Temperature,
			Locale:      loc,
			HTTPClient:  httpClient,
		})
	}

	return &extract.Chain{Extractors: extractors}
}
