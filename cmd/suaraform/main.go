package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gordonklaus/portaudio"
	"github.com/joho/godotenv"

	"github.com/hazwanhalim/suaraform/internal/apply"
	"github.com/hazwanhalim/suaraform/internal/audio"
	"github.com/hazwanhalim/suaraform/internal/cli"
	"github.com/hazwanhalim/suaraform/internal/engine"
	"github.com/hazwanhalim/suaraform/internal/extract"
	"github.com/hazwanhalim/suaraform/internal/model"
	"github.com/hazwanhalim/suaraform/internal/soundgen"
	"github.com/hazwanhalim/suaraform/internal/stt"
	"github.com/hazwanhalim/suaraform/internal/tts"
	"github.com/hazwanhalim/suaraform/internal/vad"
	"github.com/hazwanhalim/suaraform/pkg/config"
)

func main() {
	_ = godotenv.Load()

	configFile := "/etc/suaraform/config.yaml"
	cfg, err := config.FromFile(configFile)
	configFlag := &config.Flag{File: configFile, Config: &cfg}

	icNumber := ""
	submit := false

	flag.Var(configFlag, "config", "Path to the configuration file")
	flag.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "URL of the aid portal backend (transcription, extraction, submission)")
	flag.StringVar(&cfg.Language, "language", cfg.Language, "conversation language (en, ms, zh, ta)")
	flag.StringVar(&cfg.InputDevice, "input-device", cfg.InputDevice, "name or ID of the audio input device")
	flag.StringVar(&cfg.OutputDevice, "output-device", cfg.OutputDevice, "name or ID of the audio output device")
	flag.IntVar(&cfg.MinVolume, "min-volume", cfg.MinVolume, "min input volume threshold")
	flag.BoolVar(&cfg.VADEnabled, "vad", cfg.VADEnabled, "enable voice activity detection (VAD)")
	flag.StringVar(&cfg.VADModelPath, "vad-model", cfg.VADModelPath, "path to the VAD model")
	flag.StringVar(&cfg.TTSServerURL, "tts-server-url", cfg.TTSServerURL, "URL of the OpenAI-compatible speech synthesis server")
	flag.StringVar(&cfg.TTSModel, "tts-model", cfg.TTSModel, "name of the TTS model to use")
	flag.StringVar(&cfg.TTSVoice, "tts-voice", cfg.TTSVoice, "name of the TTS voice to use")
	flag.IntVar(&cfg.MaxRecordSeconds, "max-record-seconds", cfg.MaxRecordSeconds, "max duration of a single answer recording")
	flag.StringVar(&icNumber, "ic", icNumber, "IC number used to pre-populate the form from an existing profile")
	flag.BoolVar(&submit, "submit", submit, "submit the application to the portal once the form is complete")
	cli.ParseFlagsWithEnvVars(flag.CommandLine, "SUARAFORM_")

	// A missing default config file is fine, flags and env vars cover
	// everything.
	if !configFlag.IsSet && err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}

	loc, err := model.ParseLocale(cfg.Language)
	if err != nil {
		log.Fatal(err)
	}

	portaudio.Initialize()
	defer portaudio.Terminate()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Println("terminating")
	}()

	err = runConversation(ctx, cfg, loc, icNumber, submit)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func runConversation(ctx context.Context, cfg config.Configuration, loc model.Locale, icNumber string, submit bool) error {
	httpClient := &http.Client{Timeout: time.Duration(cfg.RequestTimeout) * time.Second}

	backend := &apply.Client{
		URL:    cfg.BackendURL,
		Locale: loc,
		Client: httpClient,
	}

	record := &model.ApplicationRecord{}
	if icNumber != "" {
		var err error

		record, err = backend.FetchProfile(ctx, icNumber)
		if err != nil {
			return fmt.Errorf("load applicant profile: %w", err)
		}
	}

	capture := &audio.Capture{
		Device:        cfg.InputDevice,
		SampleRate:    16000,
		Channels:      1,
		MinVolume:     cfg.MinVolume,
		SilenceWindow: 1500 * time.Millisecond,
	}
	player := &audio.Player{Device: cfg.OutputDevice}

	recorder := &stt.Recorder{
		Capture: capture,
		Service: &stt.Client{URL: cfg.BackendURL, Client: httpClient},
		Locale:  loc,
	}

	if cfg.VADEnabled {
		detector := &vad.Detector{ModelPath: cfg.VADModelPath}
		defer detector.Close()
		recorder.Gate = detector
	}

	ttsURL := cfg.TTSServerURL
	if ttsURL == "" {
		ttsURL = cfg.BackendURL
	}

	speaker := &tts.Speaker{
		Service: &tts.Client{
			URL:    ttsURL,
			Model:  cfg.TTSModel,
			Voice:  cfg.TTSVoice,
			APIKey: cfg.APIKey,
			Client: httpClient,
		},
		Player: player,
		Locale: loc,
	}

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

	eng := engine.New(engine.Config{
		Locale:    loc,
		Speaker:   speaker,
		Extractor: &extract.Chain{Extractors: extractors},
		Record:    record,
		OnState: func(state engine.State) {
			if state.Prompt != "" {
				log.Println("assistant:", state.Prompt)
			}
		},
	})

	err := eng.Start(ctx)
	if err != nil {
		return err
	}

	cueGen := &soundgen.Generator{SampleRate: 16000}
	maxDuration := time.Duration(cfg.MaxRecordSeconds) * time.Second

	for eng.Active() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if cue, err := cueGen.Cue(); err == nil {
			_ = player.Play(ctx, cue)
		}

		text, err := recorder.CaptureAndTranscribe(ctx, maxDuration)
		if errors.Is(err, stt.ErrNoSpeech) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			log.Println("WARNING: transcription failed:", err)
			continue
		}

		log.Println("you:", text)

		err = eng.HandleTranscript(ctx, text)
		if err != nil {
			return err
		}
	}

	if !eng.State().Complete {
		return nil // aborted
	}

	printReview(record)

	if submit {
		result, err := backend.Submit(ctx, record)
		if err != nil {
			return err
		}

		log.Println("application submitted, reference number:", result.ReferenceNumber)

		return speaker.Speak(ctx, result.ReferenceNumber)
	}

	return nil
}

func printReview(record *model.ApplicationRecord) {
	b, err := json.MarshalIndent(record, "", "  ")
	if err == nil {
		fmt.Fprintln(os.Stdout, string(b))
	}

	eligibility := apply.EstimateEligibility(record)
	if eligibility.Eligible {
		log.Printf("estimated monthly assistance: RM%.2f\n", eligibility.EstimatedAmount)
	} else {
		log.Println("not eligible:", eligibility.Reason)
	}

	for _, doc := range apply.DocumentChecklist(record) {
		required := "optional"
		if doc.Required {
			required = "required"
		}

		log.Printf("document needed (%s): %s\n", required, doc.DocumentType)
	}
}
