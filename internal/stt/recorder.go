package stt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goaudio "github.com/go-audio/audio"

	"github.com/hazwanhalim/suaraform/internal/audio"
	"github.com/hazwanhalim/suaraform/internal/metrics"
	"github.com/hazwanhalim/suaraform/internal/model"
)

// ErrNoSpeech is returned when a capture window contained no usable
// speech. Callers re-prompt instead of treating this as fatal.
var ErrNoSpeech = errors.New("no speech detected")

type Transcriber interface {
	Transcribe(ctx context.Context, wavData []byte, loc model.Locale) (string, error)
}

// SpeechGate optionally filters out captures without voice activity.
type SpeechGate interface {
	HasSpeech(buffer goaudio.Buffer) (bool, error)
}

// Recorder captures one utterance from the microphone and transcribes
// it remotely. At most one capture is in flight per recorder; a
// concurrent call is ignored by returning audio.ErrCaptureActive.
type Recorder struct {
	Capture *audio.Capture
	Service Transcriber
	Gate    SpeechGate
	Locale  model.Locale
}

// CaptureAndTranscribe records until silence or maxDuration and returns
// the recognized text.
func (r *Recorder) CaptureAndTranscribe(ctx context.Context, maxDuration time.Duration) (string, error) {
	buffer, err := r.Capture.Record(ctx, maxDuration)
	if err != nil {
		return "", err
	}

	if len(buffer.Data) == 0 {
		return "", ErrNoSpeech
	}

	if r.Gate != nil {
		hasSpeech, err := r.Gate.HasSpeech(buffer)
		if err != nil {
			return "", fmt.Errorf("voice activity detection: %w", err)
		}

		if !hasSpeech {
			return "", ErrNoSpeech
		}
	}

	wavData, err := audio.EncodeWAV(buffer)
	if err != nil {
		return "", fmt.Errorf("encode capture: %w", err)
	}

	started := time.Now()
	text, err := r.Service.Transcribe(ctx, wavData, r.Locale)
	metrics.ObserveTranscription(time.Since(started), err)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(strings.TrimSuffix(text, "[BLANK_AUDIO]"))
	if text == "" {
		return "", ErrNoSpeech
	}

	return text, nil
}
