package tts

import (
	"context"
	"log/slog"

	"github.com/hazwanhalim/suaraform/internal/audio"
	"github.com/hazwanhalim/suaraform/internal/model"
)

type Service interface {
	GenerateAudio(ctx context.Context, msg string, loc model.Locale) ([]byte, error)
}

type Playback interface {
	Play(ctx context.Context, wavData []byte) error
	Stop()
}

// Speaker voices prompts on the local audio output. Speak is awaitable:
// it returns once the utterance finished playing. A newer Speak call
// interrupts the previous utterance via the underlying player.
type Speaker struct {
	Service Service
	Player  Playback
	Locale  model.Locale
}

func NewSpeaker(service Service, loc model.Locale) *Speaker {
	return &Speaker{
		Service: service,
		Player:  &audio.Player{},
		Locale:  loc,
	}
}

func (s *Speaker) Speak(ctx context.Context, text string) error {
	wavData, err := s.Service.GenerateAudio(ctx, text, s.Locale)
	if err != nil {
		// A lost prompt is recoverable: the text is still displayed and
		// the user can answer or re-trigger. Don't fail the transition.
		slog.Warn("generate speech", "err", err)
		return nil
	}

	return s.Player.Play(ctx, wavData)
}

// Cancel stops the in-flight utterance, e.g. when the user navigates
// away from the form.
func (s *Speaker) Cancel() {
	s.Player.Stop()
}
