package vad

import (
	"fmt"
	"sync"

	"github.com/go-audio/audio"
	"github.com/streamer45/silero-vad-go/speech"
)

// Detector gates captured utterances on actual voice activity so silence
// and background noise are not sent to the transcription service.
type Detector struct {
	ModelPath string

	mutex    sync.Mutex
	detector *speech.Detector
}

// HasSpeech reports whether the given 16kHz capture contains speech.
func (d *Detector) HasSpeech(buffer audio.Buffer) (bool, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.detector == nil {
		detector, err := speech.NewDetector(speech.DetectorConfig{
			ModelPath:            d.ModelPath,
			SampleRate:           16000,
			Threshold:            0.5,
			MinSilenceDurationMs: 0,
			SpeechPadMs:          0,
		})
		if err != nil {
			return false, fmt.Errorf("create silero vad: %w", err)
		}

		d.detector = detector
	}

	segments, err := d.detector.Detect(buffer.AsFloat32Buffer().Data)
	if err != nil {
		return false, fmt.Errorf("detect voice: %w", err)
	}

	return len(segments) > 0, nil
}

func (d *Detector) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.detector == nil {
		return nil
	}

	err := d.detector.Destroy()
	d.detector = nil

	return err
}
