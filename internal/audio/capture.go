package audio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/go-audio/audio"
	"github.com/gordonklaus/portaudio"
)

// ErrCaptureActive is returned when a capture is requested while one is
// already in flight. Callers are expected to ignore it: per
// conversation, exactly one capture may be active.
var ErrCaptureActive = errors.New("audio capture already in progress")

// Capture records single utterances from a microphone. Recording starts
// when the input volume exceeds MinVolume and stops after SilenceWindow
// of quiet, or when the maximum duration elapses.
type Capture struct {
	Device        string
	SampleRate    int
	Channels      int
	MinVolume     int
	SilenceWindow time.Duration

	active atomic.Bool
}

// Record captures one utterance and returns it as a 16-bit PCM buffer at
// the configured sample rate. Cancelling the context stops the capture
// and releases the device.
func (c *Capture) Record(ctx context.Context, maxDuration time.Duration) (*audio.IntBuffer, error) {
	if !c.active.CompareAndSwap(false, true) {
		return nil, ErrCaptureActive
	}
	defer c.active.Store(false)

	device, err := inputDevice(c.Device)
	if err != nil {
		return nil, err
	}

	in := make([]int16, 512*9)
	stream, err := portaudio.OpenStream(portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   device,
			Channels: c.Channels,
			Latency:  device.DefaultLowInputLatency,
		},
		SampleRate:      device.DefaultSampleRate,
		FramesPerBuffer: len(in),
	}, &in)
	if err != nil {
		return nil, fmt.Errorf("opening audio input stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("starting audio input stream: %w", err)
	}
	defer stream.Stop()

	deviceRate := int(device.DefaultSampleRate)
	started := time.Now()
	var lastHeard time.Time
	buffer := make([]int16, 0, deviceRate*int(maxDuration/time.Second))

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := stream.Read(); err != nil {
			if err == portaudio.InputOverflowed {
				continue // dropped samples
			}

			return nil, fmt.Errorf("read audio stream: %w", err)
		}

		if int(calculateRMS16(in)) > c.MinVolume {
			lastHeard = time.Now()
		}

		if !lastHeard.IsZero() {
			buffer = append(buffer, in...)
		}

		heardSilence := !lastHeard.IsZero() && time.Since(lastHeard) > c.SilenceWindow
		if heardSilence || time.Since(started) > maxDuration {
			break
		}
	}

	buffer = resampleInt16(buffer, deviceRate, c.SampleRate)

	return &audio.IntBuffer{
		Format:         &audio.Format{SampleRate: c.SampleRate, NumChannels: c.Channels},
		Data:           int16ToInt(buffer),
		SourceBitDepth: 16,
	}, nil
}

// calculateRMS16 calculates the root mean square of the audio buffer for int16 samples.
func calculateRMS16(buffer []int16) float64 {
	var sumSquares float64
	for _, sample := range buffer {
		val := float64(sample)
		sumSquares += val * val
	}
	meanSquares := sumSquares / float64(len(buffer))
	return math.Sqrt(meanSquares)
}

func int16ToInt(input []int16) []int {
	output := make([]int, len(input))
	for i, value := range input {
		output[i] = int(value)
	}
	return output
}

// resampleInt16 converts samples between rates using linear
// interpolation, which is sufficient for speech input.
func resampleInt16(input []int16, fromRate, toRate int) []int16 {
	if fromRate == toRate || len(input) == 0 {
		return input
	}

	ratio := float64(fromRate) / float64(toRate)
	output := make([]int16, int(float64(len(input))/ratio))

	for i := range output {
		pos := float64(i) * ratio
		left := int(pos)
		right := left + 1

		if right >= len(input) {
			output[i] = input[left]
			continue
		}

		frac := pos - float64(left)
		output[i] = int16(float64(input[left])*(1-frac) + float64(input[right])*frac)
	}

	return output
}
