package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gordonklaus/portaudio"
)

// Player plays WAV utterances on an output device. Starting a new
// utterance cancels the one still playing, so at most one utterance is
// ever audible.
type Player struct {
	Device string

	mutex   sync.Mutex
	playing sync.Mutex
	cancel  context.CancelFunc
}

// Play decodes and plays the given RIFF WAV data, blocking until
// playback completes, the context is cancelled or a newer Play call
// interrupts it.
func (p *Player) Play(ctx context.Context, wavData []byte) error {
	p.mutex.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mutex.Unlock()

	defer cancel()

	// Waits for the interrupted utterance to release the device.
	p.playing.Lock()
	defer p.playing.Unlock()

	if ctx.Err() != nil {
		return nil
	}

	device, err := outputDevice(p.Device)
	if err != nil {
		return err
	}

	return playAudio(ctx, bytes.NewReader(wavData), device)
}

// Stop cancels the in-flight utterance, if any.
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// playAudio opens an audio output device and plays the given audio data.
func playAudio(ctx context.Context, wavFile io.ReadSeeker, device *portaudio.DeviceInfo) error {
	decoder := wav.NewDecoder(wavFile)
	decoder.ReadInfo()
	if err := decoder.Err(); err != nil {
		return fmt.Errorf("read wave file headers: %w", err)
	}

	if decoder.SampleBitDepth() != 16 {
		return fmt.Errorf("wave data with unsupported bit depth of %d provided, expected 16", decoder.SampleBitDepth())
	}

	audioDuration, err := decoder.Duration()
	if err != nil {
		return fmt.Errorf("get audio duration: %w", err)
	}

	inputBufferSize := 512 * 9
	buffer := audio.IntBuffer{
		Format: &audio.Format{
			SampleRate:  int(decoder.SampleRate),
			NumChannels: int(decoder.NumChans),
		},
		SourceBitDepth: int(decoder.SampleBitDepth()),
		Data:           make([]int, inputBufferSize),
	}
	out := make([]int16, inputBufferSize)

	ratio := float64(decoder.SampleRate) / device.DefaultSampleRate
	resampledOutputBufferSize := int(float64(inputBufferSize) / ratio)
	var resampledOut []int16
	stream, err := portaudio.OpenStream(portaudio.StreamParameters{
		Output: portaudio.StreamDeviceParameters{
			Device:   device,
			Channels: int(decoder.NumChans),
			Latency:  device.DefaultLowOutputLatency,
		},
		SampleRate:      device.DefaultSampleRate,
		FramesPerBuffer: resampledOutputBufferSize,
	}, &resampledOut)
	if err != nil {
		return fmt.Errorf("open audio output stream: %w", err)
	}
	defer stream.Close()

	err = stream.Start()
	if err != nil {
		return fmt.Errorf("start audio output stream: %w", err)
	}
	defer stream.Stop()

	startTime := time.Now()

	for {
		n, err := decoder.PCMBuffer(&buffer)
		if n == 0 {
			break // EOF
		}
		if err != nil {
			return fmt.Errorf("read chunk from audio stream: %w", err)
		}

		for i, sample := range buffer.Data {
			out[i] = int16(sample)
		}
		for i := n; i < inputBufferSize; i++ { // zero-pad after short chunk
			out[i] = 0
		}

		resampledOut = resampleInt16(out, int(decoder.SampleRate), int(device.DefaultSampleRate))

		if err := stream.Write(); err != nil {
			// Occasional underflows do not impact playback significantly.
			slog.Warn("play audio: write chunk", "err", err)
		}

		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}

	// Wait for the audio to complete playing
	select {
	case <-time.After(audioDuration - time.Since(startTime)):
	case <-ctx.Done():
	}

	return nil
}
