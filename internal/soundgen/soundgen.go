package soundgen

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/orcaman/writerseeker"
)

// Generator produces the short cue tone played before the microphone
// opens, so the applicant knows when to speak.
type Generator struct {
	SampleRate int

	cue []byte
}

// Cue returns the listening cue as WAV data, generating it on first
// use.
func (g *Generator) Cue() ([]byte, error) {
	if g.cue != nil {
		return g.cue, nil
	}

	data, err := g.generateTone(500, 300*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("generate listening cue: %w", err)
	}

	g.cue = data

	return data, nil
}

func (g *Generator) generateTone(frequency float64, duration time.Duration) ([]byte, error) {
	data := make([]int, int(math.Ceil(float64(duration)*float64(g.SampleRate)/float64(time.Second))))
	for i := range data {
		phase := frequency * float64(i) / float64(g.SampleRate)

		data[i] = int(math.Sin(2*math.Pi*phase) * 32767)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{SampleRate: g.SampleRate, NumChannels: 1},
		Data:           data,
		SourceBitDepth: 16,
	}

	wavFile := &writerseeker.WriterSeeker{}
	encoder := wav.NewEncoder(wavFile, buf.Format.SampleRate, 16, 1, 1)

	err := encoder.Write(buf)
	if err != nil {
		return nil, fmt.Errorf("write wav: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close wav encoder: %w", err)
	}

	b, err := io.ReadAll(wavFile.Reader())
	if err != nil {
		return nil, fmt.Errorf("read generated wav: %w", err)
	}

	return b, nil
}
