package alert

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/mealpilot/internal/logger"
)

// Audio parameters for the synthesized chime.
const (
	sampleRate   = 24000
	channelCount = 1

	chimeFreq   = 880.0 // A5, cuts through kitchen noise
	chimeBeeps  = 3
	beepLen     = 180 * time.Millisecond
	beepGap     = 120 * time.Millisecond
	fadeSamples = 240 // ~10ms fade in/out, avoids clicks
)

// Chime plays a short synthesized beep sequence through the system
// audio device via oto.
type Chime struct {
	ctx *oto.Context
	log *logger.Logger
	mu  sync.Mutex // one chime at a time
	pcm []byte
}

// NewChime initializes the system audio context and pre-renders the
// beep PCM. Returns an error if the audio device is unavailable —
// callers are expected to degrade to a silent notifier.
func NewChime(log *logger.Logger) (*Chime, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("chime initialized (rate=%d, channels=%d)", sampleRate, channelCount)
	return &Chime{ctx: ctx, log: log, pcm: renderChime()}, nil
}

// Play plays the chime synchronously. Blocks for roughly a second.
func (c *Chime) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	player := c.ctx.NewPlayer(bytes.NewReader(c.pcm))
	player.Play()
	c.log.Debug("chime: playing %d bytes of PCM", len(c.pcm))

	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return player.Close()
}

// renderChime synthesizes the beep sequence as 16-bit mono PCM.
func renderChime() []byte {
	beep := int(float64(sampleRate) * beepLen.Seconds())
	gap := int(float64(sampleRate) * beepGap.Seconds())

	var buf bytes.Buffer
	for b := 0; b < chimeBeeps; b++ {
		for i := 0; i < beep; i++ {
			v := math.Sin(2 * math.Pi * chimeFreq * float64(i) / sampleRate)

			// Linear fade at both ends of each beep.
			if i < fadeSamples {
				v *= float64(i) / fadeSamples
			}
			if rem := beep - i; rem < fadeSamples {
				v *= float64(rem) / fadeSamples
			}

			binary.Write(&buf, binary.LittleEndian, int16(v*0.6*math.MaxInt16))
		}
		if b < chimeBeeps-1 {
			buf.Write(make([]byte, gap*2)) // 2 bytes per 16-bit sample
		}
	}
	return buf.Bytes()
}
