package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	cfg "github.com/automoto/neon-dodge/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// bytesPerFrame is one 16-bit stereo sample frame
const bytesPerFrame = 4

// AudioLoader synthesizes and caches sound effects for an audio context
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache synthesized PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a player.
// Call this at startup to avoid a hitch on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for a sound effect each time
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}
	tone, ok := cfg.Audio.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone for sound %s", id)
	}
	data := Synthesize(tone, l.context.SampleRate())
	l.sfxCache[id] = data
	return data, nil
}

// LoadMusic returns a looping player for the synthesized bass line
func (l *AudioLoader) LoadMusic() (*audio.Player, error) {
	data := SynthesizeMusic(cfg.Audio.MusicNotes, cfg.Audio.MusicStep, cfg.Audio.MusicLevel, l.context.SampleRate())
	if len(data) == 0 {
		return nil, fmt.Errorf("music has no notes")
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	return l.context.NewPlayer(loop)
}

// Synthesize renders a tone as 16-bit little-endian stereo PCM
func Synthesize(tone cfg.Tone, sampleRate int) []byte {
	frames := int(tone.Duration * float64(sampleRate))
	if frames <= 0 || sampleRate <= 0 {
		return nil
	}

	// Fixed seed so every noise burst of a sound is identical
	rng := rand.New(rand.NewPCG(uint64(tone.Wave)+1, uint64(frames)))
	osc := &sweep{
		wave:   tone.Wave,
		start:  tone.StartFreq,
		end:    tone.EndFreq,
		frames: frames,
		rate:   float64(sampleRate),
		rng:    rng,
	}
	return renderPCM(newVolume(&fadeOut{streamer: osc, total: frames}, tone.Volume), frames)
}

// SynthesizeMusic renders one pass of the bass line. Each note gets a short
// fade at both ends so the loop point does not click.
func SynthesizeMusic(notes []float64, step, level float64, sampleRate int) []byte {
	perNote := int(step * float64(sampleRate))
	if perNote <= 0 || len(notes) == 0 {
		return nil
	}

	streams := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := &sweep{wave: cfg.WaveTriangle, start: freq, end: freq, frames: perNote, rate: float64(sampleRate)}
		streams = append(streams, &edgeFade{streamer: osc, total: perNote, edge: perNote / 10})
	}
	return renderPCM(newVolume(beep.Seq(streams...), level), perNote*len(notes))
}

// sweep is an oscillator whose frequency moves linearly from start to end
type sweep struct {
	wave       cfg.Waveform
	start, end float64
	frames     int
	position   int
	phase      float64
	rate       float64
	rng        *rand.Rand
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.frames {
			return i, i > 0
		}
		val := oscillate(o.wave, o.phase, o.rng)
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.frames)
		freq := o.start + (o.end-o.start)*t
		o.phase += freq / o.rate
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// fadeOut scales a stream linearly from full to silent over total frames
type fadeOut struct {
	streamer beep.Streamer
	position int
	total    int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(f.position)/float64(f.total)
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }

// edgeFade ramps the first and last edge frames of a stream
type edgeFade struct {
	streamer beep.Streamer
	position int
	total    int
	edge     int
}

func (f *edgeFade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.edge > 0 {
			switch {
			case f.position < f.edge:
				vol = float64(f.position) / float64(f.edge)
			case f.position >= f.total-f.edge:
				vol = float64(f.total-1-f.position) / float64(f.edge)
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *edgeFade) Err() error { return f.streamer.Err() }

// newVolume wraps s in a gain stage. Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	vol = math.Min(1, vol)
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// renderPCM drains up to frames samples from s into 16-bit stereo PCM
func renderPCM(s beep.Streamer, frames int) []byte {
	buf := make([]byte, frames*bytesPerFrame)
	chunk := make([][2]float64, 512)

	written := 0
	for written < frames {
		want := min(len(chunk), frames-written)
		n, ok := s.Stream(chunk[:want])
		for i := 0; i < n; i++ {
			putFrame(buf, written+i, chunk[i][0], chunk[i][1])
		}
		written += n
		if !ok || n == 0 {
			break
		}
	}
	return buf
}

// oscillate returns a sample in [-1, 1] for a phase in [0, 1)
func oscillate(wave cfg.Waveform, phase float64, rng *rand.Rand) float64 {
	switch wave {
	case cfg.WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case cfg.WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case cfg.WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case cfg.WaveNoise:
		if rng == nil {
			return 0
		}
		return rng.Float64()*2 - 1
	}
	return 0
}

func putFrame(buf []byte, frame int, left, right float64) {
	off := frame * bytesPerFrame
	binary.LittleEndian.PutUint16(buf[off:], uint16(toInt16(left)))
	binary.LittleEndian.PutUint16(buf[off+2:], uint16(toInt16(right)))
}

func toInt16(s float64) int16 {
	return int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16)
}
