package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// stream is a decoded audio file.
type stream interface {
	io.ReadSeeker
	Length() int64
}

// Device plays effects and looping music through the sound card. Effects
// are looked up as <name>.wav in the assets and decoded on first use.
type Device struct {
	ctx       *audio.Context
	assets    fs.FS
	musicFile string
	volume    float64

	effects *Cache[[]byte]
	music   *audio.Player
}

// NewDevice creates a device backend reading assets from fsys.
func NewDevice(fsys fs.FS, cfg config.AudioConfig) (*Device, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(cfg.SampleRate)
	} else if ctx.SampleRate() != cfg.SampleRate {
		return nil, fmt.Errorf("audio context already running at %d Hz", ctx.SampleRate())
	}

	d := &Device{
		ctx:       ctx,
		assets:    fsys,
		musicFile: cfg.Music,
		volume:    cfg.Volume,
	}
	d.effects = NewCache(d.loadEffect)
	return d, nil
}

// Play starts a new player for the effect; overlapping effects mix.
func (d *Device) Play(name string) error {
	pcm, err := d.effects.Get(name)
	if err != nil {
		return err
	}
	p := d.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(d.volume)
	p.Play()
	return nil
}

// StartMusic plays the music track from the beginning.
func (d *Device) StartMusic() error {
	if d.musicFile == "" {
		return nil
	}
	if d.music == nil {
		p, err := d.openMusic()
		if err != nil {
			return err
		}
		d.music = p
	}
	if err := d.music.Rewind(); err != nil {
		return fmt.Errorf("rewind music: %w", err)
	}
	d.music.Play()
	return nil
}

func (d *Device) PauseMusic() error {
	if d.music != nil {
		d.music.Pause()
	}
	return nil
}

func (d *Device) ResumeMusic() error {
	if d.music != nil {
		d.music.Play()
	}
	return nil
}

func (d *Device) Close() error {
	if d.music == nil {
		return nil
	}
	return d.music.Close()
}

func (d *Device) loadEffect(name string) ([]byte, error) {
	s, err := d.decode(name + ".wav")
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("decode %s.wav: %w", name, err)
	}
	return pcm, nil
}

func (d *Device) openMusic() (*audio.Player, error) {
	s, err := d.decode(d.musicFile)
	if err != nil {
		return nil, err
	}
	p, err := d.ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
	if err != nil {
		return nil, fmt.Errorf("music player: %w", err)
	}
	p.SetVolume(d.volume)
	return p, nil
}

// decode reads a wav or ogg vorbis file, resampled to the context rate.
func (d *Device) decode(file string) (stream, error) {
	data, err := fs.ReadFile(d.assets, file)
	if err != nil {
		return nil, fmt.Errorf("load sound: %w", err)
	}
	src := bytes.NewReader(data)
	rate := d.ctx.SampleRate()

	switch strings.ToLower(path.Ext(file)) {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(rate, src)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", file, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(rate, src)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", file, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported sound format %q", file)
	}
}
