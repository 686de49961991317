// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/synth"
)

// Mode selects how the tracks of a scene are combined.
type Mode string

const (
	ModeMix       Mode = "mix"
	ModeAppend    Mode = "append"
	ModeInterlace Mode = "interlace"
)

// Format is the scene's output format.
type Format struct {
	SampleRate int `yaml:"sample_rate"`
	BitDepth   int `yaml:"bit_depth"`
	Channels   int `yaml:"channels"`
}

// Track is one input of a scene. It is either synthesized (Wave, sine by
// default, with a Frequency, a Note or a list of Notes) or decoded from
// File.
type Track struct {
	Name string `yaml:"name"`

	Wave      string   `yaml:"wave"`
	Frequency float64  `yaml:"frequency"`
	Note      string   `yaml:"note"`
	Notes     []string `yaml:"notes"`
	Amplitude *float64 `yaml:"amplitude"`

	// Duration of the tone, of every note in Notes, or the length a decoded
	// file is cropped to.
	Duration string `yaml:"duration"`

	File string `yaml:"file"`

	Weight *float64 `yaml:"weight"` // mix
	Volume *float64 `yaml:"volume"` // append and interlace, percent
	Start  string   `yaml:"start"`  // interlace

	wave     synth.Waveform
	tones    []synth.Tone
	duration time.Duration
	start    time.Duration
}

// Scene describes a rendering: an output format, the tracks and the way
// they are combined.
type Scene struct {
	Format    Format   `yaml:"format"`
	Mode      Mode     `yaml:"mode"`
	Peak      *float64 `yaml:"peak"`
	Crop      string   `yaml:"crop"`
	Normalize bool     `yaml:"normalize"`

	// Seed makes white noise reproducible.
	Seed              *uint64 `yaml:"seed"`
	AttenuationCycles *int    `yaml:"attenuation_cycles"`

	Tracks []Track `yaml:"tracks"`

	dir    string
	format *audio.Format
	crop   time.Duration
}

// Load parses and validates a YAML scene. Relative file paths are resolved
// against the working directory.
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile loads the scene at path. Relative file paths in its tracks are
// resolved against the directory of path.
func LoadFile(path string) (*Scene, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer in.Close()

	s, err := Load(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// AudioFormat returns the validated output format.
func (s *Scene) AudioFormat() *audio.Format { return s.format }

func (s *Scene) validate() error {
	f, err := audio.NewFormat(s.Format.SampleRate, s.Format.BitDepth, s.Format.Channels)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	s.format = f

	s.Mode = Mode(strings.ToLower(string(s.Mode)))
	switch s.Mode {
	case "":
		s.Mode = ModeMix
	case ModeMix, ModeAppend, ModeInterlace:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, s.Mode)
	}

	if s.Crop != "" {
		if s.crop, err = positiveDuration(s.Crop); err != nil {
			return fmt.Errorf("%w: crop: %w", ErrInvalidScene, err)
		}
	}

	if len(s.Tracks) == 0 {
		return ErrNoTracks
	}
	for i := range s.Tracks {
		if err := s.Tracks[i].validate(); err != nil {
			return fmt.Errorf("%w: track %s: %w", ErrInvalidScene, s.Tracks[i].label(i), err)
		}
	}
	return nil
}

func (t *Track) label(i int) string {
	if t.Name != "" {
		return fmt.Sprintf("%q", t.Name)
	}
	return fmt.Sprintf("#%d", i)
}

func (t *Track) validate() error {
	var err error

	if t.Start != "" {
		if t.start, err = time.ParseDuration(t.Start); err != nil {
			return fmt.Errorf("start: %w", err)
		}
	}

	if t.File != "" {
		if t.Wave != "" || t.Note != "" || len(t.Notes) > 0 || t.Frequency != 0 {
			return fmt.Errorf("file %q cannot be combined with a waveform", t.File)
		}
		if t.Duration != "" {
			if t.duration, err = positiveDuration(t.Duration); err != nil {
				return fmt.Errorf("duration: %w", err)
			}
		}
		return nil
	}

	t.wave = synth.Sine
	if t.Wave != "" {
		if t.wave, err = synth.ParseWaveform(t.Wave); err != nil {
			return err
		}
	}
	if t.duration, err = positiveDuration(t.Duration); err != nil {
		return fmt.Errorf("duration: %w", err)
	}

	switch {
	case len(t.Notes) > 0:
		if t.Note != "" || t.Frequency != 0 {
			return fmt.Errorf("notes cannot be combined with note or frequency")
		}
		for _, n := range t.Notes {
			freq, err := synth.NoteFrequency(n)
			if err != nil {
				return err
			}
			t.tones = append(t.tones, synth.Tone{Frequency: freq, Duration: t.duration})
		}
	case t.Note != "":
		if t.Frequency != 0 {
			return fmt.Errorf("note cannot be combined with frequency")
		}
		freq, err := synth.NoteFrequency(t.Note)
		if err != nil {
			return err
		}
		t.tones = []synth.Tone{{Frequency: freq, Duration: t.duration}}
	case t.Frequency > 0:
		t.tones = []synth.Tone{{Frequency: t.Frequency, Duration: t.duration}}
	default:
		return fmt.Errorf("%w: %v", synth.ErrInvalidFrequency, t.Frequency)
	}
	return nil
}

func positiveDuration(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s", audio.ErrInvalidDuration, v)
	}
	return d, nil
}

func (s *Scene) generator() *synth.Generator {
	var opts []synth.Option
	if s.AttenuationCycles != nil {
		opts = append(opts, synth.WithAttenuationCycles(*s.AttenuationCycles))
	}
	if s.Seed != nil {
		opts = append(opts, synth.WithRand(rand.New(rand.NewPCG(*s.Seed, *s.Seed))))
	}
	return synth.NewGenerator(opts...)
}

func (s *Scene) resolve(path string) string {
	if filepath.IsAbs(path) || s.dir == "" {
		return path
	}
	return filepath.Join(s.dir, path)
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
