// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"slices"
	"testing"

	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/internal/audiotest"
)

func TestWriteStream_Header(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(16000, 24, 2)
	s := audiotest.NewRampStream(f, 5, 100)

	buf := new(bytes.Buffer)
	if err := WriteStream(buf, s); err != nil {
		t.Fatalf("WriteStream() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != headerSize+5*6 {
		t.Fatalf("file size = %d, want %d", len(data), headerSize+5*6)
	}

	le := binary.LittleEndian
	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", le.Uint32(data[4:8]), 36 + 30},
		{"format tag", uint32(le.Uint16(data[20:22])), formatPCM},
		{"channels", uint32(le.Uint16(data[22:24])), 2},
		{"sample rate", le.Uint32(data[24:28]), 16000},
		{"byte rate", le.Uint32(data[28:32]), 16000 * 6},
		{"block align", uint32(le.Uint16(data[32:34])), 6},
		{"bits per sample", uint32(le.Uint16(data[34:36])), 24},
		{"data size", le.Uint32(data[40:44]), 30},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	for _, marker := range []struct {
		at   int
		want string
	}{{0, "RIFF"}, {8, "WAVE"}, {12, "fmt "}, {36, "data"}} {
		if got := string(data[marker.at : marker.at+4]); got != marker.want {
			t.Errorf("marker at %d = %q, want %q", marker.at, got, marker.want)
		}
	}

	if !bytes.Equal(data[headerSize:], s.Payload()) {
		t.Error("payload differs from Stream.Payload()")
	}
}

func TestWriteStream_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{8, 16, 24, 32} {
		f := audio.MustFormat(8000, depth, 2)
		s := audiotest.NewSineStream(f, 300, 440)

		buf := new(bytes.Buffer)
		if err := WriteStream(buf, s); err != nil {
			t.Fatalf("depth %d: WriteStream() error = %v", depth, err)
		}

		got, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("depth %d: Decode() error = %v", depth, err)
		}
		if !got.Format().Equal(f) {
			t.Errorf("depth %d: Format() = %v, want %v", depth, got.Format(), f)
		}
		if !slices.Equal(got.Ints(), s.Ints()) {
			t.Errorf("depth %d: decoded values differ", depth)
		}
	}
}

func TestWriteStream_8BitUnsigned(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(8000, 8, 1)
	s := audiotest.NewStream(f, 4, func(i, _ int) int64 {
		return []int64{0, 127, -128, -1}[i]
	})

	buf := new(bytes.Buffer)
	if err := WriteStream(buf, s); err != nil {
		t.Fatalf("WriteStream() error = %v", err)
	}

	want := []byte{0x80, 0xFF, 0x00, 0x7F}
	if got := buf.Bytes()[headerSize:]; !bytes.Equal(got, want) {
		t.Errorf("payload = % x, want % x", got, want)
	}
}

func TestWriteStream_LeftJustified(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(8000, 12, 1)
	s := audiotest.NewStream(f, 2, func(i, _ int) int64 {
		return []int64{1, -2048}[i]
	})

	buf := new(bytes.Buffer)
	if err := WriteStream(buf, s); err != nil {
		t.Fatalf("WriteStream() error = %v", err)
	}

	// 1<<4 and -2048<<4
	want := []byte{0x10, 0x00, 0x00, 0x80}
	if got := buf.Bytes()[headerSize:]; !bytes.Equal(got, want) {
		t.Errorf("payload = % x, want % x", got, want)
	}
	if bits := binary.LittleEndian.Uint16(buf.Bytes()[34:36]); bits != 12 {
		t.Errorf("bits per sample = %d, want 12", bits)
	}
}

func TestWriteStream_Empty(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteStream(buf, audio.NewStream(audio.MustFormat(8000, 16, 1))); err != nil {
		t.Fatalf("WriteStream() error = %v", err)
	}
	if buf.Len() != headerSize {
		t.Errorf("file size = %d, want %d (header only)", buf.Len(), headerSize)
	}
}

type errorWriter struct {
	failAfter int
	written   int
}

var errWrite = errors.New("write failed")

func (w *errorWriter) Write(p []byte) (int, error) {
	if w.written >= w.failAfter {
		return 0, errWrite
	}
	w.written += len(p)
	return len(p), nil
}

func TestWriteStream_WriteErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		depth     int
		failAfter int
	}{
		{"header", 16, 0},
		{"payload", 16, headerSize},
		{"repacked payload", 8, headerSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := audiotest.NewRampStream(audio.MustFormat(8000, tt.depth, 1), 10, 1)
			err := WriteStream(&errorWriter{failAfter: tt.failAfter}, s)
			if !errors.Is(err, errWrite) {
				t.Errorf("WriteStream() error = %v, want %v", err, errWrite)
			}
		})
	}
}

func BenchmarkWriteStream(b *testing.B) {
	s := audiotest.NewSineStream(audio.MustFormat(16000, 16, 1), 16000, 440)
	buf := new(bytes.Buffer)

	b.ReportAllocs()
	for b.Loop() {
		buf.Reset()
		_ = WriteStream(buf, s)
	}
}
