package player

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

// mp3BytesPerFrame is the size of one decoded frame: go-mp3 always emits
// 16-bit little-endian stereo.
const mp3BytesPerFrame = 4

var errMP3Rate = errors.New("mp3: invalid sample rate")

type mp3Decoder struct {
	dec    *mp3.Decoder
	closer io.Closer
	buf    []byte
	err    error
}

func decodeGoMP3(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	dec, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if dec.SampleRate() == 0 {
		return nil, beep.Format{}, errMP3Rate
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(dec.SampleRate()),
		NumChannels: 2,
		Precision:   2,
	}
	return &mp3Decoder{dec: dec, closer: rc}, format, nil
}

// Stream implements beep.Streamer.
func (d *mp3Decoder) Stream(samples [][2]float64) (int, bool) {
	if d.err != nil {
		return 0, false
	}
	need := len(samples) * mp3BytesPerFrame
	if cap(d.buf) < need {
		d.buf = make([]byte, need)
	}
	read, err := io.ReadFull(d.dec, d.buf[:need])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		d.err = err
		return 0, false
	}

	n := read / mp3BytesPerFrame
	for i := range n {
		frame := d.buf[i*mp3BytesPerFrame:]
		l := int16(binary.LittleEndian.Uint16(frame))     //nolint:gosec // pcm reinterpretation
		r := int16(binary.LittleEndian.Uint16(frame[2:])) //nolint:gosec // pcm reinterpretation
		samples[i] = [2]float64{float64(l) / 32768, float64(r) / 32768}
	}
	return n, n > 0
}

// Err implements beep.Streamer.
func (d *mp3Decoder) Err() error { return d.err }

// Len implements beep.StreamSeeker.
func (d *mp3Decoder) Len() int {
	return int(max(d.dec.SampleCount(), 0))
}

// Position implements beep.StreamSeeker.
func (d *mp3Decoder) Position() int {
	return int(d.dec.SamplePosition())
}

// Seek implements beep.StreamSeeker.
func (d *mp3Decoder) Seek(p int) error {
	p = min(max(p, 0), d.Len())
	if err := d.dec.SeekToSample(int64(p)); err != nil {
		return err
	}
	d.err = nil
	return nil
}

// Close implements beep.StreamSeekCloser.
func (d *mp3Decoder) Close() error {
	return d.closer.Close()
}
