package player

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/alac"
	"github.com/llehouerou/go-faad2"
	"github.com/llehouerou/go-m4a"
)

const alacFrameSize = 4096

var errM4ACodec = errors.New("m4a: unsupported codec")

// m4aDecoder streams AAC or ALAC audio out of an MP4 container.
type m4aDecoder struct {
	container *m4a.Reader
	closer    io.Closer
	codec     m4a.CodecType
	aac       *faad2.Decoder
	alac      *alac.Alac
	bits      int
	channels  int
	length    int

	next   int // next container sample index
	frames [][2]float64
	offset int
	err    error
}

func decodeM4A(rc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	container, err := m4a.Open(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}

	rate := int(container.SampleRate())
	d := &m4aDecoder{
		container: container,
		closer:    rc,
		codec:     container.Codec(),
		bits:      int(container.SampleSize()),
		channels:  int(container.Channels()),
		length:    int(container.Duration().Seconds() * float64(rate)),
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   2,
	}

	switch d.codec {
	case m4a.CodecAAC:
		ctx := context.Background()
		dec, err := faad2.NewDecoder(ctx)
		if err != nil {
			return nil, beep.Format{}, err
		}
		if err := dec.Init(ctx, container.CodecConfig()); err != nil {
			dec.Close(ctx)
			return nil, beep.Format{}, err
		}
		d.aac = dec
	case m4a.CodecALAC:
		dec, err := alac.NewWithConfig(alac.Config{
			SampleRate:  rate,
			SampleSize:  d.bits,
			NumChannels: d.channels,
			FrameSize:   alacFrameSize,
		})
		if err != nil {
			return nil, beep.Format{}, err
		}
		d.alac = dec
		if d.bits == 24 {
			format.Precision = 3
		}
	default:
		return nil, beep.Format{}, errM4ACodec
	}
	return d, format, nil
}

// Stream implements beep.Streamer.
func (d *m4aDecoder) Stream(samples [][2]float64) (int, bool) {
	if d.err != nil {
		return 0, false
	}
	n := 0
	for n < len(samples) {
		if d.offset < len(d.frames) {
			c := copy(samples[n:], d.frames[d.offset:])
			n += c
			d.offset += c
			continue
		}
		if d.next >= d.container.SampleCount() {
			break
		}
		data, err := d.container.ReadSample(d.next)
		if err != nil {
			d.err = err
			break
		}
		d.next++
		if d.frames, err = d.decodeSample(data); err != nil {
			d.err = err
			break
		}
		d.offset = 0
	}
	return n, n > 0
}

func (d *m4aDecoder) decodeSample(data []byte) ([][2]float64, error) {
	if d.codec == m4a.CodecAAC {
		pcm, err := d.aac.Decode(context.Background(), data)
		if err != nil {
			return nil, err
		}
		return int16Frames(pcm, d.channels), nil
	}
	return pcmBytesFrames(d.alac.Decode(data), d.bits, d.channels), nil
}

// int16Frames converts interleaved 16-bit PCM to stereo frames, duplicating mono.
func int16Frames(pcm []int16, channels int) [][2]float64 {
	channels = max(channels, 1)
	frames := make([][2]float64, len(pcm)/channels)
	for i := range frames {
		l := float64(pcm[i*channels]) / 32768
		r := l
		if channels > 1 {
			r = float64(pcm[i*channels+1]) / 32768
		}
		frames[i] = [2]float64{l, r}
	}
	return frames
}

// pcmBytesFrames converts little-endian 16 or 24-bit PCM bytes to stereo frames.
func pcmBytesFrames(data []byte, bits, channels int) [][2]float64 {
	width := 2
	scale := float64(1 << 15)
	if bits == 24 {
		width, scale = 3, float64(1<<23)
	}
	channels = max(channels, 1)
	stride := width * channels

	sample := func(b []byte) float64 {
		if width == 2 {
			return float64(int16(uint16(b[0])|uint16(b[1])<<8)) / scale //nolint:gosec // pcm reinterpretation
		}
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		if v&0x800000 != 0 {
			v |= ^0xFFFFFF
		}
		return float64(v) / scale
	}

	frames := make([][2]float64, len(data)/stride)
	for i := range frames {
		off := i * stride
		l := sample(data[off:])
		r := l
		if channels > 1 {
			r = sample(data[off+width:])
		}
		frames[i] = [2]float64{l, r}
	}
	return frames
}

// Err implements beep.Streamer.
func (d *m4aDecoder) Err() error { return d.err }

// Len implements beep.StreamSeeker.
func (d *m4aDecoder) Len() int { return d.length }

// Position implements beep.StreamSeeker.
func (d *m4aDecoder) Position() int {
	t := d.container.SampleTime(d.next)
	return int(t.Seconds()*float64(d.container.SampleRate())) - (len(d.frames) - d.offset)
}

// Seek implements beep.StreamSeeker. Positions snap to container sample boundaries.
func (d *m4aDecoder) Seek(p int) error {
	p = min(max(p, 0), d.length)
	pos := time.Duration(float64(p) / float64(d.container.SampleRate()) * float64(time.Second))
	d.next = d.container.SeekToTime(pos)
	d.frames, d.offset, d.err = nil, 0, nil
	return nil
}

// Close implements beep.StreamSeekCloser.
func (d *m4aDecoder) Close() error {
	if d.aac != nil {
		d.aac.Close(context.Background())
	}
	return d.closer.Close()
}
