package player

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/gopxl/beep/v2"
	"github.com/jfreymuth/vorbis"
	"github.com/jj11hh/opus"
)

const (
	opusSampleRate   = 48000
	opusMaxFrameSize = 5760 // 120ms at 48kHz
	vorbisHeaders    = 3
	opusHeaders      = 2 // OpusHead, OpusTags
)

var (
	errOggCodec     = errors.New("ogg: unknown codec")
	errOggHeader    = errors.New("ogg: invalid codec header")
	errOggNotReady  = errors.New("ogg: headers incomplete")
	errOggShortPCM  = errors.New("ogg: pcm buffer too small")
	errOggNoHeaders = errors.New("ogg: stream ended inside headers")
)

// oggCodec decodes the packets of one logical Ogg stream.
type oggCodec interface {
	addHeader(packet []byte) error
	ready() bool
	sampleRate() int
	channels() int
	preSkip() int
	// decode writes interleaved samples to pcm and returns frames per channel.
	decode(packet []byte, pcm []float32) (int, error)
	reset()
}

func newOggCodec(first []byte) (oggCodec, error) {
	switch {
	case len(first) >= 8 && string(first[:8]) == "OpusHead":
		return newOpusCodec(first)
	case len(first) >= 7 && first[0] == 0x01 && string(first[1:7]) == "vorbis":
		return newVorbisCodec(first)
	}
	return nil, errOggCodec
}

type vorbisCodec struct {
	dec      vorbis.Decoder
	rate     int
	chans    int
	received int
}

func newVorbisCodec(ident []byte) (*vorbisCodec, error) {
	// ident: type(1) "vorbis"(6) version(4) channels(1) rate(4)
	if len(ident) < 16 || binary.LittleEndian.Uint32(ident[7:11]) != 0 {
		return nil, errOggHeader
	}
	c := &vorbisCodec{
		chans: int(ident[11]),
		rate:  int(binary.LittleEndian.Uint32(ident[12:16])),
	}
	if err := c.addHeader(ident); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *vorbisCodec) addHeader(packet []byte) error {
	if err := c.dec.ReadHeader(packet); err != nil {
		return fmt.Errorf("vorbis header: %w", err)
	}
	c.received++
	return nil
}

func (c *vorbisCodec) ready() bool { return c.received >= vorbisHeaders }
func (c *vorbisCodec) sampleRate() int { return c.rate }
func (c *vorbisCodec) channels() int { return c.chans }
func (c *vorbisCodec) preSkip() int { return 0 }
func (c *vorbisCodec) reset() { c.dec.Clear() }

func (c *vorbisCodec) decode(packet []byte, pcm []float32) (int, error) {
	if !c.ready() {
		return 0, errOggNotReady
	}
	samples, err := c.dec.Decode(packet)
	if err != nil {
		return 0, err
	}
	if len(samples) > len(pcm) {
		return 0, errOggShortPCM
	}
	return copy(pcm, samples) / c.chans, nil
}

type opusCodec struct {
	dec      *opus.Decoder
	chans    int
	skip     int
	received int
}

func newOpusCodec(head []byte) (*opusCodec, error) {
	// head: "OpusHead"(8) version(1) channels(1) pre-skip(2) ...
	if len(head) < 19 || head[8] != 1 {
		return nil, errOggHeader
	}
	chans := int(head[9])
	dec, err := opus.NewDecoder(opusSampleRate, chans)
	if err != nil {
		return nil, err
	}
	return &opusCodec{
		dec:      dec,
		chans:    chans,
		skip:     int(binary.LittleEndian.Uint16(head[10:12])),
		received: 1,
	}, nil
}

// addHeader accepts OpusTags; its content is not needed for playback.
func (c *opusCodec) addHeader([]byte) error {
	c.received++
	return nil
}

func (c *opusCodec) ready() bool { return c.received >= opusHeaders }
func (c *opusCodec) sampleRate() int { return opusSampleRate }
func (c *opusCodec) channels() int { return c.chans }
func (c *opusCodec) preSkip() int { return c.skip }
func (c *opusCodec) reset() {}

func (c *opusCodec) decode(packet []byte, pcm []float32) (int, error) {
	return c.dec.DecodeFloat32(packet, pcm)
}

// oggDecoder implements beep.StreamSeekCloser over an Ogg Vorbis or Opus file.
// Positions are tracked as raw granules; the codec pre-skip is subtracted
// for everything exposed to beep.
type oggDecoder struct {
	f      io.ReadSeekCloser
	pr     *oggPacketReader
	codec  oggCodec
	pages  []oggPageIndex
	length int

	granule int64 // raw granule of the next sample returned
	discard int64 // frames to drop before returning samples
	packets [][]byte
	pcm     []float32
	pcmPos  int
	pcmLen  int
	err     error
}

func decodeOgg(f io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	pr := &oggPacketReader{r: f}
	var codec oggCodec
	for codec == nil || !codec.ready() {
		packets, _, err := pr.nextPage()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, beep.Format{}, errOggNoHeaders
		}
		if err != nil {
			return nil, beep.Format{}, err
		}
		for _, pkt := range packets {
			switch {
			case codec == nil:
				codec, err = newOggCodec(pkt)
			case !codec.ready():
				err = codec.addHeader(pkt)
			}
			if err != nil {
				return nil, beep.Format{}, err
			}
		}
	}
	if codec.channels() < 1 {
		return nil, beep.Format{}, errOggHeader
	}

	dataStart, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, beep.Format{}, err
	}
	pages, err := indexOggPages(f, dataStart)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if _, err := f.Seek(dataStart, io.SeekStart); err != nil {
		return nil, beep.Format{}, err
	}

	d := &oggDecoder{
		f:       f,
		pr:      pr,
		codec:   codec,
		pages:   pages,
		discard: int64(codec.preSkip()),
		pcm:     make([]float32, opusMaxFrameSize*codec.channels()*2),
	}
	if len(pages) > 0 {
		d.length = max(int(pages[len(pages)-1].granule)-codec.preSkip(), 0)
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(codec.sampleRate()),
		NumChannels: min(codec.channels(), 2),
		Precision:   2,
	}
	return d, format, nil
}

// Stream implements beep.Streamer.
func (d *oggDecoder) Stream(samples [][2]float64) (int, bool) {
	if d.err != nil {
		return 0, false
	}
	chans := d.codec.channels()
	n := 0
	for n < len(samples) {
		if d.pcmPos < d.pcmLen {
			i := d.pcmPos * chans
			samples[n][0] = float64(d.pcm[i])
			samples[n][1] = samples[n][0]
			if chans > 1 {
				samples[n][1] = float64(d.pcm[i+1])
			}
			d.pcmPos++
			d.granule++
			n++
			continue
		}
		if !d.fill() {
			break
		}
	}
	return n, n > 0
}

// fill decodes the next packet into the pcm buffer. It returns false at the
// end of the stream or on a read error.
func (d *oggDecoder) fill() bool {
	for len(d.packets) == 0 {
		packets, _, err := d.pr.nextPage()
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
				d.err = err
			}
			return false
		}
		d.packets = packets
	}
	pkt := d.packets[0]
	d.packets = d.packets[1:]

	frames, err := d.codec.decode(pkt, d.pcm)
	if err != nil {
		// corrupt packets are skipped
		frames = 0
	}
	d.pcmPos, d.pcmLen = 0, frames
	if d.discard > 0 {
		drop := int(min(d.discard, int64(frames)))
		d.pcmPos = drop
		d.discard -= int64(drop)
		d.granule += int64(drop)
	}
	return true
}

// Err implements beep.Streamer.
func (d *oggDecoder) Err() error { return d.err }

// Len implements beep.StreamSeeker.
func (d *oggDecoder) Len() int { return d.length }

// Position implements beep.StreamSeeker.
func (d *oggDecoder) Position() int {
	return max(int(d.granule)-d.codec.preSkip(), 0)
}

// Seek jumps to the page holding sample p and discards frames up to it.
func (d *oggDecoder) Seek(p int) error {
	p = min(max(p, 0), d.length)
	target := int64(p + d.codec.preSkip())

	if len(d.pages) == 0 {
		return nil
	}
	// first page whose end granule reaches the target
	i := sort.Search(len(d.pages), func(i int) bool {
		return d.pages[i].granule >= target
	})
	i = min(i, len(d.pages)-1)
	offset := d.pages[i].offset
	var start int64
	if i > 0 {
		start = d.pages[i-1].granule
	}
	if _, err := d.f.Seek(offset, io.SeekStart); err != nil {
		return err
	}

	d.pr.reset()
	d.codec.reset()
	d.packets = nil
	d.pcmPos, d.pcmLen = 0, 0
	d.granule = start
	d.discard = max(target-start, 0)
	d.err = nil
	return nil
}

// Close implements beep.StreamSeekCloser.
func (d *oggDecoder) Close() error {
	return d.f.Close()
}
