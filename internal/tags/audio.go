package tags

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	goflac "github.com/go-flac/go-flac"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
	"github.com/llehouerou/go-m4a"
	"github.com/llehouerou/go-mp3"
)

// ReadAudioInfo reads audio stream properties (duration, format, sample rate)
// without decoding the whole file.
func ReadAudioInfo(path string) (*AudioInfo, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsMusicFile(path) {
		return nil, fmt.Errorf("unsupported format: %s", ext)
	}

	if ext == ExtFLAC {
		return readFLACStreamInfo(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext {
	case ExtMP3:
		return readMP3AudioInfo(f)
	case ExtOPUS, ExtOGG, ExtOGA:
		return readOggAudioInfo(f)
	case ExtM4A, ExtMP4:
		return readM4AAudioInfo(f)
	case ExtWAV:
		return readWAVAudioInfo(f)
	}

	return nil, fmt.Errorf("unsupported format: %s", ext)
}

// readMP3AudioInfo extracts audio info from an MP3 file.
func readMP3AudioInfo(f *os.File) (*AudioInfo, error) {
	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}

	sampleRate := decoder.SampleRate()
	if sampleRate == 0 {
		return nil, errors.New("mp3: invalid sample rate")
	}

	sampleCount := max(decoder.SampleCount(), 0)

	return &AudioInfo{
		Duration:   samplesToDuration(int64(sampleCount), sampleRate),
		Format:     "MP3",
		SampleRate: sampleRate,
	}, nil
}

// readFLACStreamInfo extracts audio info from FLAC streaminfo metadata.
func readFLACStreamInfo(path string) (*AudioInfo, error) {
	flacFile, err := goflac.ParseFile(path)
	if err != nil {
		// Files with a prepended ID3 tag confuse go-flac
		return readFLACWithBeep(path)
	}

	for _, meta := range flacFile.Meta {
		if meta.Type != goflac.StreamInfo || len(meta.Data) < 18 {
			continue
		}
		sampleRate, totalSamples := parseStreamInfo(meta.Data)
		return &AudioInfo{
			Duration:   samplesToDuration(totalSamples, sampleRate),
			Format:     "FLAC",
			SampleRate: sampleRate,
		}, nil
	}

	return readFLACWithBeep(path)
}

// parseStreamInfo decodes the sample rate (20 bits from byte 10) and the
// total sample count (36 bits from byte 13) of a STREAMINFO block.
func parseStreamInfo(data []byte) (sampleRate int, totalSamples int64) {
	sampleRate = int(data[10])<<12 | int(data[11])<<4 | int(data[12])>>4
	totalSamples = int64(data[13]&0x0F)<<32 | int64(data[14])<<24 | int64(data[15])<<16 | int64(data[16])<<8 | int64(data[17])
	return sampleRate, totalSamples
}

// readFLACWithBeep uses beep's FLAC decoder as fallback.
func readFLACWithBeep(path string) (*AudioInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := skipID3v2(f); err != nil {
		return nil, err
	}

	streamer, format, err := flac.Decode(f)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	return &AudioInfo{
		Duration:   format.SampleRate.D(streamer.Len()),
		Format:     "FLAC",
		SampleRate: int(format.SampleRate),
	}, nil
}

// readWAVAudioInfo reads the WAV header through beep's decoder.
func readWAVAudioInfo(f *os.File) (*AudioInfo, error) {
	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	return &AudioInfo{
		Duration:   format.SampleRate.D(streamer.Len()),
		Format:     "WAV",
		SampleRate: int(format.SampleRate),
	}, nil
}

// readOggAudioInfo derives duration from the granule position of the last
// page. Opus granules always count 48kHz samples; Vorbis ones count samples
// at the rate announced in the identification header.
func readOggAudioInfo(f io.ReadSeeker) (*AudioInfo, error) {
	head := make([]byte, 128)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	head = head[:n]

	info := &AudioInfo{}
	switch {
	case bytes.Contains(head, []byte("OpusHead")):
		info.Format = "OPUS"
		info.SampleRate = 48000
	case bytes.Contains(head, []byte("\x01vorbis")):
		i := bytes.Index(head, []byte("\x01vorbis"))
		// version (4 bytes) and channels (1 byte) precede the rate
		if i+16 > len(head) {
			return nil, errors.New("ogg: truncated vorbis header")
		}
		info.Format = "VORBIS"
		info.SampleRate = int(binary.LittleEndian.Uint32(head[i+12 : i+16]))
	default:
		return nil, errors.New("ogg: unknown codec")
	}

	granule, err := lastOggGranule(f)
	if err != nil {
		return nil, err
	}
	info.Duration = samplesToDuration(granule, info.SampleRate)
	return info, nil
}

// lastOggGranule finds the granule position of the last page in the stream.
func lastOggGranule(f io.ReadSeeker) (int64, error) {
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}

	// Read the last 64KB to find the last OGG page
	searchSize := min(int64(65536), size)
	if _, err := f.Seek(-searchSize, io.SeekEnd); err != nil {
		return 0, err
	}
	buf := make([]byte, searchSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, err
	}
	buf = buf[:n]

	for i := len(buf) - 27; i >= 0; i-- {
		if string(buf[i:i+4]) == "OggS" {
			// Granule position is at offset 6, 8 bytes little-endian
			granule := int64(binary.LittleEndian.Uint64(buf[i+6 : i+14]))
			if granule > 0 {
				return granule, nil
			}
		}
	}
	return 0, errors.New("could not determine OGG duration")
}

// readM4AAudioInfo extracts audio info from an M4A/MP4 file.
func readM4AAudioInfo(f *os.File) (*AudioInfo, error) {
	container, err := m4a.Open(f)
	if err != nil {
		return nil, err
	}

	format := "M4A"
	switch container.Codec() {
	case m4a.CodecAAC:
		format = "AAC"
	case m4a.CodecALAC:
		format = "ALAC"
	case m4a.CodecUnknown:
	}

	return &AudioInfo{
		Duration:   container.Duration(),
		Format:     format,
		SampleRate: int(container.SampleRate()),
	}, nil
}

func samplesToDuration(samples int64, sampleRate int) time.Duration {
	if sampleRate <= 0 || samples <= 0 {
		return 0
	}
	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the file.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != id3Magic {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is stored as a syncsafe integer in bytes 6-9
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
