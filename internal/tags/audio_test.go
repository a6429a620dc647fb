package tags

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
	"time"
)

// oggPage builds a single-segment Ogg page; CRC is not checked by the reader.
func oggPage(granule int64, payload []byte) []byte {
	var b bytes.Buffer
	b.WriteString("OggS")
	b.WriteByte(0) // version
	b.WriteByte(0) // header type
	_ = binary.Write(&b, binary.LittleEndian, granule)
	b.Write(make([]byte, 12)) // serial, sequence, crc
	b.WriteByte(1)
	b.WriteByte(byte(len(payload)))
	b.Write(payload)
	return b.Bytes()
}

func TestReadOggAudioInfo(t *testing.T) {
	vorbisHead := append([]byte("\x01vorbis"), 0, 0, 0, 0, 2)
	vorbisHead = binary.LittleEndian.AppendUint32(vorbisHead, 44100)
	vorbisHead = append(vorbisHead, make([]byte, 14)...)

	tests := []struct {
		name     string
		stream   []byte
		format   string
		rate     int
		duration time.Duration
	}{
		{
			name:     "opus",
			stream:   append(oggPage(0, []byte("OpusHead\x01\x02")), oggPage(96000, []byte{0})...),
			format:   "OPUS",
			rate:     48000,
			duration: 2 * time.Second,
		},
		{
			name:     "vorbis",
			stream:   append(oggPage(0, vorbisHead), oggPage(441000, []byte{0})...),
			format:   "VORBIS",
			rate:     44100,
			duration: 10 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := readOggAudioInfo(bytes.NewReader(tt.stream))
			if err != nil {
				t.Fatalf("readOggAudioInfo failed: %v", err)
			}
			if info.Format != tt.format || info.SampleRate != tt.rate {
				t.Errorf("format = %s@%d, want %s@%d", info.Format, info.SampleRate, tt.format, tt.rate)
			}
			if info.Duration != tt.duration {
				t.Errorf("Duration = %v, want %v", info.Duration, tt.duration)
			}
		})
	}
}

func TestReadOggAudioInfo_UnknownCodec(t *testing.T) {
	stream := oggPage(10, []byte("\x80theora"))
	if _, err := readOggAudioInfo(bytes.NewReader(stream)); err == nil {
		t.Error("expected error for unknown codec")
	}
}

func TestParseStreamInfo(t *testing.T) {
	data := make([]byte, 34)
	// 44100 Hz = 0xAC44 in 20 bits, followed by channel/bps bits
	data[10] = 0x0A
	data[11] = 0xC4
	data[12] = 0x42
	// 441000 total samples = 0x6BAA8
	data[13] = 0xF0
	data[15] = 0x06
	data[16] = 0xBA
	data[17] = 0xA8

	rate, total := parseStreamInfo(data)
	if rate != 44100 {
		t.Errorf("sample rate = %d, want 44100", rate)
	}
	if total != 441000 {
		t.Errorf("total samples = %d, want 441000", total)
	}
	if d := samplesToDuration(total, rate); d != 10*time.Second {
		t.Errorf("duration = %v, want 10s", d)
	}
}

func TestSkipID3v2(t *testing.T) {
	tag := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 5, 1, 2, 3, 4, 5}
	r := bytes.NewReader(append(tag, "fLaC"...))
	if err := skipID3v2(r); err != nil {
		t.Fatalf("skipID3v2 failed: %v", err)
	}
	rest, _ := io.ReadAll(r)
	if string(rest) != "fLaC" {
		t.Errorf("after skip = %q, want %q", rest, "fLaC")
	}

	plain := bytes.NewReader([]byte("fLaC\x00\x00\x00\x22"))
	if err := skipID3v2(plain); err != nil {
		t.Fatalf("skipID3v2 failed: %v", err)
	}
	rest, _ = io.ReadAll(plain)
	if string(rest[:4]) != "fLaC" {
		t.Errorf("untagged stream moved: %q", rest)
	}
}

func TestReadAudioInfo_Unsupported(t *testing.T) {
	if _, err := ReadAudioInfo("notes.txt"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
