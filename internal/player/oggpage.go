package player

import (
	"encoding/binary"
	"errors"
	"io"
)

const (
	oggHeaderSize    = 27
	oggFlagContinued = 0x01
	oggMaxSegment    = 255
)

var (
	errOggCapture = errors.New("ogg: invalid capture pattern")
	errOggVersion = errors.New("ogg: unsupported version")
)

type oggPageHeader struct {
	flags    byte
	granule  int64
	serial   uint32
	segments []byte
}

func (h oggPageHeader) bodySize() int {
	size := 0
	for _, s := range h.segments {
		size += int(s)
	}
	return size
}

func readOggPageHeader(r io.Reader) (oggPageHeader, error) {
	var buf [oggHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return oggPageHeader{}, err
	}
	if string(buf[:4]) != "OggS" {
		return oggPageHeader{}, errOggCapture
	}
	if buf[4] != 0 {
		return oggPageHeader{}, errOggVersion
	}
	h := oggPageHeader{
		flags:    buf[5],
		granule:  int64(binary.LittleEndian.Uint64(buf[6:14])), //nolint:gosec // granule is signed in the format
		serial:   binary.LittleEndian.Uint32(buf[14:18]),
		segments: make([]byte, buf[26]),
	}
	if _, err := io.ReadFull(r, h.segments); err != nil {
		return oggPageHeader{}, err
	}
	return h, nil
}

// oggPacketReader reassembles packets that span page boundaries.
type oggPacketReader struct {
	r     io.Reader
	carry []byte
}

// nextPage reads one page and returns the packets completed on it.
// A continuation fragment without its beginning (after a seek) is dropped.
func (pr *oggPacketReader) nextPage() ([][]byte, oggPageHeader, error) {
	h, err := readOggPageHeader(pr.r)
	if err != nil {
		return nil, h, err
	}
	body := make([]byte, h.bodySize())
	if _, err := io.ReadFull(pr.r, body); err != nil {
		return nil, h, err
	}

	var packets [][]byte
	cur, dropping := pr.carry, false
	if h.flags&oggFlagContinued == 0 {
		cur = nil
	} else if cur == nil {
		dropping = true
	}
	pr.carry = nil

	off := 0
	for _, seg := range h.segments {
		if !dropping {
			cur = append(cur, body[off:off+int(seg)]...)
		}
		off += int(seg)
		if seg < oggMaxSegment {
			if !dropping {
				packets = append(packets, cur)
			}
			cur, dropping = nil, false
		}
	}
	if len(h.segments) > 0 && h.segments[len(h.segments)-1] == oggMaxSegment && !dropping {
		pr.carry = cur
	}
	return packets, h, nil
}

// reset forgets any partial packet, used after repositioning the reader.
func (pr *oggPacketReader) reset() {
	pr.carry = nil
}

// oggPageIndex is the file offset of a page and the granule position at its end.
type oggPageIndex struct {
	offset  int64
	granule int64
}

// indexOggPages lists the pages from start to the end of the stream,
// skipping page bodies. Pages on which no packet ends (granule -1) are left out.
func indexOggPages(r io.ReadSeeker, start int64) ([]oggPageIndex, error) {
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}
	var pages []oggPageIndex
	offset := start
	for {
		h, err := readOggPageHeader(r)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return pages, nil
		}
		if err != nil {
			return nil, err
		}
		if h.granule >= 0 {
			pages = append(pages, oggPageIndex{offset: offset, granule: h.granule})
		}
		size := int64(h.bodySize())
		if _, err := r.Seek(size, io.SeekCurrent); err != nil {
			return nil, err
		}
		offset += oggHeaderSize + int64(len(h.segments)) + size
	}
}
