package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

var jpegData = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

func TestExtractCoverArt_EmbeddedMP3(t *testing.T) {
	path := createTestMP3(t, t.TempDir(), "test.mp3", func(tag *id3v2.Tag) {
		tag.SetTitle("Test")
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    mimeJPEG,
			PictureType: id3v2.PTFrontCover,
			Description: "Front cover",
			Picture:     jpegData,
		})
	})

	data, mimeType, err := ExtractCoverArt(path)
	if err != nil {
		t.Fatalf("ExtractCoverArt() error: %v", err)
	}
	if string(data) != string(jpegData) {
		t.Errorf("data = %v, want embedded picture", data)
	}
	if mimeType != mimeJPEG {
		t.Errorf("mimeType = %q, want %q", mimeType, mimeJPEG)
	}
}

func TestExtractCoverArt_FolderArt(t *testing.T) {
	dir := t.TempDir()
	path := createTestMP3(t, dir, "test.mp3", nil)

	// cover.jpg comes before folder.jpg in coverArtFilenames
	if err := os.WriteFile(filepath.Join(dir, "cover.jpg"), append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, "cover"...), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "folder.jpg"), append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, "folder"...), 0o600); err != nil {
		t.Fatal(err)
	}

	data, mimeType, err := ExtractCoverArt(path)
	if err != nil {
		t.Fatalf("ExtractCoverArt() error: %v", err)
	}
	if string(data[4:]) != "cover" {
		t.Errorf("got %q, want cover.jpg data", data[4:])
	}
	if mimeType != mimeJPEG {
		t.Errorf("mimeType = %q, want %q", mimeType, mimeJPEG)
	}
}

func TestExtractCoverArt_NoCoverArt(t *testing.T) {
	path := createTestMP3(t, t.TempDir(), "test.mp3", nil)

	data, mimeType, err := ExtractCoverArt(path)
	if err != nil {
		t.Fatalf("ExtractCoverArt() error: %v", err)
	}
	if data != nil || mimeType != "" {
		t.Errorf("ExtractCoverArt() = %d bytes %q, want nothing", len(data), mimeType)
	}
}

func TestExtractCoverArt_NonexistentFile(t *testing.T) {
	if _, _, err := ExtractCoverArt("/nonexistent/file.mp3"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestFindFolderArt(t *testing.T) {
	tests := []struct {
		filename string
		wantMime string
	}{
		{"cover.jpg", mimeJPEG},
		{"cover.png", mimePNG},
		{"folder.jpeg", mimeJPEG},
		{"album.png", mimePNG},
		{"FRONT.JPG", mimeJPEG},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, tt.filename), []byte("img"), 0o600); err != nil {
				t.Fatal(err)
			}

			data, mimeType, err := findFolderArt(dir)
			if err != nil {
				t.Fatalf("findFolderArt() error: %v", err)
			}
			if data == nil {
				t.Error("expected data, got nil")
			}
			if mimeType != tt.wantMime {
				t.Errorf("mimeType = %q, want %q", mimeType, tt.wantMime)
			}
		})
	}
}

func TestNormalizeMIME(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	tests := []struct {
		name string
		mime string
		data []byte
		want string
	}{
		{"already image type", "image/webp", nil, "image/webp"},
		{"jpeg magic", "", jpegData, mimeJPEG},
		{"png magic", "PNG", png, mimePNG},
		{"bare format name", "gif", []byte("GIF89a"), "image/gif"},
		{"unknown", "", []byte("???"), "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeMIME(tt.mime, tt.data); got != tt.want {
				t.Errorf("normalizeMIME(%q) = %q, want %q", tt.mime, got, tt.want)
			}
		})
	}
}
