package tags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Sorrow446/go-mp4tag"
	"github.com/dhowden/tag"
)

// Common cover art filenames to look for in album folders.
var coverArtFilenames = []string{
	"cover.jpg", "cover.jpeg", "cover.png",
	"folder.jpg", "folder.jpeg", "folder.png",
	"album.jpg", "album.jpeg", "album.png",
	"front.jpg", "front.jpeg", "front.png",
	"artwork.jpg", "artwork.jpeg", "artwork.png",
}

const (
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"
)

// ExtractCoverArt reads cover art for an audio file.
// Embedded art wins; otherwise a common cover image next to the file is used.
// Returns nil data when no art is found.
func ExtractCoverArt(path string) (data []byte, mimeType string, err error) {
	data, mimeType, err = extractEmbeddedArt(path)
	if err != nil {
		return nil, "", err
	}
	if data != nil {
		return data, mimeType, nil
	}
	return findFolderArt(filepath.Dir(path))
}

// extractEmbeddedArt reads embedded cover art from an audio file's metadata,
// falling back to a format-specific reader when dhowden/tag finds nothing.
func extractEmbeddedArt(path string) (data []byte, mimeType string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	if m, err := tag.ReadFrom(f); err == nil {
		if pic := m.Picture(); pic != nil && len(pic.Data) > 0 {
			return pic.Data, normalizeMIME(pic.MIMEType, pic.Data), nil
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3:
		data, mimeType, err = readID3Picture(path)
	case ExtFLAC:
		data, mimeType, err = readFLACPicture(path)
	case ExtM4A, ExtMP4:
		data, mimeType, err = readMP4Picture(path)
	}
	if err != nil || data == nil {
		// A broken tag is not fatal; the folder may still have art.
		return nil, "", nil //nolint:nilerr // missing art is not an error
	}
	return data, normalizeMIME(mimeType, data), nil
}

// readMP4Picture returns the first cover atom of an M4A file.
func readMP4Picture(path string) (data []byte, mimeType string, err error) {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer mp4.Close()

	tags, err := mp4.Read()
	if err != nil {
		return nil, "", err
	}
	for _, pic := range tags.Pictures {
		if pic != nil && len(pic.Data) > 0 {
			return pic.Data, "", nil
		}
	}
	return nil, "", nil
}

// findFolderArt looks for common cover art files in the given directory.
func findFolderArt(dir string) (data []byte, mimeType string, err error) {
	for _, filename := range coverArtFilenames {
		imgPath := filepath.Join(dir, filename)
		data, err := os.ReadFile(imgPath)
		if err != nil {
			// Try case-insensitive match
			imgPath = filepath.Join(dir, strings.ToUpper(filename))
			data, err = os.ReadFile(imgPath)
			if err != nil {
				continue
			}
		}

		switch strings.ToLower(filepath.Ext(filename)) {
		case ".jpg", ".jpeg":
			mimeType = mimeJPEG
		case ".png":
			mimeType = mimePNG
		default:
			mimeType = "application/octet-stream"
		}
		return data, mimeType, nil
	}

	return nil, "", nil
}

// normalizeMIME fills in a MIME type from the image magic bytes when the tag
// left it empty or gave a bare format name like "jpg".
func normalizeMIME(mimeType string, data []byte) string {
	if strings.HasPrefix(mimeType, "image/") {
		return mimeType
	}
	switch {
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return mimeJPEG
	case len(data) >= 8 && string(data[1:4]) == "PNG":
		return mimePNG
	case mimeType != "":
		return "image/" + strings.ToLower(mimeType)
	}
	return "application/octet-stream"
}
