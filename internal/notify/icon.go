package notify

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	_ "image/jpeg" // JPEG decoder for cover art
	"image/png"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nfnt/resize"

	"github.com/llehouerou/dhwani/internal/catalog"
)

// IconSize is the edge length of notification thumbnails in pixels.
const IconSize = 128

// iconDir is overridden in tests.
var iconDir = func() (string, error) {
	keep, err := xdg.CacheFile(filepath.Join("dhwani", "notify", ".keep"))
	if err != nil {
		return "", err
	}
	return filepath.Dir(keep), nil
}

// Thumbnail writes a PNG of art scaled to fit IconSize and returns its path.
// Thumbnails are cached by a hash of the source bytes.
func Thumbnail(art *catalog.AlbumArt) (string, error) {
	if art == nil || len(art.Data) == 0 {
		return "", nil
	}
	dir, err := iconDir()
	if err != nil {
		return "", err
	}
	h := fnv.New64a()
	h.Write(art.Data)
	path := filepath.Join(dir, fmt.Sprintf("%x.png", h.Sum64()))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	img, _, err := image.Decode(bytes.NewReader(art.Data))
	if err != nil {
		return "", fmt.Errorf("decode cover: %w", err)
	}
	thumb := resize.Thumbnail(IconSize, IconSize, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
