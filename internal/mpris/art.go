//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/llehouerou/dhwani/internal/catalog"
)

// cacheDir is overridden in tests.
var cacheDir = func() (string, error) {
	return xdg.CacheFile(filepath.Join("dhwani", "art", ".keep"))
}

// artURL returns a file:// URL for the track's cover art. Embedded art is
// written once to the cache directory, keyed by a hash of the image bytes.
func artURL(t catalog.Track) (string, error) {
	if t.AlbumArt == nil || len(t.AlbumArt.Data) == 0 {
		return "", nil
	}

	keep, err := cacheDir()
	if err != nil {
		return "", err
	}
	h := fnv.New64a()
	h.Write(t.AlbumArt.Data)
	path := filepath.Join(filepath.Dir(keep), fmt.Sprintf("%x%s", h.Sum64(), artExt(t.AlbumArt.Format)))

	if _, err := os.Stat(path); err != nil {
		if err := os.WriteFile(path, t.AlbumArt.Data, 0o600); err != nil {
			return "", err
		}
	}
	return "file://" + path, nil
}

func artExt(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ".jpg"
}
