package tags

import (
	"strings"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

// readFLACWithVorbisComments reads FLAC metadata straight from the Vorbis
// comment block when dhowden/tag fails.
func readFLACWithVorbisComments(path string) (*Tag, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, err
	}

	t := &Tag{Path: path}
	for _, meta := range f.Meta {
		if meta.Type != goflac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, err
		}
		get := func(key string) string {
			values, err := cmts.Get(key)
			if err != nil || len(values) == 0 {
				return ""
			}
			return values[0]
		}

		t.Title = get(flacvorbis.FIELD_TITLE)
		t.Artist = get(flacvorbis.FIELD_ARTIST)
		if artists, err := cmts.Get(flacvorbis.FIELD_ARTIST); err == nil && len(artists) > 1 {
			t.Artist = strings.Join(artists, "; ")
		}
		t.AlbumArtist = get("ALBUMARTIST")
		t.Album = get(flacvorbis.FIELD_ALBUM)
		t.Genre = get(flacvorbis.FIELD_GENRE)
		t.Date = get(flacvorbis.FIELD_DATE)
		t.TrackNumber, t.TotalTracks = parseTrackNumber(get(flacvorbis.FIELD_TRACKNUMBER))
		t.DiscNumber, _ = parseTrackNumber(get("DISCNUMBER"))
		break
	}
	t.finish()
	return t, nil
}

// readFLACPicture returns the front cover, or the first picture, embedded
// in a FLAC file.
func readFLACPicture(path string) (data []byte, mimeType string, err error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, "", err
	}

	var fallback *flacpicture.MetadataBlockPicture
	for _, meta := range f.Meta {
		if meta.Type != goflac.Picture {
			continue
		}
		pic, err := flacpicture.ParseFromMetaDataBlock(*meta)
		if err != nil {
			continue
		}
		if pic.PictureType == flacpicture.PictureTypeFrontCover {
			return pic.ImageData, pic.MIME, nil
		}
		if fallback == nil {
			fallback = pic
		}
	}
	if fallback != nil {
		return fallback.ImageData, fallback.MIME, nil
	}
	return nil, "", nil
}
