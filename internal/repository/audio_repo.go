package repository

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	AudioExtension   = ".mp3"
	AudioContentType = "audio/mpeg"
)

var ErrAudioNotFound = errors.New("audio file not found")

// AudioStore keeps generated speech until it is fetched. Nothing here deletes
// artifacts; expiry is left to the backend (TTL) or to operations.
type AudioStore interface {
	Save(ctx context.Context, audio []byte) (string, error)
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
}

var audioFilenameRegex = regexp.MustCompile(`^[0-9a-f]{32}\.mp3$`)

// NewAudioFilename returns a random "<32 hex>.mp3" name.
func NewAudioFilename() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + AudioExtension
}

// ValidAudioFilename reports whether name could have come from NewAudioFilename.
func ValidAudioFilename(name string) bool {
	return audioFilenameRegex.MatchString(name)
}
