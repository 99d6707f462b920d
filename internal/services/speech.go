package services

import "context"

// SpeechSynthesizer turns text into MP3 audio spoken in the given language.
type SpeechSynthesizer interface {
	Name() string
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}
