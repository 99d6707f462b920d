package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"
)

// GoogleSpeech synthesizes through the Google Cloud Text-to-Speech REST API.
type GoogleSpeech struct {
	svc *texttospeech.Service
}

func NewGoogleSpeech(ctx context.Context, apiKey, endpoint string) (*GoogleSpeech, error) {
	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := texttospeech.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Text-to-Speech client: %w", err)
	}
	return &GoogleSpeech{svc: svc}, nil
}

func (g *GoogleSpeech) Name() string { return "google-tts" }

func (g *GoogleSpeech) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("google-tts: empty text")
	}

	resp, err := g.svc.Text.Synthesize(&texttospeech.SynthesizeSpeechRequest{
		Input:       &texttospeech.SynthesisInput{Text: text},
		Voice:       &texttospeech.VoiceSelectionParams{LanguageCode: language},
		AudioConfig: &texttospeech.AudioConfig{AudioEncoding: "MP3"},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("google-tts: synthesize: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("google-tts: decode audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("google-tts: empty audio")
	}
	return audio, nil
}
