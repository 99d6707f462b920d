package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	defaultTranslateTTSURL = "https://translate.google.com/translate_tts"

	// The translate endpoint rejects longer inputs, so text is spoken in
	// chunks whose MP3 frames are concatenated.
	translateChunkRunes = 100
)

// TranslateSpeech uses the keyless Google Translate speech endpoint.
type TranslateSpeech struct {
	endpoint   string
	httpClient *http.Client
}

func NewTranslateSpeech(endpoint string, httpClient *http.Client) *TranslateSpeech {
	if endpoint == "" {
		endpoint = defaultTranslateTTSURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TranslateSpeech{endpoint: endpoint, httpClient: httpClient}
}

func (t *TranslateSpeech) Name() string { return "translate-tts" }

func (t *TranslateSpeech) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	chunks := splitSpeechText(text, translateChunkRunes)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("translate-tts: empty text")
	}

	var audio bytes.Buffer
	for i, chunk := range chunks {
		if err := t.fetchChunk(ctx, &audio, chunk, language, i, len(chunks)); err != nil {
			return nil, err
		}
	}
	return audio.Bytes(), nil
}

func (t *TranslateSpeech) fetchChunk(ctx context.Context, dst io.Writer, chunk, language string, idx, total int) error {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("q", chunk)
	q.Set("tl", language)
	q.Set("total", strconv.Itoa(total))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))
	q.Set("client", "tw-ob")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("translate-tts: build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("translate-tts: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("translate-tts: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return fmt.Errorf("translate-tts: read audio: %w", err)
	}
	return nil
}

// splitSpeechText breaks text into chunks of at most max runes, preferring to
// cut after punctuation, then at whitespace.
func splitSpeechText(text string, max int) []string {
	var chunks []string
	rest := []rune(strings.TrimSpace(text))
	for len(rest) > 0 {
		if len(rest) <= max {
			chunks = append(chunks, string(rest))
			break
		}

		cut := -1
		for i := max - 1; i > 0; i-- {
			if strings.ContainsRune(".,;:!?", rest[i]) {
				cut = i + 1
				break
			}
		}
		if cut < 0 {
			for i := max; i > 0; i-- {
				if unicode.IsSpace(rest[i]) {
					cut = i
					break
				}
			}
		}
		if cut < 0 {
			cut = max
		}

		if chunk := strings.TrimSpace(string(rest[:cut])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		rest = []rune(strings.TrimSpace(string(rest[cut:])))
	}
	return chunks
}
