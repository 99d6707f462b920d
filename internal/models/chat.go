package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

const (
	DefaultTemperature = 0.5
	DefaultLanguage    = "en"
)

// ChatMessage is one turn of the exchange sent to the chat provider.
type ChatMessage struct {
	Role    string `json:"role"` // "system", "assistant" or "user"
	Content string `json:"content"`
}

// Prompt holds a question or context that arrived either as a JSON string or
// as any other JSON value. Structured values are compacted to text at decode
// time, so callers only ever see Text.
type Prompt struct {
	Text       string
	Structured bool
	present    bool
}

func TextPrompt(s string) Prompt {
	return Prompt{Text: s, present: true}
}

func (p *Prompt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*p = Prompt{Text: s, present: true}
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return err
	}
	*p = Prompt{Text: buf.String(), Structured: true, present: true}
	return nil
}

// Present reports whether the field was supplied with a non-null value.
func (p Prompt) Present() bool { return p.present }

func (p Prompt) String() string { return p.Text }

// AskRequest is the body of POST /.
type AskRequest struct {
	Question    Prompt  `json:"question"`
	Context     Prompt  `json:"context"`
	Temperature float64 `json:"temperature"`
	Audio       bool    `json:"audio"`
	Language    string  `json:"language"`
}

func (r *AskRequest) UnmarshalJSON(data []byte) error {
	type alias AskRequest
	a := alias{Temperature: DefaultTemperature, Language: DefaultLanguage}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Language == "" {
		a.Language = DefaultLanguage
	}
	*r = AskRequest(a)
	return nil
}

var (
	ErrMissingQuestion = errors.New("question is required")
	ErrMissingContext  = errors.New("context is required")
)

func (r *AskRequest) Validate() error {
	if !r.Question.Present() {
		return ErrMissingQuestion
	}
	if !r.Context.Present() {
		return ErrMissingContext
	}
	return nil
}

// AskResponse is the success envelope. AudioURL is only set when audio was
// requested; it carries AudioErrorSentinel when synthesis failed.
type AskResponse struct {
	Response string `json:"response"`
	AudioURL string `json:"audio_url,omitempty"`
}

const AudioErrorSentinel = "error 401"

// ErrorResponse is the flat in-band error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
