package services

import (
	"context"
	"fmt"

	"askai-gateway/internal/models"
	"askai-gateway/internal/repository"
)

type AskService struct {
	chat   ChatProvider
	speech SpeechSynthesizer
	audio  repository.AudioStore
}

func NewAskService(chat ChatProvider, speech SpeechSynthesizer, audio repository.AudioStore) *AskService {
	return &AskService{chat: chat, speech: speech, audio: audio}
}

// Answer runs the chat exchange for req. Provider failures come back as
// *ProviderError.
func (s *AskService) Answer(ctx context.Context, req *models.AskRequest) (string, error) {
	question := BuildQuestion(req.Question.String(), InstructionLanguage(req.Language))
	messages := BuildMessages(question, req.Context.String())

	text, err := s.chat.Complete(ctx, messages, req.Temperature)
	if err != nil {
		return "", &ProviderError{Provider: s.chat.Name(), Err: err}
	}
	return text, nil
}

// Speak synthesizes text and stores the audio, returning its filename.
func (s *AskService) Speak(ctx context.Context, text, language string) (string, error) {
	audio, err := s.speech.Synthesize(ctx, text, language)
	if err != nil {
		return "", &ProviderError{Provider: s.speech.Name(), Err: err}
	}

	name, err := s.audio.Save(ctx, audio)
	if err != nil {
		return "", fmt.Errorf("failed to save audio: %w", err)
	}
	return name, nil
}
