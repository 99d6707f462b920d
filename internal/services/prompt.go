package services

import (
	"fmt"

	"askai-gateway/internal/models"
)

// RequestMarker prefixes every question so the system instruction can refer
// to it.
const RequestMarker = "request: "

const SystemInstruction = "Please provide concise and specific answers to prompts starting with 'request: '. " +
	"If you don't know the answer, simply reply with 'I don't know'. " +
	"Do not mention being an AI or make any references to artificial intelligence. " +
	"Directly provide the answer if you know it. " +
	"It's crucial that you only say 'I don't know' in case you cannot answer how I said before."

// BuildQuestion marks the question and asks for an answer in the idiom of
// languageName.
func BuildQuestion(question, languageName string) string {
	return fmt.Sprintf("%s%s. Answer in %s idiom.", RequestMarker, question, languageName)
}

// BuildMessages returns the fixed three-turn exchange: system instruction,
// question as an assistant turn, context as the user turn.
func BuildMessages(question, context string) []models.ChatMessage {
	return []models.ChatMessage{
		{Role: "system", Content: SystemInstruction},
		{Role: "assistant", Content: question},
		{Role: "user", Content: context},
	}
}
