package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"aicompliance/internal/model"
	"aicompliance/internal/repository"
)

var ErrSessionNotFound = errors.New("chat session not found")

// Assistant persona. Responses are always in Spanish, matching the product's
// target market.
const chatSystemPrompt = `Eres un asistente especializado en cumplimiento normativo para startups de salud digital e insurtech en España. Tu función es ayudar con consultas sobre:

1. **Reglamento de IA de la UE (EU AI Act)**: Clasificación de riesgos, requisitos de cumplimiento, evaluación de conformidad
2. **Reglamento de Dispositivos Médicos (MDR)**: Requisitos para dispositivos médicos con IA
3. **GDPR**: Protección de datos personales y requisitos de privacidad
4. **Ley de Gobernanza de Datos (DGA)**: Intercambio y reutilización de datos
5. **Ley General de Sanidad**: Normativas sanitarias españolas
6. **Ley del Contrato de Seguro**: Regulaciones de seguros

**Instrucciones:**
- Proporciona respuestas precisas y basadas en la documentación oficial
- Usa ejemplos específicos para startups de salud digital e insurtech
- Incluye referencias a artículos específicos cuando sea relevante
- Ofrece recomendaciones prácticas y pasos específicos
- Si no tienes información suficiente, indícalo claramente
- Responde siempre en español
`

// ChatTurn is the outcome of one user message
type ChatTurn struct {
	UserMessage       *model.ChatMessage    `json:"user_message"`
	AIResponse        *model.ChatMessage    `json:"ai_response"`
	RelevantDocuments []model.DocumentMatch `json:"relevant_documents"`
}

// ChatService is the regulatory compliance assistant. Answers are grounded
// on corpus retrieval and generated by the LLM, with a deterministic
// fallback when the API is unavailable.
type ChatService struct {
	chats     repository.ChatRepo
	documents DocumentSearcher
	llm       *LLMClient
}

// NewChatService creates a new chat service
func NewChatService(chats repository.ChatRepo, documents DocumentSearcher, llm *LLMClient) *ChatService {
	return &ChatService{
		chats:     chats,
		documents: documents,
		llm:       llm,
	}
}

// CreateSession starts a new assistant session
func (s *ChatService) CreateSession(ctx context.Context, userID, title string) (*model.ChatSession, error) {
	if title == "" {
		title = "Nueva Consulta"
	}

	now := time.Now().UTC()
	session := &model.ChatSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.chats.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("Created chat session %s for user %s", session.ID, userID)
	return session, nil
}

// GetSessions lists the user's sessions, most recently active first
func (s *ChatService) GetSessions(ctx context.Context, userID string) ([]*model.ChatSession, error) {
	return s.chats.GetSessions(ctx, userID)
}

// GetMessages returns a session's messages in order
func (s *ChatService) GetMessages(ctx context.Context, sessionID, userID string) ([]*model.ChatMessage, error) {
	session, err := s.chats.GetSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return s.chats.GetMessages(ctx, sessionID)
}

// SendMessage records the user turn, retrieves relevant corpus chunks,
// generates the assistant turn and records it too
func (s *ChatService) SendMessage(ctx context.Context, sessionID, userID, message, category string) (*ChatTurn, error) {
	session, err := s.chats.GetSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	docs, err := s.documents.Search(ctx, message, 5, category)
	if err != nil {
		log.Printf("Document search failed for session %s: %v", sessionID, err)
		docs = nil
	}

	answer := s.answer(ctx, message, category, docs)

	now := time.Now().UTC()
	userMsg := &model.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		UserID:    userID,
		Role:      "user",
		Content:   message,
		CreatedAt: now,
		Metadata: model.MessageMetadata{
			Category:          category,
			RelevantDocsCount: len(docs),
		},
	}
	aiMsg := &model.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		UserID:    userID,
		Role:      "assistant",
		Content:   answer,
		CreatedAt: now,
		Metadata: model.MessageMetadata{
			Category:          category,
			RelevantDocsCount: len(docs),
		},
	}

	if err := s.chats.InsertMessage(ctx, userMsg); err != nil {
		return nil, err
	}
	if err := s.chats.InsertMessage(ctx, aiMsg); err != nil {
		return nil, err
	}
	if err := s.chats.TouchSession(ctx, sessionID, 2); err != nil {
		log.Printf("Failed to touch chat session %s: %v", sessionID, err)
	}

	if len(docs) > 3 {
		docs = docs[:3]
	}
	return &ChatTurn{
		UserMessage:       userMsg,
		AIResponse:        aiMsg,
		RelevantDocuments: docs,
	}, nil
}

// DeleteSession removes a session and its messages
func (s *ChatService) DeleteSession(ctx context.Context, sessionID, userID string) error {
	session, err := s.chats.GetSession(ctx, sessionID, userID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	if err := s.chats.DeleteMessages(ctx, sessionID); err != nil {
		return err
	}
	if err := s.chats.DeleteSession(ctx, sessionID); err != nil {
		return err
	}

	log.Printf("Deleted chat session %s", sessionID)
	return nil
}

// Stats summarizes the user's assistant usage
func (s *ChatService) Stats(ctx context.Context, userID string) (*model.ChatStats, error) {
	sessions, err := s.chats.CountSessions(ctx, userID)
	if err != nil {
		return nil, err
	}
	messages, err := s.chats.CountMessages(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.ChatStats{
		TotalSessions: int(sessions),
		TotalMessages: int(messages),
	}, nil
}

func (s *ChatService) answer(ctx context.Context, message, category string, docs []model.DocumentMatch) string {
	if s.llm == nil || !s.llm.IsEnabled() {
		return fallbackAnswer(message, category, len(docs))
	}

	var prompt strings.Builder
	if len(docs) > 0 {
		prompt.WriteString("Contexto normativo recuperado:\n\n")
		for _, doc := range docs {
			fmt.Fprintf(&prompt, "[%v] %s\n\n", doc.Metadata["title"], doc.Content)
		}
	}
	prompt.WriteString("Consulta del usuario: ")
	prompt.WriteString(message)

	answer, err := s.llm.Complete(ctx, chatSystemPrompt, prompt.String())
	if err != nil {
		log.Printf("LLM completion failed, using fallback: %v", err)
		return fallbackAnswer(message, category, len(docs))
	}
	return answer
}

func fallbackAnswer(message, category string, docCount int) string {
	if category == "" {
		category = "normativas generales"
	}
	return fmt.Sprintf("Esta es una respuesta de prueba para la consulta: '%s'. El sistema RAG encontró %d documentos relevantes sobre %s.", message, docCount, category)
}
