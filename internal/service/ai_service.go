package service

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/pkg/config"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

const assistantSystemPrompt = `Kamu adalah EduGuru, asisten AI untuk guru di Indonesia. ` +
	`Bantu guru dengan administrasi kelas, perencanaan pembelajaran, penilaian, dan pembinaan siswa. ` +
	`Jawab dengan bahasa Indonesia yang ramah, ringkas, dan praktis.`

const reflectionSystemPrompt = `Kamu adalah mentor pedagogis untuk guru di Indonesia. ` +
	`Berdasarkan catatan jurnal mengajar yang diberikan, tuliskan refleksi singkat: apa yang berjalan baik, ` +
	`apa yang perlu diperbaiki, dan satu saran konkret untuk pertemuan berikutnya. Gunakan bahasa Indonesia.`

const teachingMethodSystemPrompt = `Kamu adalah ahli metode pembelajaran untuk sekolah di Indonesia. ` +
	`Sarankan 3 metode pembelajaran yang cocok untuk topik dan kelas yang diberikan, ` +
	`masing-masing dengan langkah penerapan singkat. Gunakan bahasa Indonesia.`

const followUpSystemPrompt = `Kamu adalah konselor pendidikan (guru BK) yang berpengalaman. ` +
	`Berdasarkan catatan sesi konseling siswa, sarankan langkah tindak lanjut yang konkret dan empatik. ` +
	`Jaga kerahasiaan siswa dan gunakan bahasa Indonesia.`

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// completionClient is the slice of the OpenAI client the service needs.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// AIService wraps the language-model features: the general assistant chat
// and the journal, teaching-method and counseling helpers. Without an API
// key every call reports the assistant as unavailable.
type AIService struct {
	client completionClient
	config config.AIConfig
	logger *zap.Logger
}

// NewAIService constructs an AIService. A missing API key leaves the
// client nil and the service disabled.
func NewAIService(cfg config.AIConfig, logger *zap.Logger) *AIService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &AIService{config: cfg, logger: logger}
	if cfg.APIKey != "" {
		s.client = openai.NewClient(cfg.APIKey)
	}
	return s
}

// Enabled reports whether the assistant is configured.
func (s *AIService) Enabled() bool {
	return s.client != nil
}

// Chat answers a free-form assistant conversation.
func (s *AIService) Chat(ctx context.Context, history []ChatMessage, message string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleSystem, Content: assistantSystemPrompt,
	})
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: message,
	})
	return s.complete(ctx, messages)
}

// Reflection writes a short pedagogical reflection for a journal entry.
func (s *AIService) Reflection(ctx context.Context, subject, activities, notes string) (string, error) {
	var b strings.Builder
	if subject != "" {
		fmt.Fprintf(&b, "Mata pelajaran: %s\n", subject)
	}
	if activities != "" {
		fmt.Fprintf(&b, "Kegiatan: %s\n", activities)
	}
	if notes != "" {
		fmt.Fprintf(&b, "Catatan tambahan: %s\n", notes)
	}
	if b.Len() == 0 {
		return "", appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Journal details are required")
	}
	return s.prompted(ctx, reflectionSystemPrompt, b.String())
}

// TeachingMethods suggests methods for a topic and class level.
func (s *AIService) TeachingMethods(ctx context.Context, topic, grade string) (string, error) {
	if topic == "" {
		return "", appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Topic is required")
	}
	prompt := fmt.Sprintf("Topik: %s", topic)
	if grade != "" {
		prompt += fmt.Sprintf("\nJenjang/kelas: %s", grade)
	}
	return s.prompted(ctx, teachingMethodSystemPrompt, prompt)
}

// FollowUp suggests counseling follow-up steps from session notes.
func (s *AIService) FollowUp(ctx context.Context, counselingType, notes string) (string, error) {
	if notes == "" {
		return "", appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Counseling notes are required")
	}
	prompt := fmt.Sprintf("Jenis konseling: %s\nCatatan sesi: %s", counselingType, notes)
	return s.prompted(ctx, followUpSystemPrompt, prompt)
}

func (s *AIService) prompted(ctx context.Context, system, user string) (string, error) {
	return s.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: user},
	})
}

func (s *AIService) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	if s.client == nil {
		return "", appErrors.Clone(appErrors.ErrAIUnavailable, "AI assistant is not configured")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Messages:    messages,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		s.logger.Error("chat completion failed", zap.Error(err))
		return "", appErrors.Wrap(err, appErrors.ErrAIUnavailable.Code, appErrors.ErrAIUnavailable.Status, appErrors.ErrAIUnavailable.Message)
	}
	if len(resp.Choices) == 0 {
		return "", appErrors.Clone(appErrors.ErrAIUnavailable, "AI assistant returned no answer")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
