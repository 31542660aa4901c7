package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"wellness-engine/domain"
)

// AIService is the optional rationale-augmentation layer. It is strictly
// best effort: any failure yields the empty string and the caller keeps the
// template rationale. It never retries and never blocks persona assignment.
type AIService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewAIService(enabled bool, model string, timeout time.Duration) *AIService {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if model == "" {
		model = "gpt-4o-mini"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AIService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		model:   model,
		enabled: enabled && apiKey != "",
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Enabled reports whether augmentation will be attempted at all.
func (s *AIService) Enabled() bool {
	return s.enabled
}

// AugmentPersonaRationale rewrites the template rationale in a warmer
// voice while keeping every figure intact. Returns an error when disabled
// so callers fall back without special-casing.
func (s *AIService) AugmentPersonaRationale(
	persona domain.Persona,
	templateRationale string,
) (string, error) {
	if !s.enabled {
		return "", fmt.Errorf("ai augmentation disabled")
	}

	prompt := fmt.Sprintf(`Rewrite this financial-wellness explanation in a supportive, plain-language voice.

USER PERSONA: %s — %s

CURRENT EXPLANATION:
%s

RULES:
1. Keep every dollar amount, percentage, count, and card digit exactly as written.
2. Two to three sentences, second person, no advice beyond what is already implied.
3. Supportive and factual. Never shame, judge, compare the user to others, or pressure them to act.
4. Do not invent figures or products that are not in the explanation.`,
		persona.Name, persona.Description, templateRationale)

	augmented, err := s.callLLM(prompt)
	if err != nil {
		return "", err
	}
	augmented = strings.TrimSpace(augmented)
	if augmented == "" {
		return "", fmt.Errorf("empty completion")
	}
	return augmented, nil
}

func (s *AIService) callLLM(prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: s.model,
		Messages: []Message{
			{
				Role: "system",
				Content: "You are a financial-wellness writing assistant. You rewrite rule-generated explanations " +
					"of a user's own account activity into clear, supportive plain language. You never give " +
					"regulated financial advice, never shame or pressure the reader, and never change or invent numbers.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 220,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return openAIResp.Choices[0].Message.Content, nil
}
