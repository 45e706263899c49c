// Package ai wraps the optional text-generation helpers. Every call
// degrades to a sensible fallback, so the rest of the system never has to
// care whether an API key is configured.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// DefaultQuoteMessage is used whenever message generation is unavailable.
const DefaultQuoteMessage = "Olá, segue o orçamento solicitado."

// Assistant produces customer-facing text. Implementations never return
// errors; they fall back to safe defaults instead.
type Assistant interface {
	// ImproveDescription rewrites a service description to sound more
	// professional. On any failure the current text comes back.
	ImproveDescription(ctx context.Context, name, current string) string

	// ComposeQuoteMessage drafts a short message to send alongside a
	// quote for the named client.
	ComposeQuoteMessage(ctx context.Context, clientName, total string, serviceNames []string) string
}

// NoopAssistant is the fallback when no provider is configured.
type NoopAssistant struct{}

func (NoopAssistant) ImproveDescription(_ context.Context, _, current string) string {
	return current
}

func (NoopAssistant) ComposeQuoteMessage(_ context.Context, _, _ string, _ []string) string {
	return DefaultQuoteMessage
}

// GeminiAssistant calls the Google Generative Language REST API.
type GeminiAssistant struct {
	APIKey string
	Model  string
	Client *http.Client
}

func NewGeminiAssistant(apiKey, model string) *GeminiAssistant {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiAssistant{
		APIKey: apiKey,
		Model:  model,
		Client: &http.Client{Timeout: 20 * time.Second},
	}
}

func (g *GeminiAssistant) ImproveDescription(ctx context.Context, name, current string) string {
	if strings.TrimSpace(name+current) == "" {
		return current
	}
	prompt := fmt.Sprintf("Melhore esta descrição de serviço para um prestador de serviço profissional.\nServiço: %s.\nDescrição atual: %s.\nRetorne apenas a nova descrição sugerida, de forma persuasiva e profissional.", name, current)
	out, err := g.generate(ctx, prompt)
	if err != nil {
		log.Printf("[AI] Description rewrite unavailable, keeping original: %v", err)
		return current
	}
	return out
}

func (g *GeminiAssistant) ComposeQuoteMessage(ctx context.Context, clientName, total string, serviceNames []string) string {
	prompt := fmt.Sprintf("Escreva uma mensagem curta e profissional de WhatsApp/Email para enviar um orçamento.\nCliente: %s.\nValor total: %s.\nServiços inclusos: %s.\nA mensagem deve ser cordial e convidar para o fechamento.", clientName, total, strings.Join(serviceNames, ", "))
	out, err := g.generate(ctx, prompt)
	if err != nil {
		log.Printf("[AI] Quote message unavailable, using default: %v", err)
		return DefaultQuoteMessage
	}
	return out
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiAssistant) generate(ctx context.Context, prompt string) (string, error) {
	if g.APIKey == "" {
		return "", fmt.Errorf("no API key configured")
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", g.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.APIKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	out := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if out == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return out, nil
}
