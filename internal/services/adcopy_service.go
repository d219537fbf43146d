package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"agencyhub/internal/models"
)

// AdCopyService wraps the text-generation backend for the ad center.
// Every call degrades gracefully; a generation failure is advisory and
// never breaks the rest of the dashboard.
type AdCopyService interface {
	GenerateAdCopy(ctx context.Context, productDescription, tone string) (models.GeneratedAdCopy, error)
	GenerateStrategy(ctx context.Context, businessDescription string) (models.GeneratedStrategy, error)
	AnalyzePerformance(ctx context.Context, metricsSummary string) (string, error)
}

type adCopyService struct {
	client *genai.Client
	model  string
}

// NewAdCopyService builds the generation client. An empty API key returns
// a service whose calls fail with a clear error instead of a nil panic.
func NewAdCopyService(ctx context.Context, apiKey, model string) (AdCopyService, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if apiKey == "" {
		return &adCopyService{model: model}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &adCopyService{client: client, model: model}, nil
}

var adCopySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"headline":     {Type: genai.TypeString},
		"primaryText":  {Type: genai.TypeString},
		"callToAction": {Type: genai.TypeString},
	},
	Required: []string{"headline", "primaryText", "callToAction"},
}

var strategySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"targetAudience":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"keywords":           {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"suggestedPlatforms": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"targetAudience", "keywords", "suggestedPlatforms"},
}

func (s *adCopyService) generateJSON(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	if s.client == nil {
		return fmt.Errorf("ad copy generation is not configured")
	}
	resp, err := s.client.Models.GenerateContent(ctx,
		s.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	)
	if err != nil {
		return fmt.Errorf("generate content: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return fmt.Errorf("empty generation response")
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("parse generation response: %w", err)
	}
	return nil
}

func (s *adCopyService) GenerateAdCopy(ctx context.Context, productDescription, tone string) (models.GeneratedAdCopy, error) {
	if strings.TrimSpace(productDescription) == "" {
		return models.GeneratedAdCopy{}, ErrTextRequired
	}
	if tone == "" {
		tone = "professional"
	}
	prompt := fmt.Sprintf(
		"Write a high-converting social media ad for the following product. Tone: %s.\nProduct: %s",
		tone, productDescription,
	)
	var out models.GeneratedAdCopy
	if err := s.generateJSON(ctx, prompt, adCopySchema, &out); err != nil {
		return models.GeneratedAdCopy{}, err
	}
	return out, nil
}

func (s *adCopyService) GenerateStrategy(ctx context.Context, businessDescription string) (models.GeneratedStrategy, error) {
	if strings.TrimSpace(businessDescription) == "" {
		return models.GeneratedStrategy{}, ErrTextRequired
	}
	prompt := fmt.Sprintf(
		"Act as a senior media buyer. Build a targeting strategy for this business: %s",
		businessDescription,
	)
	var out models.GeneratedStrategy
	if err := s.generateJSON(ctx, prompt, strategySchema, &out); err != nil {
		return models.GeneratedStrategy{}, err
	}
	return out, nil
}

func (s *adCopyService) AnalyzePerformance(ctx context.Context, metricsSummary string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("ad copy generation is not configured")
	}
	if strings.TrimSpace(metricsSummary) == "" {
		return "", ErrTextRequired
	}
	prompt := fmt.Sprintf(
		"You are a performance marketing analyst. In 3 short bullet points, analyze these campaign metrics and suggest one next step:\n%s",
		metricsSummary,
	)
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}
