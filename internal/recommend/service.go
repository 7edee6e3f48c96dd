package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/angelmondragon/orderchat-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/orderchat-backend/pkg/errors"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
	openai "github.com/sashabaranov/go-openai"
)

const vegInstruction = " Only suggest vegetarian items."

// ChatCompleter is the slice of the OpenAI client the gateway needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Service is the stateless recommendation gateway. Each call builds one
// prompt from the menu and issues exactly one completion request; the raw
// response text is returned unparsed for the chat transcript. No retries.
type Service struct {
	client          ChatCompleter
	chatModel       string
	visionModel     string
	maxTokens       int
	visionMaxTokens int
	timeout         time.Duration
}

// NewService wires the gateway against a completion client.
func NewService(client ChatCompleter, openaiCfg config.OpenAIConfig, chatCfg config.ChatConfig) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("completion client required")
	}
	return &Service{
		client:          client,
		chatModel:       openaiCfg.ChatModel,
		visionModel:     openaiCfg.VisionModel,
		maxTokens:       chatCfg.MaxTokens,
		visionMaxTokens: chatCfg.VisionMaxTokens,
		timeout:         chatCfg.GatewayTimeout,
	}, nil
}

// Recommend answers a free-text menu query. The returned string is the raw
// model output; the caller stores it as a bot message without parsing.
func (s *Service) Recommend(ctx context.Context, userText string, vegOnly bool, menu []types.MenuItem) (string, error) {
	prompt, err := queryPrompt(userText, vegOnly, menu)
	if err != nil {
		return "", err
	}
	return s.complete(ctx, s.chatModel, s.maxTokens, prompt)
}

// RecommendForImage matches menu items against an image description
// produced by DescribeImage.
func (s *Service) RecommendForImage(ctx context.Context, imageDescription string, vegOnly bool, menu []types.MenuItem) (string, error) {
	prompt, err := imagePrompt(imageDescription, vegOnly, menu)
	if err != nil {
		return "", err
	}
	return s.complete(ctx, s.visionModel, s.visionMaxTokens, prompt)
}

// DescribeImage asks the vision model for a natural-language description of
// the uploaded image. The description feeds RecommendForImage exactly like
// typed user text.
func (s *Service) DescribeImage(ctx context.Context, imageURL string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.visionModel,
		MaxTokens: s.visionMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: "Describe the food shown in this image in one or two sentences.",
					},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: imageURL},
					},
				},
			},
		},
	})
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "image description call failed")
	}
	if len(resp.Choices) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "image description returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *Service) complete(ctx context.Context, model string, maxTokens int, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "recommendation call failed")
	}
	if len(resp.Choices) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "recommendation returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func queryPrompt(userText string, vegOnly bool, menu []types.MenuItem) (string, error) {
	menuJSON, err := json.Marshal(menu)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal menu data")
	}
	return fmt.Sprintf(`Here is the menu data: %s.%s Based on this, answer the user's query: %s. Return the response in the format strictly - { "text": "", "items": [{ "id": number, "name": string, "price": string }], "conclusion": "" } where "text" is a creative/clever/funny information in around 25 words and "items" is an array of matching menu items (only id, name, and price) with a maximum of 5 items and a minimum of 2 items. STRICT FORMAT RULES:
      - DO NOT include any markdown formatting.
      - DO NOT include explanations or additional text.
      - Only return a valid JSON object, nothing else.`, menuJSON, instruction(vegOnly), userText), nil
}

func imagePrompt(imageDescription string, vegOnly bool, menu []types.MenuItem) (string, error) {
	menuJSON, err := json.Marshal(menu)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal menu data")
	}
	return fmt.Sprintf(`Here is the menu data: %s.%s Based on this image description: "%s". Return the response in the format { "text": "", "items": [{ id: number, name: string, price: string }], "conclusion": "" } where "text" is a creative/clever/funny information in around 25 words and "items" is an array of matching menu items (only id, name, and price) with a maximum of 6 items and a minimum of 2 items. Do not include any extra text or explanations.`, menuJSON, instruction(vegOnly), imageDescription), nil
}

func instruction(vegOnly bool) string {
	if vegOnly {
		return vegInstruction
	}
	return ""
}
