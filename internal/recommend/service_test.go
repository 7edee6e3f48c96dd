package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/angelmondragon/orderchat-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/orderchat-backend/pkg/errors"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
	openai "github.com/sashabaranov/go-openai"
)

var testMenu = []types.MenuItem{
	{ID: 3, Name: "Veggie Supreme Wrap", Price: "16.75", DietaryPreference: []string{"vegetarian"}},
	{ID: 7, Name: "Regular Fries", Price: "8.50", DietaryPreference: []string{"vegetarian", "vegan"}},
}

func newTestService(t *testing.T, client ChatCompleter) *Service {
	t.Helper()
	svc, err := NewService(client,
		config.OpenAIConfig{ChatModel: "gpt-4o", VisionModel: "gpt-4o-mini"},
		config.ChatConfig{MaxTokens: 500, VisionMaxTokens: 2000},
	)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestRecommendMakesExactlyOneCall(t *testing.T) {
	t.Parallel()

	stub := &stubCompleter{content: `{"text":"fry-day!","items":[],"conclusion":""}`}
	svc := newTestService(t, stub)

	got, err := svc.Recommend(context.Background(), "Suggest me veg options?", true, testMenu)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != stub.content {
		t.Fatalf("raw response must pass through unparsed, got %q", got)
	}
	if stub.calls != 1 {
		t.Fatalf("expected exactly one outbound call, got %d", stub.calls)
	}
}

func TestRecommendPromptEmbedsMenuAndVegInstruction(t *testing.T) {
	t.Parallel()

	stub := &stubCompleter{content: "{}"}
	svc := newTestService(t, stub)

	if _, err := svc.Recommend(context.Background(), "what should I eat", true, testMenu); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := stub.lastRequest.Messages[0].Content
	if !strings.Contains(prompt, "Veggie Supreme Wrap") {
		t.Fatalf("prompt missing menu data: %s", prompt)
	}
	if !strings.Contains(prompt, "Only suggest vegetarian items.") {
		t.Fatalf("prompt missing veg instruction: %s", prompt)
	}
	if !strings.Contains(prompt, "what should I eat") {
		t.Fatalf("prompt missing user query: %s", prompt)
	}
	if stub.lastRequest.Model != "gpt-4o" || stub.lastRequest.MaxTokens != 500 {
		t.Fatalf("unexpected request shape: model=%s max_tokens=%d", stub.lastRequest.Model, stub.lastRequest.MaxTokens)
	}
}

func TestRecommendOmitsVegInstructionWhenOff(t *testing.T) {
	t.Parallel()

	stub := &stubCompleter{content: "{}"}
	svc := newTestService(t, stub)

	if _, err := svc.Recommend(context.Background(), "anything", false, testMenu); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(stub.lastRequest.Messages[0].Content, "Only suggest vegetarian items.") {
		t.Fatal("veg instruction must be absent when filter is off")
	}
}

func TestRecommendSignalsFailureDistinctly(t *testing.T) {
	t.Parallel()

	stub := &stubCompleter{err: errors.New("connection refused")}
	svc := newTestService(t, stub)

	_, err := svc.Recommend(context.Background(), "anything", false, testMenu)
	if err == nil {
		t.Fatal("network failure must surface as an error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("no retries allowed, got %d calls", stub.calls)
	}
}

func TestRecommendRejectsEmptyChoices(t *testing.T) {
	t.Parallel()

	stub := &stubCompleter{empty: true}
	svc := newTestService(t, stub)

	if _, err := svc.Recommend(context.Background(), "anything", false, testMenu); err == nil {
		t.Fatal("empty choices must not be returned as a valid answer")
	}
}

func TestRecommendForImageUsesVisionModel(t *testing.T) {
	t.Parallel()

	stub := &stubCompleter{content: "{}"}
	svc := newTestService(t, stub)

	if _, err := svc.RecommendForImage(context.Background(), "a box of golden fries", true, testMenu); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.lastRequest.Model != "gpt-4o-mini" || stub.lastRequest.MaxTokens != 2000 {
		t.Fatalf("unexpected request shape: model=%s max_tokens=%d", stub.lastRequest.Model, stub.lastRequest.MaxTokens)
	}
	if !strings.Contains(stub.lastRequest.Messages[0].Content, "a box of golden fries") {
		t.Fatal("prompt missing image description")
	}
}

func TestDescribeImageSendsImagePart(t *testing.T) {
	t.Parallel()

	stub := &stubCompleter{content: "golden fries in a red box"}
	svc := newTestService(t, stub)

	got, err := svc.DescribeImage(context.Background(), "https://cdn.example.com/upload.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "golden fries in a red box" {
		t.Fatalf("unexpected description %q", got)
	}

	parts := stub.lastRequest.Messages[0].MultiContent
	if len(parts) != 2 || parts[1].Type != openai.ChatMessagePartTypeImageURL {
		t.Fatalf("expected text+image parts, got %+v", parts)
	}
	if parts[1].ImageURL.URL != "https://cdn.example.com/upload.jpg" {
		t.Fatalf("unexpected image url %q", parts[1].ImageURL.URL)
	}
}

type stubCompleter struct {
	content     string
	err         error
	empty       bool
	calls       int
	lastRequest openai.ChatCompletionRequest
}

func (s *stubCompleter) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.calls++
	s.lastRequest = request
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	if s.empty {
		return openai.ChatCompletionResponse{}, nil
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: s.content}},
		},
	}, nil
}
