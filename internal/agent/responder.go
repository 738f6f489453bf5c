// Package agent rewrites engine replies in a conversational voice using a
// Kimi-backed ADK agent. The deterministic engine stays authoritative: the
// agent only rephrases replies and proposes slot values through a tool call,
// and those values are merged as a fill-only patch.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
	"google.golang.org/genai"

	convservice "buildsmart_backend/internal/conversations/service"
	"buildsmart_backend/internal/engine/domain"
	"buildsmart_backend/platform/ai/moonshot"
	"buildsmart_backend/platform/logger"
)

const appName = "estimate_responder"

const instruction = `You are a friendly remodeling estimate assistant.
You receive the conversation state, the homeowner's latest message, and the
scripted reply the estimation engine produced.

PROTOCOL:
1. If the homeowner's message contains project details the state is missing
   (rooms, budget, design style, colors, materials, email, phone), call the
   'UpdateConversationState' tool with exactly those values.
2. Rewrite the scripted reply in a warm, concise voice. Keep every number,
   dollar amount, and option list from the scripted reply intact.
3. Output only the rewritten reply. Never invent prices or measurements.`

// ConversationResponder implements the conversations responder using an ADK
// agent backed by the Moonshot Kimi model.
type ConversationResponder struct {
	apiKey string
	model  string
	log    *logger.Logger
}

// New creates the responder. The ADK agent is built per turn so each tool
// invocation writes into that turn's patch.
func New(apiKey, model string, log *logger.Logger) *ConversationResponder {
	return &ConversationResponder{
		apiKey: apiKey,
		model:  model,
		log:    log,
	}
}

// Compile-time check that ConversationResponder implements Responder.
var _ convservice.Responder = (*ConversationResponder)(nil)

type stateUpdateInput struct {
	Rooms       []string `json:"rooms,omitempty"`
	BudgetMin   float64  `json:"budgetMin,omitempty"`
	BudgetMax   float64  `json:"budgetMax,omitempty"`
	DesignStyle string   `json:"designStyle,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Materials   []string `json:"materials,omitempty"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
}

type stateUpdateOutput struct {
	Message string `json:"message"`
}

// Respond runs one agent turn and returns the rewritten reply plus any patch
// the agent proposed.
func (r *ConversationResponder) Respond(ctx context.Context, state domain.State, utterance, fallback string) (string, domain.Patch, error) {
	var (
		mu    sync.Mutex
		patch domain.Patch
	)

	updateTool, err := functiontool.New(functiontool.Config{
		Name:        "UpdateConversationState",
		Description: "Records project details the homeowner mentioned",
	}, func(_ tool.Context, input stateUpdateInput) (stateUpdateOutput, error) {
		mu.Lock()
		defer mu.Unlock()
		patch = mergePatch(patch, input)
		return stateUpdateOutput{Message: "State updated"}, nil
	})
	if err != nil {
		return "", domain.Patch{}, fmt.Errorf("create state update tool: %w", err)
	}

	kimi := moonshot.NewModel(moonshot.Config{APIKey: r.apiKey, Model: r.model})
	adkAgent, err := llmagent.New(llmagent.Config{
		Name:        "EstimateResponder",
		Model:       kimi,
		Description: "Conversational voice for the remodeling estimator.",
		Instruction: instruction,
		Tools:       []tool.Tool{updateTool},
	})
	if err != nil {
		return "", domain.Patch{}, fmt.Errorf("create agent: %w", err)
	}

	sessionService := session.InMemoryService()
	run, err := runner.New(runner.Config{
		AppName:        appName,
		Agent:          adkAgent,
		SessionService: sessionService,
	})
	if err != nil {
		return "", domain.Patch{}, fmt.Errorf("create runner: %w", err)
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return "", domain.Patch{}, fmt.Errorf("marshal state: %w", err)
	}

	prompt := fmt.Sprintf("Conversation state:\n%s\n\nHomeowner message:\n%s\n\nScripted reply:\n%s",
		stateJSON, utterance, fallback)

	userMessage := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	userID := "responder"
	sessionID := uuid.New().String()
	if _, err := sessionService.Create(ctx, &session.CreateRequest{
		AppName:   appName,
		UserID:    userID,
		SessionID: sessionID,
	}); err != nil {
		return "", domain.Patch{}, fmt.Errorf("create session: %w", err)
	}

	var output strings.Builder
	for event, err := range run.Run(ctx, userID, sessionID, userMessage, agent.RunConfig{StreamingMode: agent.StreamingModeNone}) {
		if err != nil {
			return "", domain.Patch{}, err
		}
		if event.Content != nil {
			for _, part := range event.Content.Parts {
				output.WriteString(part.Text)
			}
		}
	}

	mu.Lock()
	result := patch
	mu.Unlock()

	return strings.TrimSpace(output.String()), result, nil
}

func mergePatch(patch domain.Patch, input stateUpdateInput) domain.Patch {
	for _, room := range input.Rooms {
		roomType := domain.RoomType(strings.ToLower(strings.TrimSpace(room)))
		if domain.IsKnownRoomType(roomType) {
			patch.Rooms = append(patch.Rooms, roomType)
		}
	}
	if input.BudgetMin > 0 && input.BudgetMax >= input.BudgetMin && patch.Budget == nil {
		patch.Budget = &domain.Budget{Min: input.BudgetMin, Max: input.BudgetMax}
	}
	if style := domain.DesignStyle(strings.ToUpper(strings.TrimSpace(input.DesignStyle))); domain.IsKnownDesignStyle(style) {
		patch.DesignStyle = style
	}
	if len(input.Colors) > 0 && len(patch.Colors) == 0 {
		patch.Colors = input.Colors
	}
	if len(input.Materials) > 0 && len(patch.Materials) == 0 {
		patch.Materials = input.Materials
	}
	if (input.Email != "" || input.Phone != "") && patch.Contact == nil {
		patch.Contact = &domain.Contact{
			Email: strings.ToLower(strings.TrimSpace(input.Email)),
			Phone: strings.TrimSpace(input.Phone),
		}
	}
	return patch
}
