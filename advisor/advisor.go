// Package advisor calls the Gemini generateContent API for tactical
// advice over the current board. The service is treated as unreliable:
// every failure collapses into a single generic user-facing message and
// never touches board state.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// FallbackMessage is the one user-visible error string for any advisory
// failure.
const FallbackMessage = "Ocorreu um erro ao consultar a IA."

// Advice is the parsed outcome of one consultation. Exactly one of the
// three shapes is populated: a frame-sequence proposal (Frames +
// Explanation), a save request (TacticName), or plain prose (Text).
type Advice struct {
	Text        string
	Frames      []AdviceFrame
	Explanation string
	TacticName  string
}

// AdviceFrame matches the tool schema, which omits the board-only scale
// field.
type AdviceFrame struct {
	Players []AdvicePlayer `json:"players"`
	Ball    AdviceBall     `json:"ball"`
}

type AdvicePlayer struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Team   string  `json:"team"`
	Number string  `json:"number"`
	Color  string  `json:"color"`
}

type AdviceBall struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Service struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

func New(apiKey, model string) *Service {
	return &Service{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpc:   loggingClient(),
	}
}

// NewWithBaseURL points the service at a different endpoint. Tests use
// it against a local fake.
func NewWithBaseURL(apiKey, model, baseURL string) *Service {
	s := New(apiKey, model)
	s.baseURL = strings.TrimRight(baseURL, "/")
	return s
}

// Request/response wire shapes for generateContent.

type genRequest struct {
	SystemInstruction content   `json:"systemInstruction"`
	Contents          []content `json:"contents"`
	Tools             []toolset `json:"tools"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text         string        `json:"text,omitempty"`
	FunctionCall *functionCall `json:"functionCall,omitempty"`
}

type functionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

type toolset struct {
	FunctionDeclarations json.RawMessage `json:"functionDeclarations"`
}

type genResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Advise sends the prompt plus the serialized board and parses the
// reply. The first function call in the response wins; otherwise the
// text parts are concatenated.
func (s *Service) Advise(ctx context.Context, prompt string, boardState any) (Advice, error) {
	stateJSON, err := json.Marshal(boardState)
	if err != nil {
		return Advice{}, fmt.Errorf("encode board state: %w", err)
	}

	reqBody := genRequest{
		SystemInstruction: content{Parts: []part{{Text: systemPrompt}}},
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: fmt.Sprintf("Estado atual do campo: %s. Pergunta: %s", stateJSON, prompt)}},
		}},
		Tools: []toolset{{FunctionDeclarations: json.RawMessage(toolDeclarations)}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return Advice{}, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Advice{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.httpc.Do(req)
	if err != nil {
		return Advice{}, fmt.Errorf("advisory request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Advice{}, fmt.Errorf("advisory request: non-200 response: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Advice{}, fmt.Errorf("read advisory response: %w", err)
	}
	return parseResponse(body)
}

func parseResponse(body []byte) (Advice, error) {
	var parsed genResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Advice{}, fmt.Errorf("decode advisory response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return Advice{}, fmt.Errorf("advisory response carried no candidates")
	}

	var texts []string
	for _, p := range parsed.Candidates[0].Content.Parts {
		if p.FunctionCall != nil {
			return parseFunctionCall(p.FunctionCall)
		}
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	if len(texts) == 0 {
		return Advice{}, fmt.Errorf("advisory response carried no usable parts")
	}
	return Advice{Text: strings.Join(texts, "")}, nil
}

func parseFunctionCall(call *functionCall) (Advice, error) {
	switch call.Name {
	case "updateBoardWithAnimation":
		var args struct {
			Frames      []AdviceFrame `json:"frames"`
			Explanation string        `json:"explanation"`
		}
		if err := json.Unmarshal(call.Args, &args); err != nil {
			return Advice{}, fmt.Errorf("decode animation proposal: %w", err)
		}
		if len(args.Frames) == 0 {
			return Advice{}, fmt.Errorf("animation proposal carried no frames")
		}
		return Advice{Frames: args.Frames, Explanation: args.Explanation}, nil

	case "saveTactic":
		var args struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(call.Args, &args); err != nil {
			return Advice{}, fmt.Errorf("decode save proposal: %w", err)
		}
		if args.Name == "" {
			return Advice{}, fmt.Errorf("save proposal carried no name")
		}
		return Advice{TacticName: args.Name}, nil

	default:
		return Advice{}, fmt.Errorf("unknown tool call %q", call.Name)
	}
}
