package insight

import (
	"context"
	"strings"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/prompts"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// Chat answers one question against the record text the caller provides,
// usually a summary produced by Summarize.
func (s *Service) Chat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	if strings.TrimSpace(req.Question) == "" {
		return nil, invalidRequestError{msg: "question is required"}
	}
	if req.Model == "" {
		req.Model = s.cfg.Model
	}
	prompt := prompts.Render(s.store.Get(prompts.Chat), map[string]string{
		"context":  req.Context,
		"question": req.Question,
	})
	text, err := s.gen.Generate(ctx, req.Model, systemPrompt, prompt)
	if err != nil {
		return nil, classifyAWS(err, "", "")
	}
	return &types.ChatResponse{Response: text}, nil
}
