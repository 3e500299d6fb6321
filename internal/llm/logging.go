package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/store"
)

// LoggingProvider decorates a Provider so every request, successful or
// not, lands in the llm_events table.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
	log       *zap.Logger
}

// WithLogging wraps p with event recording.
func WithLogging(p Provider, repo store.EventRepo, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, eventRepo: repo, log: log}
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	l.record(ctx, req, resp, err, time.Since(start))
	return resp, err
}

// record writes the event. A failed write is logged and swallowed; the
// caller's request already succeeded or failed on its own terms.
func (l *LoggingProvider) record(ctx context.Context, req Request, resp *Response, genErr error, latency time.Duration) {
	purpose := PurposeFrom(ctx)

	data := store.LLMEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latency.Milliseconds(),
		Success:     genErr == nil,
		RequestBody: renderPrompt(req),
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
	}
	if genErr != nil {
		data.ErrorMessage = genErr.Error()
	}

	if err := l.eventRepo.AppendLLMEvent(ctx, data); err != nil {
		l.log.Warn("failed to log LLM event",
			zap.String("purpose", purpose),
			zap.Error(err),
		)
	}
}

// renderPrompt flattens the request into the readable transcript form
// stored with each event.
func renderPrompt(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
