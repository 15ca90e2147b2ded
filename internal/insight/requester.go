// Package insight produces a short natural-language review of a set of
// transactions using an external text-generation API.
package insight

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"pocketledger/internal/logger"
	"pocketledger/internal/models"
)

// Fixed replies returned in place of generated text.
const (
	NotConfiguredReply = "API Key not configured."
	EmptyReply         = "Could not generate analysis."
	FailureReply       = "Sorry, I couldn't analyze your transactions at this moment. Please try again later."
)

// ErrNotConfigured marks an outcome produced without calling the API.
var ErrNotConfigured = errors.New("insight: no API key configured")

// Outcome is the result of one request. Text is always set; Err is non-nil
// when Text is a fallback for a failed or skipped call.
type Outcome struct {
	Text string
	Err  error
}

// Failed reports whether the outcome is a fallback.
func (o Outcome) Failed() bool { return o.Err != nil }

// Requester builds the prompt and calls the generator.
type Requester struct {
	generator      Generator
	currencySymbol string
	timeout        time.Duration
	log            *zap.SugaredLogger
}

// NewRequester creates a Requester. A nil generator means no credential is
// configured. A non-positive timeout leaves the deadline to ctx.
func NewRequester(generator Generator, currencySymbol string, timeout time.Duration) *Requester {
	return &Requester{
		generator:      generator,
		currencySymbol: currencySymbol,
		timeout:        timeout,
		log:            logger.Named("insight"),
	}
}

// Configured reports whether requests will reach the API.
func (r *Requester) Configured() bool {
	return r.generator != nil
}

// Request returns generated text for transactions, or a fixed reply. It
// never returns an error.
func (r *Requester) Request(ctx context.Context, transactions []models.Transaction, contextLabel string) string {
	return r.Do(ctx, transactions, contextLabel).Text
}

// Do is Request with the failure cause kept alongside the text.
func (r *Requester) Do(ctx context.Context, transactions []models.Transaction, contextLabel string) Outcome {
	if r.generator == nil {
		return Outcome{Text: NotConfiguredReply, Err: ErrNotConfigured}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	prompt := BuildPrompt(transactions, contextLabel, r.currencySymbol)
	text, err := r.generator.Generate(ctx, prompt)
	if err != nil {
		r.log.Errorw("insight request failed",
			"error", err,
			"context", contextLabel,
			"transactions", len(transactions),
		)
		return Outcome{Text: FailureReply, Err: err}
	}

	if strings.TrimSpace(text) == "" {
		return Outcome{Text: EmptyReply}
	}
	return Outcome{Text: text}
}
