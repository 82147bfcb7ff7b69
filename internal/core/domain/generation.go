package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// GenerationRequest is what the orchestrator sends to the remote model.
type GenerationRequest struct {
	Prompt       string
	MaxNewTokens int
	Temperature  float64
	DoSample     bool
	TopP         float64
}

// DefaultGenerationParams is the fixed sampling configuration used for every
// remote call.
var DefaultGenerationParams = GenerationRequest{
	MaxNewTokens: 300,
	Temperature:  0.7,
	DoSample:     true,
	TopP:         0.9,
}

type ContentSource string

const (
	SourceAI       ContentSource = "ai"
	SourceFallback ContentSource = "fallback"
	SourceError    ContentSource = "error"
)

type GenerationMetadata struct {
	ID          string        `json:"id"`
	ProductID   string        `json:"product_id"`
	ProductName string        `json:"product_name"`
	ContentType ContentType   `json:"content_type"`
	Tone        Tone          `json:"tone"`
	Language    Language      `json:"language"`
	Source      ContentSource `json:"source"`
	Timestamp   time.Time     `json:"timestamp"`
	Error       string        `json:"error,omitempty"`
}

// GenerationResult is produced once per request and never mutated after.
type GenerationResult struct {
	Content        string             `json:"content"`
	GenerationTime time.Duration      `json:"-"`
	Recommendation string             `json:"recommendation"`
	Metadata       GenerationMetadata `json:"metadata"`
}

// Fallback reports whether Content is not genuine model output.
func (r GenerationResult) Fallback() bool {
	return r.Metadata.Error != ""
}

func (r GenerationResult) MarshalJSON() ([]byte, error) {
	type alias GenerationResult
	return json.Marshal(struct {
		alias
		GenerationTimeSeconds float64 `json:"generation_time_seconds"`
	}{
		alias:                 alias(r),
		GenerationTimeSeconds: r.GenerationTime.Seconds(),
	})
}

type FailureReason string

const (
	ReasonTimeout          FailureReason = "timeout"
	ReasonCircuitOpen      FailureReason = "circuit_open"
	ReasonEmptyCompletion  FailureReason = "empty_completion"
	ReasonProviderDisabled FailureReason = "provider_disabled"
	ReasonTemporary        FailureReason = "temporary"
	ReasonError            FailureReason = "error"
)

// RemoteOutcome is the result of one remote generation attempt: either text
// or a failure reason with its cause.
type RemoteOutcome struct {
	Text   string
	Reason FailureReason
	Err    error
}

func Succeeded(text string) RemoteOutcome {
	return RemoteOutcome{Text: text}
}

func Failed(reason FailureReason, err error) RemoteOutcome {
	if err == nil {
		err = fmt.Errorf("%s", reason)
	}
	return RemoteOutcome{Reason: reason, Err: err}
}

func (o RemoteOutcome) OK() bool {
	return o.Err == nil
}

// Indicator is the metadata error string for a failed outcome.
func (o RemoteOutcome) Indicator() string {
	if o.OK() {
		return ""
	}
	return fmt.Sprintf("remote generation failed (%s): %v", o.Reason, o.Err)
}
