// Package llm provides the AI text-completion client used by skill and role
// extraction, plus the utilities that turn untrusted model output into
// structured data. The model is treated as an opaque completion service whose
// responses may be malformed; callers always run the parse/fallback chain.
package llm

import "time"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: classification, extraction
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultProbeTimeout bounds the liveness check. The probe decides whether
// the AI path is attempted at all, so it must fail fast.
const DefaultProbeTimeout = time.Second

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string

	// ProbeURL is the endpoint hit by Available. Any transport error within
	// ProbeTimeout counts as unavailable.
	ProbeURL     string
	ProbeTimeout time.Duration
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		ProbeURL:     "https://generativelanguage.googleapis.com/",
		ProbeTimeout: DefaultProbeTimeout,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}
