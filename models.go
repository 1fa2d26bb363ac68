package geminisdk

import (
	"github.com/oneryalcin/gemini-cli-sdk/internal/config"
	"github.com/oneryalcin/gemini-cli-sdk/internal/models"
)

// Re-export model types from internal/models.

// Model holds metadata for a single Gemini model.
type Model = models.Model

// ModelCapability represents a model capability such as vision or tool use.
type ModelCapability = models.Capability

// ModelCostTier represents a provider-agnostic relative cost tier.
type ModelCostTier = models.CostTier

// Model capability constants.
const (
	// ModelCapVision indicates the model supports image/vision inputs.
	ModelCapVision = models.CapVision
	// ModelCapToolUse indicates the model supports tool/function calling.
	ModelCapToolUse = models.CapToolUse
	// ModelCapReasoning indicates the model supports extended reasoning.
	ModelCapReasoning = models.CapReasoning
	// ModelCapStructuredOutput indicates the model supports structured JSON output.
	ModelCapStructuredOutput = models.CapStructuredOutput
)

// Model cost tier constants.
const (
	// ModelCostTierHigh represents pro-class pricing.
	ModelCostTierHigh = models.CostTierHigh
	// ModelCostTierMedium represents flash-class pricing.
	ModelCostTierMedium = models.CostTierMedium
	// ModelCostTierLow represents flash-lite-class pricing.
	ModelCostTierLow = models.CostTierLow
)

// Default model identifiers.
const (
	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel = config.DefaultModel
	// DefaultParserModel is the model used by the LLM-assisted parsing backend.
	DefaultParserModel = config.DefaultParserModel
)

// Models returns a copy of all known Gemini models.
func Models() []Model {
	return models.All()
}

// ModelByID looks up a model by ID, alias, or dated prefix.
// Returns nil if no model is found.
func ModelByID(id string) *Model {
	return models.ByID(id)
}

// ModelsByCostTier returns all models matching the given cost tier.
func ModelsByCostTier(tier ModelCostTier) []Model {
	return models.ByCostTier(tier)
}

// ModelCapabilities returns capability strings for the given model ID.
// Returns nil if the model is not found.
func ModelCapabilities(modelID string) []string {
	return models.Capabilities(modelID)
}
