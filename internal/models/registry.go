package models

// allCapabilities is the set of capabilities shared by all current Gemini models.
var allCapabilities = []Capability{
	CapVision,
	CapToolUse,
	CapReasoning,
	CapStructuredOutput,
}

// registry is the internal list of all known Gemini models.
// Only the latest model per tier gets the short alias.
var registry = []Model{
	{
		ID:              "gemini-2.5-pro",
		Name:            "Gemini 2.5 Pro",
		Aliases:         []string{"pro"},
		CostTier:        CostTierHigh,
		Capabilities:    allCapabilities,
		ContextWindow:   1_048_576,
		MaxOutputTokens: 65_536,
	},
	{
		ID:              "gemini-2.5-flash",
		Name:            "Gemini 2.5 Flash",
		Aliases:         []string{"flash"},
		CostTier:        CostTierMedium,
		Capabilities:    allCapabilities,
		ContextWindow:   1_048_576,
		MaxOutputTokens: 65_536,
	},
	{
		ID:              "gemini-2.5-flash-lite",
		Name:            "Gemini 2.5 Flash-Lite",
		Aliases:         []string{"flash-lite", "lite"},
		CostTier:        CostTierLow,
		Capabilities:    allCapabilities,
		ContextWindow:   1_048_576,
		MaxOutputTokens: 65_536,
	},
	{
		ID:              "gemini-2.0-flash",
		Name:            "Gemini 2.0 Flash",
		CostTier:        CostTierMedium,
		Capabilities:    allCapabilities,
		ContextWindow:   1_048_576,
		MaxOutputTokens: 8_192,
	},
	{
		ID:              "gemini-1.5-pro",
		Name:            "Gemini 1.5 Pro",
		CostTier:        CostTierHigh,
		Capabilities:    allCapabilities,
		ContextWindow:   2_097_152,
		MaxOutputTokens: 8_192,
	},
	{
		ID:              "gemini-1.5-flash",
		Name:            "Gemini 1.5 Flash",
		CostTier:        CostTierMedium,
		Capabilities:    allCapabilities,
		ContextWindow:   1_048_576,
		MaxOutputTokens: 8_192,
	},
}
