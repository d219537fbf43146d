package models

// GeneratedAdCopy matches the fixed response schema requested from the
// text-generation endpoint.
type GeneratedAdCopy struct {
	Headline     string `json:"headline"`
	PrimaryText  string `json:"primaryText"`
	CallToAction string `json:"callToAction"`
}

type GeneratedStrategy struct {
	TargetAudience     []string `json:"targetAudience"`
	Keywords           []string `json:"keywords"`
	SuggestedPlatforms []string `json:"suggestedPlatforms"`
}
