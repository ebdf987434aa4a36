package models

// OnboardingLink directs an end user to the externally hosted onboarding flow for a legal entity.
type OnboardingLink struct {
	URL string `json:"url"`
}
