package documents

// OnboardingLinkInfo is the request body for generating a hosted onboarding link.
type OnboardingLinkInfo struct {
	// Locale controls the language of the hosted onboarding pages, e.g. "en-US".
	Locale string `json:"locale,omitempty"`
	// RedirectURL is where the user is sent after completing or leaving hosted onboarding.
	RedirectURL string `json:"redirectUrl,omitempty"`
	// ThemeID selects a custom theme; when empty the default theme is used.
	ThemeID  string                  `json:"themeId,omitempty"`
	Settings *OnboardingLinkSettings `json:"settings,omitempty"`
}

type OnboardingLinkSettings struct {
	ChangeLegalEntityType *bool `json:"changeLegalEntityType,omitempty"`
	EditPrefilledCountry  *bool `json:"editPrefilledCountry,omitempty"`
}
