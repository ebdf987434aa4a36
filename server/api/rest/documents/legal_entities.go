package documents

import "github.com/onboarding-platform/onboarding/common/models"

type LegalEntity struct {
	baseResourceDocument
	BusinessLinesURL  string `json:"business_lines_url"`
	OnboardingLinkURL string `json:"onboarding_link_url"`
	*models.LegalEntity
}

func MakeLegalEntity(baseURL string, legalEntity *models.LegalEntity) *LegalEntity {
	return &LegalEntity{
		baseResourceDocument: baseResourceDocument{
			URL: MakeLegalEntityLink(baseURL, legalEntity.ID),
		},
		BusinessLinesURL:  MakeBusinessLinesLink(baseURL, legalEntity.ID),
		OnboardingLinkURL: MakeOnboardingLinkLink(baseURL, legalEntity.ID),
		LegalEntity:       legalEntity,
	}
}

type BusinessLine struct {
	LegalEntityURL string `json:"legal_entity_url"`
	*models.BusinessLine
}

func MakeBusinessLine(baseURL string, businessLine *models.BusinessLine) *BusinessLine {
	return &BusinessLine{
		LegalEntityURL: MakeLegalEntityLink(baseURL, businessLine.LegalEntityID),
		BusinessLine:   businessLine,
	}
}

type OnboardingLink struct {
	URL string `json:"url"`
}

func MakeOnboardingLink(link *models.OnboardingLink) *OnboardingLink {
	return &OnboardingLink{URL: link.URL}
}
