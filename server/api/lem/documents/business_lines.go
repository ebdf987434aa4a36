package documents

import "github.com/onboarding-platform/onboarding/common/models"

// BusinessLineInfo is the request body for creating a business line.
type BusinessLineInfo struct {
	LegalEntityID models.LegalEntityID       `json:"legalEntityId"`
	IndustryCode  string                     `json:"industryCode"`
	SalesChannels []string                   `json:"salesChannels,omitempty"`
	Service       models.BusinessLineService `json:"service"`
	WebData       []models.WebData           `json:"webData,omitempty"`
}
