package models

const (
	BusinessLineServicePaymentProcessing BusinessLineService = "paymentProcessing"
	BusinessLineServiceBanking           BusinessLineService = "banking"
)

// BusinessLineService is the kind of service a business line is declared for.
type BusinessLineService string

func (s BusinessLineService) Valid() bool {
	return s == BusinessLineServicePaymentProcessing || s == BusinessLineServiceBanking
}

func (s BusinessLineService) String() string {
	return string(s)
}

type BusinessLineID string

func (id BusinessLineID) String() string {
	return string(id)
}

type WebData struct {
	WebAddress   string `json:"webAddress"`
	WebAddressID string `json:"webAddressId,omitempty"`
}

// BusinessLine is a declared line of commercial activity attached to a legal entity.
type BusinessLine struct {
	ID            BusinessLineID      `json:"id"`
	LegalEntityID LegalEntityID       `json:"legalEntityId"`
	IndustryCode  string              `json:"industryCode"`
	SalesChannels []string            `json:"salesChannels,omitempty"`
	Service       BusinessLineService `json:"service"`
	WebData       []WebData           `json:"webData,omitempty"`
}
