package documents

// ErrorDocument is the problem-details error body returned by the Legal Entity Management API.
type ErrorDocument struct {
	Type          string         `json:"type"`
	ErrorCode     string         `json:"errorCode"`
	Title         string         `json:"title"`
	Detail        string         `json:"detail"`
	RequestID     string         `json:"requestId"`
	Status        int            `json:"status"`
	InvalidFields []InvalidField `json:"invalidFields,omitempty"`
}

type InvalidField struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// Message returns the most descriptive human readable text in the document.
func (d *ErrorDocument) Message() string {
	switch {
	case d.Detail != "":
		return d.Detail
	case d.Title != "":
		return d.Title
	default:
		return d.ErrorCode
	}
}
