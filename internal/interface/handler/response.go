package handler

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Code    int      `json:"code"`
	Fields  []string `json:"fields,omitempty"`
}

// SuggestionsResponse carries the previous values for the travel form
type SuggestionsResponse struct {
	Passenger   string            `json:"passenger,omitempty"`
	Suggestions map[string]string `json:"suggestions"`
}

// ValuesResponse lists distinct previous values of one field
type ValuesResponse struct {
	Field  string   `json:"field"`
	Values []string `json:"values"`
}
