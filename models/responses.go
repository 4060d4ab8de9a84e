package models

// ErrorResponse is the JSON body written for every failed API call.
// Code is a stable machine readable value (e.g. DUPLICATE_CODE) the client
// maps back to a typed error.
type ErrorResponse struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

// AuditLogView is one row of the audit log listing with the derived overdue
// flag computed at read time.
type AuditLogView struct {
	LogEntry
	Overdue bool `json:"overdue"`
}

// SuggestCodeResponse carries the first free visible code.
type SuggestCodeResponse struct {
	VisibleCode string `json:"visibleCode"`
}
