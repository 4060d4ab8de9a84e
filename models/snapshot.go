package models

// Snapshot is the complete persisted state of the office: three independent
// records that keep their shape across restarts.
type Snapshot struct {
	// Accounts in creation order.
	Accounts []User `json:"accounts"`
	// Keys in creation order, soft-deleted keys included.
	Keys []Key `json:"keys"`
	// AuditLog newest-first.
	AuditLog []LogEntry `json:"auditLog"`
}

// IsEmpty reports whether nothing was ever stored.
func (s Snapshot) IsEmpty() bool {
	return len(s.Accounts) == 0 && len(s.Keys) == 0 && len(s.AuditLog) == 0
}

// Session is the single currently authenticated account kept by the client.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
