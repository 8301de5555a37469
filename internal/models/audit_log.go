package models

// AuditLog records a mutating or privileged operation for traceability.
// Writes are best-effort and never fail the originating request.
type AuditLog struct {
	Base
	UserID       string `gorm:"type:uuid;index" json:"user_id"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `gorm:"type:text" json:"changes"`
}
