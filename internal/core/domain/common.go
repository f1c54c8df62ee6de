package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Revisioned is embedded by every mutable entity. Version is the stored
// counter guarded by conditional updates; Revision is the opaque token
// handed to clients and derived from UUID, Version and UpdatedAt.
type Revisioned struct {
	Version  int64  `json:"-"`
	Revision string `json:"revision"`
	AuditFields
}
