package domain

// Ledger is the singleton root configuration of a deployment.
type Ledger struct {
	UUID              string `json:"uuid"`
	Template          string `json:"template,omitempty"`
	DefaultDomainUUID string `json:"-"`
	Rules             Rules  `json:"rules"`
	Revisioned
}
