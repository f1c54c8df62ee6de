package domain

// DefaultLanguage is used when a ledger is created without one.
const DefaultLanguage = "en"

// DefaultDomainCode is the code of the domain created when none is supplied.
const DefaultDomainCode = "MAIN"

// Rules is the active rule set of a ledger.
type Rules struct {
	Language LanguageRules `json:"language" yaml:"language"`
	Domain   DomainRules   `json:"domain" yaml:"domain"`
	Account  AccountRules  `json:"account" yaml:"account"`
}

// LanguageRules names the language every name set must carry.
type LanguageRules struct {
	Default string `json:"default" yaml:"default"`
}

// DomainRules holds the default domain's code. It is resolved from the
// ledger's default domain pointer whenever rules are loaded.
type DomainRules struct {
	Default string `json:"default" yaml:"-"`
}

// AccountRules configures account code formats.
type AccountRules struct {
	Codes CodeFormat `json:"codes" yaml:"codes"`
}

// CodeFormat constrains hierarchical account codes. Delimiter separates
// segments, Segment is a regular expression every segment must match.
type CodeFormat struct {
	Delimiter string `json:"delimiter" yaml:"delimiter"`
	Segment   string `json:"segment" yaml:"segment"`
	MaxDepth  int    `json:"maxDepth" yaml:"maxDepth"`
	MaxLength int    `json:"maxLength" yaml:"maxLength"`
}

// DefaultRules returns the rules applied when neither a template nor the
// create request override them.
func DefaultRules() Rules {
	return Rules{
		Language: LanguageRules{Default: DefaultLanguage},
		Domain:   DomainRules{Default: DefaultDomainCode},
		Account: AccountRules{Codes: CodeFormat{
			Delimiter: ".",
			Segment:   "^[A-Z0-9_]{1,16}$",
			MaxDepth:  8,
			MaxLength: 64,
		}},
	}
}

// Merge overlays the non-zero fields of o on r.
func (r Rules) Merge(o Rules) Rules {
	if o.Language.Default != "" {
		r.Language.Default = o.Language.Default
	}
	if o.Domain.Default != "" {
		r.Domain.Default = o.Domain.Default
	}
	c := o.Account.Codes
	if c.Delimiter != "" {
		r.Account.Codes.Delimiter = c.Delimiter
	}
	if c.Segment != "" {
		r.Account.Codes.Segment = c.Segment
	}
	if c.MaxDepth > 0 {
		r.Account.Codes.MaxDepth = c.MaxDepth
	}
	if c.MaxLength > 0 {
		r.Account.Codes.MaxLength = c.MaxLength
	}
	return r
}
