// Package templates holds the embedded charts of accounts a ledger can be
// created from.
package templates

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"gopkg.in/yaml.v3"
)

//go:embed charts/*.yaml
var charts embed.FS

// Template is a named chart of accounts with optional rule overrides.
type Template struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Language    string            `yaml:"language"`
	Rules       *domain.Rules     `yaml:"rules,omitempty"`
	Accounts    []TemplateAccount `yaml:"accounts"`
}

// TemplateAccount is one chart entry. Names are keyed by language tag.
type TemplateAccount struct {
	Code          string            `yaml:"code"`
	Category      bool              `yaml:"category"`
	NormalBalance string            `yaml:"normalBalance"`
	Closed        bool              `yaml:"closed"`
	Extra         string            `yaml:"extra"`
	Names         map[string]string `yaml:"names"`
}

// Summary describes a template without its accounts.
type Summary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Accounts    int    `json:"accounts"`
}

var (
	loadOnce sync.Once
	loaded   map[string]*Template
	loadErr  error
)

func load() (map[string]*Template, error) {
	loadOnce.Do(func() {
		entries, err := charts.ReadDir("charts")
		if err != nil {
			loadErr = fmt.Errorf("reading charts: %w", err)
			return
		}
		loaded = make(map[string]*Template, len(entries))
		for _, e := range entries {
			data, err := charts.ReadFile(path.Join("charts", e.Name()))
			if err != nil {
				loadErr = fmt.Errorf("reading chart %s: %w", e.Name(), err)
				return
			}
			var t Template
			if err := yaml.Unmarshal(data, &t); err != nil {
				loadErr = fmt.Errorf("parsing chart %s: %w", e.Name(), err)
				return
			}
			if t.Name == "" {
				t.Name = strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
			}
			loaded[t.Name] = &t
		}
	})
	return loaded, loadErr
}

// Get returns the template called name.
func Get(name string) (*Template, error) {
	all, err := load()
	if err != nil {
		return nil, err
	}
	t, ok := all[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown template %q", apperrors.ErrValidation, name)
	}
	return t, nil
}

// List returns a summary of every embedded template, ordered by name.
func List() ([]Summary, error) {
	all, err := load()
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(all))
	for _, t := range all {
		out = append(out, Summary{Name: t.Name, Description: t.Description, Accounts: len(t.Accounts)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// AccountRequests converts the chart into add requests, parents first.
func (t *Template) AccountRequests() []dto.AddAccountRequest {
	reqs := make([]dto.AddAccountRequest, 0, len(t.Accounts))
	for _, a := range t.Accounts {
		languages := make([]string, 0, len(a.Names))
		for lang := range a.Names {
			languages = append(languages, lang)
		}
		sort.Strings(languages)

		req := dto.AddAccountRequest{
			Code:          a.Code,
			Category:      a.Category,
			NormalBalance: a.NormalBalance,
			Closed:        a.Closed,
			Extra:         a.Extra,
		}
		for _, lang := range languages {
			name := a.Names[lang]
			req.Names = append(req.Names, dto.NameRequest{Language: lang, Name: &name})
		}
		reqs = append(reqs, req)
	}
	return reqs
}
