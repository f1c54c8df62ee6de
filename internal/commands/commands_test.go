package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrencyFlag(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		code     string
		decimals int
		wantErr  bool
	}{
		{name: "code only", in: "usd", code: "USD", decimals: 2},
		{name: "with decimals", in: "JPY:0", code: "JPY", decimals: 0},
		{name: "bad decimals", in: "BTC:x", wantErr: true},
		{name: "too many decimals", in: "BTC:9", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := parseCurrencyFlag(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.code, c.Code)
			assert.Equal(t, tc.decimals, c.Decimals)
		})
	}
}

func TestBuildCreateRequestFromFlags(t *testing.T) {
	req, err := buildCreateRequest(createOptions{
		template:   "manufacturer_1.0",
		language:   "en",
		name:       "Main books",
		currencies: []string{"CAD", "USD:2"},
	})
	require.NoError(t, err)

	assert.Equal(t, "manufacturer_1.0", req.Template)
	assert.Equal(t, "en", req.Language)
	require.Len(t, req.Currencies, 2)
	assert.Equal(t, "CAD", req.Currencies[0].Code)
	require.Len(t, req.Names, 1)
	assert.Equal(t, "Main books", *req.Names[0].Name)
	assert.Equal(t, "en", req.Names[0].Language)
}

func TestBuildCreateRequestNeedsCurrency(t *testing.T) {
	_, err := buildCreateRequest(createOptions{template: "manufacturer_1.0"})
	assert.Error(t, err)
}

func TestBuildCreateRequestWithDomain(t *testing.T) {
	req, err := buildCreateRequest(createOptions{
		language:   "en",
		name:       "Head office",
		domain:     "HQ",
		currencies: []string{"EUR:2", "USD"},
	})
	require.NoError(t, err)
	require.Len(t, req.Domains, 1)
	assert.Equal(t, "HQ", req.Domains[0].Code)
	assert.Equal(t, "EUR", req.Domains[0].Currency)
	assert.True(t, req.Domains[0].Default)
	require.Len(t, req.Domains[0].Names, 1)

	_, err = buildCreateRequest(createOptions{domain: "HQ", currencies: []string{"EUR"}})
	assert.Error(t, err, "a domain needs a name")
}

func TestBuildCreateRequestNameNeedsLanguage(t *testing.T) {
	_, err := buildCreateRequest(createOptions{name: "Books", currencies: []string{"CAD"}})
	assert.Error(t, err)
}

func TestBuildCreateRequestFromFile(t *testing.T) {
	doc := `
language: fr-CA
currencies:
  - code: CAD
    decimals: 2
domains:
  - code: QC
    currency: CAD
    default: true
    names:
      - language: fr-CA
        name: Québec
accounts:
  - code: "1000"
    category: true
    normalBalance: DEBIT
    names:
      - language: fr-CA
        name: Actif
`
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	req, err := buildCreateRequest(createOptions{file: path, language: "en"})
	require.NoError(t, err)

	assert.Equal(t, "en", req.Language, "flag overrides the file")
	require.Len(t, req.Domains, 1)
	assert.Equal(t, "QC", req.Domains[0].Code)
	assert.True(t, req.Domains[0].Default)
	require.Len(t, req.Accounts, 1)
	assert.Equal(t, "1000", req.Accounts[0].Code)
	assert.True(t, req.Accounts[0].Category)
}

func TestDecodeCreateRequestAcceptsJSON(t *testing.T) {
	req, err := decodeCreateRequest([]byte(`{"template":"manufacturer","currencies":[{"code":"EUR","decimals":2}]}`))
	require.NoError(t, err)
	assert.Equal(t, "manufacturer", req.Template)
	require.Len(t, req.Currencies, 1)
	assert.Equal(t, "EUR", req.Currencies[0].Code)
}

func TestTemplatesCommand(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"templates"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "NAME")
	assert.Contains(t, out.String(), "manufacturer")
}

func TestMigrateRejectsUnknownDirection(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"migrate", "sideways"})

	assert.Error(t, cmd.Execute())
}
