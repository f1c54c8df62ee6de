package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/core/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/platform/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type createOptions struct {
	file       string
	template   string
	language   string
	name       string
	domain     string
	currencies []string
}

func newCreateCommand() *cobra.Command {
	var opts createOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the ledger from a request file or flags",
		Long: `Create the ledger in the configured store.

With --file the request is read from a YAML or JSON document shaped like the
body of POST /api/ledger/root/create. Flags given alongside the file override
its template and language.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildCreateRequest(opts)
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			ctx := cmd.Context()
			store, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()
			rulesCache, closeCache, err := openRulesCache(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeCache()

			container := services.NewServiceContainer(cfg, store, rulesCache)
			ledger, err := container.Ledger.CreateLedger(ctx, req)
			if err != nil {
				return fmt.Errorf("creating ledger: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ledger %s created\n", ledger.UUID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "YAML or JSON create request")
	cmd.Flags().StringVar(&opts.template, "template", "", "chart of accounts template, see 'ledgerd templates'")
	cmd.Flags().StringVar(&opts.language, "language", "", "default language tag")
	cmd.Flags().StringVar(&opts.name, "name", "", "name of the default domain in the default language")
	cmd.Flags().StringVar(&opts.domain, "domain", "", "code of the default domain, in the first currency")
	cmd.Flags().StringSliceVar(&opts.currencies, "currency", nil, "ledger currency as CODE or CODE:DECIMALS, repeatable")

	return cmd
}

// buildCreateRequest merges the request file and flags.
func buildCreateRequest(opts createOptions) (dto.CreateLedgerRequest, error) {
	var req dto.CreateLedgerRequest
	if opts.file != "" {
		raw, err := os.ReadFile(opts.file)
		if err != nil {
			return req, fmt.Errorf("reading %s: %w", opts.file, err)
		}
		if req, err = decodeCreateRequest(raw); err != nil {
			return req, fmt.Errorf("decoding %s: %w", opts.file, err)
		}
	}
	if opts.template != "" {
		req.Template = opts.template
	}
	if opts.language != "" {
		req.Language = opts.language
	}
	for _, c := range opts.currencies {
		currency, err := parseCurrencyFlag(c)
		if err != nil {
			return req, err
		}
		req.Currencies = append(req.Currencies, currency)
	}
	if opts.name != "" {
		if req.Language == "" {
			return req, errors.New("--name needs --language")
		}
		name := opts.name
		req.Names = append(req.Names, dto.NameRequest{Name: &name, Language: req.Language})
	}
	if len(req.Currencies) == 0 {
		return req, errors.New("at least one --currency is required")
	}
	if opts.domain != "" {
		if opts.name == "" {
			return req, errors.New("--domain needs --name")
		}
		req.Domains = append(req.Domains, dto.AddDomainRequest{
			Code:     opts.domain,
			Currency: req.Currencies[0].Code,
			Names:    req.Names,
			Default:  true,
		})
	}
	return req, nil
}

// decodeCreateRequest accepts YAML, and JSON as a subset of it, keyed by
// the API's JSON field names.
func decodeCreateRequest(raw []byte) (dto.CreateLedgerRequest, error) {
	var req dto.CreateLedgerRequest
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return req, err
	}
	encoded, err := json.Marshal(doc)
	if err != nil {
		return req, err
	}
	err = json.Unmarshal(encoded, &req)
	return req, err
}

func parseCurrencyFlag(v string) (dto.AddCurrencyRequest, error) {
	code, decimals, found := strings.Cut(v, ":")
	c := dto.AddCurrencyRequest{Code: strings.ToUpper(strings.TrimSpace(code)), Decimals: 2}
	if found {
		n, err := strconv.Atoi(decimals)
		if err != nil || n < 0 || n > 8 {
			return c, fmt.Errorf("invalid decimals in --currency %q", v)
		}
		c.Decimals = n
	}
	return c, nil
}
