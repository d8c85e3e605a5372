package memory

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/findash/backend/internal/domain/identity"
	"github.com/findash/backend/internal/domain/ledger"
	"github.com/findash/backend/internal/domain/market"
	"github.com/findash/backend/internal/domain/statement"
	"gopkg.in/yaml.v2"
)

//go:embed seed_data.yaml
var embeddedDataset []byte

// Dataset is the sample data loaded into an empty Storage at start-up
type Dataset struct {
	ProfitLoss         []statement.ProfitLossStatement `yaml:"profitLoss"`
	BalanceSheets      []statement.BalanceSheet        `yaml:"balanceSheets"`
	CashFlows          []statement.CashFlowStatement   `yaml:"cashFlows"`
	PlAccounts         []ledger.PlAccount              `yaml:"plAccounts"`
	IoMappings         []IoMappingSeed                 `yaml:"ioMappings"`
	Companies          []market.Company                `yaml:"companies"`
	Users              []identity.User                 `yaml:"users"`
	MarketData         []market.MarketData             `yaml:"marketData"`
	BusinessNews       []market.BusinessNews           `yaml:"businessNews"`
	CompanyMetrics     []market.CompanyMetrics         `yaml:"companyMetrics"`
	EconomicIndicators []market.EconomicIndicator      `yaml:"economicIndicators"`
}

// IoMappingSeed names its account by plAccount, since IDs are only
// assigned when the accounts are stored. AccountID is used verbatim when
// Account is empty.
type IoMappingSeed struct {
	Description string `yaml:"description"`
	Account     string `yaml:"account"`
	AccountID   string `yaml:"accountId"`
}

// DefaultDataset returns the embedded sample dataset
func DefaultDataset() (*Dataset, error) {
	return ParseDataset(embeddedDataset)
}

// LoadDataset reads a dataset from path, or the embedded one when path is empty
func LoadDataset(path string) (*Dataset, error) {
	if path == "" {
		return DefaultDataset()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseDataset(data)
}

// ParseDataset decodes and validates a YAML dataset. Unknown keys are errors.
func ParseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.UnmarshalStrict(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks statement periods and users
func (ds *Dataset) Validate() error {
	check := func(kind statement.Kind, i int, p statement.Period) error {
		if !statement.IsValidPeriod(p.String()) {
			return fmt.Errorf("seed %s[%d]: invalid period %q", kind, i, p)
		}
		return nil
	}
	for i := range ds.ProfitLoss {
		if err := check(statement.KindProfitLoss, i, ds.ProfitLoss[i].Period); err != nil {
			return err
		}
	}
	for i := range ds.BalanceSheets {
		if err := check(statement.KindBalanceSheet, i, ds.BalanceSheets[i].Period); err != nil {
			return err
		}
	}
	for i := range ds.CashFlows {
		if err := check(statement.KindCashFlow, i, ds.CashFlows[i].Period); err != nil {
			return err
		}
	}
	for i := range ds.Users {
		if err := ds.Users[i].Validate(); err != nil {
			return fmt.Errorf("seed users[%d]: %w", i, err)
		}
	}
	return nil
}

// Seed stores every record of ds in s
func Seed(ctx context.Context, s *Storage, ds *Dataset) error {
	for _, r := range ds.ProfitLoss {
		if _, err := s.profitLoss.Create(ctx, r); err != nil {
			return fmt.Errorf("failed to seed profit and loss statement %s/%s: %w", r.Topic, r.Period, err)
		}
	}
	for _, r := range ds.BalanceSheets {
		if _, err := s.balanceSheets.Create(ctx, r); err != nil {
			return fmt.Errorf("failed to seed balance sheet %s/%s: %w", r.Topic, r.Period, err)
		}
	}
	for _, r := range ds.CashFlows {
		if _, err := s.cashFlows.Create(ctx, r); err != nil {
			return fmt.Errorf("failed to seed cash flow statement %s/%s: %w", r.Topic, r.Period, err)
		}
	}

	accountIDs := make(map[string]string, len(ds.PlAccounts))
	for _, a := range ds.PlAccounts {
		stored := s.plAccounts.Create(ctx, a)
		if _, dup := accountIDs[stored.PlAccount]; !dup {
			accountIDs[stored.PlAccount] = stored.ID
		}
	}
	for i, m := range ds.IoMappings {
		accountID := m.AccountID
		if m.Account != "" {
			id, ok := accountIDs[m.Account]
			if !ok {
				return fmt.Errorf("seed ioMappings[%d]: unknown account %q", i, m.Account)
			}
			accountID = id
		}
		s.ioMappings.Create(ctx, ledger.IoMapping{Description: m.Description, AccountID: accountID})
	}

	for _, c := range ds.Companies {
		s.companies.Create(ctx, c)
	}
	for _, u := range ds.Users {
		s.users.Create(ctx, u)
	}
	for _, m := range ds.MarketData {
		s.market.AddMarketData(ctx, m)
	}
	for _, n := range ds.BusinessNews {
		s.market.AddBusinessNews(ctx, n)
	}
	for _, m := range ds.CompanyMetrics {
		s.market.AddCompanyMetrics(ctx, m)
	}
	for _, i := range ds.EconomicIndicators {
		s.market.AddEconomicIndicator(ctx, i)
	}
	return nil
}

// NewSeededStorage creates a storage holding the dataset at path, or the
// embedded dataset when path is empty
func NewSeededStorage(ctx context.Context, path string, opts ...Option) (*Storage, error) {
	ds, err := LoadDataset(path)
	if err != nil {
		return nil, err
	}
	s := NewStorage(opts...)
	if err := Seed(ctx, s, ds); err != nil {
		return nil, err
	}
	return s, nil
}
