package statement

// CashFlowFields lists the monetary fields of a cash flow statement
var CashFlowFields = []string{
	"netIncome",
	"depreciation",
	"changeInWorkingCapital",
	"operatingCashFlow",
	"capitalExpenditures",
	"acquisitions",
	"investingCashFlow",
	"debtIssuance",
	"debtRepayment",
	"dividendsPaid",
	"financingCashFlow",
	"netChangeInCash",
	"beginningCashBalance",
	"endingCashBalance",
}

// CashFlowStatement is one company's cash flow statement for one period
type CashFlowStatement struct {
	Header `yaml:",inline"`

	// Operating activities
	NetIncome              string `json:"netIncome" yaml:"netIncome"`
	Depreciation           string `json:"depreciation" yaml:"depreciation"`
	ChangeInWorkingCapital string `json:"changeInWorkingCapital" yaml:"changeInWorkingCapital"`
	OperatingCashFlow      string `json:"operatingCashFlow" yaml:"operatingCashFlow"`

	// Investing activities
	CapitalExpenditures string `json:"capitalExpenditures" yaml:"capitalExpenditures"`
	Acquisitions        string `json:"acquisitions" yaml:"acquisitions"`
	InvestingCashFlow   string `json:"investingCashFlow" yaml:"investingCashFlow"`

	// Financing activities
	DebtIssuance      string `json:"debtIssuance" yaml:"debtIssuance"`
	DebtRepayment     string `json:"debtRepayment" yaml:"debtRepayment"`
	DividendsPaid     string `json:"dividendsPaid" yaml:"dividendsPaid"`
	FinancingCashFlow string `json:"financingCashFlow" yaml:"financingCashFlow"`

	NetChangeInCash      string `json:"netChangeInCash" yaml:"netChangeInCash"`
	BeginningCashBalance string `json:"beginningCashBalance" yaml:"beginningCashBalance"`
	EndingCashBalance    string `json:"endingCashBalance" yaml:"endingCashBalance"`
}

// StatementKind implements Record
func (s *CashFlowStatement) StatementKind() Kind { return KindCashFlow }

// FieldNames implements Record
func (s *CashFlowStatement) FieldNames() []string { return CashFlowFields }

// Fields implements Record
func (s *CashFlowStatement) Fields() map[string]*string {
	return map[string]*string{
		"netIncome":              &s.NetIncome,
		"depreciation":           &s.Depreciation,
		"changeInWorkingCapital": &s.ChangeInWorkingCapital,
		"operatingCashFlow":      &s.OperatingCashFlow,
		"capitalExpenditures":    &s.CapitalExpenditures,
		"acquisitions":           &s.Acquisitions,
		"investingCashFlow":      &s.InvestingCashFlow,
		"debtIssuance":           &s.DebtIssuance,
		"debtRepayment":          &s.DebtRepayment,
		"dividendsPaid":          &s.DividendsPaid,
		"financingCashFlow":      &s.FinancingCashFlow,
		"netChangeInCash":        &s.NetChangeInCash,
		"beginningCashBalance":   &s.BeginningCashBalance,
		"endingCashBalance":      &s.EndingCashBalance,
	}
}

// CloneCashFlow returns a copy that shares no mutable state with s
func CloneCashFlow(s CashFlowStatement) CashFlowStatement {
	s.IsEditable = s.IsEditable.Clone()
	return s
}
