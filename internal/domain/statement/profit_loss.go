package statement

// ProfitLossFields lists the monetary fields of a profit and loss statement
var ProfitLossFields = []string{
	"totalRevenue",
	"costOfGoodsSold",
	"grossProfit",
	"operatingExpenses",
	"operatingIncome",
	"otherIncome",
	"otherExpenses",
	"netIncomeBeforeTax",
	"taxExpense",
	"netIncome",
}

// ProfitLossStatement is one company's income statement for one period
type ProfitLossStatement struct {
	Header             `yaml:",inline"`
	TotalRevenue       string `json:"totalRevenue" yaml:"totalRevenue"`
	CostOfGoodsSold    string `json:"costOfGoodsSold" yaml:"costOfGoodsSold"`
	GrossProfit        string `json:"grossProfit" yaml:"grossProfit"`
	OperatingExpenses  string `json:"operatingExpenses" yaml:"operatingExpenses"`
	OperatingIncome    string `json:"operatingIncome" yaml:"operatingIncome"`
	OtherIncome        string `json:"otherIncome" yaml:"otherIncome"`
	OtherExpenses      string `json:"otherExpenses" yaml:"otherExpenses"`
	NetIncomeBeforeTax string `json:"netIncomeBeforeTax" yaml:"netIncomeBeforeTax"`
	TaxExpense         string `json:"taxExpense" yaml:"taxExpense"`
	NetIncome          string `json:"netIncome" yaml:"netIncome"`
}

// StatementKind implements Record
func (s *ProfitLossStatement) StatementKind() Kind { return KindProfitLoss }

// FieldNames implements Record
func (s *ProfitLossStatement) FieldNames() []string { return ProfitLossFields }

// Fields implements Record
func (s *ProfitLossStatement) Fields() map[string]*string {
	return map[string]*string{
		"totalRevenue":       &s.TotalRevenue,
		"costOfGoodsSold":    &s.CostOfGoodsSold,
		"grossProfit":        &s.GrossProfit,
		"operatingExpenses":  &s.OperatingExpenses,
		"operatingIncome":    &s.OperatingIncome,
		"otherIncome":        &s.OtherIncome,
		"otherExpenses":      &s.OtherExpenses,
		"netIncomeBeforeTax": &s.NetIncomeBeforeTax,
		"taxExpense":         &s.TaxExpense,
		"netIncome":          &s.NetIncome,
	}
}

// CloneProfitLoss returns a copy that shares no mutable state with s
func CloneProfitLoss(s ProfitLossStatement) ProfitLossStatement {
	s.IsEditable = s.IsEditable.Clone()
	return s
}
