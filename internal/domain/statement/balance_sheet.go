package statement

// BalanceSheetFields lists the monetary fields of a balance sheet
var BalanceSheetFields = []string{
	"cash",
	"accountsReceivable",
	"inventory",
	"currentAssets",
	"propertyPlantEquipment",
	"intangibleAssets",
	"nonCurrentAssets",
	"totalAssets",
	"accountsPayable",
	"shortTermDebt",
	"currentLiabilities",
	"longTermDebt",
	"longTermLiabilities",
	"totalLiabilities",
	"shareholdersEquity",
	"retainedEarnings",
}

// BalanceSheet is one company's statement of financial position at the end
// of a period
type BalanceSheet struct {
	Header `yaml:",inline"`

	Cash                   string `json:"cash" yaml:"cash"`
	AccountsReceivable     string `json:"accountsReceivable" yaml:"accountsReceivable"`
	Inventory              string `json:"inventory" yaml:"inventory"`
	CurrentAssets          string `json:"currentAssets" yaml:"currentAssets"`
	PropertyPlantEquipment string `json:"propertyPlantEquipment" yaml:"propertyPlantEquipment"`
	IntangibleAssets       string `json:"intangibleAssets" yaml:"intangibleAssets"`
	NonCurrentAssets       string `json:"nonCurrentAssets" yaml:"nonCurrentAssets"`
	TotalAssets            string `json:"totalAssets" yaml:"totalAssets"`

	AccountsPayable     string `json:"accountsPayable" yaml:"accountsPayable"`
	ShortTermDebt       string `json:"shortTermDebt" yaml:"shortTermDebt"`
	CurrentLiabilities  string `json:"currentLiabilities" yaml:"currentLiabilities"`
	LongTermDebt        string `json:"longTermDebt" yaml:"longTermDebt"`
	LongTermLiabilities string `json:"longTermLiabilities" yaml:"longTermLiabilities"`
	TotalLiabilities    string `json:"totalLiabilities" yaml:"totalLiabilities"`

	ShareholdersEquity string `json:"shareholdersEquity" yaml:"shareholdersEquity"`
	RetainedEarnings   string `json:"retainedEarnings" yaml:"retainedEarnings"`
}

// StatementKind implements Record
func (s *BalanceSheet) StatementKind() Kind { return KindBalanceSheet }

// FieldNames implements Record
func (s *BalanceSheet) FieldNames() []string { return BalanceSheetFields }

// Fields implements Record
func (s *BalanceSheet) Fields() map[string]*string {
	return map[string]*string{
		"cash":                   &s.Cash,
		"accountsReceivable":     &s.AccountsReceivable,
		"inventory":              &s.Inventory,
		"currentAssets":          &s.CurrentAssets,
		"propertyPlantEquipment": &s.PropertyPlantEquipment,
		"intangibleAssets":       &s.IntangibleAssets,
		"nonCurrentAssets":       &s.NonCurrentAssets,
		"totalAssets":            &s.TotalAssets,
		"accountsPayable":        &s.AccountsPayable,
		"shortTermDebt":          &s.ShortTermDebt,
		"currentLiabilities":     &s.CurrentLiabilities,
		"longTermDebt":           &s.LongTermDebt,
		"longTermLiabilities":    &s.LongTermLiabilities,
		"totalLiabilities":       &s.TotalLiabilities,
		"shareholdersEquity":     &s.ShareholdersEquity,
		"retainedEarnings":       &s.RetainedEarnings,
	}
}

// CloneBalanceSheet returns a copy that shares no mutable state with s
func CloneBalanceSheet(s BalanceSheet) BalanceSheet {
	s.IsEditable = s.IsEditable.Clone()
	return s
}
