package handler

import (
	"github.com/findash/backend/internal/domain/statement"
)

// StatementQuery holds the list filters shared by the three statement
// resources
type StatementQuery struct {
	Topic       string `form:"topic" example:"บริษัท ABC จำกัด"`
	StartPeriod string `form:"startPeriod" binding:"omitempty,period" example:"2024-05"`
	EndPeriod   string `form:"endPeriod" binding:"omitempty,period" example:"2024-07"`
}

// ToFilter converts the bound query to a statement filter
func (q StatementQuery) ToFilter() statement.Filter {
	return statement.Filter{
		Topic:       q.Topic,
		StartPeriod: statement.Period(q.StartPeriod),
		EndPeriod:   statement.Period(q.EndPeriod),
	}
}

// SummaryQuery selects the topic a summary is derived for
type SummaryQuery struct {
	Topic string `form:"topic" binding:"required" example:"บริษัท ABC จำกัด"`
}

// StatementHeaderPatch carries the non-monetary fields every statement
// update accepts
type StatementHeaderPatch struct {
	Topic      *string         `json:"topic" binding:"omitnil,min=1,max=200" example:"บริษัท ABC จำกัด"`
	Period     *string         `json:"period" binding:"omitnil,period" example:"2024-06"`
	IsEditable map[string]bool `json:"isEditable"`
}

func (h StatementHeaderPatch) patch(values map[string]string) statement.Patch {
	p := statement.Patch{
		Topic:    h.Topic,
		Values:   values,
		Editable: statement.EditableFields(h.IsEditable),
	}
	if h.Period != nil {
		period := statement.Period(*h.Period)
		p.Period = &period
	}
	return p
}

// putValue records v under name when the client sent it
func putValue(values map[string]string, name string, v *string) {
	if v != nil {
		values[name] = *v
	}
}

// UpdateProfitLossRequest is a partial profit and loss statement
//
//	@Description	Every field is optional; amounts are decimal strings
type UpdateProfitLossRequest struct {
	StatementHeaderPatch
	TotalRevenue       *string `json:"totalRevenue" binding:"omitnil,decimal" example:"5600000.00"`
	CostOfGoodsSold    *string `json:"costOfGoodsSold" binding:"omitnil,decimal" example:"3200000.00"`
	GrossProfit        *string `json:"grossProfit" binding:"omitnil,decimal" example:"2400000.00"`
	OperatingExpenses  *string `json:"operatingExpenses" binding:"omitnil,decimal" example:"1100000.00"`
	OperatingIncome    *string `json:"operatingIncome" binding:"omitnil,decimal" example:"1300000.00"`
	OtherIncome        *string `json:"otherIncome" binding:"omitnil,decimal" example:"50000.00"`
	OtherExpenses      *string `json:"otherExpenses" binding:"omitnil,decimal" example:"20000.00"`
	NetIncomeBeforeTax *string `json:"netIncomeBeforeTax" binding:"omitnil,decimal" example:"1330000.00"`
	TaxExpense         *string `json:"taxExpense" binding:"omitnil,decimal" example:"266000.00"`
	NetIncome          *string `json:"netIncome" binding:"omitnil,decimal" example:"1064000.00"`
}

// ToPatch converts the request to a statement patch
func (r UpdateProfitLossRequest) ToPatch() statement.Patch {
	values := make(map[string]string)
	putValue(values, "totalRevenue", r.TotalRevenue)
	putValue(values, "costOfGoodsSold", r.CostOfGoodsSold)
	putValue(values, "grossProfit", r.GrossProfit)
	putValue(values, "operatingExpenses", r.OperatingExpenses)
	putValue(values, "operatingIncome", r.OperatingIncome)
	putValue(values, "otherIncome", r.OtherIncome)
	putValue(values, "otherExpenses", r.OtherExpenses)
	putValue(values, "netIncomeBeforeTax", r.NetIncomeBeforeTax)
	putValue(values, "taxExpense", r.TaxExpense)
	putValue(values, "netIncome", r.NetIncome)
	return r.patch(values)
}

// UpdateBalanceSheetRequest is a partial balance sheet
//
//	@Description	Every field is optional; amounts are decimal strings
type UpdateBalanceSheetRequest struct {
	StatementHeaderPatch
	Cash                   *string `json:"cash" binding:"omitnil,decimal" example:"1500000.00"`
	AccountsReceivable     *string `json:"accountsReceivable" binding:"omitnil,decimal" example:"800000.00"`
	Inventory              *string `json:"inventory" binding:"omitnil,decimal" example:"650000.00"`
	CurrentAssets          *string `json:"currentAssets" binding:"omitnil,decimal" example:"2950000.00"`
	PropertyPlantEquipment *string `json:"propertyPlantEquipment" binding:"omitnil,decimal" example:"4200000.00"`
	IntangibleAssets       *string `json:"intangibleAssets" binding:"omitnil,decimal" example:"300000.00"`
	NonCurrentAssets       *string `json:"nonCurrentAssets" binding:"omitnil,decimal" example:"4500000.00"`
	TotalAssets            *string `json:"totalAssets" binding:"omitnil,decimal" example:"7450000.00"`
	AccountsPayable        *string `json:"accountsPayable" binding:"omitnil,decimal" example:"600000.00"`
	ShortTermDebt          *string `json:"shortTermDebt" binding:"omitnil,decimal" example:"400000.00"`
	CurrentLiabilities     *string `json:"currentLiabilities" binding:"omitnil,decimal" example:"1000000.00"`
	LongTermDebt           *string `json:"longTermDebt" binding:"omitnil,decimal" example:"2000000.00"`
	LongTermLiabilities    *string `json:"longTermLiabilities" binding:"omitnil,decimal" example:"2000000.00"`
	TotalLiabilities       *string `json:"totalLiabilities" binding:"omitnil,decimal" example:"3000000.00"`
	ShareholdersEquity     *string `json:"shareholdersEquity" binding:"omitnil,decimal" example:"4450000.00"`
	RetainedEarnings       *string `json:"retainedEarnings" binding:"omitnil,decimal" example:"1450000.00"`
}

// ToPatch converts the request to a statement patch
func (r UpdateBalanceSheetRequest) ToPatch() statement.Patch {
	values := make(map[string]string)
	putValue(values, "cash", r.Cash)
	putValue(values, "accountsReceivable", r.AccountsReceivable)
	putValue(values, "inventory", r.Inventory)
	putValue(values, "currentAssets", r.CurrentAssets)
	putValue(values, "propertyPlantEquipment", r.PropertyPlantEquipment)
	putValue(values, "intangibleAssets", r.IntangibleAssets)
	putValue(values, "nonCurrentAssets", r.NonCurrentAssets)
	putValue(values, "totalAssets", r.TotalAssets)
	putValue(values, "accountsPayable", r.AccountsPayable)
	putValue(values, "shortTermDebt", r.ShortTermDebt)
	putValue(values, "currentLiabilities", r.CurrentLiabilities)
	putValue(values, "longTermDebt", r.LongTermDebt)
	putValue(values, "longTermLiabilities", r.LongTermLiabilities)
	putValue(values, "totalLiabilities", r.TotalLiabilities)
	putValue(values, "shareholdersEquity", r.ShareholdersEquity)
	putValue(values, "retainedEarnings", r.RetainedEarnings)
	return r.patch(values)
}

// UpdateCashFlowRequest is a partial cash flow statement
//
//	@Description	Every field is optional; amounts are decimal strings
type UpdateCashFlowRequest struct {
	StatementHeaderPatch
	NetIncome              *string `json:"netIncome" binding:"omitnil,decimal" example:"1064000.00"`
	Depreciation           *string `json:"depreciation" binding:"omitnil,decimal" example:"120000.00"`
	ChangeInWorkingCapital *string `json:"changeInWorkingCapital" binding:"omitnil,decimal" example:"-80000.00"`
	OperatingCashFlow      *string `json:"operatingCashFlow" binding:"omitnil,decimal" example:"1104000.00"`
	CapitalExpenditures    *string `json:"capitalExpenditures" binding:"omitnil,decimal" example:"-300000.00"`
	Acquisitions           *string `json:"acquisitions" binding:"omitnil,decimal" example:"0"`
	InvestingCashFlow      *string `json:"investingCashFlow" binding:"omitnil,decimal" example:"-300000.00"`
	DebtIssuance           *string `json:"debtIssuance" binding:"omitnil,decimal" example:"0"`
	DebtRepayment          *string `json:"debtRepayment" binding:"omitnil,decimal" example:"-100000.00"`
	DividendsPaid          *string `json:"dividendsPaid" binding:"omitnil,decimal" example:"-200000.00"`
	FinancingCashFlow      *string `json:"financingCashFlow" binding:"omitnil,decimal" example:"-300000.00"`
	NetChangeInCash        *string `json:"netChangeInCash" binding:"omitnil,decimal" example:"504000.00"`
	BeginningCashBalance   *string `json:"beginningCashBalance" binding:"omitnil,decimal" example:"996000.00"`
	EndingCashBalance      *string `json:"endingCashBalance" binding:"omitnil,decimal" example:"1500000.00"`
}

// ToPatch converts the request to a statement patch
func (r UpdateCashFlowRequest) ToPatch() statement.Patch {
	values := make(map[string]string)
	putValue(values, "netIncome", r.NetIncome)
	putValue(values, "depreciation", r.Depreciation)
	putValue(values, "changeInWorkingCapital", r.ChangeInWorkingCapital)
	putValue(values, "operatingCashFlow", r.OperatingCashFlow)
	putValue(values, "capitalExpenditures", r.CapitalExpenditures)
	putValue(values, "acquisitions", r.Acquisitions)
	putValue(values, "investingCashFlow", r.InvestingCashFlow)
	putValue(values, "debtIssuance", r.DebtIssuance)
	putValue(values, "debtRepayment", r.DebtRepayment)
	putValue(values, "dividendsPaid", r.DividendsPaid)
	putValue(values, "financingCashFlow", r.FinancingCashFlow)
	putValue(values, "netChangeInCash", r.NetChangeInCash)
	putValue(values, "beginningCashBalance", r.BeginningCashBalance)
	putValue(values, "endingCashBalance", r.EndingCashBalance)
	return r.patch(values)
}
