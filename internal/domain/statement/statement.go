// Package statement models the three editable financial statements (profit
// and loss, balance sheet, cash flow) and the shared rules for filtering and
// patching them.
package statement

import (
	"time"

	"github.com/findash/backend/internal/domain/shared"
	"github.com/findash/backend/internal/domain/shared/valueobject"
)

// Kind identifies a statement type. Its value is also the API resource name.
type Kind string

const (
	KindProfitLoss   Kind = "profit-loss"
	KindBalanceSheet Kind = "balance-sheet"
	KindCashFlow     Kind = "cash-flow"
)

// Label returns a human-readable name used in error messages
func (k Kind) Label() string {
	switch k {
	case KindProfitLoss:
		return "Profit and loss statement"
	case KindBalanceSheet:
		return "Balance sheet"
	case KindCashFlow:
		return "Cash flow statement"
	default:
		return "Statement"
	}
}

// Record is the behaviour shared by every statement type
type Record interface {
	shared.Entity
	StatementKind() Kind
	StatementTopic() string
	StatementPeriod() Period
	// Fields returns pointers to the monetary fields keyed by JSON name
	Fields() map[string]*string
	// FieldNames returns the monetary field names in display order
	FieldNames() []string
	Editable() EditableFields
	SetEditable(EditableFields)
	SetTopic(string)
	SetPeriod(Period)
	Touch(time.Time)
}

// Header carries the identity, grouping and permission fields common to all
// statement types
type Header struct {
	shared.BaseEntity `yaml:",inline"`
	Topic             string         `json:"topic" yaml:"topic"`
	Period            Period         `json:"period" yaml:"period"`
	IsEditable        EditableFields `json:"isEditable" yaml:"isEditable"`
}

// StatementTopic returns the grouping key (company name)
func (h *Header) StatementTopic() string { return h.Topic }

// StatementPeriod returns the reporting period
func (h *Header) StatementPeriod() Period { return h.Period }

// Editable returns the edit-permission map
func (h *Header) Editable() EditableFields { return h.IsEditable }

// SetEditable replaces the edit-permission map
func (h *Header) SetEditable(e EditableFields) { h.IsEditable = e }

// SetTopic replaces the topic
func (h *Header) SetTopic(topic string) { h.Topic = topic }

// SetPeriod replaces the period
func (h *Header) SetPeriod(p Period) { h.Period = p }

// Patch is a partial update. Only non-nil / present entries change.
type Patch struct {
	Topic    *string
	Period   *Period
	Values   map[string]string
	Editable EditableFields
}

// Prepare fills defaults on a record about to be stored: empty monetary
// fields become "0" and the edit map gains an entry for every field.
func Prepare(r Record) error {
	if err := r.Editable().Validate(r.FieldNames()); err != nil {
		return err
	}
	for _, v := range r.Fields() {
		*v = valueobject.DefaultAmount(*v)
	}
	r.SetEditable(r.Editable().WithDefaults(r.FieldNames()))
	return nil
}

// CheckEditable returns a validation error naming every field the patch
// would change while it is locked by the record's edit map
func CheckEditable(r Record, p Patch) error {
	fields := r.Fields()
	editable := r.Editable()
	var locked []shared.FieldError
	for _, name := range r.FieldNames() {
		v, ok := p.Values[name]
		if !ok || v == *fields[name] {
			continue
		}
		if !editable.Allows(name) {
			locked = append(locked, shared.FieldError{Field: name, Message: "Field is not editable"})
		}
	}
	if len(locked) > 0 {
		return &shared.ValidationError{Fields: locked}
	}
	return nil
}

// ApplyPatch merges p over r field by field. Derived fields are not
// recomputed: changing totalRevenue leaves grossProfit alone.
func ApplyPatch(r Record, p Patch) error {
	fields := r.Fields()
	for name := range p.Values {
		if _, ok := fields[name]; !ok {
			return shared.NewValidationError(name, "Unknown field")
		}
	}
	if err := p.Editable.Validate(r.FieldNames()); err != nil {
		return shared.NewValidationError("isEditable", err.Error())
	}
	if err := CheckEditable(r, p); err != nil {
		return err
	}

	if p.Topic != nil {
		r.SetTopic(*p.Topic)
	}
	if p.Period != nil {
		r.SetPeriod(*p.Period)
	}
	for name, v := range p.Values {
		*fields[name] = v
	}
	if len(p.Editable) > 0 {
		r.SetEditable(r.Editable().Merge(p.Editable))
	}
	return nil
}
