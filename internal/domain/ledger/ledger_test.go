package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlAccountPatch(t *testing.T) {
	a := PlAccount{PlAccount: "Revenue"}
	PlAccountPatch{}.Apply(&a)
	assert.Equal(t, "Revenue", a.PlAccount)

	name := "Sales revenue"
	PlAccountPatch{PlAccount: &name}.Apply(&a)
	assert.Equal(t, "Sales revenue", a.PlAccount)
}

func TestIoMappingPatch(t *testing.T) {
	m := IoMapping{Description: "Cash sales", AccountID: "acc-1"}

	account := "acc-2"
	IoMappingPatch{AccountID: &account}.Apply(&m)
	assert.Equal(t, "Cash sales", m.Description)
	assert.Equal(t, "acc-2", m.AccountID)

	desc := "Card sales"
	IoMappingPatch{Description: &desc}.Apply(&m)
	assert.Equal(t, "Card sales", m.Description)
	assert.Equal(t, "acc-2", m.AccountID)
}
