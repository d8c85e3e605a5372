package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyPatch(t *testing.T) {
	c := Company{Name: "บริษัท ABC จำกัด", Code: "ABC", Industry: "Retail"}

	industry := "Wholesale"
	CompanyPatch{Industry: &industry}.Apply(&c)

	assert.Equal(t, "บริษัท ABC จำกัด", c.Name)
	assert.Equal(t, "ABC", c.Code)
	assert.Equal(t, "Wholesale", c.Industry)
	assert.Empty(t, c.Description)
}
