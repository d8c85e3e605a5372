package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditableFields(t *testing.T) {
	t.Run("absent fields are editable", func(t *testing.T) {
		var e EditableFields
		assert.True(t, e.Allows("totalRevenue"))
	})

	t.Run("explicit false locks a field", func(t *testing.T) {
		e := EditableFields{"totalRevenue": false}
		assert.False(t, e.Allows("totalRevenue"))
		assert.True(t, e.Allows("netIncome"))
	})

	t.Run("validate rejects unknown keys", func(t *testing.T) {
		e := EditableFields{"totalRevenue": true, "bogus": false}
		err := e.Validate(ProfitLossFields)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bogus")
		assert.NoError(t, EditableFields{"cash": true}.Validate(BalanceSheetFields))
	})

	t.Run("defaults fill every known field", func(t *testing.T) {
		e := EditableFields{"netIncome": false}.WithDefaults(ProfitLossFields)
		assert.Len(t, e, len(ProfitLossFields))
		assert.False(t, e["netIncome"])
		assert.True(t, e["totalRevenue"])
	})

	t.Run("clone is independent", func(t *testing.T) {
		e := EditableFields{"cash": true}
		c := e.Clone()
		c["cash"] = false
		assert.True(t, e["cash"])
		assert.Nil(t, EditableFields(nil).Clone())
	})

	t.Run("merge overlays key by key", func(t *testing.T) {
		e := EditableFields{"cash": true, "inventory": true}
		m := e.Merge(EditableFields{"cash": false})
		assert.False(t, m["cash"])
		assert.True(t, m["inventory"])
		assert.True(t, e["cash"])
	})
}
