package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogShape(t *testing.T) {
	assert.Len(t, Catalog, 15)

	seen := map[string]bool{}
	for _, role := range Catalog {
		assert.NotEmpty(t, role.ID)
		assert.NotEmpty(t, role.Title)
		assert.Contains(t, StreamNames, role.Stream)
		assert.False(t, seen[role.ID], "duplicate role ID: %s", role.ID)
		seen[role.ID] = true

		assert.Greater(t, role.Salary.Min, 0)
		assert.GreaterOrEqual(t, role.Salary.Max, role.Salary.Min)
		assert.NotEmpty(t, role.Skills)
	}
}

func TestCatalogStreamCounts(t *testing.T) {
	assert.Len(t, ByStream(StreamDataEngineering), 4)
	assert.Len(t, ByStream(StreamAIML), 6)
	assert.Len(t, ByStream(StreamBIReporting), 5)
	assert.Empty(t, ByStream(StreamEntryLevel))
}

func TestByID(t *testing.T) {
	role, ok := ByID("sql-developer")
	assert.True(t, ok)
	assert.Equal(t, "SQL Developer", role.Title)
	assert.Equal(t, 75.0, role.Thresholds.SQL)

	_, ok = ByID("no-such-role")
	assert.False(t, ok)
}

func TestSalaryRangeString(t *testing.T) {
	assert.Equal(t, "₹5L - ₹8L", SalaryRange{Min: 5, Max: 8}.String())
}

func TestThresholdsDeclared(t *testing.T) {
	assert.Equal(t, 0, Thresholds{}.Declared())
	assert.Equal(t, 1, Thresholds{SQL: 70}.Declared())
	assert.Equal(t, 3, Thresholds{SQL: 65, Python: 65, DE: 70}.Declared())
	assert.Equal(t, 4, Thresholds{SQL: 1, Python: 1, DE: 1, Academic: 1}.Declared())
}
