package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilter_Query(t *testing.T) {
	t.Run("zero filter encodes nothing", func(t *testing.T) {
		assert.Empty(t, ListFilter{}.Query())
	})

	t.Run("set fields are encoded", func(t *testing.T) {
		v := ListFilter{
			Page:       3,
			Limit:      25,
			From:       "2024-01-01",
			To:         "2024-12-31",
			CategoryID: "c9",
			Search:     "coffee",
		}.Query()

		assert.Equal(t, "3", v.Get("page"))
		assert.Equal(t, "25", v.Get("limit"))
		assert.Equal(t, "2024-01-01", v.Get("from"))
		assert.Equal(t, "2024-12-31", v.Get("to"))
		assert.Equal(t, "c9", v.Get("categoryId"))
		assert.Equal(t, "coffee", v.Get("search"))
	})
}

func TestStatsRange_Query(t *testing.T) {
	assert.Empty(t, StatsRange{}.Query())

	v := StatsRange{From: "2024-01-01", To: "2024-02-01"}.Query()
	assert.Equal(t, "2024-01-01", v.Get("from"))
	assert.Equal(t, "2024-02-01", v.Get("to"))
}
