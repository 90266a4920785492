package prose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListToSentence(t *testing.T) {
	tests := []struct {
		items  []string
		oxford bool
		want   string
	}{
		{[]string{"A"}, true, "A"},
		{[]string{"A", "B"}, true, "A and B"},
		{[]string{"A", "B"}, false, "A and B"},
		{[]string{"A", "B", "C"}, true, "A, B, and C"},
		{[]string{"A", "B", "C"}, false, "A, B and C"},
		{[]string{"UK", "Wales", "Scotland", "England"}, true, "UK, Wales, Scotland, and England"},
		{nil, true, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ListToSentence(tt.items, tt.oxford), "items=%v oxford=%v", tt.items, tt.oxford)
	}
}

func TestNumberOfTablesNote(t *testing.T) {
	assert.Equal(t, "This worksheet contains one table.", NumberOfTablesNote(1))
	assert.Equal(t, "This worksheet contains three tables, stacked vertically.", NumberOfTablesNote(3))
	assert.Equal(t, "This worksheet contains ten tables, stacked vertically.", NumberOfTablesNote(10))
	assert.Equal(t, "This worksheet contains 12 tables, stacked vertically.", NumberOfTablesNote(12))
}

func TestMissingDataNote(t *testing.T) {
	assert.Equal(t, "The UK column is missing data.", MissingDataNote([]string{"UK"}))
	assert.Equal(t, "The RX6 and RX7 columns are missing data.", MissingDataNote([]string{"RX6", "RX7"}))
}
