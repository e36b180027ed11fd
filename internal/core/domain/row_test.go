package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRow_AllFieldsUnknown(t *testing.T) {
	row := NewRow()
	for _, c := range RowColumns {
		assert.Equal(t, Unknown, row.Value(c), "column %s", c)
	}
}

func TestRow_ValuesFollowCanonicalOrder(t *testing.T) {
	row := NewRow()
	row.BaseReportID = "3002"
	row.ReportID = "3002-2023-00017"
	row.EventManufacturerComments = "narrative"

	values := row.Values()
	assert.Len(t, values, len(RowColumns))
	assert.Equal(t, "3002", values[0])
	assert.Equal(t, "3002-2023-00017", values[1])
	assert.Equal(t, "narrative", values[len(values)-1])
}

func TestRow_ValueUnknownColumn(t *testing.T) {
	assert.Equal(t, "", NewRow().Value(ColResultLabel))
}

func TestBaseReportID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3002808904-2021-00123", "3002808904"},
		{"MW5098765", "MW5098765"},
		{Unknown, Unknown},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseReportID(tt.in), tt.in)
	}
}
