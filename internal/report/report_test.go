package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitflow/pipeline"
)

func TestPad(t *testing.T) {
	tests := []struct {
		v         float64
		width     int
		precision int
		want      string
	}{
		{v: 5.2, width: 6, precision: 2, want: "  5.20"},
		{v: 41.91, width: 6, precision: 2, want: " 41.91"},
		{v: 123.456, width: 6, precision: 2, want: "123.46"},
		{v: 3, width: 3, precision: 0, want: "  3"},
		{v: -1.5, width: 6, precision: 1, want: "  -1.5"},
	}

	for _, tt := range tests {
		got, err := Pad(tt.v, tt.width, tt.precision)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestPadErrors(t *testing.T) {
	_, err := Pad(1, 0, 2)
	assert.Error(t, err)

	_, err = Pad(12345.6, 6, 2)
	assert.ErrorIs(t, err, ErrWidth)
}

func TestRows(t *testing.T) {
	rows := Rows([]float64{30.73, 13.21}, pipeline.CentimetersToInches, 2)

	assert.Equal(t, []Row{
		{Source: 12.1, Target: 30.73},
		{Source: 5.2, Target: 13.21},
	}, rows)
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	rep := New(&buf)

	rows := []Row{{Source: 12.1, Target: 30.73}, {Source: 9.2, Target: 23.37}}
	require.NoError(t, rep.Table("TOP 2", rows, pipeline.Inch, pipeline.Centimeter))

	want := "TOP 2\n" +
		"\t 12.10 in =  30.73 cm\n" +
		"\t  9.20 in =  23.37 cm\n"
	assert.Equal(t, want, buf.String())
}

func TestTableTooWide(t *testing.T) {
	var buf bytes.Buffer
	rep := New(&buf, WithWidth(4), WithPrecision(2))

	err := rep.Table("TOP 1", []Row{{Source: 1, Target: 100}}, pipeline.Inch, pipeline.Centimeter)
	assert.ErrorIs(t, err, ErrWidth)
	assert.Empty(t, buf.String())
}

func TestEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, New(&buf).Empty(pipeline.Range{Min: 100, Max: 200}, pipeline.Centimeter))
	assert.Equal(t, "no measurements in range [100, 200] cm\n", buf.String())
}
