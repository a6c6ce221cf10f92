package service

import (
	"context"
	"fmt"
	"testing"

	"tzlon-api/internal/batch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchService_Convert(t *testing.T) {
	in := batch.NewTable(
		[]string{"direction", "degrees", "minutes", "seconds", "sign", "hours"},
		[][]string{
			{"E", "30", "15", "30.0", "", ""},
			{"", "", "30", "0", "+", "3"},
			{"", "", "", "", "", ""},
			{"W", "abc", "0", "0", "", ""},
			{"", "", "0", "0", "-", "13"},
			{"W", "10.5", "0", "0", "", ""},
			{"w (-)", "82.0", "30", "0", "", ""},
			{"", "", "0", "0", "plus", "1"},
		},
	)

	out, err := NewBatchService(3).Convert(context.Background(), in)
	require.NoError(t, err)

	expectedColumns := append(append([]string{}, in.Columns...), ResultColumns...)
	assert.Equal(t, expectedColumns, out.Columns)
	require.Len(t, out.Rows, len(in.Rows))

	results := make([][]string, len(out.Rows))
	for i, row := range out.Rows {
		assert.Equal(t, in.Rows[i], row[:len(in.Columns)], "input cells are preserved in row %d", i)
		results[i] = row[len(in.Columns):]
	}

	assert.Equal(t, []string{"lon->tz", "30.258333", "2.017222", `E 30° 15' 30.000"`, "+02:01:02.000", ""}, results[0])
	assert.Equal(t, []string{"tz->lon", "52.500000", "3.500000", `E 52° 30' 0.000"`, "+03:30:00.000", ""}, results[1])
	assert.Equal(t, []string{"", "", "", "", "", "unrecognized row format"}, results[2])
	assert.Equal(t, []string{"lon->tz", "", "", "", "", `invalid degrees: "abc" is not a number`}, results[3])
	assert.Equal(t, []string{"tz->lon", "", "", "", "", "invalid hours: 13 is outside [0, 12]"}, results[4])
	assert.Equal(t, []string{"lon->tz", "", "", "", "", `invalid degrees: "10.5" is not a whole number`}, results[5])
	assert.Equal(t, []string{"lon->tz", "-82.500000", "-5.500000", `W 82° 30' 0.000"`, "-05:30:00.000", ""}, results[6])
	assert.Equal(t, "tz->lon", results[7][0])
	assert.Contains(t, results[7][5], "invalid sign")
}

func TestBatchService_Convert_AliasColumns(t *testing.T) {
	in := batch.NewTable(
		[]string{"tz_sign", "tz_h", "tz_m", "tz_s"},
		[][]string{{"-", "5", "0", "30.0"}},
	)

	out, err := NewBatchService(1).Convert(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{"-", "5", "0", "30.0", "tz->lon", "-75.125000", "-5.008333", `W 75° 7' 30.000"`, "-05:00:30.000", ""}, out.Rows[0])
}

func TestBatchService_Convert_PreservesOrder(t *testing.T) {
	rows := make([][]string, 200)
	for i := range rows {
		rows[i] = []string{"E", fmt.Sprint(i % 181), "0", "0"}
	}
	in := batch.NewTable([]string{"dir", "deg", "min", "sec"}, rows)

	out, err := NewBatchService(8).Convert(context.Background(), in)
	require.NoError(t, err)

	for i, row := range out.Rows {
		assert.Equal(t, fmt.Sprintf("%d.000000", i%181), row[5], "row %d", i)
	}
}

func TestBatchService_Convert_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := batch.NewTable([]string{"dir", "deg", "min", "sec"}, [][]string{{"E", "1", "0", "0"}})

	out, err := NewBatchService(2).Convert(ctx, in)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
}
