package abp_test

import (
	"testing"
	"time"

	"github.com/greenlane-data/abp_ingest/internal/abp"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShape() *abp.RecordShape {
	return &abp.RecordShape{
		Code:  "21",
		Name:  "BLPU",
		Table: "blpus",
		Fields: []abp.FieldSpec{
			{Name: "CHANGE_TYPE", Type: abp.TypeText, MaxLen: 1},
			{Name: "UPRN", Type: abp.TypeWideInteger},
			{Name: "LATITUDE", Type: abp.TypeDecimal, Precision: 9, Scale: 7},
			{Name: "START_DATE", Type: abp.TypeDate},
			{Name: "TIME_STAMP", Type: abp.TypeTime},
		},
	}
}

func TestBuild_WellFormedLine(t *testing.T) {
	t.Parallel()

	record, report := abp.Build(testShape(), []string{"I", "100023336956", "53.4721558", "2016-02-05", "16:00:30"})

	require.Len(t, record.Values, 5)
	assert.False(t, report.FieldCountMismatch)
	assert.Empty(t, report.FieldErrors)

	assert.Equal(t, "I", record.Values[0])
	assert.Equal(t, int64(100023336956), record.Values[1])
	assert.Equal(t, 53.4721558, record.Values[2])
	assert.Equal(t, time.Date(2016, 2, 5, 0, 0, 0, 0, time.UTC), record.Values[3])

	wantMicros := int64(16*3600+30) * int64(time.Second/time.Microsecond)
	assert.Equal(t, pgtype.Time{Microseconds: wantMicros, Valid: true}, record.Values[4])
}

func TestBuild_EmptyFieldsAreNull(t *testing.T) {
	t.Parallel()

	record, report := abp.Build(testShape(), []string{"", "", "", "", ""})

	assert.False(t, report.FieldCountMismatch)
	assert.Empty(t, report.FieldErrors)

	for i, v := range record.Values {
		assert.Nil(t, v, "field %d", i)
	}
}

func TestBuild_CoercionFailureNullsFieldOnly(t *testing.T) {
	t.Parallel()

	record, report := abp.Build(testShape(), []string{"I", "not-a-number", "53.5", "2016-02-05", "16:00:30"})

	require.Len(t, report.FieldErrors, 1)
	assert.Equal(t, "UPRN", report.FieldErrors[0].Field)
	assert.Equal(t, "not-a-number", report.FieldErrors[0].Raw)

	// the record is still produced, only the bad field is nulled
	assert.Nil(t, record.Values[1])
	assert.Equal(t, "I", record.Values[0])
	assert.Equal(t, 53.5, record.Values[2])
}

func TestBuild_TextOverflowIsCoercionFailure(t *testing.T) {
	t.Parallel()

	record, report := abp.Build(testShape(), []string{"TOO LONG", "1", "", "", ""})

	require.Len(t, report.FieldErrors, 1)
	assert.Equal(t, "CHANGE_TYPE", report.FieldErrors[0].Field)
	assert.Nil(t, record.Values[0])
	assert.Equal(t, int64(1), record.Values[1])
}

func TestBuild_ExtraTrailingFieldsIgnored(t *testing.T) {
	t.Parallel()

	record, report := abp.Build(testShape(), []string{"I", "42", "1.5", "2016-02-05", "16:00:30", "SURPLUS"})

	assert.True(t, report.FieldCountMismatch)
	assert.Equal(t, 5, report.ExpectedFields)
	assert.Equal(t, 6, report.ActualFields)

	require.Len(t, record.Values, 5)
	assert.Equal(t, int64(42), record.Values[1])
}

func TestBuild_MissingTrailingFieldsAreNull(t *testing.T) {
	t.Parallel()

	record, report := abp.Build(testShape(), []string{"I", "42"})

	assert.True(t, report.FieldCountMismatch)
	assert.Equal(t, 2, report.ActualFields)

	require.Len(t, record.Values, 5)
	assert.Equal(t, "I", record.Values[0])
	assert.Equal(t, int64(42), record.Values[1])
	assert.Nil(t, record.Values[2])
	assert.Nil(t, record.Values[3])
	assert.Nil(t, record.Values[4])
}

func TestCoerce_Timestamp(t *testing.T) {
	t.Parallel()

	spec := abp.FieldSpec{Name: "META_STAMP", Type: abp.TypeTimestamp}

	v, err := spec.Coerce("2016-02-05 16:00:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2016, 2, 5, 16, 0, 30, 0, time.UTC), v)

	_, err = spec.Coerce("05/02/2016")
	assert.Error(t, err)
}

func TestCoerce_BadDateAndTime(t *testing.T) {
	t.Parallel()

	_, err := abp.FieldSpec{Name: "D", Type: abp.TypeDate}.Coerce("20160205")
	assert.Error(t, err)

	_, err = abp.FieldSpec{Name: "T", Type: abp.TypeTime}.Coerce("25:99:00")
	assert.Error(t, err)
}
