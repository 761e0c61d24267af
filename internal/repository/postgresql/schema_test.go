package postgresql

import (
	"strings"
	"testing"

	"github.com/greenlane-data/abp_ingest/internal/abp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTableStatement(t *testing.T) {
	t.Parallel()

	shape := &abp.RecordShape{
		Code:  "32",
		Name:  "Classification",
		Table: "classifications",
		Fields: []abp.FieldSpec{
			{Name: "CHANGE_TYPE", Type: abp.TypeText, MaxLen: 1},
			{Name: "UPRN", Type: abp.TypeWideInteger, Indexed: true},
			{Name: "SCHEME_VERSION", Type: abp.TypeDecimal, Precision: 2, Scale: 1},
			{Name: "START_DATE", Type: abp.TypeDate},
		},
	}

	want := "CREATE TABLE IF NOT EXISTS classifications (\n" +
		"\tid bigserial PRIMARY KEY,\n" +
		"\tchange_type varchar(1),\n" +
		"\tuprn bigint,\n" +
		"\tscheme_version numeric(2, 1),\n" +
		"\tstart_date date\n" +
		")"

	assert.Equal(t, want, createTableStatement(shape))
}

func TestIndexStatements_OnlyIndexedFields(t *testing.T) {
	t.Parallel()

	shape := &abp.RecordShape{
		Code:  "21",
		Name:  "BLPU",
		Table: "blpus",
		Fields: []abp.FieldSpec{
			{Name: "CHANGE_TYPE", Type: abp.TypeText, MaxLen: 1},
			{Name: "UPRN", Type: abp.TypeWideInteger, Indexed: true},
			{Name: "POSTCODE_LOCATOR", Type: abp.TypeText, MaxLen: 8, Indexed: true},
		},
	}

	stmts := indexStatements(shape)
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE INDEX IF NOT EXISTS idx_blpus_uprn ON blpus (uprn)", stmts[0])
	assert.Equal(t, "CREATE INDEX IF NOT EXISTS idx_blpus_postcode_locator ON blpus (postcode_locator)", stmts[1])
}

func TestColumnTypes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		spec abp.FieldSpec
		want string
	}{
		{abp.FieldSpec{Type: abp.TypeInteger}, "integer"},
		{abp.FieldSpec{Type: abp.TypeWideInteger}, "bigint"},
		{abp.FieldSpec{Type: abp.TypeText, MaxLen: 40}, "varchar(40)"},
		{abp.FieldSpec{Type: abp.TypeText}, "text"},
		{abp.FieldSpec{Type: abp.TypeDate}, "date"},
		{abp.FieldSpec{Type: abp.TypeTime}, "time"},
		{abp.FieldSpec{Type: abp.TypeTimestamp}, "timestamp"},
		{abp.FieldSpec{Type: abp.TypeDecimal, Precision: 9, Scale: 7}, "numeric(9, 7)"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, columnType(c.spec))
	}
}

func TestSchemaStatements_LedgerFirstThenEveryShape(t *testing.T) {
	t.Parallel()

	registry := abp.Default()
	stmts := schemaStatements(registry)

	require.NotEmpty(t, stmts)
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS imports")
	assert.Contains(t, stmts[1], "idx_imports_current")

	var tables int
	for _, stmt := range stmts {
		if strings.HasPrefix(stmt, "CREATE TABLE") {
			tables++
		}
	}

	// ledger plus one table per record shape
	assert.Equal(t, 1+len(registry.Shapes()), tables)
}
