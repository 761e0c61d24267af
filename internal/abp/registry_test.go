package abp_test

import (
	"testing"

	"github.com/greenlane-data/abp_ingest/internal/abp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CatalogComplete(t *testing.T) {
	t.Parallel()

	registry := abp.Default()

	// field counts per record type, AddressBase Premium v2.3, excluding the
	// leading RECORD_IDENTIFIER which is the discriminator itself
	expected := map[string]struct {
		name   string
		fields int
	}{
		"10": {"Header", 8},
		"11": {"Street", 23},
		"15": {"Street Descriptor", 12},
		"21": {"BLPU", 21},
		"23": {"Application Cross Reference", 11},
		"24": {"LPI", 25},
		"28": {"Delivery Point Address", 28},
		"29": {"MetaData", 16},
		"30": {"Successor Cross Reference", 9},
		"31": {"Organisation", 10},
		"32": {"Classification", 11},
		"99": {"Trailer", 4},
	}

	require.Len(t, registry.Shapes(), len(expected))

	for code, want := range expected {
		shape, ok := registry.Lookup(code)
		require.True(t, ok, "code %s missing", code)
		assert.Equal(t, want.name, shape.Name)
		assert.Len(t, shape.Fields, want.fields, "code %s", code)
		assert.False(t, shape.Ignore)
	}
}

func TestDefault_FieldOrderFixed(t *testing.T) {
	t.Parallel()

	registry := abp.Default()

	blpu, ok := registry.Lookup("21")
	require.True(t, ok)

	assert.Equal(t, "CHANGE_TYPE", blpu.Fields[0].Name)
	assert.Equal(t, "PRO_ORDER", blpu.Fields[1].Name)
	assert.Equal(t, "UPRN", blpu.Fields[2].Name)
	assert.Equal(t, abp.TypeWideInteger, blpu.Fields[2].Type)
	assert.True(t, blpu.Fields[2].Indexed)
	assert.Equal(t, "MULTI_OCC_COUNT", blpu.Fields[len(blpu.Fields)-1].Name)

	street, ok := registry.Lookup("11")
	require.True(t, ok)

	assert.Equal(t, "STREET_START_LAT", street.Fields[16].Name)
	assert.Equal(t, abp.TypeDecimal, street.Fields[16].Type)
	assert.Equal(t, 9, street.Fields[16].Precision)
	assert.Equal(t, 7, street.Fields[16].Scale)
}

func TestLookup_UnknownCode(t *testing.T) {
	t.Parallel()

	registry := abp.Default()

	shape, ok := registry.Lookup("77")
	assert.False(t, ok)
	assert.Nil(t, shape)
}

func TestColumns_LowercasesFieldNames(t *testing.T) {
	t.Parallel()

	shape := &abp.RecordShape{
		Code: "21",
		Name: "BLPU",
		Fields: []abp.FieldSpec{
			{Name: "CHANGE_TYPE", Type: abp.TypeText, MaxLen: 1},
			{Name: "UPRN", Type: abp.TypeWideInteger},
		},
	}

	assert.Equal(t, []string{"change_type", "uprn"}, shape.Columns())
}

func TestNewRegistry_IsolatedCatalog(t *testing.T) {
	t.Parallel()

	custom := &abp.RecordShape{Code: "51", Name: "Custom"}
	registry := abp.NewRegistry(custom)

	got, ok := registry.Lookup("51")
	require.True(t, ok)
	assert.Same(t, custom, got)

	_, ok = registry.Lookup("21")
	assert.False(t, ok)
}
