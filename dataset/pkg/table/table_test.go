package table

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpanse_Dataset_Table(t *testing.T) {
	t.Parallel()

	newFixture := func() *Table {
		tbl := New("GeneratorTechnology", "Period", "generatorCapitalCost in euro per kW")
		tbl.AppendRow("Nuclear", "1", "6000")
		tbl.AppendRow("Nuclear", "2", "5500")
		tbl.AppendRow("Wind_onshr", "1", "1200")
		return tbl
	}

	t.Run("where_matches_all_rows_for_key", func(t *testing.T) {
		tbl := newFixture()
		rows, err := tbl.Where(Eq("GeneratorTechnology", "Nuclear"))
		require.NoError(t, err)
		require.Equal(t, []int{0, 1}, rows)
	})

	t.Run("where_combines_conditions", func(t *testing.T) {
		tbl := newFixture()
		rows, err := tbl.Where(Eq("GeneratorTechnology", "Nuclear"), Eq("Period", "2"))
		require.NoError(t, err)
		require.Equal(t, []int{1}, rows)
	})

	t.Run("where_unknown_column_is_schema_error", func(t *testing.T) {
		tbl := newFixture()
		_, err := tbl.Where(Eq("NoSuchColumn", "x"))
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		require.Equal(t, []string{"NoSuchColumn"}, schemaErr.Missing)
	})

	t.Run("where_custom_match", func(t *testing.T) {
		tbl := New("FromNode", "ToNode", "Length in km")
		tbl.AppendRow("NO 2", "Netherlands", "700")
		rows, err := tbl.Where(Condition{
			Column: "FromNode",
			Match:  func(v string) bool { return strings.ReplaceAll(v, " ", "") == "NO2" },
		})
		require.NoError(t, err)
		require.Equal(t, []int{0}, rows)
	})

	t.Run("float_round_trip", func(t *testing.T) {
		tbl := newFixture()
		require.NoError(t, tbl.SetFloat(0, "generatorCapitalCost in euro per kW", 4500.5))
		v, err := tbl.Float(0, "generatorCapitalCost in euro per kW")
		require.NoError(t, err)
		require.Equal(t, 4500.5, v)
	})

	t.Run("float_parse_error", func(t *testing.T) {
		tbl := New("RampRate")
		tbl.AppendRow("fast")
		_, err := tbl.Float(0, "RampRate")
		require.Error(t, err)
	})

	t.Run("clone_is_independent", func(t *testing.T) {
		tbl := newFixture()
		dup := tbl.Clone()
		require.True(t, tbl.Equal(dup))
		require.NoError(t, dup.Set(0, "Period", "9"))
		require.False(t, tbl.Equal(dup))
	})

	t.Run("append_row_pads_short_rows", func(t *testing.T) {
		tbl := New("A", "B", "C")
		tbl.AppendRow("x")
		require.Equal(t, []string{"x", "", ""}, tbl.Rows[0])
	})

	t.Run("rename_column", func(t *testing.T) {
		tbl := New("generatorCapitalCost in euro per kW")
		require.NoError(t, tbl.RenameColumn(
			"generatorCapitalCost in euro per kW",
			"generatorFixedOMCost in euro per kW",
		))
		require.True(t, tbl.HasColumn("generatorFixedOMCost in euro per kW"))

		err := tbl.RenameColumn("missing", "other")
		var schemaErr *SchemaError
		require.True(t, errors.As(err, &schemaErr))
	})
}
