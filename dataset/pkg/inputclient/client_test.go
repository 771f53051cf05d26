package inputclient_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/expanse-model/expanse/dataset/pkg/inputclient"
	"github.com/expanse-model/expanse/dataset/pkg/schema"
	"github.com/expanse-model/expanse/dataset/pkg/table"
	"github.com/expanse-model/expanse/dataset/pkg/workbook"
	expansetesting "github.com/expanse-model/expanse/utils/pkg/testing"
)

func TestExpanse_Dataset_InputClient(t *testing.T) {
	t.Parallel()

	newClient := func(t *testing.T) *inputclient.Client {
		t.Helper()
		log := expansetesting.NewLogger()
		root := t.TempDir()
		require.NoError(t, workbook.Scaffold(log, root))
		store, err := workbook.NewStore(workbook.StoreConfig{Logger: log, Root: root})
		require.NoError(t, err)
		return inputclient.New(store)
	}

	t.Run("round_trip_through_accessor", func(t *testing.T) {
		t.Parallel()

		client := newClient(t)

		tbl := table.New(inputclient.ColGeneratorTechnology, inputclient.ColPeriod, inputclient.ColCapitalCost)
		tbl.AppendRow("Nuclear", "1", "4500")
		tbl.AppendRow("Nuclear", "2", "4400")
		require.NoError(t, client.Generator.SetCapitalCosts(tbl))

		got, err := client.Generator.CapitalCosts()
		require.NoError(t, err)
		require.True(t, got.Equal(tbl))
	})

	t.Run("setter_missing_required_column_is_schema_error", func(t *testing.T) {
		t.Parallel()

		client := newClient(t)

		tbl := table.New(inputclient.ColGeneratorTechnology, "euros")
		tbl.AppendRow("Nuclear", "4500")
		err := client.Generator.SetCapitalCosts(tbl)

		var schemaErr *table.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		require.Equal(t, []string{inputclient.ColCapitalCost}, schemaErr.Missing)
	})

	t.Run("fixed_om_legacy_header_is_normalized_on_read", func(t *testing.T) {
		t.Parallel()

		log := expansetesting.NewLogger()
		root := t.TempDir()
		require.NoError(t, workbook.Scaffold(log, root))
		store, err := workbook.NewStore(workbook.StoreConfig{Logger: log, Root: root})
		require.NoError(t, err)

		legacy := table.New(inputclient.ColGeneratorTechnology, inputclient.ColPeriod, inputclient.ColCapitalCost)
		legacy.AppendRow("Coal", "1", "33")
		require.NoError(t, store.WriteSheet(schema.Generator, "FixedOMCosts", legacy))

		client := inputclient.New(store)
		got, err := client.Generator.FixedOMCosts()
		require.NoError(t, err)
		require.True(t, got.HasColumn(inputclient.ColFixedOMCost))
		require.False(t, got.HasColumn(inputclient.ColCapitalCost))

		v, err := got.Value(0, inputclient.ColFixedOMCost)
		require.NoError(t, err)
		require.Equal(t, "33", v)

		// Writing back persists the canonical header.
		require.NoError(t, client.Generator.SetFixedOMCosts(got))
		canonical, err := store.ReadSheet(schema.Generator, "FixedOMCosts")
		require.NoError(t, err)
		require.True(t, canonical.HasColumn(inputclient.ColFixedOMCost))
	})

	t.Run("type_cost_setters_reorder_type_and_period_first", func(t *testing.T) {
		t.Parallel()

		client := newClient(t)

		tbl := table.New(inputclient.ColTypeCapitalCost, inputclient.ColTransmissionType, inputclient.ColPeriod)
		tbl.AppendRow("1250", "HVDC_Cable", "1")
		require.NoError(t, client.Transmission.SetTypeCapitalCost(tbl))

		got, err := client.Transmission.TypeCapitalCost()
		require.NoError(t, err)
		require.Equal(t, []string{inputclient.ColTransmissionType, inputclient.ColPeriod, inputclient.ColTypeCapitalCost}, got.Columns)

		v, err := got.Value(0, inputclient.ColTypeCapitalCost)
		require.NoError(t, err)
		require.Equal(t, "1250", v)
	})
}

func TestExpanse_Dataset_InputClient_Manifest(t *testing.T) {
	t.Parallel()

	t.Run("covers_every_registry_sheet_once", func(t *testing.T) {
		t.Parallel()

		total := 0
		for _, group := range schema.Groups() {
			total += len(schema.SheetsOf(group))
		}

		bindings := inputclient.Bindings()
		require.Len(t, bindings, total)

		seen := map[string]bool{}
		for _, b := range bindings {
			key := b.Client + "/" + b.Table
			require.False(t, seen[key], "duplicate binding %s", key)
			seen[key] = true
			require.NotNil(t, b.Get)
			require.NotNil(t, b.Set)
		}
	})

	t.Run("every_getter_reads_a_scaffolded_dataset", func(t *testing.T) {
		t.Parallel()

		log := expansetesting.NewLogger()
		root := t.TempDir()
		require.NoError(t, workbook.Scaffold(log, root))
		store, err := workbook.NewStore(workbook.StoreConfig{Logger: log, Root: root})
		require.NoError(t, err)
		client := inputclient.New(store)

		for _, b := range inputclient.Bindings() {
			tbl, err := b.Get(client)
			require.NoError(t, err, "%s/%s", b.Client, b.Table)
			require.NotNil(t, tbl)
		}
	})
}
