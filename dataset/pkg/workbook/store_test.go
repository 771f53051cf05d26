package workbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/expanse-model/expanse/core/pkg/config"
	"github.com/expanse-model/expanse/dataset/pkg/schema"
	"github.com/expanse-model/expanse/dataset/pkg/table"
	expansetesting "github.com/expanse-model/expanse/utils/pkg/testing"
)

func TestExpanse_Dataset_Workbook_Store(t *testing.T) {
	t.Parallel()
	log := expansetesting.NewLogger()

	newStore := func(t *testing.T) *Store {
		root := t.TempDir()
		require.NoError(t, Scaffold(log, root))
		store, err := NewStore(StoreConfig{Logger: log, Root: root})
		require.NoError(t, err)
		return store
	}

	t.Run("missing_root_is_configuration_error", func(t *testing.T) {
		_, err := NewStore(StoreConfig{Logger: log, Root: filepath.Join(t.TempDir(), "nope")})
		var confErr *config.ConfigurationError
		require.ErrorAs(t, err, &confErr)
	})

	t.Run("scaffold_creates_every_registry_sheet", func(t *testing.T) {
		store := newStore(t)
		for group, sheets := range schema.Tables() {
			for _, sheet := range sheets {
				tbl, err := store.ReadSheet(group, sheet)
				require.NoError(t, err, "group %s sheet %s", group, sheet)
				require.Empty(t, tbl.Rows)
			}
		}
	})

	t.Run("read_missing_workbook_is_not_found", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, Scaffold(log, root))
		store, err := NewStore(StoreConfig{Logger: log, Root: root})
		require.NoError(t, err)
		require.NoError(t, store.WriteSheet(schema.General, "CO2Price", table.New("Period")))

		_, err = store.ReadSheet(schema.Group("Bogus"), "CO2Price")
		var notFound *table.NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Empty(t, notFound.Sheet)
	})

	t.Run("read_missing_sheet_is_not_found", func(t *testing.T) {
		store := newStore(t)
		_, err := store.ReadSheet(schema.General, "NoSuchSheet")
		var notFound *table.NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "NoSuchSheet", notFound.Sheet)
	})

	t.Run("write_then_read_round_trips", func(t *testing.T) {
		store := newStore(t)
		tbl := table.New("Period", "CO2price in euro per tCO2")
		tbl.AppendRow("1", "50")
		tbl.AppendRow("2", "75.5")

		require.NoError(t, store.WriteSheet(schema.General, "CO2Price", tbl))
		got, err := store.ReadSheet(schema.General, "CO2Price")
		require.NoError(t, err)
		require.True(t, tbl.Equal(got), "want %+v got %+v", tbl, got)

		// Writing back an unmodified read is idempotent.
		require.NoError(t, store.WriteSheet(schema.General, "CO2Price", got))
		again, err := store.ReadSheet(schema.General, "CO2Price")
		require.NoError(t, err)
		require.True(t, got.Equal(again))
	})

	t.Run("write_preserves_sibling_sheets", func(t *testing.T) {
		store := newStore(t)
		capTbl := table.New("Period", "CO2Cap in Ton CO2 per year")
		capTbl.AppendRow("1", "1000")
		require.NoError(t, store.WriteSheet(schema.General, "CO2Cap", capTbl))

		price := table.New("Period", "CO2price in euro per tCO2")
		price.AppendRow("1", "50")
		require.NoError(t, store.WriteSheet(schema.General, "CO2Price", price))

		got, err := store.ReadSheet(schema.General, "CO2Cap")
		require.NoError(t, err)
		require.True(t, capTbl.Equal(got))
	})

	t.Run("scaffold_is_idempotent_and_preserves_data", func(t *testing.T) {
		store := newStore(t)
		tbl := table.New("Nodes")
		tbl.AppendRow("NO1")
		require.NoError(t, store.WriteSheet(schema.Sets, "Nodes", tbl))

		require.NoError(t, Scaffold(log, store.Root()))
		got, err := store.ReadSheet(schema.Sets, "Nodes")
		require.NoError(t, err)
		require.True(t, tbl.Equal(got))
	})
}
