// Package workbook persists the dataset: one xlsx workbook per table group,
// one worksheet per logical table. Sheet replacement is atomic at the
// workbook level (write to a temporary file, then rename) so a failed write
// never corrupts sibling sheets.
package workbook

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/expanse-model/expanse/core/pkg/config"
	"github.com/expanse-model/expanse/dataset/pkg/schema"
	"github.com/expanse-model/expanse/dataset/pkg/table"
)

// StoreConfig configures a Store.
type StoreConfig struct {
	Logger *slog.Logger

	// Root is the dataset directory holding one workbook per group.
	Root string
}

func (c StoreConfig) Validate() error {
	if c.Logger == nil {
		return errors.New("logger is required")
	}
	if c.Root == "" {
		return errors.New("root is required")
	}
	return nil
}

// Store reads and writes the per-group workbooks of one dataset directory.
// It is not safe for concurrent use: sheet writes are read-modify-write over
// a shared file and callers must apply mutations strictly sequentially.
type Store struct {
	log  *slog.Logger
	root string
}

// NewStore validates the config and the dataset root. A missing root is a
// ConfigurationError: the store never creates the directory implicitly, that
// is Scaffold's job.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store config: %w", err)
	}
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, &config.ConfigurationError{Key: "dataset root", Reason: fmt.Sprintf("%s: %v", cfg.Root, err)}
	}
	if !info.IsDir() {
		return nil, &config.ConfigurationError{Key: "dataset root", Reason: fmt.Sprintf("%s is not a directory", cfg.Root)}
	}
	return &Store{log: cfg.Logger, root: cfg.Root}, nil
}

// Root returns the dataset directory.
func (s *Store) Root() string {
	return s.root
}

// ReadSheet loads one worksheet as a table. The first row is the header;
// shorter data rows are padded to the header width.
func (s *Store) ReadSheet(group schema.Group, sheet string) (*table.Table, error) {
	path := filepath.Join(s.root, group.Filename())
	if _, err := os.Stat(path); err != nil {
		return nil, &table.NotFoundError{Group: string(group)}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	if !slices.Contains(f.GetSheetList(), sheet) {
		return nil, &table.NotFoundError{Group: string(group), Sheet: sheet}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q from %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return &table.Table{}, nil
	}

	tbl := table.New(rows[0]...)
	for _, row := range rows[1:] {
		if len(row) > len(tbl.Columns) {
			row = row[:len(tbl.Columns)]
		}
		tbl.AppendRow(row...)
	}
	return tbl, nil
}

// WriteSheet fully replaces the named worksheet with the table's contents,
// creating the sheet (and the workbook) if absent. Sibling sheets are
// preserved untouched.
func (s *Store) WriteSheet(group schema.Group, sheet string, tbl *table.Table) error {
	path := filepath.Join(s.root, group.Filename())

	var f *excelize.File
	if _, err := os.Stat(path); err == nil {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return fmt.Errorf("failed to open workbook %s: %w", path, err)
		}
	} else {
		f = excelize.NewFile()
	}
	defer f.Close()

	if slices.Contains(f.GetSheetList(), sheet) {
		if err := f.DeleteSheet(sheet); err != nil {
			return fmt.Errorf("failed to replace sheet %q in %s: %w", sheet, path, err)
		}
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q in %s: %w", sheet, path, err)
	}
	// Drop the default sheet of a freshly created workbook.
	if sheet != defaultSheetName && slices.Contains(f.GetSheetList(), defaultSheetName) && !schema.Contains(group, defaultSheetName) {
		if err := f.DeleteSheet(defaultSheetName); err != nil {
			return fmt.Errorf("failed to remove default sheet from %s: %w", path, err)
		}
	}

	if len(tbl.Columns) > 0 {
		if err := setRow(f, sheet, 1, tbl.Columns); err != nil {
			return err
		}
	}
	for i, row := range tbl.Rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	s.log.Debug("writing sheet", "group", group, "sheet", sheet, "rows", len(tbl.Rows))
	return saveAtomic(f, path)
}

const defaultSheetName = "Sheet1"

func setRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to compute cell name for row %d: %w", rowNum, err)
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of sheet %q: %w", rowNum, sheet, err)
	}
	return nil
}

// saveAtomic writes the workbook next to its destination and renames it into
// place so sibling sheets survive a failed save.
func saveAtomic(f *excelize.File, path string) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err := f.SaveAs(tmp); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace workbook %s: %w", path, err)
	}
	return nil
}

// Scaffold ensures the dataset directory exists and every registry sheet is
// present, creating missing workbooks with empty sheets. It never deletes or
// clears a sheet, so re-running on a populated dataset is a no-op for
// existing data.
func Scaffold(log *slog.Logger, root string) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("failed to create dataset directory %s: %w", root, err)
	}

	for _, group := range schema.Groups() {
		path := filepath.Join(root, group.Filename())

		if _, err := os.Stat(path); err != nil {
			f := excelize.NewFile()
			for _, sheet := range schema.SheetsOf(group) {
				if _, err := f.NewSheet(sheet); err != nil {
					f.Close()
					return fmt.Errorf("failed to create sheet %q in %s: %w", sheet, path, err)
				}
			}
			if err := f.DeleteSheet(defaultSheetName); err != nil {
				f.Close()
				return fmt.Errorf("failed to remove default sheet from %s: %w", path, err)
			}
			err := saveAtomic(f, path)
			f.Close()
			if err != nil {
				return err
			}
			log.Info("created workbook", "group", group, "sheets", len(schema.SheetsOf(group)))
			continue
		}

		f, err := excelize.OpenFile(path)
		if err != nil {
			return fmt.Errorf("failed to open workbook %s: %w", path, err)
		}
		existing := f.GetSheetList()
		var added []string
		for _, sheet := range schema.SheetsOf(group) {
			if slices.Contains(existing, sheet) {
				continue
			}
			if _, err := f.NewSheet(sheet); err != nil {
				f.Close()
				return fmt.Errorf("failed to add sheet %q to %s: %w", sheet, path, err)
			}
			added = append(added, sheet)
		}
		if len(added) > 0 {
			if err := saveAtomic(f, path); err != nil {
				f.Close()
				return err
			}
			log.Info("added missing sheets", "group", group, "sheets", strings.Join(added, ","))
		}
		f.Close()
	}
	return nil
}
