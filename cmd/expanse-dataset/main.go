// Command expanse-dataset maintains input datasets outside of analysis
// runs: scaffolding empty workbook trees and converting whole datasets to
// and from a YAML document for diffing and version control.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/expanse-model/expanse/dataset/pkg/inputclient"
	"github.com/expanse-model/expanse/dataset/pkg/table"
	"github.com/expanse-model/expanse/dataset/pkg/workbook"
	"github.com/expanse-model/expanse/utils/pkg/logger"
)

type tableDoc struct {
	Columns []string   `yaml:"columns"`
	Rows    [][]string `yaml:"rows,omitempty"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	verboseFlag := flag.Bool("verbose", false, "enable verbose (debug) logging")
	datasetFlag := flag.String("dataset", "", "dataset directory (or set EXPANSE_DATASET env var)")
	scaffoldFlag := flag.Bool("scaffold", false, "create any missing workbooks and sheets in the dataset")
	toYAMLFlag := flag.String("to-yaml", "", "export the dataset to the given YAML file")
	fromYAMLFlag := flag.String("from-yaml", "", "import tables from the given YAML file into the dataset")
	flag.Parse()

	_ = godotenv.Load()

	log := logger.New(*verboseFlag)

	if env := os.Getenv("EXPANSE_DATASET"); env != "" {
		*datasetFlag = env
	}
	if *datasetFlag == "" {
		return fmt.Errorf("--dataset is required")
	}

	if *scaffoldFlag {
		if err := workbook.Scaffold(log, *datasetFlag); err != nil {
			return err
		}
	}

	store, err := workbook.NewStore(workbook.StoreConfig{Logger: log, Root: *datasetFlag})
	if err != nil {
		return err
	}
	client := inputclient.New(store)

	if *fromYAMLFlag != "" {
		if err := importYAML(client, *fromYAMLFlag); err != nil {
			return err
		}
		log.Info("imported dataset", "from", *fromYAMLFlag, "dataset", *datasetFlag)
	}

	if *toYAMLFlag != "" {
		if err := exportYAML(client, *toYAMLFlag); err != nil {
			return err
		}
		log.Info("exported dataset", "dataset", *datasetFlag, "to", *toYAMLFlag)
	}

	if !*scaffoldFlag && *toYAMLFlag == "" && *fromYAMLFlag == "" {
		return fmt.Errorf("nothing to do: pass --scaffold, --to-yaml or --from-yaml")
	}
	return nil
}

func exportYAML(client *inputclient.Client, path string) error {
	doc := map[string]map[string]tableDoc{}
	for _, b := range inputclient.Bindings() {
		tbl, err := b.Get(client)
		if err != nil {
			return fmt.Errorf("failed to export %s/%s: %w", b.Client, b.Table, err)
		}
		if doc[b.Client] == nil {
			doc[b.Client] = map[string]tableDoc{}
		}
		doc[b.Client][b.Table] = tableDoc{Columns: tbl.Columns, Rows: tbl.Rows}
	}

	raw, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func importYAML(client *inputclient.Client, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	var doc map[string]map[string]tableDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, b := range inputclient.Bindings() {
		entry, ok := doc[b.Client][b.Table]
		if !ok || len(entry.Columns) == 0 {
			continue
		}
		tbl := table.New(entry.Columns...)
		for _, row := range entry.Rows {
			tbl.AppendRow(row...)
		}
		if err := b.Set(client, tbl); err != nil {
			return fmt.Errorf("failed to import %s/%s: %w", b.Client, b.Table, err)
		}
	}
	return nil
}
