// Command expanse prepares an analysis dataset and hands it to the
// optimizer: it copies the versioned input dataset into a run directory,
// applies the scenario edits selected by the flags and invokes the solver.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/expanse-model/expanse/core/pkg/config"
	"github.com/expanse-model/expanse/core/pkg/run"
	"github.com/expanse-model/expanse/dataset/pkg/inputclient"
	"github.com/expanse-model/expanse/dataset/pkg/manager"
	"github.com/expanse-model/expanse/dataset/pkg/results"
	"github.com/expanse-model/expanse/dataset/pkg/workbook"
	"github.com/expanse-model/expanse/utils/pkg/logger"
)

// Offshore links removed under the protective north-sea policy: no
// international grid connections through the offshore nodes.
var protectiveRemovals = [][2]string{
	{"HollandseeKust", "DoggerBank"},
	{"Nordsoen", "DoggerBank"},
	{"SorligeNordsjoII", "DoggerBank"},
	{"Borssele", "EastAnglia"},
	{"SorligeNordsjoI", "FirthofForth"},
	{"Nordsoen", "HelgolanderBucht"},
	{"SorligeNordsjoI", "HelgolanderBucht"},
	{"SorligeNordsjoII", "HelgolanderBucht"},
	{"Borssele", "Hornsea"},
	{"HollandseeKust", "Hornsea"},
	{"UtsiraNord", "MorayFirth"},
	{"Borssele", "Norfolk"},
	{"HollandseeKust", "Norfolk"},
	{"HollandseeKust", "Belgium"},
	{"Hornsea", "DoggerBank"},
	{"Borssele", "Netherlands"},
	{"HelgolanderBucht", "Netherlands"},
	{"SorligeNordsjoI", "Nordsoen"},
	{"SorligeNordsjoII", "Nordsoen"},
	{"UtsiraNord", "Nordsoen"},
}

var norwegianNodes = []string{"NO1", "NO2", "NO3", "NO4", "NO5"}

func main() {
	if err := runMain(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runMain() error {
	verboseFlag := flag.Bool("verbose", false, "enable verbose (debug) logging")
	configFlag := flag.String("config", "config/run.yaml", "run configuration file (or set EXPANSE_CONFIG env var)")
	datasetRootFlag := flag.String("dataset-root", "Dataset/europe_v51", "versioned input dataset directory (or set EXPANSE_DATASET_ROOT env var)")
	optimizerFlag := flag.String("optimizer-cmd", "", "external solver command invoked with the run directory (or set EXPANSE_OPTIMIZER env var)")

	nccFlag := flag.Float64("nuclear-capital-cost", 0, "nuclear capital cost in EUR/kW")
	naFlag := flag.Float64("nuclear-availability", 0, "nuclear availability in [0,1]")
	noWindFlag := flag.Bool("no-onshore-wind-norway", false, "disallow installed onshore wind in Norway")
	protectiveFlag := flag.Bool("protective", false, "protective north-sea development with no international grid connection")
	baseloadFlag := flag.Bool("baseload", false, "add additional load as baseload instead of scaling the load profile")
	ccsFlag := flag.Bool("ccs", false, "allow building CCS plants")
	germanyFlag := flag.Bool("germany", false, "disallow nuclear in Germany and Austria")
	testRunFlag := flag.Bool("test-run", false, "prepare the dataset without optimization")

	loadNodeFlag := flag.String("load-node", "", "node whose electric load to adjust")
	loadScaleFlag := flag.Float64("load-scale", 1.0, "scale factor for the adjusted load")
	loadShiftFlag := flag.Float64("load-shift", 0.0, "shift in MW for the adjusted load")

	flag.Parse()

	_ = godotenv.Load()

	log := logger.New(*verboseFlag)

	if env := os.Getenv("EXPANSE_CONFIG"); env != "" {
		*configFlag = env
	}
	if env := os.Getenv("EXPANSE_DATASET_ROOT"); env != "" {
		*datasetRootFlag = env
	}
	if env := os.Getenv("EXPANSE_OPTIMIZER"); env != "" {
		*optimizerFlag = env
	}

	if !flag.CommandLine.Changed("nuclear-capital-cost") || !flag.CommandLine.Changed("nuclear-availability") {
		return fmt.Errorf("--nuclear-capital-cost and --nuclear-availability are required")
	}

	cfg, err := config.FromFile(*configFlag)
	if err != nil {
		return err
	}
	cfg.AdditionalLoadIsBaseload = *baseloadFlag
	if *baseloadFlag && !cfg.UseScenarioGeneration {
		log.Warn("enabling scenario generation: load must be regenerated when additional load is baseload")
		cfg.UseScenarioGeneration = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	runName := fmt.Sprintf("ncc%v_na%v_w%v_p%v_b%v_ccs%v_de%v",
		*nccFlag, *naFlag, *noWindFlag, *protectiveFlag, *baseloadFlag, *ccsFlag, *germanyFlag)
	paths := config.NewRunPaths(cwd, filepath.Join(cwd, "Results", "run_analysis", runName))

	if results.NewClient(paths.Results).HasObjective() {
		return fmt.Errorf("results already exist for this analysis run at %s", paths.ObjectivePath())
	}
	if err := paths.Ensure(); err != nil {
		return err
	}
	if err := copyDataset(*datasetRootFlag, paths); err != nil {
		return err
	}

	log.Info("running analysis",
		"nuclear_capital_cost", *nccFlag,
		"nuclear_availability", *naFlag,
		"no_onshore_wind_norway", *noWindFlag,
		"protective", *protectiveFlag,
		"baseload", *baseloadFlag,
		"ccs", *ccsFlag,
		"no_nuclear_germany", *germanyFlag,
		"dataset", *datasetRootFlag,
	)

	store, err := workbook.NewStore(workbook.StoreConfig{Logger: log, Root: paths.Dataset})
	if err != nil {
		return err
	}
	client := inputclient.New(store)

	availability, err := manager.NewAvailabilityManager(log, client, "Nuclear", *naFlag)
	if err != nil {
		return err
	}
	managers := []manager.Manager{
		availability,
		manager.NewCapitalCostManager(log, client, "Nuclear", *nccFlag),
	}

	if *noWindFlag {
		managers = append(managers,
			manager.NewMaxInstalledCapacityManager(log, client, "Wind_onshr", norwegianNodes, 0))
	}
	if !*germanyFlag {
		managers = append(managers,
			manager.NewMaxInstalledCapacityManager(log, client, "Nuclear", []string{"Germany", "Austria"}, 200000))
	}
	if *protectiveFlag {
		log.Info("protective north-sea transmission policy, removing international connections")
		for _, pair := range protectiveRemovals {
			managers = append(managers,
				manager.NewMaxTransmissionCapacityManager(log, client, pair[0], pair[1], 0))
		}
	}
	if *ccsFlag {
		log.Info("allowing CCS builds")
		managers = append(managers,
			manager.NewMaxBuiltCapacityManager(log, client, "CCS", nil, 200000))
	}

	// More reasonable ramp rate for nuclear.
	rampRate, err := manager.NewRampRateManager(log, client, "Nuclear", 0.85)
	if err != nil {
		return err
	}
	managers = append(managers, rampRate)

	// Limit new direct cable to Germany from NO2.
	managers = append(managers,
		manager.NewMaxTransmissionCapacityManager(log, client, "NO2", "Germany", 1400))
	// Include North Sea Link.
	managers = append(managers,
		manager.NewInitialTransmissionCapacityManager(log, client, "NO2", "Great Brit.", 1400))
	// Northconnect stays out.
	managers = append(managers,
		manager.NewMaxTransmissionCapacityManager(log, client, "NO5", "Great Brit.", 0))
	// Update length of Norned.
	managers = append(managers,
		manager.NewTransmissionLengthManager(log, client, "NO2", "Netherlands", 580))

	if *loadNodeFlag != "" {
		managers = append(managers,
			manager.NewElectricLoadManager(log, client, *loadNodeFlag, *loadScaleFlag, *loadShiftFlag,
				paths.ScenarioData, paths.Countries))
	}

	var optimizer run.Optimizer
	if *testRunFlag || *optimizerFlag == "" {
		optimizer = &run.NoopOptimizer{Logger: log}
	} else {
		optimizer = &run.CommandOptimizer{Logger: log, Command: *optimizerFlag}
	}

	runner, err := run.NewRunner(run.RunnerConfig{
		Logger:    log,
		Paths:     paths,
		Managers:  managers,
		Optimizer: optimizer,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return runner.Run(ctx)
}

// copyDataset copies the versioned dataset's workbooks and scenario data
// into the run directory so edits never touch the source dataset.
func copyDataset(root string, paths config.RunPaths) error {
	if err := copyDir(filepath.Join(root, "Xlsx"), paths.Dataset); err != nil {
		return fmt.Errorf("failed to copy dataset: %w", err)
	}
	scenarioSrc := filepath.Join(root, "ScenarioData")
	if _, err := os.Stat(scenarioSrc); err == nil {
		if err := copyDir(scenarioSrc, paths.ScenarioData); err != nil {
			return fmt.Errorf("failed to copy scenario data: %w", err)
		}
	}
	return nil
}

func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
