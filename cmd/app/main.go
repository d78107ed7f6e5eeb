package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
	"github.com/ybabel/BeurerScaleManager/internal/config"
	"github.com/ybabel/BeurerScaleManager/internal/logger"
	"github.com/ybabel/BeurerScaleManager/internal/measurement"
	"github.com/ybabel/BeurerScaleManager/internal/store"
	"github.com/ybabel/BeurerScaleManager/internal/store/sqlite"
)

var version = semver.Version{Minor: 1, PreRelease: "alpha", Build: semver.Commit()}

var (
	cfgPath string
	dataDir string
	dbFile  string
	debug   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bsm",
		Short: "Beurer Scale Manager persistence admin CLI",
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "optional YAML config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the database file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&dbFile, "db-file", "", "database file name (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}

	// db command group
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Database management commands",
	}

	dbInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the datastore and provision all managed tables",
		RunE:  runDBInit,
	}
	dbVerifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify datastore state and report table versions",
		RunE:  runDBVerify,
	}
	dbVersionCmd := &cobra.Command{
		Use:   "version <table>",
		Short: "Print the recorded schema version of a table",
		Args:  cobra.ExactArgs(1),
		RunE:  runDBVersion,
	}
	dbDropCmd := &cobra.Command{
		Use:   "drop <table>",
		Short: "Drop a managed table (its version record is kept)",
		Args:  cobra.ExactArgs(1),
		RunE:  runDBDrop,
	}

	dbCmd.AddCommand(dbInitCmd, dbVerifyCmd, dbVersionCmd, dbDropCmd)
	rootCmd.AddCommand(versionCmd, dbCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration from the config file and
// flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if dbFile != "" {
		cfg.DBFile = dbFile
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func newLogger(cfg config.Config) logger.Logger {
	l := logger.NewStdLogger()
	l.SetDebug(cfg.Debug)
	return l
}

// runDBInit is the startup routine the desktop application runs before
// showing its main window: open the store, ensure the bookkeeping table,
// provision every data owner.
func runDBInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create saving directory %s: %w", cfg.DataDir, err)
	}
	log.Debug("database in %s", cfg.DBPath())

	boot := store.NewBootstrap(sqlite.New(cfg.DBPath()), log)
	boot.Register(measurement.Owner())
	defer boot.Close()

	if err := boot.Run(); err != nil {
		var perr *store.ProvisionError
		if errors.As(err, &perr) {
			for _, name := range perr.Failed {
				log.Error("table %s could not be provisioned", name)
			}
		}
		return fmt.Errorf("bootstrap failed: %w", err)
	}
	log.Info("datastore initialized at %s", cfg.DBPath())
	return nil
}

// runDBVerify reports the datastore state and every managed table's version.
func runDBVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	exists, err := store.CheckExists(cfg.DBPath())
	if err != nil {
		return err
	}
	if !exists {
		log.Warn("datastore state: %s", store.StateMissing)
		return nil
	}

	st := sqlite.New(cfg.DBPath())
	if err := st.Open(); err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	state, err := st.CheckState()
	if err != nil {
		return err
	}
	log.Info("datastore state: %s", state)
	if state != store.StateReady {
		return nil
	}

	for _, owner := range []store.Owner{measurement.Owner()} {
		v, err := st.GetVersion(owner.TableName())
		if err != nil {
			log.Warn("table %s: %v", owner.TableName(), err)
			continue
		}
		log.Info("table %s: version %d (expected %d)", owner.TableName(), v, owner.Version())
	}
	return nil
}

// requireStore fails when the database file does not exist yet. Opening a
// missing file would silently create it, which read-only subcommands must
// not do.
func requireStore(cfg config.Config) error {
	exists, err := store.CheckExists(cfg.DBPath())
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("no datastore at %s (run \"db init\" first)", cfg.DBPath())
	}
	return nil
}

func runDBVersion(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireStore(cfg); err != nil {
		return err
	}

	st := sqlite.New(cfg.DBPath())
	if err := st.Open(); err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	v, err := st.GetVersion(args[0])
	if err != nil {
		return err
	}
	if v == store.VersionNotTracked {
		fmt.Printf("%s: not tracked\n", args[0])
		return nil
	}
	fmt.Printf("%s: %d\n", args[0], v)
	return nil
}

func runDBDrop(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	if err := requireStore(cfg); err != nil {
		return err
	}

	st := sqlite.New(cfg.DBPath())
	if err := st.Open(); err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	if err := st.DropTable(args[0]); err != nil {
		return err
	}
	log.Info("table %s dropped", args[0])
	return nil
}
