// Package cmd provides the CLI commands for fieldquote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fieldquote/core/catalog"
	"fieldquote/internal/config"
	"fieldquote/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fieldquote",
	Short: "Price field measurements for insulation and HVAC quotes",
	Long: `fieldquote is the pricing and estimation engine behind customer quotes.

It turns field measurements (square footage, R-values, tonnage, ductwork)
into itemized cost breakdowns, job totals, and installation timelines.

Examples:
  fieldquote insulation measurements.json
  fieldquote hvac systems.json --validate
  fieldquote hybrid --closed 2.5 --open 3 --area exterior_walls
  fieldquote quick central_air 3`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fieldquote.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(insulationCmd)
	rootCmd.AddCommand(hvacCmd)
	rootCmd.AddCommand(hybridCmd)
	rootCmd.AddCommand(quickCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}

	catalog.Init()
}

// loadCatalog returns the configured rate catalog: the contractor's
// HCL file when one is set, otherwise the built-in tables.
func loadCatalog() (*catalog.Catalog, error) {
	path := config.Get().Rates.CatalogFile
	if path == "" {
		return catalog.GlobalCatalog, nil
	}
	return catalog.LoadHCL(path)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fieldquote version 0.1.0")
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := configJSON()
			if err != nil {
				return err
			}
			fmt.Println(data)
			return nil
		},
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath()
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	})
}
