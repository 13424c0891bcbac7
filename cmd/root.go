package cmd

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/filedex/filedex/api"
	"github.com/filedex/filedex/internal/compile"
	"github.com/filedex/filedex/internal/config"
	"github.com/filedex/filedex/internal/emit"
	"github.com/filedex/filedex/internal/logging"
)

var (
	settingsPath string
	rootFolder   string
	packageName  string
	typeName     string
	devMode      bool
	verbosity    int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&settingsPath, "settings", "s", "filedex.hcl", "Path to the settings file")
	rootCmd.PersistentFlags().StringVarP(&rootFolder, "root", "r", "", "Root folder (defaults to the configured environment variable)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity")
	rootCmd.Flags().StringVarP(&packageName, "package", "p", "assets", "Package clause of the generated file")
	rootCmd.Flags().StringVarP(&typeName, "type", "t", "Asset", "Asset record type name")
	rootCmd.Flags().BoolVar(&devMode, "dev", false, "Deferred accessors re-read files from disk")
}

var rootCmd = &cobra.Command{
	Use:   "filedex [output.go]",
	Short: "Compile a filtered file tree into embeddable Go source",
	Args:  cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbosity)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys := osfs.New("/")
		model, cfg, err := compileModel(fsys)
		if err != nil {
			return err
		}

		source, err := emit.GoSource(fsys, model, emit.Options{
			Package: packageName,
			Type:    typeName,
			Dev:     devMode,
			Custom:  cfg.CustomTemplates,
		})
		if err != nil {
			return err
		}

		if len(args) == 0 {
			_, err = cmd.OutOrStdout().Write(source)
			return err
		}
		if err := os.WriteFile(args[0], source, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		return nil
	},
}

// compileModel runs the shared settings-to-model pipeline.
func compileModel(fsys billy.Filesystem) (*api.Model, api.Configuration, error) {
	cfg, shape, err := config.Load(settingsPath)
	if err != nil {
		return nil, api.Configuration{}, err
	}

	root := rootFolder
	if root == "" {
		root = os.Getenv(cfg.RootFolderVariable)
	}
	if root == "" {
		root, err = os.Getwd()
		if err != nil {
			return nil, api.Configuration{}, err
		}
	}

	model, err := compile.Run(fsys, root, cfg, shape)
	if err != nil {
		return nil, api.Configuration{}, err
	}
	return model, cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
