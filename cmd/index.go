package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/filedex/filedex/internal/index"
	"github.com/filedex/filedex/internal/logging"
)

var indexCmd = &cobra.Command{
	Use:   "index [output.db]",
	Short: "Write the compiled file index into a queryable SQLite snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := args[0]
		logger := logging.Logger("index")

		model, _, err := compileModel(osfs.New("/"))
		if err != nil {
			return err
		}

		// Snapshots are rebuilt whole, never updated in place.
		_ = os.Remove(output)
		writer, err := index.NewWriter(output)
		if err != nil {
			return err
		}

		start := time.Now()
		if err := writer.WriteModel(model); err != nil {
			// Roll back and clear the file; a half-written snapshot
			// must not replace the one just removed.
			_ = writer.Abort()
			_ = os.Remove(output)
			return fmt.Errorf("write snapshot %s: %w", output, err)
		}
		if err := writer.Close(); err != nil {
			return err
		}

		logger.Info().
			Int("files", len(model.Files)).
			Dur("elapsed", time.Since(start)).
			Str("output", output).
			Msg("snapshot written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
