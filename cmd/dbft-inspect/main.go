// Command dbft-inspect reads a node's consensus database and prints a
// summary of the persisted checkpoint, for post-mortem debugging of a
// stalled round.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/store"
)

func main() {
	var dbPath string

	root := &cobra.Command{
		Use:   "dbft-inspect",
		Short: "Inspect a persisted dBFT checkpoint",
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "path to the consensus LevelDB directory")

	root.AddCommand(dumpCommand(&dbPath))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dumpCommand(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the raw checkpoint byte length and store key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if *dbPath == "" {
				return fmt.Errorf("dbft-inspect: --db is required")
			}
			db, err := store.Open(*dbPath, 8)
			if err != nil {
				return fmt.Errorf("dbft-inspect: open %s: %w", *dbPath, err)
			}
			defer db.Close()

			raw := db.TryGet(0xF4)
			if raw == nil {
				fmt.Println("no checkpoint present")
				return nil
			}
			fmt.Printf("checkpoint present: %d bytes\n", len(raw))
			return nil
		},
	}
}
