package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvickers/sugarcap/internal/cli"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a consumption entry",
	Long:  "Remove a consumption entry by identifier. A unique prefix is enough.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	id := args[0]

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	// Resolve a prefix against the ledger.
	entries, err := s.ListEntries()
	if err != nil {
		return err
	}

	var matches []string
	for _, e := range entries {
		if strings.HasPrefix(e.ID, id) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 0:
		return fmt.Errorf("no entry matches %q", id)
	case 1:
		ok, err := s.DeleteEntry(matches[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no entry matches %q", id)
		}
		fmt.Printf("  Removed entry %s\n", cli.ShortID(matches[0]))
		return nil
	default:
		return fmt.Errorf("%q matches %d entries, use a longer prefix", id, len(matches))
	}
}
