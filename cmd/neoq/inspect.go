package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbitwatch/neoquery/internal/domain"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Look up one NEO by designation or by name",
	Long: `Look up a single NEO by primary designation or by IAU name and print it.
With --verbose, also list every known close approach of that object.

Examples:
  neoq inspect --pdes 433
  neoq inspect --name Halley --verbose`,
	RunE: runInspect,
}

var (
	inspectPdes    string
	inspectName    string
	inspectVerbose bool
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectPdes, "pdes", "", "primary designation of the NEO to inspect")
	inspectCmd.Flags().StringVar(&inspectName, "name", "", "IAU name of the NEO to inspect")
	inspectCmd.Flags().BoolVarP(&inspectVerbose, "verbose", "v", false, "also list the NEO's close approaches")
	inspectCmd.MarkFlagsOneRequired("pdes", "name")
	inspectCmd.MarkFlagsMutuallyExclusive("pdes", "name")
}

func runInspect(cmd *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	var (
		neo *domain.NearEarthObject
		ok  bool
	)
	if inspectPdes != "" {
		neo, ok = a.db.NEOByDesignation(domain.NormalizeDesignation(inspectPdes))
		if !ok {
			return fmt.Errorf("no NEO with designation %q", inspectPdes)
		}
	} else {
		neo, ok = a.db.NEOByName(inspectName)
		if !ok {
			return errors.New("no NEO named " + inspectName)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), neo)
	if inspectVerbose {
		for _, ca := range neo.Approaches {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", ca)
		}
	}
	return nil
}
