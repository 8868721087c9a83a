package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"contactrouter/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the reference data can be located and loaded",
	Long: `Locate and load the configured reference datasets and report which
are available. Exits non-zero when neither dataset loads.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg := setup()
	out := cmd.OutOrStdout()

	if cfg.ReferenceSource == config.SourceFiles {
		fmt.Fprintln(out, "Files:")
		for _, f := range fileSource(cfg).Check() {
			if f.OK {
				fmt.Fprintf(out, "  %-18s %s\n", f.Key, f.Path)
			} else {
				fmt.Fprintf(out, "  %-18s missing\n", f.Key)
			}
		}
	}

	st, release, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer release()

	loadErr := st.Ensure(cmd.Context())
	status := st.Status()
	fmt.Fprintf(out, "Source:        %s\n", cfg.ReferenceSource)
	fmt.Fprintf(out, "Bank data:     %t\n", status.BankLoaded)
	fmt.Fprintf(out, "Routing model: %t\n", status.RoutingModel)
	fmt.Fprintf(out, "SEBI data:     %t\n", status.SEBILoaded)

	if !status.BankLoaded && !status.SEBILoaded {
		return fmt.Errorf("no reference data could be loaded: %w", loadErr)
	}
	if loadErr != nil {
		fmt.Fprintf(out, "Warning: %v\n", loadErr)
	}
	return nil
}
