package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"contactrouter/internal/domain"
	"contactrouter/internal/services/routing"
)

var routeFlags struct {
	id       int
	category string
	severity string
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Resolve a single issue from the command line",
}

var routeBankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Route a bank issue to its escalation contact",
	RunE:  runRouteBank,
}

var routeSEBICmd = &cobra.Command{
	Use:   "sebi",
	Short: "Route an issue about a SEBI intermediary",
	RunE:  runRouteSEBI,
}

func init() {
	f := routeCmd.PersistentFlags()
	f.IntVar(&routeFlags.id, "id", 0, "Bank or SEBI entity ID (required)")
	f.StringVar(&routeFlags.category, "category", "", "Issue category, e.g. Fraud_Alert (required)")
	f.StringVar(&routeFlags.severity, "severity", "", "Low, Medium, High or Critical (required)")

	_ = routeCmd.MarkPersistentFlagRequired("id")
	_ = routeCmd.MarkPersistentFlagRequired("category")
	_ = routeCmd.MarkPersistentFlagRequired("severity")

	routeCmd.AddCommand(routeBankCmd)
	routeCmd.AddCommand(routeSEBICmd)
}

func runRouteBank(cmd *cobra.Command, _ []string) error {
	cfg := setup()
	st, release, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer release()

	res, err := routing.New(st).RouteBank(cmd.Context(), domain.BankRouteRequest{
		BankID:   domain.EntityID(routeFlags.id),
		Category: routeFlags.category,
		Severity: routeFlags.severity,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Bank:       %s\n", res.Bank)
	fmt.Fprintf(out, "Level:      %s\n", res.Level)
	fmt.Fprintf(out, "Contact:    %s\n", res.Contact.Name)
	fmt.Fprintf(out, "Phone:      %s\n", res.Contact.Phone)
	fmt.Fprintf(out, "Email:      %s\n", res.Contact.Email)
	fmt.Fprintf(out, "Confidence: %.1f\n", res.Confidence)
	return nil
}

func runRouteSEBI(cmd *cobra.Command, _ []string) error {
	cfg := setup()
	st, release, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer release()

	res, err := routing.New(st).RouteSEBI(cmd.Context(), domain.SEBIRouteRequest{
		SEBIID:   domain.EntityID(routeFlags.id),
		Category: routeFlags.category,
		Severity: routeFlags.severity,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Entity:       %s (%s)\n", res.EntityName, res.RegistrationNo)
	fmt.Fprintf(out, "Route:        %s\n", res.RouteType)
	fmt.Fprintf(out, "Contact:      %s\n", res.ContactName)
	fmt.Fprintf(out, "Email:        %s\n", res.ContactEmail)
	fmt.Fprintf(out, "Phone:        %s\n", res.ContactPhone)
	fmt.Fprintf(out, "Confidence:   %.1f\n", res.Confidence)
	return nil
}
