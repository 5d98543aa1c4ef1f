package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gridfit/gridfit/core/refdata"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the reference tables",
}

var catalogPumpsCmd = &cobra.Command{
	Use:   "heatpumps",
	Short: "List the heat pump catalog",
	RunE:  runCatalogPumps,
}

var catalogBuildingsCmd = &cobra.Command{
	Use:   "buildings",
	Short: "List the building types",
	RunE:  runCatalogBuildings,
}

var catalogConnectionsCmd = &cobra.Command{
	Use:   "connections",
	Short: "List the grid connection sizes",
	RunE:  runCatalogConnections,
}

func init() {
	catalogCmd.AddCommand(catalogPumpsCmd, catalogBuildingsCmd, catalogConnectionsCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogPumps(cmd *cobra.Command, args []string) error {
	if err := refdata.Load(); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCLASS\tPOWER kW\tSCOP\tMAX FLOW °C\tPRICE EUR")
	for _, m := range refdata.HeatPumps() {
		price := fmt.Sprintf("%.0f", m.PriceEUR)
		if m.PriceOnRequest {
			price = "on request"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.2f\t%.0f\t%s\n",
			m.ID, m.Name, m.Class, m.PowerKW, m.SCOP, m.MaxFlowTempC, price)
	}
	return w.Flush()
}

func runCatalogBuildings(cmd *cobra.Command, args []string) error {
	if err := refdata.Load(); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tGAS FACTOR\tHOT WATER %\tOCCUPANCY")
	for _, b := range refdata.BuildingTypes() {
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.0f\t%s\n",
			b.ID, b.Name, b.GasToKWhFactor, b.HotWaterPercent, b.Occupancy)
	}
	return w.Flush()
}

func runCatalogConnections(cmd *cobra.Command, args []string) error {
	if err := refdata.Load(); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMAX CURRENT A\tMAX POWER kW")
	for _, c := range refdata.GridConnections() {
		fmt.Fprintf(w, "%s\t%.0f\t%.1f\n", c.ID, c.MaxCurrentA, c.MaxPowerKW)
	}
	return w.Flush()
}
