package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var productsCategory string

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products",
	Args:  cobra.NoArgs,
	RunE:  runProducts,
}

func init() {
	productsCmd.Flags().StringVar(&productsCategory, "category", "", "Only list products in this category")
}

func runProducts(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tTARGET AUDIENCE")
	for _, p := range app.Catalog.List() {
		if productsCategory != "" && !strings.EqualFold(p.Category, productsCategory) {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, p.TargetAudience)
	}
	return w.Flush()
}
