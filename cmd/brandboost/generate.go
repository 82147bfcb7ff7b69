package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kirillkom/brandboost/internal/core/domain"
)

var (
	genProductID   string
	genContentType string
	genTone        string
	genLanguage    string
	genExport      bool
	genFilename    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate copy for one product",
	Long: `Generates copy for a catalog product and prints it with the
recommendation for the chosen content type and tone.

Example:
  brandboost generate --product 1 --type "Social Post" --tone playful --language french --export`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genProductID, "product", "p", "", "Catalog product id")
	generateCmd.Flags().StringVarP(&genContentType, "type", "t", domain.ProductDescription.String(), "Content type: Product Description, Social Post or Email")
	generateCmd.Flags().StringVar(&genTone, "tone", domain.Professional.String(), "Tone: Professional, Playful, Luxury or Casual")
	generateCmd.Flags().StringVarP(&genLanguage, "language", "l", domain.English.String(), "Language: English or French")
	generateCmd.Flags().BoolVar(&genExport, "export", false, "Write the generated copy to the export directory")
	generateCmd.Flags().StringVar(&genFilename, "filename", "", "Export file name (default brandboost_content_<unix>.txt)")
	_ = generateCmd.MarkFlagRequired("product")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	sel, err := domain.ParseSelection(genContentType, genTone, genLanguage)
	if err != nil {
		return err
	}
	product, err := app.Catalog.GetByID(genProductID)
	if err != nil {
		return err
	}

	res, err := app.GenerateUC.Generate(cmd.Context(), product, sel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Content)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Recommendation: %s\n", res.Recommendation)
	fmt.Fprintf(out, "Source: %s (%.2fs)\n", res.Metadata.Source, res.GenerationTime.Seconds())
	if res.Metadata.Error != "" {
		fmt.Fprintf(out, "Note: %s\n", res.Metadata.Error)
	}

	if !genExport {
		return nil
	}
	path, err := app.ExportUC.Export(cmd.Context(), res.Content, genFilename)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Exported to %s\n", path)
	return nil
}
