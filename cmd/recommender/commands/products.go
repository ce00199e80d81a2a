// ABOUTME: CLI command to list the catalog or show one product
// ABOUTME: Table output lists products; a single id prints full details and specs
package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/recommend/internal/catalog"
	"github.com/harper/recommend/internal/models"
)

// NewProductsCmd creates products command
func NewProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products [id]",
		Short: "List catalog products",
		Long: `List every catalog product, or show one product in detail.

Examples:
  recommender products
  recommender products 3
  recommender products --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runProducts,
	}

	return cmd
}

func runProducts(cmd *cobra.Command, args []string) error {
	var id int
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		id = n
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		product, err := a.Core.Product(id)
		if errors.Is(err, catalog.ErrProductNotFound) {
			return fmt.Errorf("product %d not found", id)
		}
		if err != nil {
			return err
		}
		if wantJSON() {
			return printJSON(out, product)
		}
		printProduct(out, product)
		return nil
	}

	products := a.Core.Products()
	if wantJSON() {
		return printJSON(out, products)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNAME\tCATEGORY\tPRICE\tRATING\n")
	fmt.Fprintf(w, "--\t----\t--------\t-----\t------\n")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\t%.1f\n", p.ID, truncate(p.Name, 30), p.Category, p.Price, p.Rating)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(out, "\n%d product(s)\n", len(products))
	}
	return nil
}

func printProduct(out io.Writer, p models.Product) {
	fmt.Fprintf(out, "%s (#%d)\n", p.Name, p.ID)
	fmt.Fprintf(out, "%s\n\n", p.Description)
	fmt.Fprintf(out, "Category: %s\n", p.Category)
	if p.OriginalPrice > p.Price {
		fmt.Fprintf(out, "Price:    $%.2f (was $%.2f)\n", p.Price, p.OriginalPrice)
	} else {
		fmt.Fprintf(out, "Price:    $%.2f\n", p.Price)
	}
	fmt.Fprintf(out, "Rating:   %.1f (%d reviews)\n", p.Rating, p.ReviewCount)

	if len(p.Specs) > 0 {
		fmt.Fprintln(out, "\nSpecs:")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, k := range p.SpecKeys() {
			fmt.Fprintf(w, "  %s\t%s\n", k, p.Specs[k])
		}
		w.Flush()
	}

	if p.Recommendation != "" {
		fmt.Fprintf(out, "\n%s\n", p.Recommendation)
	}
}
