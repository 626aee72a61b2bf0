// Command pricing-demo prices a sample cart from the demo shelf on the
// command line. It is a thin driver over the cart service: build products,
// resolve an optional promotion code, print the summary.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-faster/errors"

	"github.com/bookden/pricing-engine/internal/domain/cart"
	"github.com/bookden/pricing-engine/internal/domain/catalog"
	"github.com/bookden/pricing-engine/internal/domain/promocode"
	"github.com/bookden/pricing-engine/internal/domain/promotion"
	"github.com/bookden/pricing-engine/internal/shelf"
)

func main() {
	var codeName string
	flag.StringVar(&codeName, "code", "", "promotion code to apply (e.g. FREESHIP)")
	flag.Parse()

	if err := run(codeName); err != nil {
		slog.Error("demo failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(codeName string) error {
	provider, err := promotion.DefaultProvider()
	if err != nil {
		return errors.Wrap(err, "build promotions")
	}
	registry, err := promocode.DefaultRegistry()
	if err != nil {
		return errors.Wrap(err, "build promotion codes")
	}
	sh, err := shelf.Load()
	if err != nil {
		return errors.Wrap(err, "load catalog")
	}

	var code promocode.Code
	if codeName != "" {
		code, err = registry.Resolve(codeName)
		if err != nil {
			return err
		}
		slog.Info("applying promotion code", slog.String("code", codeName), slog.String("rule", code.Describe()))
	}

	// Every book on the demo shelf goes into the cart.
	books := sh.List()
	products := make([]catalog.Product, len(books))
	for i, b := range books {
		products[i] = b
	}

	summary := cart.NewService(provider).AssembleOrder(products, code)

	for _, li := range summary.Items {
		marker := " "
		if li.PromotionConsumed {
			marker = "*"
		}
		fmt.Printf("%s %-45s %10s", marker, li.Product.DisplayName(), li.FinalPrice().StringFixed(2))
		if !li.Discount.IsZero() {
			fmt.Printf("  (was %s)", li.InitialPrice().StringFixed(2))
		}
		fmt.Println()
	}
	fmt.Printf("  %-45s %10s\n", "Delivery", summary.DeliveryFee.StringFixed(2))
	if !summary.OrderDiscount.IsZero() {
		fmt.Printf("  %-45s %10s\n", "Order discount", summary.OrderDiscount.Neg().StringFixed(2))
	}
	fmt.Printf("  %-45s %10s\n", "Total", summary.Total().StringFixed(2))

	return nil
}
