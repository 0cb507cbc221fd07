package service

import (
	"context"

	"github.com/idan2468/go-store/internal/domain"
	"github.com/idan2468/go-store/internal/repository"
)

// resolveLines joins cart/order lines to live product records with a single
// batch $in fetch. Lines whose product no longer exists are dropped; the
// returned total is recomputed from the lines that resolved, so it never
// depends on a stale cached total.
func resolveLines(ctx context.Context, products repository.ProductRepository, lines []domain.CartLine) ([]domain.ResolvedLine, float64, error) {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	resolvedProducts, err := products.GetProducts(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	var (
		resolved []domain.ResolvedLine
		total    float64
	)
	for _, line := range lines {
		p, ok := resolvedProducts[line.ProductID]
		if !ok {
			continue // product vanished, line contributes nothing
		}
		subtotal := float64(line.Quantity) * p.Price
		resolved = append(resolved, domain.ResolvedLine{
			Product:  p,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
		total += subtotal
	}

	return resolved, total, nil
}
