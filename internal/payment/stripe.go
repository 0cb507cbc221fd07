// Package payment creates Stripe Checkout sessions from a resolved cart.
package payment

import (
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"

	"github.com/idan2468/go-store/internal/domain"
)

type StripeCheckout struct {
	successURL string
	cancelURL  string
}

func NewStripeCheckout(apiKey, successURL, cancelURL string) *StripeCheckout {
	stripe.Key = apiKey
	return &StripeCheckout{
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// CreateSession builds a card-payment checkout session from the resolved
// cart. Amounts are in cents.
func (c *StripeCheckout) CreateSession(cart *domain.ResolvedCart) (*stripe.CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount: stripe.Int64(int64(line.Product.Price * 100)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(line.Product.Title),
					Description: stripe.String(line.Product.Description),
				},
			},
			Quantity: stripe.Int64(int64(line.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(c.successURL),
		CancelURL:          stripe.String(c.cancelURL),
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return sess, nil
}
