package stripegw

import (
	"context"

	"scms/internal/pkg/config"
	"scms/internal/pkg/errs"
	"scms/internal/usecase"

	"github.com/stripe/stripe-go/v82"
)

// Gateway wraps the Stripe client behind the PaymentGateway port so the
// payment use case stays testable with a fake.
type Gateway struct {
	client   *stripe.Client
	currency string
}

func NewGateway(cfg config.StripeConfig) usecase.PaymentGateway {
	return &Gateway{
		client:   stripe.NewClient(cfg.SecretKey),
		currency: cfg.Currency,
	}
}

func (g *Gateway) CreateChargeIntent(ctx context.Context, amountMinorUnits int64, currency string) (*usecase.ChargeIntent, error) {
	if currency == "" {
		currency = g.currency
	}

	params := stripe.PaymentIntentCreateParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := g.client.V1PaymentIntents.Create(ctx, &params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe payment intent creation failed")
	}

	return &usecase.ChargeIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
	}, nil
}
