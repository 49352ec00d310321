package payment

import (
	"context"
	"errors"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// MercadoPagoGatewayはMercado Pagoのプリファレンス作成を包む。
type MercadoPagoGateway struct {
	client  preference.Client
	sandbox bool
}

func NewMercadoPagoGateway(accessToken string, sandbox bool) (*MercadoPagoGateway, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPagoGateway{
		client:  preference.NewClient(cfg),
		sandbox: sandbox,
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req PreferenceRequest) (string, error) {
	items := make([]preference.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		//SDKはfloatしか受けない
		unitPrice, _ := it.UnitPrice.Float64()

		items = append(items, preference.ItemRequest{
			Title:      it.Title,
			Quantity:   int(it.Quantity),
			UnitPrice:  unitPrice,
			CurrencyID: it.Currency,
		})
	}

	resource, err := g.client.Create(ctx, preference.Request{
		Items: items,
		Payer: &preference.PayerRequest{Email: req.PayerEmail},
		BackURLs: &preference.BackURLsRequest{
			Success: req.BackURLs.Success,
			Failure: req.BackURLs.Failure,
			Pending: req.BackURLs.Pending,
		},
		ExternalReference: req.ExternalReference,
	})
	if err != nil {
		return "", err
	}

	url := resource.InitPoint
	if g.sandbox {
		url = resource.SandboxInitPoint
	}
	if url == "" {
		return "", errors.New("preference has no init point")
	}

	return url, nil
}
