package payments

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

// Request is the subset of the processor's charge request this API
// forwards from clients.
type Request struct {
	TransactionAmount float64 `json:"transaction_amount" binding:"required"`
	Token             string  `json:"token"`
	Description       string  `json:"description"`
	Installments      int     `json:"installments"`
	PaymentMethodID   string  `json:"payment_method_id" binding:"required"`
	IssuerID          string  `json:"issuer_id"`
	PayerEmail        string  `json:"payer_email" binding:"required,email"`
	OrderID           *uint   `json:"orderId"`
}

// Result is what the processor reports back about a charge attempt.
type Result struct {
	ID                int64   `json:"id"`
	Status            string  `json:"status"`
	StatusDetail      string  `json:"status_detail"`
	TransactionAmount float64 `json:"transaction_amount"`
	PaymentMethodID   string  `json:"payment_method_id"`
}

// Approved reports whether the charge outcome warrants persisting.
func (r *Result) Approved() bool {
	return r.Status == "approved" || r.Status == "in_process"
}

// Processor is the opaque external payment collaborator. Handlers and
// tests depend on this interface, never on the SDK directly.
type Processor interface {
	Process(ctx context.Context, req Request) (*Result, error)
}

// mercadoPago is the production Processor backed by the Mercado Pago
// SDK.
type mercadoPago struct {
	client payment.Client
}

// NewMercadoPago builds a Processor from an access token.
func NewMercadoPago(accessToken string) (Processor, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &mercadoPago{client: payment.NewClient(cfg)}, nil
}

func (p *mercadoPago) Process(ctx context.Context, req Request) (*Result, error) {
	body := payment.Request{
		TransactionAmount: req.TransactionAmount,
		Token:             req.Token,
		Description:       req.Description,
		Installments:      req.Installments,
		PaymentMethodID:   req.PaymentMethodID,
		IssuerID:          req.IssuerID,
		Payer: &payment.PayerRequest{
			Email: req.PayerEmail,
		},
	}
	resource, err := p.client.Create(ctx, body)
	if err != nil {
		return nil, err
	}
	return &Result{
		ID:                int64(resource.ID),
		Status:            resource.Status,
		StatusDetail:      resource.StatusDetail,
		TransactionAmount: resource.TransactionAmount,
		PaymentMethodID:   resource.PaymentMethodID,
	}, nil
}
