package checkout

import (
	"context"
	"errors"
	"fmt"

	"reddys-kitchen/web-svc/internal/cart"
	"reddys-kitchen/web-svc/internal/domain"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrSubmitFailed = errors.New("order submission failed")
)

// Form holds the delivery details typed by the customer.
type Form struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Payment string `json:"payment"`
}

// Submission is the order payload accepted by the order store.
type Submission struct {
	CustomerName string             `json:"customerName"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	Payment      string             `json:"payment"`
	Total        float64            `json:"total"`
	Items        []domain.OrderItem `json:"items"`
}

type Submitter interface {
	SubmitOrder(ctx context.Context, submission Submission) (*domain.Order, error)
}

// Build packages cart lines and form into a submission. Prices and
// quantities come from the lines, never from the live catalog.
func Build(lines []cart.Line, form Form) (Submission, error) {
	if len(lines) == 0 {
		return Submission{}, ErrEmptyCart
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			RestaurantName: l.RestaurantName,
			Name:           l.Name,
			Qty:            l.Qty,
			Price:          l.Price,
		})
	}

	return Submission{
		CustomerName: form.Name,
		Phone:        form.Phone,
		Address:      form.Address,
		Payment:      form.Payment,
		Total:        cart.ComputeTotals(lines).Subtotal + cart.DeliveryFee,
		Items:        items,
	}, nil
}

// Submit builds the submission and sends it. An empty cart never reaches the
// submitter; any submitter failure is reported as ErrSubmitFailed.
func Submit(ctx context.Context, submitter Submitter, lines []cart.Line, form Form) (*domain.Order, error) {
	submission, err := Build(lines, form)
	if err != nil {
		return nil, err
	}

	order, err := submitter.SubmitOrder(ctx, submission)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	return order, nil
}
