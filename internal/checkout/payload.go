package checkout

import (
	"errors"
	"fmt"

	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/cart"
)

var ErrEmptyCart = errors.New("cart is empty")

// Line is one cart entry flattened for order submission.
type Line struct {
	Type      string  `json:"type"`
	CatalogID string  `json:"catalogId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Contact is the customer contact block attached to a submission.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Note  string `json:"note,omitempty"`
}

// Submission is the payload handed to the external order service. Lines keep
// the cart's order.
type Submission struct {
	MerchantID string  `json:"merchantId"`
	Lines      []Line  `json:"lines"`
	Contact    Contact `json:"contact"`
	Total      float64 `json:"total"`
}

func buildSubmission(merchantID string, entries []cart.Entry, contact Contact) (*Submission, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	sub := &Submission{MerchantID: merchantID, Contact: contact}
	for _, e := range entries {
		sub.Lines = append(sub.Lines, Line{
			Type:      string(e.Type),
			CatalogID: e.ID,
			Quantity:  e.Quantity,
			UnitPrice: e.UnitPrice(),
		})
		sub.Total += e.UnitPrice() * float64(e.Quantity)
	}
	return sub, nil
}

// SubmitError is a structured failure from the order service: a stable
// machine-readable reason plus a human message. The cart is always left
// untouched when a SubmitError comes back.
type SubmitError struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("order submission failed (%s): %s", e.Reason, e.Message)
}
