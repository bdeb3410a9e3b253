// Package checkout submits the current cart as an order. It is the one
// operation with endpoint-specific failure texts per HTTP status, and the
// one request that carries an idempotency key: resubmitting after an
// ambiguous failure must not charge twice.
package checkout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"tienda/internal/api"
	"tienda/pkg/result"
)

// Per-status texts surfaced when the backend sends no message of its own.
const (
	MsgInvalidOrder   = "Los datos de tu orden no son válidos. Revisa tu carrito y dirección."
	MsgSessionExpired = "Tu sesión ha expirado. Inicia sesión de nuevo."
	MsgNotAllowed     = "No tienes permiso para completar esta compra."
	MsgNotFound       = "No encontramos tu carrito o dirección de envío."
	MsgServerError    = "Error del servidor al procesar el pago. Intenta más tarde."

	MsgMissingAddress = "Selecciona una dirección de envío."
	MsgMissingPayment = "Selecciona un método de pago."
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          MsgInvalidOrder,
	http.StatusUnauthorized:        MsgSessionExpired,
	http.StatusForbidden:           MsgNotAllowed,
	http.StatusNotFound:            MsgNotFound,
	http.StatusInternalServerError: MsgServerError,
}

// ErrValidation marks failures produced before any network call.
var ErrValidation = errors.New("checkout validation failed")

// Request is what the user assembled before paying.
type Request struct {
	AddressID       int
	PaymentMethodID string
	WarehouseID     int
	Notes           string
}

// Validate runs the client-side checks that precede any network call.
func (r Request) Validate() error {
	if r.AddressID <= 0 && r.WarehouseID <= 0 {
		return errors.New(MsgMissingAddress)
	}
	if r.PaymentMethodID == "" {
		return errors.New(MsgMissingPayment)
	}
	return nil
}

// Confirmation is the backend's acknowledgement of a placed order.
type Confirmation struct {
	OrderID  int
	Status   string
	Total    float64
	PlacedAt time.Time
}

type PaymentMethod struct {
	ID    string
	Label string
}

type confirmationDTO struct {
	OrderID  int     `json:"order_id"`
	Status   string  `json:"status"`
	Total    float64 `json:"total"`
	PlacedAt string  `json:"placed_at"`
}

type paymentMethodDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func mapConfirmation(d confirmationDTO) Confirmation {
	placedAt, err := time.Parse(time.RFC3339, d.PlacedAt)
	if err != nil {
		placedAt = time.Time{}
	}
	return Confirmation{OrderID: d.OrderID, Status: d.Status, Total: d.Total, PlacedAt: placedAt}
}

type Service struct {
	api *api.Client

	// newKey is swappable so tests can observe a fixed idempotency key.
	newKey func() string
}

func NewService(client *api.Client) *Service {
	return &Service{api: client, newKey: uuid.NewString}
}

// Submit validates locally, then places the order. Validation failures
// never reach the network.
func (s *Service) Submit(ctx context.Context, req Request) result.Result[Confirmation] {
	if err := req.Validate(); err != nil {
		return result.Fail[Confirmation](ErrValidation, err.Error())
	}

	body := map[string]any{
		"address_id":        req.AddressID,
		"payment_method_id": req.PaymentMethodID,
	}
	if req.WarehouseID > 0 {
		body["warehouse_id"] = req.WarehouseID
	}
	if req.Notes != "" {
		body["notes"] = req.Notes
	}

	r := api.Call[confirmationDTO](ctx, s.api, http.MethodPost, "/payments/checkout", body,
		api.WithHeader("X-Idempotency-Key", s.newKey()),
		api.WithStatusMessages(statusMessages),
	)
	return result.Map(r, mapConfirmation)
}

func (s *Service) PaymentMethods(ctx context.Context) result.Result[[]PaymentMethod] {
	r := api.Call[[]paymentMethodDTO](ctx, s.api, http.MethodGet, "/payments/methods", nil)
	return result.Map(r, func(dtos []paymentMethodDTO) []PaymentMethod {
		out := make([]PaymentMethod, 0, len(dtos))
		for _, d := range dtos {
			out = append(out, PaymentMethod(d))
		}
		return out
	})
}
