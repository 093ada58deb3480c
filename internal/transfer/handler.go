package transfer

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/harambee-pay/treasury/internal/account"
	"github.com/harambee-pay/treasury/internal/fx"
	"github.com/harambee-pay/treasury/internal/txlog"
)

// Handler exposes transfer endpoints.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a transfer handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

type createRequest struct {
	SourceAccountID      string `json:"source_account_id" validate:"required"`
	DestinationAccountID string `json:"destination_account_id" validate:"required"`
	Amount               string `json:"amount" validate:"required"`
	Note                 string `json:"note"`
	ExecuteAt            string `json:"execute_at"`
}

type transactionResponse struct {
	ID          string    `json:"id"`
	FromAccount string    `json:"from_account"`
	ToAccount   string    `json:"to_account"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	FxRate      string    `json:"fx_rate"`
	Note        string    `json:"note"`
	Timestamp   time.Time `json:"timestamp"`
	IsFuture    bool      `json:"is_future"`
}

func newTransactionResponse(tx txlog.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		FromAccount: tx.FromAccount,
		ToAccount:   tx.ToAccount,
		Amount:      tx.Amount.String(),
		Currency:    tx.Currency.String(),
		FxRate:      tx.FxRate.String(),
		Note:        tx.Note,
		Timestamp:   tx.Timestamp,
		IsFuture:    tx.IsFuture,
	}
}

// Create processes a transfer submission.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	input := Request{
		SourceAccountID:      req.SourceAccountID,
		DestinationAccountID: req.DestinationAccountID,
		Amount:               req.Amount,
		Note:                 req.Note,
	}
	if req.ExecuteAt != "" {
		at, err := time.Parse(time.RFC3339, req.ExecuteAt)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "execute_at must be RFC 3339")
		}
		if !at.After(time.Now()) {
			return fiber.NewError(http.StatusBadRequest, "execute_at must be in the future")
		}
		input.FutureTime = &at
	}

	tx, err := h.service.Process(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountNotFound):
			return fiber.NewError(http.StatusNotFound, userMessage(err))
		case errors.Is(err, account.ErrSameAccount), errors.Is(err, ErrInvalidAmount):
			return fiber.NewError(http.StatusBadRequest, userMessage(err))
		case errors.Is(err, account.ErrInsufficientBalance), errors.Is(err, fx.ErrUnknownRatePair):
			return fiber.NewError(http.StatusUnprocessableEntity, userMessage(err))
		default:
			return fiber.NewError(http.StatusInternalServerError, userMessage(err))
		}
	}

	return c.Status(http.StatusCreated).JSON(newTransactionResponse(tx))
}
