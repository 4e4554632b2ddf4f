package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"donation-inventory/internal/adapter/middleware"
	domain "donation-inventory/internal/domain/donation"
	"donation-inventory/internal/usecase/donation"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type DonationHandler struct {
	uc  *donation.Usecase
	log zerolog.Logger
}

func NewDonationHandler(uc *donation.Usecase, log zerolog.Logger) *DonationHandler {
	return &DonationHandler{uc: uc, log: log}
}

type donationIDParam struct {
	ID uint64 `param:"id" validate:"required,gt=0,max=9223372036854775807"`
}

var errNotFoundBody = ErrorResponse{Error: "Donation not found"}

func (h *DonationHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DonationHandler) Get(c echo.Context) error {
	id, ok := h.donationID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errNotFoundBody)
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DonationHandler) Create(c echo.Context) error {
	payload, resp := decodePayload(c)
	if resp != nil {
		return c.JSON(http.StatusBadRequest, resp)
	}
	dto, err := h.uc.Create(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DonationHandler) Update(c echo.Context) error {
	id, ok := h.donationID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errNotFoundBody)
	}
	payload, resp := decodePayload(c)
	if resp != nil {
		return c.JSON(http.StatusBadRequest, resp)
	}
	dto, err := h.uc.Update(c.Request().Context(), id, payload)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DonationHandler) Delete(c echo.Context) error {
	id, ok := h.donationID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errNotFoundBody)
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// donationID reads {id}; anything but a positive integer cannot name a record.
func (h *DonationHandler) donationID(c echo.Context) (uint64, bool) {
	var p donationIDParam
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &p); err != nil {
		h.log.Debug().Str("id", c.Param("id")).Msg("donation id not numeric")
		return 0, false
	}
	if err := c.Validate(&p); err != nil {
		h.log.Debug().Interface("details", ToFieldErrors(err)).Msg("donation id out of range")
		return 0, false
	}
	return p.ID, true
}

// Map domain errors → HTTP codes
func (h *DonationHandler) fail(c echo.Context, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, validationResponse(ve))
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, errNotFoundBody)
	}
	h.log.Error().
		Err(err).
		Str("request_id", middleware.RequestIDFromContext(c.Request().Context())).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Msg("donation request failed")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// decodePayload reads a JSON object, keeping numbers as literals so the
// validator can tell 3 from 3.0.
func decodePayload(c echo.Context) (map[string]any, *ErrorResponse) {
	req := c.Request()
	if !isJSON(req.Header.Get(echo.HeaderContentType)) {
		return nil, &ErrorResponse{Error: "Request must be application/json"}
	}
	dec := json.NewDecoder(req.Body)
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, &ErrorResponse{Error: "invalid JSON body"}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ErrorResponse{Error: "invalid JSON body"}
	}
	payload, ok := body.(map[string]any)
	if !ok {
		return nil, &ErrorResponse{Error: "request body must be a JSON object"}
	}
	return payload, nil
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == echo.MIMEApplicationJSON || (strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}
