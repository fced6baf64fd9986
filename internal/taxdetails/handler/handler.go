package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bemyrider/internal/fiscalcode"
	ratelimit "bemyrider/internal/ratelimit/models"
	"bemyrider/internal/taxdetails/models"
	id "bemyrider/pkg/domain"
	"bemyrider/pkg/platform/httputil"
	"bemyrider/pkg/requestcontext"
)

// Service defines the fiscal operations the HTTP layer needs.
type Service interface {
	CalculateFiscalCode(ctx context.Context, in fiscalcode.Input) (fiscalcode.Code, error)
	ValidateFiscalCode(ctx context.Context, code string) (*models.ValidationResult, error)
	SaveRiderTaxDetails(ctx context.Context, details *models.RiderTaxDetails) (*models.RiderTaxDetails, error)
	GetRiderTaxDetails(ctx context.Context, riderID id.RiderID) (*models.RiderTaxDetails, error)
	SaveMerchantTaxDetails(ctx context.Context, details *models.MerchantTaxDetails) (*models.MerchantTaxDetails, error)
	GetMerchantTaxDetails(ctx context.Context, merchantID id.MerchantID) (*models.MerchantTaxDetails, error)
}

// RateLimiter provides per-class throttling middleware.
type RateLimiter interface {
	RateLimit(class ratelimit.EndpointClass) func(http.Handler) http.Handler
}

// Handler wires fiscal code and tax-detail endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
	limiter RateLimiter
}

type Option func(*Handler)

// WithRateLimiter throttles the fiscal-code and tax-details routes.
func WithRateLimiter(l RateLimiter) Option {
	return func(h *Handler) {
		h.limiter = l
	}
}

func New(service Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		service: service,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		h.throttle(r, ratelimit.ClassCompute)
		r.Post("/fiscal-code/calculate", h.HandleCalculate)
		r.Post("/fiscal-code/validate", h.HandleValidate)
	})
	r.Group(func(r chi.Router) {
		h.throttle(r, ratelimit.ClassRecords)
		r.Get("/riders/{riderID}/tax-details", h.HandleGetRider)
		r.Put("/riders/{riderID}/tax-details", h.HandlePutRider)
		r.Get("/merchants/{merchantID}/tax-details", h.HandleGetMerchant)
		r.Put("/merchants/{merchantID}/tax-details", h.HandlePutMerchant)
	})
}

func (h *Handler) throttle(r chi.Router, class ratelimit.EndpointClass) {
	if h.limiter != nil {
		r.Use(h.limiter.RateLimit(class))
	}
}

// HandleCalculate handles POST /fiscal-code/calculate.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CalculateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	code, err := h.service.CalculateFiscalCode(ctx, req.Input())
	if err != nil {
		h.logger.WarnContext(ctx, "fiscal code calculation rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CalculateResponse{FiscalCode: code.String()})
}

// HandleValidate handles POST /fiscal-code/validate.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.ValidateFiscalCode(ctx, req.FiscalCode)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromValidation(result))
}

// HandleGetRider handles GET /riders/{riderID}/tax-details.
func (h *Handler) HandleGetRider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	riderID, err := id.ParseRiderID(chi.URLParam(r, "riderID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	record, err := h.service.GetRiderTaxDetails(ctx, riderID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRider(record))
}

// HandlePutRider handles PUT /riders/{riderID}/tax-details.
func (h *Handler) HandlePutRider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	riderID, err := id.ParseRiderID(chi.URLParam(r, "riderID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[RiderTaxDetailsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	details := req.ToModel()
	details.RiderID = riderID
	saved, err := h.service.SaveRiderTaxDetails(ctx, details)
	if err != nil {
		h.logger.WarnContext(ctx, "rider tax details rejected",
			"request_id", requestID,
			"rider_id", riderID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRider(saved))
}

// HandleGetMerchant handles GET /merchants/{merchantID}/tax-details.
func (h *Handler) HandleGetMerchant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	merchantID, err := id.ParseMerchantID(chi.URLParam(r, "merchantID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	record, err := h.service.GetMerchantTaxDetails(ctx, merchantID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromMerchant(record))
}

// HandlePutMerchant handles PUT /merchants/{merchantID}/tax-details.
func (h *Handler) HandlePutMerchant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	merchantID, err := id.ParseMerchantID(chi.URLParam(r, "merchantID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[MerchantTaxDetailsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	details := req.ToModel()
	details.MerchantID = merchantID
	saved, err := h.service.SaveMerchantTaxDetails(ctx, details)
	if err != nil {
		h.logger.WarnContext(ctx, "merchant tax details rejected",
			"request_id", requestID,
			"merchant_id", merchantID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromMerchant(saved))
}
