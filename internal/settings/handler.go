package settings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/groenwerk/groenwerk/internal/offerte/calc"
	"github.com/groenwerk/groenwerk/internal/platform/httpx"
	"github.com/groenwerk/groenwerk/internal/shared"
)

type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service, validate *validator.Validate) *Handler {
	return &Handler{logger: logger, service: service, validate: validate}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(shared.VereisEigenaar)
	r.Get("/", h.get)
	r.Put("/", h.update)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	eigenaarID, _ := shared.EigenaarID(r.Context())
	i, err := h.service.Get(r.Context(), eigenaarID)
	if err != nil {
		h.logger.Error("get instellingen", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, i)
}

type updateRequest struct {
	Uurtarief           float64 `json:"uurtarief" validate:"required,gt=0"`
	Machinetarief       float64 `json:"machinetarief" validate:"required,gt=0"`
	MargePercentage     float64 `json:"margePercentage" validate:"gte=0,lte=100"`
	BtwPercentage       float64 `json:"btwPercentage" validate:"gte=0,lte=100"`
	MachineKostenBucket string  `json:"machineKostenBucket" validate:"omitempty,oneof=arbeid materiaal"`
	MachineUrenTellen   bool    `json:"machineUrenTellen"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Ongeldige aanvraag", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validatie mislukt", err.Error())
		return
	}

	eigenaarID, _ := shared.EigenaarID(r.Context())
	i, err := h.service.Update(r.Context(), Instellingen{
		EigenaarID:          eigenaarID,
		Uurtarief:           req.Uurtarief,
		Machinetarief:       req.Machinetarief,
		MargePercentage:     req.MargePercentage,
		BtwPercentage:       req.BtwPercentage,
		MachineKostenBucket: calc.MachineBucket(req.MachineKostenBucket),
		MachineUrenTellen:   req.MachineUrenTellen,
	})
	if err != nil {
		h.logger.Error("update instellingen", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, i)
}
