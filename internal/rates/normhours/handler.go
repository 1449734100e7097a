package normhours

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

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

// MountRoutes registers the norm-hour routes. All of them require an acting
// user since norms have no default tier.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(shared.VereisEigenaar)
	r.Get("/", h.list)
	r.Put("/", h.upsert)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	eigenaarID, _ := shared.EigenaarID(r.Context())
	normen, err := h.service.List(r.Context(), eigenaarID)
	if err != nil {
		h.logger.Error("list normuren", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if normen == nil {
		normen = []NormUur{}
	}
	httpx.JSON(w, http.StatusOK, normen)
}

type upsertRequest struct {
	Scope          string  `json:"scope" validate:"required"`
	Activiteit     string  `json:"activiteit" validate:"required"`
	UrenPerEenheid float64 `json:"urenPerEenheid" validate:"required,gt=0"`
	Eenheid        string  `json:"eenheid" validate:"required"`
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Ongeldige aanvraag", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validatie mislukt", err.Error())
		return
	}

	eigenaarID, _ := shared.EigenaarID(r.Context())
	n, err := h.service.Upsert(r.Context(), eigenaarID, req.Scope, req.Activiteit, req.UrenPerEenheid, req.Eenheid)
	if err != nil {
		h.logger.Error("upsert normuur", slog.Any("error", err), slog.String("scope", req.Scope))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, n)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Ongeldige aanvraag", "id moet een getal zijn")
		return
	}
	eigenaarID, _ := shared.EigenaarID(r.Context())
	if err := h.service.Delete(r.Context(), eigenaarID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			err = httpx.ErrNotFound
		} else {
			h.logger.Error("delete normuur", slog.Any("error", err), slog.Int64("id", id))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.NoContent(w)
}
