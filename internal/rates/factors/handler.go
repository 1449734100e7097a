package factors

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/groenwerk/groenwerk/internal/platform/httpx"
	"github.com/groenwerk/groenwerk/internal/shared"
)

// Handler exposes the correction-factor configuration endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service, validate *validator.Validate) *Handler {
	return &Handler{logger: logger, service: service, validate: validate}
}

// MountRoutes registers the factor routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{conditieType}", h.resolveAll)

	r.Group(func(r chi.Router) {
		r.Use(shared.VereisEigenaar)
		r.Put("/{conditieType}/{conditieWaarde}", h.upsert)
		r.Delete("/{conditieType}/{conditieWaarde}", h.reset)
	})

	r.Post("/standaarden", h.seed)
}

type factorResponse struct {
	ID             int64   `json:"id"`
	EigenaarID     *int64  `json:"eigenaarId,omitempty"`
	ConditieType   string  `json:"conditieType"`
	ConditieWaarde string  `json:"conditieWaarde"`
	Factor         float64 `json:"factor"`
	Standaard      bool    `json:"standaard"`
}

func toResponse(f CorrectieFactor) factorResponse {
	return factorResponse{
		ID:             f.ID,
		EigenaarID:     f.EigenaarID,
		ConditieType:   f.ConditieType,
		ConditieWaarde: f.ConditieWaarde,
		Factor:         f.Factor,
		Standaard:      f.IsSysteemStandaard(),
	}
}

func eigenaarVanRequest(r *http.Request) *int64 {
	if id, ok := shared.EigenaarID(r.Context()); ok {
		return &id
	}
	return nil
}

// list returns the effective configuration view: every system default with
// the caller's overrides substituted in place.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	factoren, err := h.service.List(r.Context(), eigenaarVanRequest(r))
	if err != nil {
		h.logger.Error("list correctiefactoren", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	result := make([]factorResponse, 0, len(factoren))
	for _, f := range factoren {
		result = append(result, toResponse(f))
	}
	httpx.JSON(w, http.StatusOK, result)
}

// resolveAll returns value -> effective multiplier for one condition type.
func (h *Handler) resolveAll(w http.ResponseWriter, r *http.Request) {
	conditieType := chi.URLParam(r, "conditieType")
	waarden, err := h.service.ResolveAll(r.Context(), eigenaarVanRequest(r), conditieType)
	if err != nil {
		h.logger.Error("resolve correctiefactoren", slog.Any("error", err), slog.String("type", conditieType))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, waarden)
}

type upsertRequest struct {
	Factor float64 `json:"factor" validate:"required,gt=0,lte=10"`
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
	conditieType := chi.URLParam(r, "conditieType")
	conditieWaarde := chi.URLParam(r, "conditieWaarde")

	f, err := h.service.Upsert(r.Context(), eigenaarID, conditieType, conditieWaarde, req.Factor)
	if err != nil {
		h.logger.Error("upsert correctiefactor", slog.Any("error", err),
			slog.String("type", conditieType), slog.String("waarde", conditieWaarde))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(*f))
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	eigenaarID, _ := shared.EigenaarID(r.Context())
	conditieType := chi.URLParam(r, "conditieType")
	conditieWaarde := chi.URLParam(r, "conditieWaarde")

	if err := h.service.ResetNaarStandaard(r.Context(), eigenaarID, conditieType, conditieWaarde); err != nil {
		h.logger.Error("reset correctiefactor", slog.Any("error", err),
			slog.String("type", conditieType), slog.String("waarde", conditieWaarde))
		httpx.RespondError(w, err)
		return
	}
	httpx.NoContent(w)
}

type seedResponse struct {
	Aantal  int    `json:"aantal"`
	Bericht string `json:"bericht"`
}

func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	aantal, err := h.service.InitialiseerStandaarden(r.Context())
	if err != nil {
		h.logger.Error("seed systeemstandaarden", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	bericht := fmt.Sprintf("%d standaardfactoren aangemaakt", aantal)
	if aantal == 0 {
		bericht = "standaardfactoren bestaan al"
	}
	httpx.JSON(w, http.StatusOK, seedResponse{Aantal: aantal, Bericht: bericht})
}
