package offerte

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

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
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Post("/{id}/herbereken", h.herbereken)
	r.Post("/{id}/status", h.wijzigStatus)
	r.Get("/{id}/versies", h.versies)
	r.Get("/{id}/samenvatting", h.samenvatting)
	r.Post("/{id}/regels", h.voegRegelToe)
	r.Put("/{id}/regels/{regelID}", h.bewerkRegel)
	r.Delete("/{id}/regels/{regelID}", h.verwijderRegel)
}

// respondErr translates domain failures onto the HTTP taxonomy. Engine
// errors keep their message so the UI can point at the failing scope.
func (h *Handler) respondErr(w http.ResponseWriter, op string, err error) {
	var valErr *calc.ValidationError
	var confErr *calc.ConfigurationError
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrRegelNietGevonden):
		httpx.Problem(w, http.StatusNotFound, "Niet gevonden", err.Error())
	case errors.Is(err, ErrOfferteVerzonden), errors.Is(err, ErrOngeldigeOvergang):
		httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, ErrOnbekendeScope):
		httpx.Problem(w, http.StatusBadRequest, "Validatie mislukt", err.Error())
	case errors.As(err, &valErr):
		httpx.Problem(w, http.StatusBadRequest, "Validatie mislukt", err.Error())
	case errors.As(err, &confErr):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Configuratie onvolledig", err.Error())
	default:
		h.logger.Error(op, slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	eigenaarID, _ := shared.EigenaarID(r.Context())
	filter := ListFilter{Status: Status(r.URL.Query().Get("status"))}
	if v := r.URL.Query().Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		filter.Offset, _ = strconv.Atoi(v)
	}
	offertes, err := h.service.List(r.Context(), eigenaarID, filter)
	if err != nil {
		h.respondErr(w, "list offertes", err)
		return
	}
	if offertes == nil {
		offertes = []Offerte{}
	}
	httpx.JSON(w, http.StatusOK, offertes)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	eigenaarID, _ := shared.EigenaarID(r.Context())
	o, err := h.service.Get(r.Context(), eigenaarID, id)
	if err != nil {
		h.respondErr(w, "get offerte", err)
		return
	}
	httpx.JSON(w, http.StatusOK, o)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Ongeldige aanvraag", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validatie mislukt", err.Error())
		return
	}

	eigenaarID, _ := shared.EigenaarID(r.Context())
	o, err := h.service.Create(r.Context(), Offerte{
		EigenaarID:     eigenaarID,
		Klant:          req.Klant,
		AlgemeneParams: req.AlgemeneParams,
		Scopes:         req.Scopes,
		ScopeData:      req.ScopeData,
	})
	if err != nil {
		h.respondErr(w, "create offerte", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, o)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
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
	o, err := h.service.UpdateInvoer(r.Context(), Offerte{
		ID:             id,
		EigenaarID:     eigenaarID,
		Klant:          req.Klant,
		AlgemeneParams: req.AlgemeneParams,
		Scopes:         req.Scopes,
		ScopeData:      req.ScopeData,
	})
	if err != nil {
		h.respondErr(w, "update offerte", err)
		return
	}
	httpx.JSON(w, http.StatusOK, o)
}

func (h *Handler) herbereken(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	forceer := r.URL.Query().Get("forceer") == "true"
	eigenaarID, _ := shared.EigenaarID(r.Context())
	o, err := h.service.Herbereken(r.Context(), eigenaarID, id, forceer)
	if err != nil {
		h.respondErr(w, "herbereken offerte", err)
		return
	}
	httpx.JSON(w, http.StatusOK, o)
}

func (h *Handler) wijzigStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Ongeldige aanvraag", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validatie mislukt", err.Error())
		return
	}

	eigenaarID, _ := shared.EigenaarID(r.Context())
	o, err := h.service.WijzigStatus(r.Context(), eigenaarID, id, Status(req.Status))
	if err != nil {
		h.respondErr(w, "wijzig status", err)
		return
	}
	httpx.JSON(w, http.StatusOK, o)
}

func (h *Handler) versies(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	eigenaarID, _ := shared.EigenaarID(r.Context())
	versies, err := h.service.Versies(r.Context(), eigenaarID, id)
	if err != nil {
		h.respondErr(w, "list versies", err)
		return
	}
	if versies == nil {
		versies = []Versie{}
	}
	httpx.JSON(w, http.StatusOK, versies)
}

func (h *Handler) samenvatting(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	eigenaarID, _ := shared.EigenaarID(r.Context())
	o, err := h.service.Get(r.Context(), eigenaarID, id)
	if err != nil {
		h.respondErr(w, "samenvatting offerte", err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Samenvatting(o)))
}

func (h *Handler) regelVanRequest(w http.ResponseWriter, r *http.Request) (calc.Regel, bool) {
	var req regelRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Ongeldige aanvraag", err.Error())
		return calc.Regel{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validatie mislukt", err.Error())
		return calc.Regel{}, false
	}
	return calc.Regel{
		ID:              req.ID,
		Scope:           req.Scope,
		Omschrijving:    req.Omschrijving,
		Eenheid:         req.Eenheid,
		Aantal:          req.Aantal,
		PrijsPerEenheid: req.PrijsPerEenheid,
		Soort:           calc.FactSoort(req.Soort),
	}, true
}

func (h *Handler) voegRegelToe(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	regel, ok := h.regelVanRequest(w, r)
	if !ok {
		return
	}
	eigenaarID, _ := shared.EigenaarID(r.Context())
	o, err := h.service.VoegRegelToe(r.Context(), eigenaarID, id, regel)
	if err != nil {
		h.respondErr(w, "voeg regel toe", err)
		return
	}
	httpx.JSON(w, http.StatusOK, o)
}

func (h *Handler) bewerkRegel(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	regel, ok := h.regelVanRequest(w, r)
	if !ok {
		return
	}
	regel.ID = chi.URLParam(r, "regelID")
	eigenaarID, _ := shared.EigenaarID(r.Context())
	o, err := h.service.BewerkRegel(r.Context(), eigenaarID, id, regel)
	if err != nil {
		h.respondErr(w, "bewerk regel", err)
		return
	}
	httpx.JSON(w, http.StatusOK, o)
}

func (h *Handler) verwijderRegel(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	eigenaarID, _ := shared.EigenaarID(r.Context())
	o, err := h.service.VerwijderRegel(r.Context(), eigenaarID, id, chi.URLParam(r, "regelID"))
	if err != nil {
		h.respondErr(w, "verwijder regel", err)
		return
	}
	httpx.JSON(w, http.StatusOK, o)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Ongeldige aanvraag", "id moet een getal zijn")
		return 0, false
	}
	return id, true
}
