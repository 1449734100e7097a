package catalog

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

func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(shared.VereisEigenaar)
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Post("/{id}/activeer", h.activeer)
	r.Delete("/{id}", h.deactiveer)
}

type productRequest struct {
	Naam              string  `json:"naam" validate:"required"`
	Categorie         string  `json:"categorie"`
	Inkoopprijs       float64 `json:"inkoopprijs" validate:"gte=0"`
	Verkoopprijs      float64 `json:"verkoopprijs" validate:"gte=0"`
	Eenheid           string  `json:"eenheid" validate:"required"`
	VerliesPercentage float64 `json:"verliesPercentage" validate:"gte=0,lt=1"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	eigenaarID, _ := shared.EigenaarID(r.Context())
	producten, err := h.service.List(r.Context(), eigenaarID)
	if err != nil {
		h.logger.Error("list producten", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if producten == nil {
		producten = []Product{}
	}
	httpx.JSON(w, http.StatusOK, producten)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	eigenaarID, _ := shared.EigenaarID(r.Context())
	p, err := h.service.Get(r.Context(), eigenaarID, id)
	if err != nil {
		h.respondErr(w, "get product", err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	eigenaarID, _ := shared.EigenaarID(r.Context())
	p, err := h.service.Create(r.Context(), Product{
		EigenaarID:        eigenaarID,
		Naam:              req.Naam,
		Categorie:         req.Categorie,
		Inkoopprijs:       req.Inkoopprijs,
		Verkoopprijs:      req.Verkoopprijs,
		Eenheid:           req.Eenheid,
		VerliesPercentage: req.VerliesPercentage,
	})
	if err != nil {
		h.respondErr(w, "create product", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, p)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	eigenaarID, _ := shared.EigenaarID(r.Context())
	p, err := h.service.Update(r.Context(), Product{
		ID:                id,
		EigenaarID:        eigenaarID,
		Naam:              req.Naam,
		Categorie:         req.Categorie,
		Inkoopprijs:       req.Inkoopprijs,
		Verkoopprijs:      req.Verkoopprijs,
		Eenheid:           req.Eenheid,
		VerliesPercentage: req.VerliesPercentage,
	})
	if err != nil {
		h.respondErr(w, "update product", err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) deactiveer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	eigenaarID, _ := shared.EigenaarID(r.Context())
	if err := h.service.Deactiveer(r.Context(), eigenaarID, id); err != nil {
		h.respondErr(w, "deactiveer product", err)
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) activeer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	eigenaarID, _ := shared.EigenaarID(r.Context())
	if err := h.service.Activeer(r.Context(), eigenaarID, id); err != nil {
		h.respondErr(w, "activeer product", err)
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (productRequest, bool) {
	var req productRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Ongeldige aanvraag", err.Error())
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validatie mislukt", err.Error())
		return req, false
	}
	return req, true
}

func (h *Handler) respondErr(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}
	h.logger.Error(op, slog.Any("error", err))
	httpx.RespondError(w, err)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Ongeldige aanvraag", "id moet een getal zijn")
		return 0, false
	}
	return id, true
}
