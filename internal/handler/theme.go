package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"barberlink-backend/internal/domain"
	"barberlink-backend/internal/repository"
	"barberlink-backend/internal/server/authctx"
	"github.com/go-chi/chi/v5"
)

type ThemeHandler struct {
	Repo repository.ThemeRepository
}

func (h ThemeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/theme", h.get)
	r.Put("/theme", h.save)
}

func (h ThemeHandler) get(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	t, err := h.Repo.Get(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Tenants without saved customization get the defaults.
			writeJSON(w, http.StatusOK, themeResponse(defaultTheme()))
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, themeResponse(*t))
}

func (h ThemeHandler) save(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req struct {
		BusinessName string `json:"businessName"`
		Tagline      string `json:"tagline"`
		PrimaryColor string `json:"primaryColor"`
		AccentColor  string `json:"accentColor"`
		FontFamily   string `json:"fontFamily"`
		LogoURL      string `json:"logoUrl"`
		ShowPrices   bool   `json:"showPrices"`
		ShowReviews  bool   `json:"showReviews"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	saved, err := h.Repo.Save(r.Context(), user.ID, domain.ThemeSettings{
		BusinessName: req.BusinessName,
		Tagline:      req.Tagline,
		PrimaryColor: req.PrimaryColor,
		AccentColor:  req.AccentColor,
		FontFamily:   req.FontFamily,
		LogoURL:      req.LogoURL,
		ShowPrices:   req.ShowPrices,
		ShowReviews:  req.ShowReviews,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, themeResponse(*saved))
}

func defaultTheme() domain.ThemeSettings {
	return domain.ThemeSettings{
		PrimaryColor: "#111827",
		AccentColor:  "#D97706",
		FontFamily:   "Inter",
		ShowPrices:   true,
		ShowReviews:  true,
	}
}

func themeResponse(t domain.ThemeSettings) map[string]any {
	return map[string]any{
		"businessName": t.BusinessName,
		"tagline":      t.Tagline,
		"primaryColor": t.PrimaryColor,
		"accentColor":  t.AccentColor,
		"fontFamily":   t.FontFamily,
		"logoUrl":      t.LogoURL,
		"showPrices":   t.ShowPrices,
		"showReviews":  t.ShowReviews,
	}
}
