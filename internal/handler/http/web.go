package http

import (
	"net/http"

	"github.com/MKhiriev/billiard-pos/internal/app"
	"github.com/MKhiriev/billiard-pos/internal/validators"
	"github.com/MKhiriev/billiard-pos/models"
)

type homePage struct {
	Version string
}

type productsPage struct {
	Filter   models.ProductFilter
	Result   models.ProductPage
	Sorts    []string
	PrevPage int
	NextPage int
}

type loginPage struct {
	Login   string
	Message string
}

// home shows the landing page. The caller identity is optional here.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) error {
	if authed, err := h.authenticate(r); err == nil {
		r = authed
	}
	h.render(w, r, http.StatusOK, pageHome, homePage{Version: h.services.AppInfoService.GetAppVersion(r.Context())})
	return nil
}

func (h *Handler) productsView(w http.ResponseWriter, r *http.Request) error {
	filter := validators.ProductFilterFromValues(valuesFrom(r))

	result, err := h.services.ProductService.List(r.Context(), filter)
	if err != nil {
		return err
	}

	page := productsPage{
		Filter: filter,
		Result: result,
		Sorts: []string{
			models.ProductSortNewest, models.ProductSortName, models.ProductSortPriceAsc, models.ProductSortPriceDesc,
		},
	}
	if result.Page > 1 {
		page.PrevPage = result.Page - 1
	}
	if int64(result.Page)*int64(result.Limit) < result.Total {
		page.NextPage = result.Page + 1
	}

	h.render(w, r, http.StatusOK, pageProducts, page)
	return nil
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) error {
	h.render(w, r, http.StatusOK, pageLogin, loginPage{})
	return nil
}

// loginSubmit signs in from the HTML form. Failures re-render the form
// instead of the error page.
func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) error {
	values, err := validate(r, validators.AuthLogin)
	if err != nil {
		h.render(w, r, http.StatusUnprocessableEntity, pageLogin, loginPage{Message: app.MsgValidationFailed})
		return nil
	}
	credentials := validators.CredentialsFromValues(values)

	_, token, err := h.signIn(r.Context(), credentials)
	if err != nil {
		appErr := classify(err)
		if appErr.Kind != app.KindUnauthenticated {
			return err
		}
		h.render(w, r, appErr.Status(), pageLogin, loginPage{Login: credentials.Login, Message: appErr.Message})
		return nil
	}

	h.setTokenCookie(w, token)
	http.Redirect(w, r, "/products", http.StatusSeeOther)
	return nil
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) error {
	clearTokenCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil
}
