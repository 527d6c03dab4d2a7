package http

import (
	"net/http"

	"github.com/MKhiriev/billiard-pos/internal/validators"
)

func (h *Handler) webRoutes() Registrar {
	return routeTable{h: h, endpoints: []endpoint{
		{http.MethodGet, "/", public, h.home},
		{http.MethodGet, "/products", staff(validators.ProductList), h.productsView},
		{http.MethodGet, "/login", public, h.loginForm},
		{http.MethodPost, "/login", public, h.loginSubmit},
		{http.MethodPost, "/logout", public, h.logout},
	}}
}
