package http

import (
	"net/http"

	"github.com/MKhiriev/billiard-pos/internal/validators"
)

const apiV1Prefix = "/api/v1"

func (h *Handler) apiRoutes() Registrar {
	return routeTable{h: h, endpoints: []endpoint{
		{http.MethodGet, "/health", public, h.health},

		{http.MethodPost, "/auth/login", RoutePolicy{Schema: validators.AuthLogin}, h.login},
		{http.MethodGet, "/auth/me", signedIn, h.me},

		{http.MethodPost, "/products/upload-image", admin(nil), h.uploadImage},
		{http.MethodGet, "/products", staff(validators.ProductList), h.listProducts},
		{http.MethodGet, "/products/{id}", staff(validators.ProductGetOne), h.getProduct},
		{http.MethodPost, "/products", admin(validators.ProductCreate), h.createProduct},
		{http.MethodPut, "/products/{id}", admin(validators.ProductUpdate), h.updateProduct},
		{http.MethodPatch, "/products/{id}/active", admin(validators.ProductSetActive), h.setProductActive},
		{http.MethodPatch, "/products/{id}/price", admin(validators.ProductSetPrice), h.setProductPrice},
		{http.MethodPatch, "/products/{id}/images", admin(validators.ProductSetImages), h.setProductImages},
		{http.MethodPatch, "/products/{id}/tags/add", admin(validators.ProductAddTags), h.addProductTags},
		{http.MethodPatch, "/products/{id}/tags/remove", admin(validators.ProductRemoveTags), h.removeProductTags},
		{http.MethodDelete, "/products/{id}", admin(validators.ProductRemove), h.removeProduct},
	}}
}
