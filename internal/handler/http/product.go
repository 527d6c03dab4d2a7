package http

import (
	"net/http"

	"github.com/MKhiriev/billiard-pos/internal/validators"
)

func productID(r *http.Request) int64 {
	id, _ := valuesFrom(r).Int(validators.FieldID)
	return id
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) error {
	filter := validators.ProductFilterFromValues(valuesFrom(r))

	page, err := h.services.ProductService.List(r.Context(), filter)
	if err != nil {
		return err
	}
	return writeOK(w, r, "Products retrieved", page)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) error {
	product, err := h.services.ProductService.Get(r.Context(), productID(r))
	if err != nil {
		return err
	}
	return writeOK(w, r, "Product retrieved", product)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) error {
	product := validators.ProductFromValues(valuesFrom(r))

	created, err := h.services.ProductService.Create(r.Context(), product)
	if err != nil {
		return err
	}
	return writeStatus(w, r, http.StatusCreated, "Product created", created)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) error {
	update := validators.ProductUpdateFromValues(valuesFrom(r))

	product, err := h.services.ProductService.Update(r.Context(), productID(r), update)
	if err != nil {
		return err
	}
	return writeOK(w, r, "Product updated", product)
}

func (h *Handler) setProductActive(w http.ResponseWriter, r *http.Request) error {
	active, _ := valuesFrom(r).Bool(validators.FieldActive)

	product, err := h.services.ProductService.SetActive(r.Context(), productID(r), active)
	if err != nil {
		return err
	}
	return writeOK(w, r, "Product status updated", product)
}

func (h *Handler) setProductPrice(w http.ResponseWriter, r *http.Request) error {
	price, _ := valuesFrom(r).Float(validators.FieldPrice)

	product, err := h.services.ProductService.SetPrice(r.Context(), productID(r), price)
	if err != nil {
		return err
	}
	return writeOK(w, r, "Product price updated", product)
}

func (h *Handler) setProductImages(w http.ResponseWriter, r *http.Request) error {
	images, _ := valuesFrom(r).Strings(validators.FieldImages)
	if images == nil {
		images = []string{}
	}

	product, err := h.services.ProductService.SetImages(r.Context(), productID(r), images)
	if err != nil {
		return err
	}
	return writeOK(w, r, "Product images updated", product)
}

func (h *Handler) addProductTags(w http.ResponseWriter, r *http.Request) error {
	tags, _ := valuesFrom(r).Strings(validators.FieldTags)

	product, err := h.services.ProductService.AddTags(r.Context(), productID(r), tags)
	if err != nil {
		return err
	}
	return writeOK(w, r, "Product tags added", product)
}

func (h *Handler) removeProductTags(w http.ResponseWriter, r *http.Request) error {
	tags, _ := valuesFrom(r).Strings(validators.FieldTags)

	product, err := h.services.ProductService.RemoveTags(r.Context(), productID(r), tags)
	if err != nil {
		return err
	}
	return writeOK(w, r, "Product tags removed", product)
}

func (h *Handler) removeProduct(w http.ResponseWriter, r *http.Request) error {
	if err := h.services.ProductService.Remove(r.Context(), productID(r)); err != nil {
		return err
	}
	return writeOK(w, r, "Product deleted", nil)
}
