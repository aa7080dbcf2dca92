package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mrtribble/brewlist/api/responses"
	"github.com/mrtribble/brewlist/api/validators"
	"github.com/mrtribble/brewlist/internal/shops"
	pkgerrors "github.com/mrtribble/brewlist/pkg/errors"
	"github.com/mrtribble/brewlist/pkg/logger"
)

// ListShops returns every tracked shop that has not been soft-deleted.
func ListShops(svc shops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dtos, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, dtos)
	}
}

type createShopRequest struct {
	ShopName string   `json:"shopName" validate:"required"`
	Rating   *float64 `json:"rating" validate:"required,min=0,max=5"`
}

// CreateShop registers a new shop and echoes the stored record back.
func CreateShop(svc shops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createShopRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Create(r.Context(), shops.CreateShopDTO{
			ShopName: payload.ShopName,
			Rating:   *payload.Rating,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithShopID(r.Context(), dto.ShopID)
		logg.Info(ctx, "shop.created")

		responses.WriteJSON(w, http.StatusCreated, dto)
	}
}

// ToggleFavorite flips the favorited flag and reports the new value.
func ToggleFavorite(svc shops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := shopIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		favorited, err := svc.ToggleFavorite(r.Context(), id)
		if err != nil {
			responses.WriteError(logg.WithShopID(r.Context(), id), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]bool{"favorited": favorited})
	}
}

// DeleteShop soft-deletes a shop; the row stays behind flagged deleted.
func DeleteShop(svc shops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := shopIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(logg.WithShopID(r.Context(), id), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

func shopIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid shop id")
	}
	return id, nil
}
