package controllers

import (
	"net/http"

	"github.com/angelmondragon/furniture-catalogue-backend/api/responses"
	"github.com/angelmondragon/furniture-catalogue-backend/api/validators"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/lots"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
)

func ItemDetailGet(svc lots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("lot"))
			return
		}
		itemID, err := validators.ParseURLUUID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		detail, err := svc.GetDetail(r.Context(), itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, lots.ToDTO(*detail))
	}
}

// ItemDetailUpsert records condition, damage and location for an item and
// assigns its lot number.
func ItemDetailUpsert(svc lots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("lot"))
			return
		}
		itemID, err := validators.ParseURLUUID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var input lots.UpsertDetailInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ctx := r.Context()
		if input.ProjectID != nil {
			ctx = logg.WithProjectID(ctx, input.ProjectID.String())
		}
		detail, err := svc.UpsertDetail(ctx, itemID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, lots.ToDTO(*detail))
	}
}
