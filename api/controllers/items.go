package controllers

import (
	"net/http"

	"github.com/angelmondragon/furniture-catalogue-backend/api/responses"
	"github.com/angelmondragon/furniture-catalogue-backend/api/validators"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/cascade"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/items"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
)

// ItemCreate adds a confirmed item directly and makes sure a matching
// candidate exists.
func ItemCreate(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("item"))
			return
		}
		var input items.CreateItemInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.CreateConfirmedItem(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, items.ToDTO(*item))
	}
}

func ItemList(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("item"))
			return
		}
		projectID, err := validators.ParseQueryUUID(r, "projectId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		categoryID, err := validators.ParseQueryUUID(r, "categoryId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rows, err := svc.List(r.Context(), items.Filter{ProjectID: projectID, CategoryID: categoryID})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items.ToDTOs(rows))
	}
}

func ItemGet(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("item"))
			return
		}
		id, err := validators.ParseURLUUID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items.ToDTO(*item))
	}
}

func ItemUpdate(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("item"))
			return
		}
		id, err := validators.ParseURLUUID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var input items.UpdateItemInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items.ToDTO(*item))
	}
}

// ItemDelete removes a confirmed item together with its detail record.
func ItemDelete(cascades cascade.Service, logg *logger.Logger) http.HandlerFunc {
	return deleteItem(cascades, logg, "itemId")
}

func deleteItem(cascades cascade.Service, logg *logger.Logger, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cascades == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("cascade"))
			return
		}
		id, err := validators.ParseURLUUID(r, param)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := cascades.DeleteConfirmedItem(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
