package controllers

import (
	"net/http"

	"github.com/angelmondragon/furniture-catalogue-backend/api/responses"
	"github.com/angelmondragon/furniture-catalogue-backend/api/validators"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/cascade"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/catalogue"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
)

// The catalogue routes share one path parameter: a project id for reads and
// an item id for deletes.
const catalogueParam = "id"

// CatalogueMerge returns the merged catalogue of a project in display form.
func CatalogueMerge(svc catalogue.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("catalogue"))
			return
		}
		projectID, err := validators.ParseURLUUID(r, catalogueParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ctx := logg.WithProjectID(r.Context(), projectID.String())
		rows, err := svc.Merge(ctx, projectID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalogue.ToDisplayRows(rows))
	}
}

// CatalogueDelete removes one confirmed item from the catalogue view.
func CatalogueDelete(cascades cascade.Service, logg *logger.Logger) http.HandlerFunc {
	return deleteItem(cascades, logg, catalogueParam)
}
