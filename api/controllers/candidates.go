package controllers

import (
	"net/http"

	"github.com/angelmondragon/furniture-catalogue-backend/api/responses"
	"github.com/angelmondragon/furniture-catalogue-backend/api/validators"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/candidates"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/items"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
)

func CandidateCreate(svc candidates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("candidate"))
			return
		}
		var input candidates.CreateCandidateInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		candidate, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, candidates.ToDTO(*candidate))
	}
}

func CandidateList(svc candidates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("candidate"))
			return
		}
		filter, err := parseCandidateFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rows, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, candidates.ToDTOs(rows))
	}
}

func parseCandidateFilter(r *http.Request) (candidates.Filter, error) {
	projectID, err := validators.ParseQueryUUID(r, "projectId")
	if err != nil {
		return candidates.Filter{}, err
	}
	categoryID, err := validators.ParseQueryUUID(r, "categoryId")
	if err != nil {
		return candidates.Filter{}, err
	}
	return candidates.Filter{ProjectID: projectID, CategoryID: categoryID}, nil
}

func CandidateGet(svc candidates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("candidate"))
			return
		}
		id, err := validators.ParseURLUUID(r, "candidateId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		candidate, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, candidates.ToDTO(*candidate))
	}
}

func CandidateUpdate(svc candidates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("candidate"))
			return
		}
		id, err := validators.ParseURLUUID(r, "candidateId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var input candidates.UpdateCandidateInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		candidate, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, candidates.ToDTO(*candidate))
	}
}

func CandidateDelete(svc candidates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("candidate"))
			return
		}
		id, err := validators.ParseURLUUID(r, "candidateId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// CandidatePromote copies a candidate into the confirmed catalogue. The
// candidate itself is left untouched.
func CandidatePromote(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("item"))
			return
		}
		id, err := validators.ParseURLUUID(r, "candidateId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.Promote(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, items.ToDTO(*item))
	}
}
