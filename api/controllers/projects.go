package controllers

import (
	"net/http"

	"github.com/angelmondragon/furniture-catalogue-backend/api/responses"
	"github.com/angelmondragon/furniture-catalogue-backend/api/validators"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/cascade"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/projects"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
)

func ProjectCreate(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("project"))
			return
		}
		var input projects.CreateProjectInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		project, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, projects.ToDTO(*project))
	}
}

// ProjectList returns every project newest first with its category and item counts.
func ProjectList(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("project"))
			return
		}
		summaries, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summaries)
	}
}

func ProjectGet(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("project"))
			return
		}
		id, err := validators.ParseURLUUID(r, "projectId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		project, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, projects.ToDTO(*project))
	}
}

func ProjectRename(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("project"))
			return
		}
		id, err := validators.ParseURLUUID(r, "projectId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var input projects.RenameProjectInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		project, err := svc.Rename(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, projects.ToDTO(*project))
	}
}

// ProjectSetStatus reopens a project or closes it. Closing runs the cascade.
func ProjectSetStatus(svc projects.Service, cascades cascade.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || cascades == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("project"))
			return
		}
		id, err := validators.ParseURLUUID(r, "projectId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var input projects.StatusInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithProjectID(r.Context(), id.String())
		var project *models.Project
		if input.Status == string(enums.ProjectStatusClosed) {
			project, err = cascades.CloseProject(ctx, id)
		} else {
			project, err = svc.Reopen(ctx, id)
		}
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, projects.ToDTO(*project))
	}
}

func ProjectDelete(cascades cascade.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cascades == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("cascade"))
			return
		}
		id, err := validators.ParseURLUUID(r, "projectId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ctx := logg.WithProjectID(r.Context(), id.String())
		if err := cascades.DeleteProject(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

func unavailable(name string) error {
	return pkgerrors.New(pkgerrors.CodeInternal, name+" service unavailable")
}
