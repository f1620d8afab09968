package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/industash/industash/apierrors"
	"github.com/industash/industash/dataset"
	"github.com/industash/industash/engine"
	"github.com/industash/industash/exporter"
	"github.com/industash/industash/present"
)

// Handler serves the dashboard API over one loaded, immutable Table.
// Every request filters and aggregates on demand; nothing is mutated, so
// concurrent requests need no locking.
type Handler struct {
	table   *dataset.Table
	binding *dataset.Binding
	logger  *slog.Logger
}

// NewHandler creates the dashboard API handler.
func NewHandler(table *dataset.Table, binding *dataset.Binding, logger *slog.Logger) *Handler {
	return &Handler{
		table:   table,
		binding: binding,
		logger:  logger.With(slog.String("component", "api")),
	}
}

// Routes returns the API router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/kpis", h.GetKPIs)
	r.Get("/filters", h.GetFilterOptions)
	r.Get("/table", h.GetTable)

	r.Route("/charts", func(r chi.Router) {
		r.Get("/time-series", h.chart(present.TimeSeriesChart))
		r.Get("/industry", h.chart(present.IndustryBarChart))
		r.Get("/comparison", h.chart(present.ComparisonBarChart))
		r.Get("/category-share", h.chart(present.CategoryShareChart))
		r.Get("/scatter", h.chart(present.ScatterChart))
		r.Get("/cumulative", h.chart(present.CumulativeAreaChart))
	})

	r.Route("/export", func(r chi.Router) {
		r.Get("/csv", h.ExportCSV)
		r.Get("/xlsx", h.ExportXLSX)
	})

	return r
}

// filtered applies the request's FilterSpec to the loaded table.
func (h *Handler) filtered(r *http.Request) (*dataset.Table, *apierrors.APIError) {
	spec, apiErr := filterSpecFromQuery(r)
	if apiErr != nil {
		return nil, apiErr
	}
	t, err := engine.Filter(h.table, h.binding, spec)
	if err != nil {
		return nil, h.toAPIError(err)
	}
	return t, nil
}

// GetKPIs returns the scalar metric cards for the current selection.
func (h *Handler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	t, apiErr := h.filtered(r)
	if apiErr != nil {
		h.renderError(w, r, apiErr)
		return
	}
	view, err := present.Metrics(t, h.binding)
	if err != nil {
		h.renderError(w, r, h.toAPIError(err))
		return
	}
	render.JSON(w, r, view)
}

// chart adapts a present builder into an HTTP handler. Each chart fails
// alone: a SchemaError here returns an error payload for this view only.
func (h *Handler) chart(build func(*dataset.Table, *dataset.Binding) (*present.View, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, apiErr := h.filtered(r)
		if apiErr != nil {
			h.renderError(w, r, apiErr)
			return
		}
		view, err := build(t, h.binding)
		if err != nil {
			h.renderError(w, r, h.toAPIError(err))
			return
		}
		render.JSON(w, r, view)
	}
}

// GetTable returns the filtered records as a render-ready table.
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	t, apiErr := h.filtered(r)
	if apiErr != nil {
		h.renderError(w, r, apiErr)
		return
	}
	limit, apiErr := limitFromQuery(r)
	if apiErr != nil {
		h.renderError(w, r, apiErr)
		return
	}
	view, err := present.DataTable(t, h.binding, limit)
	if err != nil {
		h.renderError(w, r, h.toAPIError(err))
		return
	}
	render.JSON(w, r, view)
}

// filterOptions is the selection vocabulary the frontend offers.
type filterOptions struct {
	Years      []string `json:"years"`
	Codes      []string `json:"codes"`
	Categories []string `json:"categories,omitempty"`
}

// GetFilterOptions returns the distinct years, codes, and categories.
func (h *Handler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	years, err := engine.Distinct(h.table, h.binding.YearColumn())
	if err != nil {
		h.renderError(w, r, h.toAPIError(err))
		return
	}
	codes, err := engine.Distinct(h.table, h.binding.CodeColumn())
	if err != nil {
		h.renderError(w, r, h.toAPIError(err))
		return
	}

	options := filterOptions{Years: years, Codes: codes}
	if category, err := h.binding.CategoryColumn(); err == nil {
		categories, err := engine.Distinct(h.table, category)
		if err != nil {
			h.renderError(w, r, h.toAPIError(err))
			return
		}
		options.Categories = categories
	}

	render.JSON(w, r, options)
}

// ExportCSV streams the filtered view in the input's delimited format.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	t, apiErr := h.filtered(r)
	if apiErr != nil {
		h.renderError(w, r, apiErr)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="industash-export.csv"`)
	if err := dataset.Export(w, t); err != nil {
		h.logger.Error("csv export failed", slog.Any("error", err))
	}
}

// ExportXLSX streams the filtered view as an Excel workbook.
func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	t, apiErr := h.filtered(r)
	if apiErr != nil {
		h.renderError(w, r, apiErr)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="industash-export.xlsx"`)
	if err := exporter.WriteXLSX(w, t); err != nil {
		h.logger.Error("xlsx export failed", slog.Any("error", err))
	}
}

// ============================================================================
// ERROR MAPPING
// ============================================================================

func (h *Handler) toAPIError(err error) *apierrors.APIError {
	var schemaErr *dataset.SchemaError
	if errors.As(err, &schemaErr) {
		return apierrors.SchemaUnavailable(schemaErr)
	}
	return apierrors.Internal(err)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, apiErr *apierrors.APIError) {
	if apiErr.StatusCode >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("error_code", apiErr.ErrorCode),
			slog.String("message", apiErr.Message))
	} else {
		h.logger.Warn("request rejected",
			slog.String("path", r.URL.Path),
			slog.String("error_code", apiErr.ErrorCode),
			slog.String("message", apiErr.Message))
	}
	if err := render.Render(w, r, apiErr); err != nil {
		h.logger.Error("render error response failed", slog.Any("error", err))
	}
}
