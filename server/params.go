package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/industash/industash/apierrors"
	"github.com/industash/industash/engine"
)

// ============================================================================
// QUERY PARAMETERS — user selection → FilterSpec
// ============================================================================
// year=2019            year equality; "overall" or absent = no restriction
// code=D               single industry code
// codes=A&codes=B,C    industry multi-select; a present-but-empty codes=
//                      param is an explicit empty selection (matches nothing)
// categories=...       category multi-select, same empty-selection rule
// ============================================================================

const yearOverall = "overall"

func filterSpecFromQuery(r *http.Request) (engine.FilterSpec, *apierrors.APIError) {
	q := r.URL.Query()
	spec := engine.FilterSpec{}

	if raw := q.Get("year"); raw != "" && !strings.EqualFold(raw, yearOverall) {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return spec, apierrors.InvalidParameter("year", "must be an integer or \"overall\"")
		}
		spec.Year = engine.YearEquals(year)
	}

	spec.Code = q.Get("code")

	if values, ok := q["codes"]; ok {
		spec.Codes = splitValues(values)
	}
	if values, ok := q["categories"]; ok {
		spec.Categories = splitValues(values)
	}

	return spec, nil
}

// splitValues flattens repeated and comma-separated params into one list.
// The result is never nil: key presence alone means a selection was made.
func splitValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func limitFromQuery(r *http.Request) (int, *apierrors.APIError) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, apierrors.InvalidParameter("limit", "must be a non-negative integer")
	}
	return limit, nil
}
