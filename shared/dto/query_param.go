package dto

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ecoparking/shared/constant"
	"ecoparking/shared/timezone"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, missing page and limit fall back to the defaults.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Newest orders by creation time, latest first.
func Newest() QueryParams {
	return QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: SortDirDesc}
}

// DateRange is an inclusive window of whole days.
type DateRange struct {
	From time.Time `json:"from" validate:"required"`
	To   time.Time `json:"to"   validate:"required,gtefield=From"`
}

// ParseDateRange reads two yyyy-mm-dd dates; To is extended to the end of its day.
func ParseDateRange(from, to string) (DateRange, error) {
	start, err := timezone.Parse(constant.DateOnlyFormat, strings.TrimSpace(from))
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start date %q, expected %s", from, constant.DateOnlyFormat)
	}

	end, err := timezone.Parse(constant.DateOnlyFormat, strings.TrimSpace(to))
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end date %q, expected %s", to, constant.DateOnlyFormat)
	}

	return DateRange{From: start, To: timezone.EndOfDay(end)}, nil
}

func (d *DateRange) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	parsed, err := ParseDateRange(query.Get(constant.RequestParamFrom), query.Get(constant.RequestParamTo))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d DateRange) Contains(t time.Time) bool {
	return !t.Before(d.From) && !t.After(d.To)
}
