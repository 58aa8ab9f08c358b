package vagas

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

const (
	jobsPath     = "vagas"
	searchPath   = "buscar"
	regionPath   = "regiao"
	featuredPath = "destaque"
	recentPath   = "recentes"
)

// JobFilter narrows the job listing. Empty fields are not sent.
type JobFilter struct {
	// query is a custom tag for buildParams.
	Keyword      string `query:"palavraChave" mapstructure:"keyword"`
	City         string `query:"cidade" mapstructure:"city"`
	State        string `query:"estado" mapstructure:"state"`
	ContractType string `query:"tipoContrato" mapstructure:"contract"`
	Mode         string `query:"modalidade" mapstructure:"mode"`
	Level        string `query:"nivelExperiencia" mapstructure:"level"`
}

// ListJobs lists job postings matching the filter. A nil filter lists all.
func (c *Client) ListJobs(ctx context.Context, filter *JobFilter) (*Jobs, error) {
	var q url.Values
	if filter != nil {
		q = buildParams(filter)
	}

	return c.jobs(ctx, "list_jobs", q, jobsPath)
}

// SearchJobs searches job postings by keyword.
func (c *Client) SearchJobs(ctx context.Context, keyword string) (*Jobs, error) {
	q := url.Values{}
	q.Set("q", keyword)

	return c.jobs(ctx, "search_jobs", q, jobsPath, searchPath)
}

// JobsByRegion lists job postings in a city and/or state.
func (c *Client) JobsByRegion(ctx context.Context, city, state string) (*Jobs, error) {
	q := buildParams(&struct {
		City  string `query:"cidade"`
		State string `query:"estado"`
	}{City: city, State: state})

	return c.jobs(ctx, "jobs_by_region", q, jobsPath, regionPath)
}

// FeaturedJobs lists the highlighted job postings.
func (c *Client) FeaturedJobs(ctx context.Context) (*Jobs, error) {
	return c.jobs(ctx, "featured_jobs", nil, jobsPath, featuredPath)
}

// RecentJobs lists the latest job postings. A non-positive limit leaves the
// page size to the backend.
func (c *Client) RecentJobs(ctx context.Context, limit int) (*Jobs, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limite", strconv.Itoa(limit))
	}

	return c.jobs(ctx, "recent_jobs", q, jobsPath, recentPath)
}

func (c *Client) jobs(ctx context.Context, operation string, q url.Values, path ...string) (*Jobs, error) {
	var items []*Job
	err := c.do(ctx, call{
		operation: operation,
		method:    http.MethodGet,
		path:      path,
		query:     q,
		list:      true,
	}, &items)
	if err != nil {
		return nil, err
	}

	return &Jobs{Items: items}, nil
}

// buildParams turns the `query` tagged fields of a struct pointer into URL
// values, skipping empty and zero values.
func buildParams(params any) url.Values {
	q := url.Values{}

	value := reflect.ValueOf(params)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return q
		}
		value = value.Elem()
	}

	for _, field := range reflect.VisibleFields(value.Type()) {
		key := field.Tag.Get("query")
		if key == "" {
			continue
		}

		fv := value.FieldByIndex(field.Index)
		switch fv.Kind() {
		case reflect.Slice:
			for i := 0; i < fv.Len(); i++ {
				if s := strings.TrimSpace(fmt.Sprintf("%v", fv.Index(i).Interface())); s != "" {
					q.Add(key, s)
				}
			}
		default:
			s := strings.TrimSpace(fmt.Sprintf("%v", fv.Interface()))
			if s != "" && !fv.IsZero() {
				q.Set(key, s)
			}
		}
	}

	return q
}
