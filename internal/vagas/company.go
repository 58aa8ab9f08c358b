package vagas

import (
	"context"
	"net/http"
)

const companiesPath = "empresas"

type Companies struct {
	Items []*Company `json:"items"`
}

type Company struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"nome,omitempty"`
	Description string `json:"descricao,omitempty"`
	Sector      string `json:"setor,omitempty"`
	City        string `json:"cidade,omitempty"`
	State       string `json:"estado,omitempty"`
	Website     string `json:"site,omitempty"`
}

func (c *Client) ListCompanies(ctx context.Context) (*Companies, error) {
	var items []*Company
	err := c.do(ctx, call{
		operation: "list_companies",
		method:    http.MethodGet,
		path:      []string{companiesPath},
		list:      true,
	}, &items)
	if err != nil {
		return nil, err
	}

	return &Companies{Items: items}, nil
}

func (c *Client) GetCompany(ctx context.Context, id string) (*Company, error) {
	var company Company
	err := c.do(ctx, call{
		operation: "get_company",
		method:    http.MethodGet,
		path:      []string{companiesPath, id},
	}, &company)
	if err != nil {
		return nil, err
	}

	return &company, nil
}

func (c *Companies) Len() int {
	return len(c.Items)
}
