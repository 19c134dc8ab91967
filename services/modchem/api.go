package modchem

import (
	"context"
	"errors"
	"net/http"

	"modchem-backend/lib/chem"
	"modchem-backend/lib/scrapers/wikidict"

	"github.com/danielgtaylor/huma/v2"
)

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, chem.ErrUnknownButton),
		errors.Is(err, chem.ErrNegativeCount),
		errors.Is(err, chem.ErrUnknownMode):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, wikidict.ErrNoSection),
		errors.Is(err, wikidict.ErrNoMatch),
		errors.Is(err, wikidict.ErrNoArticle):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, wikidict.ErrUpstream):
		return huma.Error502BadGateway(err.Error())
	}
	return huma.Error500InternalServerError(err.Error())
}

type formulaQueryInput struct {
	Formula string `query:"formula" required:"true" doc:"Formula text, for example NaCl."`
}

type articleInput struct {
	Formula string `query:"formula" required:"true" doc:"Formula text, for example CH4."`
	First   string `query:"first" doc:"First element symbol of the formula. Decides between the organic and inorganic C tables, read off the formula when omitted."`
}

func registerApiHandlers(api huma.API, svc Service) {
	type healthOutput struct {
		Body struct {
			Status string `json:"status"`
		}
	}
	huma.Register(api, huma.Operation{OperationID: "health", Method: http.MethodGet, Path: "/health", Summary: "Health check", Tags: []string{"Health"}},
		func(ctx context.Context, input *struct{}) (*healthOutput, error) {
			out := &healthOutput{}
			out.Body.Status = "ok"
			return out, nil
		})

	type buildInput struct {
		Body struct {
			Counts map[string]int `json:"counts" doc:"Clicks per button id, duplicated elements use their own id (K1, Ca1, ...)."`
			Mode   string         `json:"mode,omitempty" doc:"organic, ionic, oxide or hydroxide. Defaults to organic."`
		}
	}
	type formulaOutput struct {
		Body chem.Formula
	}
	huma.Register(api, huma.Operation{OperationID: "build-formula", Method: http.MethodPost, Path: "/api/v1/formula", Summary: "Build a formula from button clicks", Tags: []string{"Formula"}},
		func(ctx context.Context, input *buildInput) (*formulaOutput, error) {
			mode := chem.Organic
			if input.Body.Mode != "" {
				parsed, err := chem.ParseMode(input.Body.Mode)
				if err != nil {
					return nil, mapErr(err)
				}
				mode = parsed
			}
			formula, err := svc.Build(input.Body.Counts, mode)
			if err != nil {
				return nil, mapErr(err)
			}
			return &formulaOutput{Body: formula}, nil
		})

	type resolveOutput struct {
		Body Resolution
	}
	huma.Register(api, huma.Operation{OperationID: "resolve-formula", Method: http.MethodGet, Path: "/api/v1/resolve", Summary: "Look a formula up in the dictionary", Tags: []string{"Formula"}},
		func(ctx context.Context, input *formulaQueryInput) (*resolveOutput, error) {
			res, err := svc.Resolve(ctx, ParseFormula(input.Formula, ""))
			if err != nil {
				return nil, mapErr(err)
			}
			return &resolveOutput{Body: res}, nil
		})

	type articleOutput struct {
		Body Article
	}
	huma.Register(api, huma.Operation{OperationID: "get-article", Method: http.MethodGet, Path: "/api/v1/article", Summary: "Fetch the wiki article of a formula", Tags: []string{"Formula"}},
		func(ctx context.Context, input *articleInput) (*articleOutput, error) {
			return &articleOutput{Body: svc.Article(ctx, ParseFormula(input.Formula, input.First))}, nil
		})

	type tableOutput struct {
		Body Table
	}
	huma.Register(api, huma.Operation{OperationID: "get-table", Method: http.MethodGet, Path: "/api/v1/table", Summary: "Layout of the table of elements", Tags: []string{"Table"}},
		func(ctx context.Context, input *struct{}) (*tableOutput, error) {
			return &tableOutput{Body: PeriodicTable()}, nil
		})
}
