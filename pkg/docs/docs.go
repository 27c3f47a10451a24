// Package docs renders endpoint descriptors as an OpenAPI 3 document.
//
// Every endpoint becomes one operation at its template path. Its path
// placeholders become required path parameters. Body-bearing endpoints get a
// JSON request body, and the declared status is documented as the only
// response, with the endpoint's fixture attached as the example.
package docs

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/hpsilva/oanda-api-v20/pkg/core"
	"github.com/hpsilva/oanda-api-v20/pkg/fixture"
)

// QueryParameters lists the query parameters documented for endpoints that
// accept params.
var QueryParameters = []string{"ids", "state", "instrument", "count", "beforeID"}

// Build returns the document for endpoints. Invalid endpoints and fixtures
// that cannot be decoded are collected and returned together. table may be
// nil.
func Build(info *openapi3.Info, endpoints []core.Endpoint, table *fixture.Table) (*openapi3.T, error) {
	if info == nil {
		info = &openapi3.Info{Title: "OANDA v20 orders", Version: "3.0"}
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    info,
		Paths:   openapi3.NewPaths(),
		Servers: openapi3.Servers{
			{URL: core.PracticeURL, Description: core.EnvironmentPractice},
			{URL: core.LiveURL, Description: core.EnvironmentLive},
		},
	}

	var result *multierror.Error
	for _, ep := range endpoints {
		if err := ep.Validate(); err != nil {
			result = multierror.Append(result, err)
			continue
		}

		op, err := operation(ep, table)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", ep.Name(), err))
			continue
		}
		doc.AddOperation("/"+ep.Template, ep.Method, op)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}

	return doc, nil
}

func operation(ep core.Endpoint, table *fixture.Table) (*openapi3.Operation, error) {
	op := openapi3.NewOperation()
	op.OperationID = ep.Name()
	op.Summary = summary(ep.Op)
	op.Tags = []string{"orders"}

	for _, name := range ep.Placeholders() {
		op.AddParameter(openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema()))
	}

	switch ep.Attribute {
	case core.AttrData:
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithRequired(true).
				WithJSONSchema(openapi3.NewObjectSchema()),
		}
	case core.AttrParams:
		for _, name := range QueryParameters {
			op.AddParameter(openapi3.NewQueryParameter(name).WithSchema(openapi3.NewStringSchema()))
		}
	}

	content := openapi3.NewContentWithJSONSchema(openapi3.NewObjectSchema())
	if ep.FixtureKey != "" {
		var example any
		found, err := table.Decode(ep.FixtureKey, &example)
		if err != nil {
			return nil, err
		}
		if found {
			content.Get("application/json").Example = example
		}
	}

	resp := openapi3.NewResponse().
		WithDescription(fmt.Sprintf("%s succeeded", ep.Name())).
		WithContent(content)
	op.AddResponse(ep.ExpectedStatus, resp)

	return op, nil
}

// summary turns ORDER_CLIENT_EXTENSIONS into "Order client extensions".
func summary(op core.Operation) string {
	words := strings.Split(strings.ToLower(op.String()), "_")
	if len(words) > 0 && words[0] != "" {
		words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	}
	return strings.Join(words, " ")
}

// JSON encodes doc as indented JSON.
func JSON(doc *openapi3.T) ([]byte, error) {
	data, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var v any
	if err := sonic.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return sonic.ConfigStd.MarshalIndent(v, "", "  ")
}

// YAML encodes doc as YAML.
func YAML(doc *openapi3.T) ([]byte, error) {
	v, err := doc.MarshalYAML()
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return yaml.Marshal(v)
}
