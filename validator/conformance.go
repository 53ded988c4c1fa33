package validator

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	"go.yaml.in/yaml/v4"

	"github.com/specweld/specweld/internal/issues"
	"github.com/specweld/specweld/internal/nodeutil"
)

// checkConformance round-trips the document through kin-openapi's OpenAPI 3
// model and reports any problem it finds as one more issue. The structural
// checks above stay authoritative; this pass catches the deeper semantic
// rules of the OpenAPI specification.
func (v *run) checkConformance(doc *yaml.Node) {
	data, err := nodeutil.EncodeJSON(doc)
	if err != nil {
		v.add(issues.SeverityError, nil, "", "conformance: encoding document: %v", err)
		return
	}

	loader := openapi3.NewLoader()
	model, err := loader.LoadFromData(data)
	if err != nil {
		v.add(issues.SeverityError, nil, "", "conformance: %v", err)
		return
	}
	if err := model.Validate(context.Background()); err != nil {
		v.add(issues.SeverityError, nil, "", "conformance: %v", err)
	}
}
