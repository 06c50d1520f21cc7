// Package fixtures loads and runs showdown fixture suites: named two-hand
// cases with an expected verdict, declared in HCL.
package fixtures

import (
	_ "embed"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

//go:embed testdata/cases.hcl
var defaultSuite []byte

// Case is one fixture: two hand strings and the expected rendered verdict
type Case struct {
	Name   string `hcl:"name,label"`
	Black  string `hcl:"black"`
	White  string `hcl:"white"`
	Expect string `hcl:"expect"`
}

// Suite is a collection of fixture cases
type Suite struct {
	Cases []Case `hcl:"case,block"`
}

// Load reads a fixture suite from an HCL file
func Load(filename string) (*Suite, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var suite Suite
	diags = gohcl.DecodeBody(file.Body, nil, &suite)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if len(suite.Cases) == 0 {
		return nil, fmt.Errorf("fixture file %s contains no cases", filename)
	}

	return &suite, nil
}

// Default returns the embedded kata suite
func Default() (*Suite, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(defaultSuite, "cases.hcl")
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse embedded suite: %s", diags.Error())
	}

	var suite Suite
	diags = gohcl.DecodeBody(file.Body, nil, &suite)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode embedded suite: %s", diags.Error())
	}

	return &suite, nil
}
