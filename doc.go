// Package apidoc2oas turns apidoc-style documentation artifacts into
// OpenAPI 3.0 documents.
//
// Documentation extractors in the apidoc family emit their findings as a
// flat list of endpoint records (api_data.json) plus optional project
// metadata (api_project.json). apidoc2oas reads those artifacts and
// assembles a structured OpenAPI document: route templates, typed
// parameters, request bodies, and per-status responses with recursive
// object schemas inferred from the records' dot-path field lists.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - apidoc: decode the documentation artifacts into typed records
//   - generator: transform decoded records into an OpenAPI document
//   - oas: the OpenAPI document model the generator produces
//   - merger: overlay generated documents onto hand-maintained templates
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/apidoc2oas
//
// # Quick Start
//
// Generate an OpenAPI document from documentation artifacts:
//
//	import "github.com/erraggy/apidoc2oas/generator"
//
//	result, err := generator.Generate("doc/api_data.json", "doc/api_project.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.HasWarnings() {
//		for _, issue := range result.Issues {
//			fmt.Println(issue.String())
//		}
//	}
//
// Overlay the generated document onto a base template:
//
//	import "github.com/erraggy/apidoc2oas/merger"
//
//	template, err := merger.LoadTemplate("base.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	merged, err := merger.MergeDocument(template, result.Document)
//
// # Command Line
//
// The apidoc2oas command exposes the same capabilities:
//
//	apidoc2oas generate -p doc/api_project.json -o openapi.yaml doc/api_data.json
//	apidoc2oas inspect doc/api_data.json
//	apidoc2oas mcp
package apidoc2oas
