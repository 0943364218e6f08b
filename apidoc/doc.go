// Package apidoc decodes the structured artifacts produced by an
// apidoc-style documentation parser into typed records.
//
// The extraction of documentation comments from source code is an external
// concern: a documentation parser (for example the apidoc CLI) scans the
// source tree and emits two JSON artifacts, api_data.json (an ordered list
// of endpoint records) and api_project.json (project metadata). This
// package reads those artifacts; the generator package turns them into an
// OpenAPI document.
//
// # Records
//
// An [Endpoint] is one documented API operation: its route template
// (colon-style parameters such as "/users/:id"), HTTP method, group, name,
// and its declared field groups (header, parameter, success, error).
//
// A [Field] is one documented parameter or response field. Nesting is
// expressed through dot-delimited paths: "address" is a top-level field,
// "address.city" is nested under it. The nesting is never stored as a
// tree; it is inferred from the paths.
//
// # Quick Start
//
//	p := apidoc.NewParser()
//	result, err := p.Parse("doc/api_data.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	project, err := p.ParseProject("doc/api_project.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d endpoints documented for %s\n", len(result.Endpoints), project.Name)
package apidoc
