// Package generator transforms documented endpoint records into an
// OpenAPI 3 document.
//
// The transform is a pure, synchronous function over an in-memory endpoint
// list: no I/O, no shared state, and deterministic output; the same
// records and project metadata always produce a byte-identical document.
//
// # Quick Start
//
// Generate from the artifact files:
//
//	result, err := generator.Generate("doc/api_data.json", "doc/api_project.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Success {
//		// inspect result.Issues
//	}
//
// Or use a reusable Generator instance with already-decoded records:
//
//	g := generator.New()
//	g.StrictMode = true
//	result, err := g.Generate(endpoints, project)
//
// # Transformation
//
// For each endpoint, in input order, the generator:
//
//  1. Rejects structurally invalid records (missing url, httpMethod,
//     group, or name) with an error issue.
//  2. Normalizes the route template: colon-style parameters become
//     brace-style ("/users/:id" → "/users/{id}").
//  3. Classifies fields: the "URI Parameter" sub-group becomes path
//     parameters; header-labeled fields become header parameters; the
//     rest become query parameters for GET/DELETE or accumulate into a
//     single request-body object schema otherwise. An operation without
//     body fields carries no requestBody member at all, while an empty
//     parameters list is kept.
//  4. Groups responses: each "Success ..."/"Error ..." field group whose
//     label-derived status code has at least one direct field becomes a
//     response with an object schema. Groups holding only nested fields
//     produce no entry.
//
// Nested fields (dot-delimited paths such as "address.city") are never
// classified on their own; they are reached through the recursive schema
// of their object-typed ancestor.
//
// # Issues
//
// Soft failures are collected as issues on the result rather than
// aborting generation: invalid records are errors, best-effort output
// (unknown declared types, malformed status labels) is a warning, and
// processing notes are info. StrictMode turns any error or warning into
// a failed run.
package generator
