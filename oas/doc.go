// Package oas defines the OpenAPI 3 document model that the generator
// emits.
//
// The model is deliberately scoped to what generated documents contain:
// info, servers, paths with operations, inline schemas, and the empty
// extension-point members (components, security, tags, externalDocs) that
// generated documents always carry. It is an output model, not a general
// OpenAPI parser; $ref resolution and meta-schema validation are out of
// scope.
//
// Two fields diverge from their usual OpenAPI typing on purpose:
//
//   - Schema.MaxLength is a string. The source records carry size
//     constraints as literal text ("4..20") and the upper bound is passed
//     through without numeric parsing.
//   - Operation.Parameters and the document's Components, Security, Tags,
//     and ExternalDocs members serialize even when empty. An empty
//     parameters list is kept in the output, and the extension points are
//     present-but-empty members of every generated document.
package oas
