// Package merger overlays generated OpenAPI documents onto hand-maintained
// template documents. Teams often keep a base document with security
// schemes, shared tags, or contact metadata that generation from
// documentation records cannot produce; the merger folds the generated
// members into that base so the output carries both.
//
// Merging is a recursive deep merge over the YAML mapping structure:
// mappings merge key by key, and on collisions the generated (source)
// value wins. Sequences and scalars are leaves and are replaced, never
// concatenated.
package merger
