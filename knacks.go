// Package knacks provides a terminal browser for a collection of knacks:
// short HTML guides listed in a catalog, rendered into a content pane,
// navigable through a table of contents, and searchable through a
// precomputed substring index.
//
// This package contains domain types, interfaces, and the pure search logic
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, bubbletea/).
package knacks
