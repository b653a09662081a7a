// Package loaders pulls documentation out of external sources: fixed
// HTML page lists, sitemaps, hosted OpenAPI specs and GitHub
// repositories. Every loader yields plain documents; chunking, keyword
// extraction and indexing happen downstream.
package loaders
