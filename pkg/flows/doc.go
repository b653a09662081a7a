// Package flows orchestrates the knowledge-refresh pipeline: it runs
// the document loaders concurrently, splits their output into keyword-
// annotated excerpts and swaps them into the vector store collection.
package flows
