// Package pipeline turns page content into HTML pieces:
//   - Markdown copy to HTML fragments via Goldmark
//   - install commands to highlighted markup via Chroma
//   - CSS injection into the finished document
//   - image inlining for self-contained snapshots
//
// Page layout lives in internal/page; browser rendering lives in the root
// package. The pipeline only transforms strings.
package pipeline
