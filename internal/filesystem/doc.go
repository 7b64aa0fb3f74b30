// Package filesystem abstracts the file metadata access the sitemap library
// needs to derive last-modification timestamps. The OS-backed provider is the
// production implementation; the in-memory provider gives tests fully
// deterministic modification times.
package filesystem
