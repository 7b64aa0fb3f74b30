// Package xmlwriter is the etree-backed implementation of the streaming
// XML-building capability the sitemap library emits through. It is the only
// package in the module that touches a concrete XML library.
package xmlwriter
