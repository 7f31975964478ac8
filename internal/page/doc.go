// Package page renders the page shell: a logo, a fixed container, and one
// heading showing the configured API URL.
//
// A Shell captures the URL once at construction. Render is a pure function of
// that value and satisfies templ.Component, so the server hands it straight to
// templ.Handler.
package page
