// Package serve implements the HTTP handlers and lifecycle plumbing for
// the devserve commands: a CORS-open debug file server and a
// single-page-application file server.
package serve

import "mime"

// forcedTypes are extensions registered explicitly instead of relying on
// the platform MIME database, which is unreliable for front-end asset
// types on Windows.
var forcedTypes = map[string]string{
	".js":   "application/javascript",
	".css":  "text/css",
	".json": "application/json",
	".svg":  "image/svg+xml",
}

// RegisterMIMETypes installs the forced MIME overrides into the registry
// consulted by http.FileServer. Calling it more than once is harmless.
func RegisterMIMETypes() error {
	for ext, typ := range forcedTypes {
		if err := mime.AddExtensionType(ext, typ); err != nil {
			return err
		}
	}
	return nil
}
