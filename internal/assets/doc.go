// Package assets provides the stylesheets injected into the HTML page
// written next to a prepared post.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles from go:embed (substack, plain)
//	    ├── FilesystemLoader  - styles from {basePath}/styles/{name}.css
//	    └── AssetResolver     - custom first, embedded fallback
//
// # Security
//
// Style names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
