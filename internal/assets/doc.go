// Package assets loads the woff2 font payloads embedded into every rendered
// document.
//
// # Loader Architecture
//
//	FontLoader (interface)
//	    │
//	    ├── FilesystemLoader  - reads {basePath}/{name}.woff2
//	    └── FontResolver      - tries several loaders in order
//
// FontResolver lets a custom font directory override individual faces while
// the install directory supplies the rest. Only "not found" falls through to
// the next loader; validation and I/O errors stop the search.
//
// # Directory Structure
//
//	{basePath}/
//	├── SourceSansPro-Regular.woff2
//	├── SourceSansPro-Bold.woff2
//	├── RobotoCondensed-Regular.woff2
//	└── RobotoCondensed-Bold.woff2
//
// # Security
//
// Font names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies every path stays within basePath.
package assets
