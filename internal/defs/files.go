package defs

// Common file names used across the project.
const (
	// ConfigYAML is the per-project generation options file.
	ConfigYAML = ".routegen.yaml"

	// DotEnv is loaded before environment overrides are read.
	DotEnv = ".env"

	// IndexBaseName is the file name (without extension) used in index mode.
	IndexBaseName = "index"
)

// Template tokens.
const (
	// NamePlaceholder is replaced by the route display name in every stub.
	NamePlaceholder = "[name]"
)

// EnvPrefix is the prefix of every environment override (ROUTEGEN_FILE_SUFFIX, ...).
const EnvPrefix = "ROUTEGEN"

// Option keys accepted in the raw options mapping.
const (
	KeyName         = "name"
	KeyPath         = "path"
	KeyChildren     = "children"
	KeyParentFolder = "parentFolder"
	KeyFileSuffix   = "fileSuffix"
	KeyIsVue3       = "isVue3"
	KeyCSSCompiler  = "cssCompiler"
	KeyIsTypeScript = "isTypeScript"
	KeyIsIndex      = "isIndex"
	KeyContent      = "content"
	KeyConcurrency  = "concurrency"
)
