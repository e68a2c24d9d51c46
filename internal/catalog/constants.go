package catalog

// Schema registration name
const CatalogSchemaName = "catalog.schema.json"

// ConfigVersion is the catalog file format version this loader understands.
const ConfigVersion = "1.0"

// Error context messages for wrapped errors during catalog loading
const (
	ErrContextFailedToReadCatalog  = "failed to read catalog file"
	ErrContextFailedToParseCatalog = "failed to parse catalog"
	ErrContextSchemaValidation     = "catalog schema validation failed"
	ErrContextDefaultCatalog       = "embedded default catalog is invalid"
)

// Log messages
const (
	LogMsgCatalogLoaded   = "Loot catalog loaded"
	LogMsgVersionMismatch = "Catalog version differs from supported version"
	LogMsgEmptyTier       = "Catalog tier has no items"
)

// Log field keys for structured logging
const (
	LogFieldPath    = "path"
	LogFieldItems   = "items"
	LogFieldVersion = "version"
	LogFieldRarity  = "rarity"
)
