package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FocusLoot_Go/internal/domain"
	"github.com/osse101/FocusLoot_Go/internal/logger"
	"github.com/osse101/FocusLoot_Go/internal/validation"
)

//go:embed catalog.schema.json
var catalogSchema []byte

//go:embed default_catalog.json
var defaultCatalog []byte

// Config represents the JSON catalog file
type Config struct {
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Items       []domain.LootItem `json:"items" validate:"required,min=1,dive"`
}

var (
	schemaOnce      sync.Once
	schemaValidator validation.SchemaValidator
	schemaErr       error

	structValidator = validator.New()
)

func catalogValidator() (validation.SchemaValidator, error) {
	schemaOnce.Do(func() {
		schemaValidator = validation.NewSchemaValidator()
		schemaErr = schemaValidator.Register(CatalogSchemaName, catalogSchema)
	})
	return schemaValidator, schemaErr
}

// Default returns the sample catalog embedded in the binary.
func Default() []domain.LootItem {
	cfg, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", ErrContextDefaultCatalog, err))
	}
	return cfg.Items
}

// Load reads, validates and parses a catalog file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadCatalog, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Info(LogMsgCatalogLoaded, LogFieldPath, path, LogFieldItems, len(cfg.Items))
	return cfg, nil
}

// Parse validates raw catalog JSON against the schema, decodes it and checks
// the items. Item order is preserved exactly as written.
func Parse(data []byte) (*Config, error) {
	sv, err := catalogValidator()
	if err != nil {
		return nil, err
	}
	if err := sv.ValidateBytes(data, CatalogSchemaName); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSchemaValidation, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseCatalog, err)
	}

	if cfg.Version != ConfigVersion {
		logger.Warn(LogMsgVersionMismatch, LogFieldVersion, cfg.Version)
	}

	if err := Validate(cfg.Items); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks an in-memory catalog: it must be non-empty, every item
// must pass its struct tags and have a valid rarity, and SKUs must be unique.
func Validate(items []domain.LootItem) error {
	if len(items) == 0 {
		return domain.ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(items))
	for i := range items {
		item := &items[i]

		if err := structValidator.Struct(item); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
				fe := fieldErrs[0]
				return fmt.Errorf("%w: item at index %d: %s failed '%s'", domain.ErrInvalidConfig, i, fe.Field(), fe.Tag())
			}
			return fmt.Errorf("%w: item at index %d: %v", domain.ErrInvalidConfig, i, err)
		}

		if !item.Rarity.Valid() {
			return fmt.Errorf("%w: item '%s'", domain.ErrInvalidRarity, item.SKU)
		}

		if seen[item.SKU] {
			return fmt.Errorf("%w: '%s'", domain.ErrDuplicateSKU, item.SKU)
		}
		seen[item.SKU] = true
	}

	return nil
}
