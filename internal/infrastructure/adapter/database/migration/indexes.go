package migration

import (
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"gorm.io/gorm"
)

// indexStatement is one idempotent DDL statement
type indexStatement struct {
	name string
	sql  string
}

// requiredIndexes back the gallery listing and the credit history queries
var requiredIndexes = []indexStatement{
	{
		name: "idx_images_author_updated",
		sql:  `CREATE INDEX IF NOT EXISTS idx_images_author_updated ON images (author_id, updated_at DESC)`,
	},
	{
		name: "idx_images_updated_at",
		sql:  `CREATE INDEX IF NOT EXISTS idx_images_updated_at ON images (updated_at DESC)`,
	},
	{
		name: "idx_credit_transactions_user_created",
		sql:  `CREATE INDEX IF NOT EXISTS idx_credit_transactions_user_created ON credit_transactions (user_id, created_at DESC)`,
	},
	{
		name: "idx_credit_transactions_purchase_reference",
		sql:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_credit_transactions_purchase_reference ON credit_transactions (reference) WHERE reason = 'purchase' AND reference <> ''`,
	},
}

// optionalIndexes are PostgreSQL specific; failures are logged and skipped
var optionalIndexes = []indexStatement{
	{
		name: "idx_images_config_gin",
		sql:  `CREATE INDEX IF NOT EXISTS idx_images_config_gin ON images USING GIN (config jsonb_path_ops)`,
	},
	{
		name: "idx_credit_transactions_created_at_brin",
		sql:  `CREATE INDEX IF NOT EXISTS idx_credit_transactions_created_at_brin ON credit_transactions USING BRIN (created_at)`,
	},
}

// AdvancedIndexManager creates indexes beyond what the model tags declare
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates the required indexes, then the optional ones
func (m *AdvancedIndexManager) CreateIndexes() error {
	for _, idx := range requiredIndexes {
		if err := m.db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	for _, idx := range optionalIndexes {
		if err := m.db.Exec(idx.sql).Error; err != nil {
			m.logger.Warn("Skipping optional index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
		}
	}

	m.logger.Info("Database indexes created", map[string]any{
		"required": len(requiredIndexes),
		"optional": len(optionalIndexes),
	})
	return nil
}
