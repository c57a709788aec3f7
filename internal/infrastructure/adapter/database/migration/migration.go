package migration

import (
	"context"
	"errors"

	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.2.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	indexMgr     *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		indexMgr:     NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion; it is a no-op when already there
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := db.AutoMigrate(&model.User{}, &model.Image{}, &model.CreditTransaction{}); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.runVersionedMigrations(ctx, currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	if err := m.indexMgr.CreateIndexes(); err != nil {
		return err
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"from":    currentVersion,
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the most recently applied version, empty for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// runVersionedMigrations runs data migrations between known versions
func (m *MigrationManager) runVersionedMigrations(ctx context.Context, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		return nil
	case "1.0.0":
		if err := m.migrateFrom1_0_0To1_1_0(ctx); err != nil {
			return err
		}
		return m.migrateFrom1_1_0To1_2_0(ctx)
	case "1.1.0":
		return m.migrateFrom1_1_0To1_2_0(ctx)
	}
	return nil
}

// migrateFrom1_0_0To1_1_0 backfills the ledger with each user's opening balance.
// 1.0.0 stored balances without a credit history.
func (m *MigrationManager) migrateFrom1_0_0To1_1_0(ctx context.Context) error {
	m.logger.Info("Migrating from v1.0.0 to v1.1.0", nil)

	return m.db.WithContext(ctx).Exec(`
		INSERT INTO credit_transactions (id, user_id, delta, balance_after, reason, reference, created_at)
		SELECT gen_random_uuid()::text, u.id, u.credit_balance, u.credit_balance, 'adjustment', 'opening-balance', NOW()
		FROM users u
		WHERE NOT EXISTS (SELECT 1 FROM credit_transactions c WHERE c.user_id = u.id)
	`).Error
}

// migrateFrom1_1_0To1_2_0 makes purchase references unique so the purchase
// reference index can be built. Later duplicates get their row id appended.
func (m *MigrationManager) migrateFrom1_1_0To1_2_0(ctx context.Context) error {
	m.logger.Info("Migrating from v1.1.0 to v1.2.0", nil)

	return m.db.WithContext(ctx).Exec(`
		UPDATE credit_transactions c
		SET reference = c.reference || '#' || c.id
		WHERE c.reason = 'purchase' AND c.reference <> ''
		AND EXISTS (
			SELECT 1 FROM credit_transactions d
			WHERE d.reason = 'purchase' AND d.reference = c.reference AND (d.created_at, d.id) < (c.created_at, c.id)
		)
	`).Error
}
