package database

import (
	"path/filepath"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/time"
)

// TestDBManager provides a migrated sqlite database in a temp directory
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh sqlite file and migrates it.
// The database is closed when the test ends.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := DefaultConfig()
	config.Path = filepath.Join(t.TempDir(), "smartlens_test.db")
	config.LogLevel = "silent"

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// CreateTestUser inserts a user row directly
func (m *TestDBManager) CreateTestUser(t *testing.T, id, email string, credits int64) {
	t.Helper()

	user := model.User{
		ID:        id,
		Email:     email,
		Credits:   credits,
		CreatedAt: time.Now().UTC(),
	}

	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// Credits reads a user's balance directly
func (m *TestDBManager) Credits(t *testing.T, id string) int64 {
	t.Helper()

	var user model.User
	if err := m.Manager.DB().Where("id = ?", id).Take(&user).Error; err != nil {
		t.Fatalf("Failed to read test user: %v", err)
	}
	return user.Credits
}

// CountRows returns the number of rows in a table
func (m *TestDBManager) CountRows(t *testing.T, value any) int64 {
	t.Helper()

	var count int64
	if err := m.Manager.DB().Model(value).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return count
}
