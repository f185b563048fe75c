package dao

import (
	"github.com/glebarez/sqlite"
	"github.com/memories-timeline/memories-backend/pkg/db"
	"github.com/memories-timeline/memories-backend/pkg/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type DaoSuite struct {
	suite.Suite
	db *gorm.DB
	tx *gorm.DB
}

const userTest = "developer@example.com"
const editorTest = "editor@example.com"

var testDB *gorm.DB

// openTestDB returns a migrated in-memory database shared by every suite in the package
func openTestDB() (*gorm.DB, error) {
	if testDB != nil {
		return testDB, nil
	}
	conn, err := db.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"))
	if err != nil {
		return nil, err
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	// every in-memory connection is a separate database
	sqlDB.SetMaxOpenConns(1)
	if err = conn.AutoMigrate(&models.Memory{}, &models.MemoryAsset{}); err != nil {
		return nil, err
	}
	testDB = conn
	return testDB, nil
}

func (s *DaoSuite) TearDownTest() {
	s.tx.Rollback()
}

func (s *DaoSuite) SetupTest() {
	conn, err := openTestDB()
	if err != nil {
		s.FailNow(err.Error())
	}
	s.db = conn
	s.tx = s.db.Begin()
}
