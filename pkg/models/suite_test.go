package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ModelsSuite struct {
	suite.Suite
	db *gorm.DB
	tx *gorm.DB
}

const userTest = "developer@example.com"

func quoteMemoryTest() Memory {
	content := "Hello"
	return Memory{
		UserID:     userTest,
		Type:       "quote",
		Content:    &content,
		MemoryDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *ModelsSuite) SetupTest() {
	s.db = dbConn
	s.tx = s.db.Begin()

	s.tx.Where("1=1").Delete(MemoryAsset{})
	s.tx.Where("1=1").Delete(Memory{})
}

func (s *ModelsSuite) TearDownTest() {
	s.tx.Rollback()
}

func TestRunSuiteModels(t *testing.T) {
	suite.Run(t, new(ModelsSuite))
}
