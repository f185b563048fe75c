package dao

import (
	"testing"
)

type MockDaoRegistry struct {
	Memory  *MockMemoryDao
	Metrics *MockMetricsDao
}

func (m *MockDaoRegistry) ToDaoRegistry() *DaoRegistry {
	r := DaoRegistry{
		Memory:  m.Memory,
		Metrics: m.Metrics,
	}
	return &r
}

func GetMockDaoRegistry(t *testing.T) *MockDaoRegistry {
	reg := MockDaoRegistry{
		Memory:  NewMockMemoryDao(t),
		Metrics: NewMockMetricsDao(t),
	}
	return &reg
}
