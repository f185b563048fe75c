package dao

import "gorm.io/gorm"

type DaoRegistry struct {
	Memory  MemoryDao
	Metrics MetricsDao
}

func GetDaoRegistry(db *gorm.DB) *DaoRegistry {
	return &DaoRegistry{
		Memory:  memoryDaoImpl{db: db},
		Metrics: metricsDaoImpl{db: db},
	}
}
