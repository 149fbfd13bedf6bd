package utils

import (
	"sync"

	"gorm.io/gorm"
)

var (
	db   *gorm.DB
	once sync.Once
	mu   sync.RWMutex
)

// InitDB menyimpan koneksi database global. Hanya pemanggilan pertama
// yang berlaku, sisanya no-op.
func InitDB(conn *gorm.DB) {
	once.Do(func() {
		db = conn
	})
}

// GetDB mengembalikan koneksi database yang sudah di-init.
func GetDB() *gorm.DB {
	mu.RLock()
	defer mu.RUnlock()
	return db
}
