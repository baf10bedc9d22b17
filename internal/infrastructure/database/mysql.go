package database

import (
	"log"
	"time"

	"github.com/leon37/FinLedger/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewMySQLConnection(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Fatal: 无法连接数据库: %v", err)
	}

	// 自动建表 (Auto Migrate)，中间表 expense_tags / income_tags 由 gorm 生成
	if err := AutoMigrate(db); err != nil {
		log.Fatalf("Fatal: 数据库迁移失败: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}

// AutoMigrate 单独暴露出来，测试里对 SQLite 复用同一份表结构
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Tag{},
		&model.PaymentMethod{},
		&model.Expense{},
		&model.Income{},
		&model.Investment{},
		&model.FinancialProduct{},
		&model.Debt{},
		&model.Budget{},
		&model.BudgetItem{},
	)
}
