package model

import "time"

// User 用户表，所有业务数据都通过 user_id 归属到某个用户
// 删除用户时级联删除其全部数据（外键 OnDelete:CASCADE）
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"type:varchar(255);not null;unique;index" json:"email"`
	Username       string    `gorm:"type:varchar(100);not null;unique;index" json:"username"`
	HashedPassword string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName       string    `gorm:"type:varchar(255)" json:"full_name"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
