package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 商品分类表（店面只读，由种子/后台维护）
type Category struct {
	ID          uint           `gorm:"primarykey" json:"id"`              // 主键
	Name        string         `gorm:"type:varchar(200);not null;index" json:"name"` // 显示名称
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`  // 唯一标识
	Description string         `gorm:"type:text" json:"description"`      // 描述
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"` // 分类图片
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`           // 创建时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
