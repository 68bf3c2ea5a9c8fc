package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表（店面只读，由种子/后台维护）
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                           // 主键
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`              // 分类ID
	Name        string         `gorm:"type:varchar(200);not null;index" json:"name"`   // 商品名称
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`               // 唯一标识
	Description string         `gorm:"type:text" json:"description"`                   // 描述
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`             // 商品图片
	Stock       int            `gorm:"not null;default:0" json:"stock"`                // 库存数量（仅作展示参考，不做事务预占）
	Featured    bool           `gorm:"default:false;index" json:"featured"`            // 是否推荐
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                        // 创建时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                 // 软删除时间

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
