package models

import (
	"time"
)

// CartItem 购物车项，按 (session_id, product_id) 唯一。
// 购物车行使用物理删除：软删除会让唯一索引挡住同商品的再次加购。
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                   // 主键
	SessionID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_session_product" json:"session_id"` // 会话ID（分区键）
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_session_product" json:"product_id"`        // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                               // 数量（存在即 >= 1）
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                                // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                                // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
