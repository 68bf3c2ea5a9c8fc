package repository

import (
	"errors"
	"time"

	"github.com/shophub-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListBySession(sessionID string) ([]models.CartItem, error)
	GetByID(sessionID string, itemID uint) (*models.CartItem, error)
	GetBySessionAndProduct(sessionID string, productID uint) (*models.CartItem, error)
	AddQuantity(item *models.CartItem) error
	UpdateQuantity(sessionID string, itemID uint, quantity int, updatedAt time.Time) (int64, error)
	DeleteByID(sessionID string, itemID uint) (int64, error)
	DeleteBySessionAndProduct(sessionID string, productID uint) error
	ClearBySession(sessionID string) error
	CountBySessionAndProduct(sessionID string, productID uint) (int64, error)
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// ListBySession 获取会话购物车项（加入顺序稳定）
func (r *GormCartRepository) ListBySession(sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 获取会话内指定购物车项
func (r *GormCartRepository) GetByID(sessionID string, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Preload("Product").
		Where("session_id = ? AND id = ?", sessionID, itemID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetBySessionAndProduct 按 (session, product) 获取购物车项
func (r *GormCartRepository) GetBySessionAndProduct(sessionID string, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Preload("Product").
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// AddQuantity 原子加购：(session_id, product_id) 冲突时在数据库侧累加数量。
// 消除了“先查后写”在并发加购下产生重复行的竞态。
func (r *GormCartRepository) AddQuantity(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"updated_at": item.UpdatedAt,
		}),
	}).Create(item).Error
}

// UpdateQuantity 更新会话内购物车项数量，返回受影响行数
func (r *GormCartRepository) UpdateQuantity(sessionID string, itemID uint, quantity int, updatedAt time.Time) (int64, error) {
	result := r.db.Model(&models.CartItem{}).
		Where("session_id = ? AND id = ?", sessionID, itemID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": updatedAt,
		})
	return result.RowsAffected, result.Error
}

// DeleteByID 删除会话内购物车项，返回受影响行数
func (r *GormCartRepository) DeleteByID(sessionID string, itemID uint) (int64, error) {
	result := r.db.Where("session_id = ? AND id = ?", sessionID, itemID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// DeleteBySessionAndProduct 删除会话内指定商品的购物车项
func (r *GormCartRepository) DeleteBySessionAndProduct(sessionID string, productID uint) error {
	return r.db.Where("session_id = ? AND product_id = ?", sessionID, productID).Delete(&models.CartItem{}).Error
}

// ClearBySession 清空会话购物车
func (r *GormCartRepository) ClearBySession(sessionID string) error {
	return r.db.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}

// CountBySessionAndProduct 统计 (session, product) 行数
func (r *GormCartRepository) CountBySessionAndProduct(sessionID string, productID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CartItem{}).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
