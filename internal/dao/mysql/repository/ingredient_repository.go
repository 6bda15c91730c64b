package repository

import (
	"github.com/seblyng/foodie/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository 创建配料 Repository
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

// EnsureByName 按名称获取配料，不存在则创建
// 先幂等插入（名称唯一索引冲突时不做修改），再按名称回查，
// 并发创建同名配料时双方最终拿到同一行
func (r *ingredientRepository) EnsureByName(name string) (*model.Ingredient, error) {
	ingredient := model.Ingredient{Name: name}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&ingredient).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "创建配料 name=%s", name)
	}

	// 冲突时 Create 不回填 ID，统一回查保证拿到持久化的行
	var stored model.Ingredient
	if err := r.db.Where("name = ?", name).First(&stored).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询配料 name=%s", name)
	}
	return &stored, nil
}
