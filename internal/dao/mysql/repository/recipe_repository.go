package repository

import (
	"github.com/seblyng/foodie/internal/model"

	"gorm.io/gorm"
)

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository 创建菜谱 Repository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// visibleScope 可见性过滤条件，下推到 SQL 执行
// viewer 是作者，或作者是 viewer 的好友且菜谱为好友可见
func visibleScope(viewerID uint, friendIDs []uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ? OR (user_id IN ? AND visibility = ?)",
			viewerID, friendIDs, model.VisibilityFriends)
	}
}

// Create 创建菜谱
func (r *recipeRepository) Create(recipe *model.Recipe) error {
	if err := r.db.Create(recipe).Error; err != nil {
		return wrapDBError(err, "创建菜谱")
	}
	return nil
}

// FindVisible 按 ID 查找 viewerID 可见的菜谱
// 未通过可见性过滤时返回 CodeNotFound，与不存在的菜谱不可区分
func (r *recipeRepository) FindVisible(id uint, viewerID uint, friendIDs []uint) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.Scopes(visibleScope(viewerID, friendIDs)).First(&recipe, id).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询菜谱 id=%d viewer=%d", id, viewerID)
	}
	return &recipe, nil
}

// ListVisible 列出 viewerID 可见的所有菜谱
func (r *recipeRepository) ListVisible(viewerID uint, friendIDs []uint) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.Scopes(visibleScope(viewerID, friendIDs)).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询菜谱列表 viewer=%d", viewerID)
	}
	return recipes, nil
}

// FindByID 按 ID 查找菜谱，不做可见性过滤
func (r *recipeRepository) FindByID(id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.First(&recipe, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询菜谱 id=%d", id)
	}
	return &recipe, nil
}

// Update 更新菜谱
func (r *recipeRepository) Update(recipe *model.Recipe) error {
	if err := r.db.Save(recipe).Error; err != nil {
		return wrapDBErrorf(err, "更新菜谱 id=%d", recipe.ID)
	}
	return nil
}

// Delete 软删除菜谱
func (r *recipeRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Recipe{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除菜谱 id=%d", id)
	}
	return nil
}

// CreateLinks 批量创建菜谱-配料关联
func (r *recipeRepository) CreateLinks(links []model.RecipeIngredient) error {
	if len(links) == 0 {
		return nil
	}
	if err := r.db.Create(&links).Error; err != nil {
		return wrapDBError(err, "创建菜谱配料关联")
	}
	return nil
}

// DeleteLinks 删除菜谱的所有配料关联（物理删除，更新时重建）
func (r *recipeRepository) DeleteLinks(recipeID uint) error {
	err := r.db.Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{}).Error
	if err != nil {
		return wrapDBErrorf(err, "删除菜谱配料关联 recipe_id=%d", recipeID)
	}
	return nil
}

// FindLinks 查找菜谱的配料详情（含配料名）
func (r *recipeRepository) FindLinks(recipeID uint) ([]RecipeIngredientRow, error) {
	var rows []RecipeIngredientRow
	err := r.db.Table("recipe_ingredient AS ri").
		Select("ri.ingredient_id, i.name, ri.unit, ri.amount").
		Joins("INNER JOIN ingredient AS i ON i.id = ri.ingredient_id").
		Where("ri.recipe_id = ?", recipeID).
		Order("i.name").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询菜谱配料 recipe_id=%d", recipeID)
	}
	return rows, nil
}
