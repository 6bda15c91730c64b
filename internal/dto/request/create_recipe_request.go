package request

import (
	"github.com/seblyng/foodie/internal/model"

	"github.com/shopspring/decimal"
)

// RecipeIngredientRequest 菜谱配料项
// 单位和用量可空（如"盐 适量"只填名称）
type RecipeIngredientRequest struct {
	Name   string           `json:"name" binding:"required,max=100"`
	Unit   *model.Unit      `json:"unit"`
	Amount *decimal.Decimal `json:"amount"`
}

// CreateRecipeRequest 创建/更新菜谱请求
// 可见性缺省为好友可见；更新时完整替换菜谱内容和配料列表
// 使用位置:
//   - internal/handler/recipe_handler.go: CreateRecipe, UpdateRecipe
//   - internal/service/recipe/service.go: CreateRecipe, UpdateRecipe
type CreateRecipeRequest struct {
	Name         string                    `json:"name" binding:"required,max=100"`
	Description  *string                   `json:"description" binding:"omitempty,max=500"`
	Instructions []string                  `json:"instructions"`
	Img          *string                   `json:"img"`
	Servings     int                       `json:"servings" binding:"required,min=1"`
	PrepTime     *string                   `json:"prep_time"`
	BakingTime   *string                   `json:"baking_time"`
	Visibility   model.RecipeVisibility    `json:"visibility"`
	Ingredients  []RecipeIngredientRequest `json:"ingredients" binding:"dive"`
}
