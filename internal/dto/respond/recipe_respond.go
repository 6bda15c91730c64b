package respond

import (
	"github.com/seblyng/foodie/internal/model"

	"github.com/shopspring/decimal"
)

// RecipeIngredientRespond 菜谱配料项响应
type RecipeIngredientRespond struct {
	IngredientId uint             `json:"ingredient_id"`
	Name         string           `json:"name"`
	Unit         *model.Unit      `json:"unit"`
	Amount       *decimal.Decimal `json:"amount"`
}

// RecipeRespond 菜谱详情响应
// img_url 为预签名下载链接，有时效性，前端不应缓存
// 使用位置:
//   - internal/service/recipe/service.go: GetRecipe, ListRecipes
type RecipeRespond struct {
	RecipeId     uint                      `json:"recipe_id"`
	UserId       uint                      `json:"user_id"`
	Name         string                    `json:"name"`
	Description  *string                   `json:"description"`
	Instructions []string                  `json:"instructions"`
	ImgUrl       *string                   `json:"img_url"`
	Servings     int                       `json:"servings"`
	PrepTime     *string                   `json:"prep_time"`
	BakingTime   *string                   `json:"baking_time"`
	Visibility   model.RecipeVisibility    `json:"visibility"`
	Ingredients  []RecipeIngredientRespond `json:"ingredients"`
	CreatedAt    string                    `json:"created_at"`
}
