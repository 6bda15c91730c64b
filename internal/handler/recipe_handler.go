// Package handler 提供 HTTP 请求处理器
// 本文件处理菜谱相关的 API 请求
package handler

import (
	"github.com/seblyng/foodie/internal/dto/request"
	"github.com/seblyng/foodie/internal/service"

	"github.com/gin-gonic/gin"
)

// RecipeHandler 菜谱请求处理器
type RecipeHandler struct {
	recipeSvc service.RecipeService
}

// NewRecipeHandler 构造函数
func NewRecipeHandler(recipeSvc service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeSvc: recipeSvc}
}

// CreateRecipe 创建菜谱
// POST /recipes
// 请求体: request.CreateRecipeRequest
// 响应: respond.RecipeRespond
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := CurrentUserId(c)
	if !ok {
		return
	}
	var req request.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.recipeSvc.CreateRecipe(userID, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetRecipe 获取单个菜谱
// GET /recipes/:id
// 响应: respond.RecipeRespond
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := CurrentUserId(c)
	if !ok {
		return
	}
	recipeID, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}
	data, err := h.recipeSvc.GetRecipe(userID, recipeID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListRecipes 列出可见菜谱
// GET /recipes
// 响应: []respond.RecipeRespond
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := CurrentUserId(c)
	if !ok {
		return
	}
	data, err := h.recipeSvc.ListRecipes(userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateRecipe 更新菜谱
// PUT /recipes/:id
// 请求体: request.CreateRecipeRequest
// 响应: respond.RecipeRespond
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := CurrentUserId(c)
	if !ok {
		return
	}
	recipeID, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req request.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.recipeSvc.UpdateRecipe(userID, recipeID, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteRecipe 删除菜谱
// DELETE /recipes/:id
// 响应: nil
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := CurrentUserId(c)
	if !ok {
		return
	}
	recipeID, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.recipeSvc.DeleteRecipe(userID, recipeID); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetUploadURL 获取图片上传预签名 URL
// GET /recipes/image/upload
// 响应: respond.UploadImageRespond
func (h *RecipeHandler) GetUploadURL(c *gin.Context) {
	if _, ok := CurrentUserId(c); !ok {
		return
	}
	data, err := h.recipeSvc.GetUploadURL()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
