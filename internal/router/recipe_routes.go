// Package router 提供 HTTP 路由注册
// 本文件定义菜谱相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterRecipeRoutes 注册菜谱相关路由（需要认证）
func (rt *Router) RegisterRecipeRoutes(rg *gin.RouterGroup) {
	recipeGroup := rg.Group("/recipes")
	{
		// GET /recipes - 可见菜谱列表
		recipeGroup.GET("", rt.handlers.Recipe.ListRecipes)
		// POST /recipes - 创建菜谱
		recipeGroup.POST("", rt.handlers.Recipe.CreateRecipe)
		// GET /recipes/image/upload - 获取图片上传预签名 URL
		recipeGroup.GET("/image/upload", rt.handlers.Recipe.GetUploadURL)
		// GET /recipes/:id - 菜谱详情
		recipeGroup.GET("/:id", rt.handlers.Recipe.GetRecipe)
		// PUT /recipes/:id - 更新菜谱
		recipeGroup.PUT("/:id", rt.handlers.Recipe.UpdateRecipe)
		// DELETE /recipes/:id - 删除菜谱
		recipeGroup.DELETE("/:id", rt.handlers.Recipe.DeleteRecipe)
	}
}
