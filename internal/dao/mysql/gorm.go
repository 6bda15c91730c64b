// Package dao 提供数据访问层的初始化和全局数据库实例管理
// 负责建立 MySQL 连接、自动迁移表结构、初始化 Repository 层
package dao

import (
	"fmt"

	"github.com/seblyng/foodie/internal/config"
	"github.com/seblyng/foodie/internal/dao/mysql/repository"
	"github.com/seblyng/foodie/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// GormDB 全局 GORM 数据库实例
var GormDB *gorm.DB

// Repos 全局 Repository 实例集合
// 聚合所有 Repository，供 Service 层通过依赖注入使用
var Repos *repository.Repositories

// Init 初始化数据库连接和 Repository 层
// 建立 MySQL 连接，自动迁移表结构，初始化全局 Repository 实例
func Init() {
	conf := config.GetConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	var err error
	GormDB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("连接 MySQL 失败", zap.Error(err))
	}

	if err = Migrate(GormDB); err != nil {
		zap.L().Fatal("迁移表结构失败", zap.Error(err))
	}

	Repos = repository.NewRepositories(GormDB)
}

// Migrate 自动迁移所有表结构
// 表不存在则创建，字段变更则更新，不会删除已有字段或数据；
// 测试中也用它在内存数据库上建表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserInfo{},         // 用户信息表
		&model.Friendship{},       // 好友关系表
		&model.Recipe{},           // 菜谱表
		&model.Ingredient{},       // 配料字典表
		&model.RecipeIngredient{}, // 菜谱配料关联表
	)
}
