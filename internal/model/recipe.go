package model

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecipeVisibility 菜谱可见性，决定非作者能否看到菜谱
type RecipeVisibility int8

const (
	VisibilityFriends RecipeVisibility = iota // 好友可见（默认）
	VisibilityPrivate                         // 仅作者可见
)

var recipeVisibilityNames = map[RecipeVisibility]string{
	VisibilityFriends: "Friends",
	VisibilityPrivate: "Private",
}

var recipeVisibilityValues = make(map[string]RecipeVisibility, len(recipeVisibilityNames))

func init() {
	for visibility, name := range recipeVisibilityNames {
		recipeVisibilityValues[name] = visibility
	}
}

// Valid 检查是否为已定义的可见性值
func (v RecipeVisibility) Valid() bool {
	_, ok := recipeVisibilityNames[v]
	return ok
}

// String 返回线上名称
func (v RecipeVisibility) String() string {
	if name, ok := recipeVisibilityNames[v]; ok {
		return name
	}
	return fmt.Sprintf("RecipeVisibility(%d)", int8(v))
}

// MarshalJSON 线上表示为字符串名称
func (v RecipeVisibility) MarshalJSON() ([]byte, error) {
	name, ok := recipeVisibilityNames[v]
	if !ok {
		return nil, fmt.Errorf("unknown recipe visibility: %d", int8(v))
	}
	return []byte(strconv.Quote(name)), nil
}

// UnmarshalJSON 解析线上字符串名称
func (v *RecipeVisibility) UnmarshalJSON(data []byte) error {
	name, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("recipe visibility must be a string: %w", err)
	}
	visibility, ok := recipeVisibilityValues[name]
	if !ok {
		return fmt.Errorf("unknown recipe visibility: %q", name)
	}
	*v = visibility
	return nil
}

// ParseRecipeVisibility 按线上名称解析可见性
func ParseRecipeVisibility(name string) (RecipeVisibility, bool) {
	visibility, ok := recipeVisibilityValues[name]
	return visibility, ok
}

// Unit 配料计量单位
type Unit int8

const (
	UnitMilligram Unit = iota
	UnitGram
	UnitHectogram
	UnitKilogram
	UnitMilliliter
	UnitDeciliter
	UnitLiter
	UnitTeaspoon
	UnitTablespoon
	UnitCup
	UnitClove
	UnitPinch
)

var unitNames = map[Unit]string{
	UnitMilligram:  "Milligram",
	UnitGram:       "Gram",
	UnitHectogram:  "Hectogram",
	UnitKilogram:   "Kilogram",
	UnitMilliliter: "Milliliter",
	UnitDeciliter:  "Deciliter",
	UnitLiter:      "Liter",
	UnitTeaspoon:   "Teaspoon",
	UnitTablespoon: "Tablespoon",
	UnitCup:        "Cup",
	UnitClove:      "Clove",
	UnitPinch:      "Pinch",
}

var unitValues = make(map[string]Unit, len(unitNames))

func init() {
	for unit, name := range unitNames {
		unitValues[name] = unit
	}
}

// Valid 检查是否为已定义的计量单位
func (u Unit) Valid() bool {
	_, ok := unitNames[u]
	return ok
}

// String 返回线上名称
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int8(u))
}

// MarshalJSON 线上表示为字符串名称
func (u Unit) MarshalJSON() ([]byte, error) {
	name, ok := unitNames[u]
	if !ok {
		return nil, fmt.Errorf("unknown unit: %d", int8(u))
	}
	return []byte(strconv.Quote(name)), nil
}

// UnmarshalJSON 解析线上字符串名称
func (u *Unit) UnmarshalJSON(data []byte) error {
	name, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("unit must be a string: %w", err)
	}
	unit, ok := unitValues[name]
	if !ok {
		return fmt.Errorf("unknown unit: %q", name)
	}
	*u = unit
	return nil
}

// ParseUnit 按线上名称解析计量单位
func ParseUnit(name string) (Unit, bool) {
	unit, ok := unitValues[name]
	return unit, ok
}

// Recipe 菜谱模型
type Recipe struct {
	gorm.Model

	// UserId 作者 ID
	UserId uint `gorm:"column:user_id;not null;index;comment:作者ID"`

	// Name 菜谱名称
	Name string `gorm:"column:name;type:varchar(100);not null;comment:名称"`

	// Description 简介，可为空
	Description *string `gorm:"column:description;type:varchar(500);comment:简介"`

	// Instructions 步骤列表，按顺序排列，序列化为 JSON 存储
	Instructions []string `gorm:"column:instructions;serializer:json;type:text;comment:步骤"`

	// Img 菜谱图片在对象存储中的对象名（UUID），可为空
	Img *string `gorm:"column:img;type:char(36);comment:图片对象名"`

	// Servings 份数
	Servings int `gorm:"column:servings;not null;comment:份数"`

	// PrepTime 准备时长，格式 HH:MM:SS，可为空
	PrepTime *string `gorm:"column:prep_time;type:char(8);comment:准备时长"`

	// BakingTime 烘焙/烹饪时长，格式 HH:MM:SS，可为空
	BakingTime *string `gorm:"column:baking_time;type:char(8);comment:烹饪时长"`

	// Visibility 可见性，默认好友可见
	Visibility RecipeVisibility `gorm:"column:visibility;not null;default:0;comment:可见性"`
}

// TableName 指定表名
func (Recipe) TableName() string {
	return "recipe"
}

// Ingredient 配料字典
// 配料名全局唯一，多个菜谱共享同一行配料记录
type Ingredient struct {
	gorm.Model

	Name string `gorm:"column:name;uniqueIndex;type:varchar(100);not null;comment:配料名"`
}

// TableName 指定表名
func (Ingredient) TableName() string {
	return "ingredient"
}

// RecipeIngredient 菜谱-配料关联，记录用量
// 主键为 (recipe_id, ingredient_id)，同一菜谱中一种配料最多一行
type RecipeIngredient struct {
	RecipeId     uint             `gorm:"column:recipe_id;primaryKey;autoIncrement:false;comment:菜谱ID"`
	IngredientId uint             `gorm:"column:ingredient_id;primaryKey;autoIncrement:false;comment:配料ID"`
	Unit         *Unit            `gorm:"column:unit;comment:计量单位"`
	Amount       *decimal.Decimal `gorm:"column:amount;type:decimal(10,2);comment:用量"`
}

// TableName 指定表名
func (RecipeIngredient) TableName() string {
	return "recipe_ingredient"
}
