// Package recipe 实现菜谱业务逻辑
// 可见性规则：作者可见自己的全部菜谱；已接受好友可见其好友可见的菜谱；
// 其余一律按不存在处理。过滤条件在仓储层下推到 SQL，
// 本层不对不可见的菜谱做任何区分性提示
package recipe

import (
	"github.com/seblyng/foodie/internal/dao/mysql/repository"
	"github.com/seblyng/foodie/internal/dto/request"
	"github.com/seblyng/foodie/internal/dto/respond"
	"github.com/seblyng/foodie/internal/model"
	"github.com/seblyng/foodie/internal/notify"
	"github.com/seblyng/foodie/pkg/errorx"
	"github.com/seblyng/foodie/pkg/util/snowflake"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// recipeService 菜谱业务逻辑实现
type recipeService struct {
	repos    *repository.Repositories
	notifier notify.Notifier
	storage  ImageStorage
}

// ImageStorage 本包依赖的存储能力，与 service.ImageStorage 一致
// 在此重复声明避免子包反向依赖父包
type ImageStorage interface {
	PresignedUpload(objectName string) (string, error)
	PresignedDownload(objectName string) (string, error)
	Remove(objectName string) error
}

// NewRecipeService 构造函数
func NewRecipeService(repos *repository.Repositories, notifier notify.Notifier, storage ImageStorage) *recipeService {
	return &recipeService{repos: repos, notifier: notifier, storage: storage}
}

// CreateRecipe 创建菜谱
// 配料字典、菜谱、关联在一个事务内落库；
// 好友可见的菜谱创建后向所有已接受好友推送事件
func (s *recipeService) CreateRecipe(userID uint, req request.CreateRecipeRequest) (*respond.RecipeRespond, error) {
	recipe := model.Recipe{
		UserId:       userID,
		Name:         req.Name,
		Description:  req.Description,
		Instructions: req.Instructions,
		Img:          req.Img,
		Servings:     req.Servings,
		PrepTime:     req.PrepTime,
		BakingTime:   req.BakingTime,
		Visibility:   req.Visibility,
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Recipe.Create(&recipe); err != nil {
			return err
		}
		links, err := buildLinks(tx, recipe.ID, req.Ingredients)
		if err != nil {
			return err
		}
		return tx.Recipe.CreateLinks(links)
	})
	if err != nil {
		return nil, err
	}

	if recipe.Visibility == model.VisibilityFriends {
		s.fanOut(userID, notify.EventRecipeCreate, recipe.ID)
	}
	return s.toRespond(&recipe)
}

// GetRecipe 获取单个可见菜谱
func (s *recipeService) GetRecipe(viewerID, recipeID uint) (*respond.RecipeRespond, error) {
	friendIDs, err := s.repos.Friendship.AcceptedFriendIDs(viewerID)
	if err != nil {
		return nil, err
	}
	recipe, err := s.repos.Recipe.FindVisible(recipeID, viewerID, friendIDs)
	if err != nil {
		if errorx.IsCode(err, errorx.CodeNotFound) {
			return nil, errorx.New(errorx.CodeNotFound, "菜谱不存在")
		}
		return nil, err
	}
	return s.toRespond(recipe)
}

// ListRecipes 列出所有可见菜谱（自己的全部 + 好友的好友可见）
func (s *recipeService) ListRecipes(viewerID uint) ([]respond.RecipeRespond, error) {
	friendIDs, err := s.repos.Friendship.AcceptedFriendIDs(viewerID)
	if err != nil {
		return nil, err
	}
	recipes, err := s.repos.Recipe.ListVisible(viewerID, friendIDs)
	if err != nil {
		return nil, err
	}

	result := make([]respond.RecipeRespond, 0, len(recipes))
	for i := range recipes {
		rsp, err := s.toRespond(&recipes[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *rsp)
	}
	return result, nil
}

// UpdateRecipe 更新菜谱，完整替换内容和配料列表
// 可见但非本人的菜谱返回无权限，不可见的按不存在处理
func (s *recipeService) UpdateRecipe(userID, recipeID uint, req request.CreateRecipeRequest) (*respond.RecipeRespond, error) {
	recipe, err := s.findOwned(userID, recipeID)
	if err != nil {
		return nil, err
	}

	// 换图时旧图对象作废
	oldImg := recipe.Img

	recipe.Name = req.Name
	recipe.Description = req.Description
	recipe.Instructions = req.Instructions
	recipe.Img = req.Img
	recipe.Servings = req.Servings
	recipe.PrepTime = req.PrepTime
	recipe.BakingTime = req.BakingTime
	recipe.Visibility = req.Visibility

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Recipe.Update(recipe); err != nil {
			return err
		}
		if err := tx.Recipe.DeleteLinks(recipe.ID); err != nil {
			return err
		}
		links, err := buildLinks(tx, recipe.ID, req.Ingredients)
		if err != nil {
			return err
		}
		return tx.Recipe.CreateLinks(links)
	})
	if err != nil {
		return nil, err
	}

	if oldImg != nil && (req.Img == nil || *req.Img != *oldImg) {
		s.removeImage(*oldImg)
	}
	return s.toRespond(recipe)
}

// DeleteRecipe 删除菜谱
// 关联的配料行一并删除，图片对象作废，向已接受好友推送删除事件
func (s *recipeService) DeleteRecipe(userID, recipeID uint) error {
	recipe, err := s.findOwned(userID, recipeID)
	if err != nil {
		return err
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Recipe.DeleteLinks(recipeID); err != nil {
			return err
		}
		return tx.Recipe.Delete(recipeID)
	})
	if err != nil {
		return err
	}

	if recipe.Img != nil {
		s.removeImage(*recipe.Img)
	}
	if recipe.Visibility == model.VisibilityFriends {
		s.fanOut(userID, notify.EventRecipeDelete, recipeID)
	}
	return nil
}

// GetUploadURL 生成图片上传预签名 URL
// 对象名用 UUID，与菜谱解耦，上传成功后由前端写入菜谱的 img 字段
func (s *recipeService) GetUploadURL() (*respond.UploadImageRespond, error) {
	objectName := uuid.NewString()
	uploadURL, err := s.storage.PresignedUpload(objectName)
	if err != nil {
		return nil, err
	}
	return &respond.UploadImageRespond{
		ObjectName: objectName,
		UploadUrl:  uploadURL,
	}, nil
}

// findOwned 查找本人的菜谱
// 先按可见性查（保证不可见即不存在），再校验作者
func (s *recipeService) findOwned(userID, recipeID uint) (*model.Recipe, error) {
	friendIDs, err := s.repos.Friendship.AcceptedFriendIDs(userID)
	if err != nil {
		return nil, err
	}
	recipe, err := s.repos.Recipe.FindVisible(recipeID, userID, friendIDs)
	if err != nil {
		if errorx.IsCode(err, errorx.CodeNotFound) {
			return nil, errorx.New(errorx.CodeNotFound, "菜谱不存在")
		}
		return nil, err
	}
	if recipe.UserId != userID {
		return nil, errorx.New(errorx.CodeForbidden, "只有作者可以修改菜谱")
	}
	return recipe, nil
}

// buildLinks 确保配料字典行存在并构建关联记录
func buildLinks(tx *repository.Repositories, recipeID uint, items []request.RecipeIngredientRequest) ([]model.RecipeIngredient, error) {
	links := make([]model.RecipeIngredient, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, item := range items {
		ingredient, err := tx.Ingredient.EnsureByName(item.Name)
		if err != nil {
			return nil, err
		}
		// 同名配料去重，保留先出现的一条
		if seen[ingredient.ID] {
			continue
		}
		seen[ingredient.ID] = true
		links = append(links, model.RecipeIngredient{
			RecipeId:     recipeID,
			IngredientId: ingredient.ID,
			Unit:         item.Unit,
			Amount:       item.Amount,
		})
	}
	return links, nil
}

// fanOut 向所有已接受好友推送事件，尽力而为
func (s *recipeService) fanOut(userID uint, eventType notify.EventType, recipeID uint) {
	friendIDs, err := s.repos.Friendship.AcceptedFriendIDs(userID)
	if err != nil {
		zap.L().Error("查询好友列表失败，事件未推送", zap.Uint("user_id", userID), zap.Error(err))
		return
	}
	event := notify.Event{
		Id:       snowflake.GenerateID(),
		Type:     eventType,
		ActorId:  userID,
		RecipeId: &recipeID,
	}
	for _, friendID := range friendIDs {
		s.notifier.Notify(friendID, event)
	}
}

// removeImage 删除图片对象，失败只记录
func (s *recipeService) removeImage(objectName string) {
	if err := s.storage.Remove(objectName); err != nil {
		zap.L().Error("删除图片失败", zap.String("object", objectName), zap.Error(err))
	}
}

// toRespond 模型转响应，图片对象名换成预签名下载链接
func (s *recipeService) toRespond(recipe *model.Recipe) (*respond.RecipeRespond, error) {
	links, err := s.repos.Recipe.FindLinks(recipe.ID)
	if err != nil {
		return nil, err
	}
	ingredients := make([]respond.RecipeIngredientRespond, 0, len(links))
	for i := range links {
		ingredients = append(ingredients, respond.RecipeIngredientRespond{
			IngredientId: links[i].IngredientId,
			Name:         links[i].Name,
			Unit:         links[i].Unit,
			Amount:       links[i].Amount,
		})
	}

	var imgURL *string
	if recipe.Img != nil {
		u, err := s.storage.PresignedDownload(*recipe.Img)
		if err != nil {
			// 下载链接生成失败不阻塞读取，前端按无图处理
			zap.L().Error("生成图片下载链接失败", zap.String("object", *recipe.Img), zap.Error(err))
		} else {
			imgURL = &u
		}
	}

	return &respond.RecipeRespond{
		RecipeId:     recipe.ID,
		UserId:       recipe.UserId,
		Name:         recipe.Name,
		Description:  recipe.Description,
		Instructions: recipe.Instructions,
		ImgUrl:       imgURL,
		Servings:     recipe.Servings,
		PrepTime:     recipe.PrepTime,
		BakingTime:   recipe.BakingTime,
		Visibility:   recipe.Visibility,
		Ingredients:  ingredients,
		CreatedAt:    recipe.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
