package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/seblyng/foodie/internal/dto/request"
	"github.com/seblyng/foodie/internal/dto/respond"
	"github.com/seblyng/foodie/internal/gateway/websocket"
	"github.com/seblyng/foodie/internal/handler"
	"github.com/seblyng/foodie/internal/https_server"
	"github.com/seblyng/foodie/internal/service"
	"github.com/seblyng/foodie/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
)

type stubAuthService struct{}

type stubUserService struct{}

type stubFriendshipService struct{}

type stubRecipeService struct{}

func (s stubAuthService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	return &respond.RegisterRespond{UserId: 1, Name: req.Name, Email: req.Email}, nil
}
func (s stubAuthService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	return &respond.LoginRespond{UserId: 1}, nil
}
func (s stubAuthService) RefreshToken(refreshToken string) (*respond.LoginRespond, error) {
	return &respond.LoginRespond{UserId: 1}, nil
}
func (s stubAuthService) Logout(refreshToken string) error { return nil }

func (s stubUserService) GetUserInfo(userID uint) (*respond.GetUserInfoRespond, error) {
	return &respond.GetUserInfoRespond{UserId: userID}, nil
}
func (s stubUserService) ListUsers(currentUserID uint, search string) ([]respond.UserWithRelationRespond, error) {
	return []respond.UserWithRelationRespond{}, nil
}

func (s stubFriendshipService) RequestFriend(requesterID, recipientID uint) error { return nil }
func (s stubFriendshipService) AcceptFriend(userID, counterpartID uint) error     { return nil }
func (s stubFriendshipService) RejectFriend(userID, counterpartID uint) error     { return nil }
func (s stubFriendshipService) BlockFriend(userID, counterpartID uint) error      { return nil }
func (s stubFriendshipService) ListPending(userID uint) ([]respond.UserWithRelationRespond, error) {
	return []respond.UserWithRelationRespond{}, nil
}
func (s stubFriendshipService) ListFriends(userID uint) ([]respond.UserWithRelationRespond, error) {
	return []respond.UserWithRelationRespond{}, nil
}

func (s stubRecipeService) CreateRecipe(userID uint, req request.CreateRecipeRequest) (*respond.RecipeRespond, error) {
	return &respond.RecipeRespond{RecipeId: 1, UserId: userID, Name: req.Name}, nil
}
func (s stubRecipeService) GetRecipe(viewerID, recipeID uint) (*respond.RecipeRespond, error) {
	return &respond.RecipeRespond{RecipeId: recipeID}, nil
}
func (s stubRecipeService) ListRecipes(viewerID uint) ([]respond.RecipeRespond, error) {
	return []respond.RecipeRespond{}, nil
}
func (s stubRecipeService) UpdateRecipe(userID, recipeID uint, req request.CreateRecipeRequest) (*respond.RecipeRespond, error) {
	return &respond.RecipeRespond{RecipeId: recipeID}, nil
}
func (s stubRecipeService) DeleteRecipe(userID, recipeID uint) error { return nil }
func (s stubRecipeService) GetUploadURL() (*respond.UploadImageRespond, error) {
	return &respond.UploadImageRespond{ObjectName: "obj", UploadUrl: "http://upload/obj"}, nil
}

func mustJSON(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, client *http.Client, method, url string, body io.Reader, authHeader string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request %s %s: %v", method, url, err)
	}
	return resp
}

func bizCode(t *testing.T, resp *http.Response) int {
	t.Helper()
	defer resp.Body.Close()
	var body struct {
		Code int `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body.Code
}

func requireNot5xxOr404(t *testing.T, path string, resp *http.Response) {
	t.Helper()
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode >= 500 {
		t.Fatalf("%s status=%d", path, resp.StatusCode)
	}
}

func TestAllHTTPAndWebSocketEndpoints_Smoke(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt.Init("test-secret", 15, 168)
	if err := handler.InitTrans("zh"); err != nil {
		t.Fatalf("init trans: %v", err)
	}

	hub := websocket.NewHub()
	svcs := &service.Services{
		Auth:       stubAuthService{},
		User:       stubUserService{},
		Friendship: stubFriendshipService{},
		Recipe:     stubRecipeService{},
	}

	engine := https_server.Init(handler.NewHandlers(svcs, hub))
	server := httptest.NewServer(engine)
	defer server.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	const testUserID uint = 42
	accessToken, err := jwt.GenerateAccessToken(testUserID)
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	authHeader := "Bearer " + accessToken

	// ===== 公共接口（无需鉴权） =====
	resp := doReq(t, client, http.MethodPost, server.URL+"/auth/register", mustJSON(t, map[string]any{
		"name":     "tester",
		"email":    "tester@example.com",
		"password": "123456",
	}), "")
	requireNot5xxOr404(t, "/auth/register", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/auth/login", mustJSON(t, map[string]any{
		"email":    "tester@example.com",
		"password": "123456",
	}), "")
	requireNot5xxOr404(t, "/auth/login", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/auth/refresh", mustJSON(t, map[string]any{
		"refresh_token": "any",
	}), "")
	requireNot5xxOr404(t, "/auth/refresh", resp)
	_ = resp.Body.Close()

	// ===== 认证接口：无令牌被拒 =====
	resp = doReq(t, client, http.MethodGet, server.URL+"/friends", nil, "")
	if code := bizCode(t, resp); code != 1006 {
		t.Fatalf("unauthenticated /friends code=%d, want 1006", code)
	}

	// ===== 认证接口：带令牌均可达 =====
	authedGETs := []string{"/me", "/users", "/users?search=a", "/friends", "/friends/pending", "/recipes", "/recipes/1", "/recipes/image/upload"}
	for _, path := range authedGETs {
		resp = doReq(t, client, http.MethodGet, server.URL+path, nil, authHeader)
		requireNot5xxOr404(t, path, resp)
		if code := bizCode(t, resp); code != 1000 {
			t.Fatalf("GET %s code=%d, want 1000", path, code)
		}
	}

	for _, path := range []string{"/friends/new/2", "/friends/accept/2", "/friends/reject/2", "/friends/block/2"} {
		resp = doReq(t, client, http.MethodPost, server.URL+path, nil, authHeader)
		requireNot5xxOr404(t, path, resp)
		if code := bizCode(t, resp); code != 1000 {
			t.Fatalf("POST %s code=%d, want 1000", path, code)
		}
	}

	// 路径参数必须是数字
	resp = doReq(t, client, http.MethodPost, server.URL+"/friends/new/abc", nil, authHeader)
	if code := bizCode(t, resp); code != 1001 {
		t.Fatalf("POST /friends/new/abc code=%d, want 1001", code)
	}

	recipeBody := map[string]any{
		"name":     "面包",
		"servings": 2,
		"ingredients": []map[string]any{
			{"name": "面粉", "unit": "Gram", "amount": "500"},
		},
	}
	resp = doReq(t, client, http.MethodPost, server.URL+"/recipes", mustJSON(t, recipeBody), authHeader)
	requireNot5xxOr404(t, "/recipes", resp)
	if code := bizCode(t, resp); code != 1000 {
		t.Fatalf("POST /recipes code=%d, want 1000", code)
	}

	resp = doReq(t, client, http.MethodPut, server.URL+"/recipes/1", mustJSON(t, recipeBody), authHeader)
	if code := bizCode(t, resp); code != 1000 {
		t.Fatalf("PUT /recipes/1 code=%d, want 1000", code)
	}

	resp = doReq(t, client, http.MethodDelete, server.URL+"/recipes/1", nil, authHeader)
	if code := bizCode(t, resp); code != 1000 {
		t.Fatalf("DELETE /recipes/1 code=%d, want 1000", code)
	}

	// 未知枚举值被参数校验拦下
	badRecipe := map[string]any{
		"name":       "面包",
		"servings":   2,
		"visibility": "Everyone",
	}
	resp = doReq(t, client, http.MethodPost, server.URL+"/recipes", mustJSON(t, badRecipe), authHeader)
	if code := bizCode(t, resp); code != 1001 {
		t.Fatalf("POST /recipes with bad visibility code=%d, want 1001", code)
	}

	// ===== WebSocket：握手 + 服务端推送 =====
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?token=" + accessToken
	conn, _, err := gorillaws.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	defer conn.Close()

	// 等待连接登记完成
	deadline := time.Now().Add(2 * time.Second)
	for !hub.Online(testUserID) {
		if time.Now().After(deadline) {
			t.Fatal("ws client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	payload := []byte(`{"type":"FriendRequest","actorId":7}`)
	if !hub.Deliver(testUserID, payload) {
		t.Fatal("deliver to online user failed")
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ws read: %v", err)
	}
	if !bytes.Equal(message, payload) {
		t.Fatalf("ws message = %s, want %s", message, payload)
	}
}
