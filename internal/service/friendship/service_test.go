package friendship

import (
	"fmt"
	"testing"

	"github.com/seblyng/foodie/internal/dao/mysql/repository"
	"github.com/seblyng/foodie/internal/model"
	"github.com/seblyng/foodie/internal/notify"
	"github.com/seblyng/foodie/pkg/errorx"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingNotifier 记录投递的事件，用于断言通知行为
type recordingNotifier struct {
	delivered []struct {
		UserID uint
		Event  notify.Event
	}
}

func (n *recordingNotifier) Notify(userID uint, event notify.Event) {
	n.delivered = append(n.delivered, struct {
		UserID uint
		Event  notify.Event
	}{userID, event})
}

var dbSeq int

func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:friendship_test_%d?mode=memory&cache=shared", dbSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(&model.UserInfo{}, &model.Friendship{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewRepositories(db)
}

func createUser(t *testing.T, repos *repository.Repositories, name string) uint {
	t.Helper()
	user := model.UserInfo{
		Name:     name,
		Email:    name + "@example.com",
		Password: "x",
	}
	if err := repos.User.Create(&user); err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user.ID
}

func TestRequestFriendCreatesPendingAndNotifies(t *testing.T) {
	repos := newTestRepos(t)
	notifier := &recordingNotifier{}
	svc := NewFriendshipService(repos, notifier)

	alice := createUser(t, repos, "alice")
	bob := createUser(t, repos, "bob")

	if err := svc.RequestFriend(alice, bob); err != nil {
		t.Fatalf("RequestFriend: %v", err)
	}

	friendship, err := repos.Friendship.FindByPair(bob, alice)
	if err != nil {
		t.Fatalf("FindByPair: %v", err)
	}
	if friendship.Status != model.FriendshipPending {
		t.Errorf("status = %v, want Pending", friendship.Status)
	}
	if friendship.RequesterId != alice || friendship.RecipientId != bob {
		t.Errorf("direction = (%d -> %d), want (%d -> %d)",
			friendship.RequesterId, friendship.RecipientId, alice, bob)
	}
	low, high := model.CanonicalPair(alice, bob)
	if friendship.LowId != low || friendship.HighId != high {
		t.Errorf("canonical pair = (%d, %d), want (%d, %d)",
			friendship.LowId, friendship.HighId, low, high)
	}

	if len(notifier.delivered) != 1 {
		t.Fatalf("delivered %d events, want 1", len(notifier.delivered))
	}
	got := notifier.delivered[0]
	if got.UserID != bob || got.Event.Type != notify.EventFriendRequest || got.Event.ActorId != alice {
		t.Errorf("event = %+v to user %d", got.Event, got.UserID)
	}
}

func TestRequestFriendIsIdempotent(t *testing.T) {
	repos := newTestRepos(t)
	notifier := &recordingNotifier{}
	svc := NewFriendshipService(repos, notifier)

	alice := createUser(t, repos, "alice")
	bob := createUser(t, repos, "bob")

	if err := svc.RequestFriend(alice, bob); err != nil {
		t.Fatalf("first request: %v", err)
	}
	// 重复申请和反向申请都是无操作，不报错也不再通知
	if err := svc.RequestFriend(alice, bob); err != nil {
		t.Fatalf("duplicate request: %v", err)
	}
	if err := svc.RequestFriend(bob, alice); err != nil {
		t.Fatalf("reverse request: %v", err)
	}

	friendship, err := repos.Friendship.FindByPair(alice, bob)
	if err != nil {
		t.Fatalf("FindByPair: %v", err)
	}
	// 第一条申请的方向保持不变
	if friendship.RequesterId != alice {
		t.Errorf("requester = %d, want %d", friendship.RequesterId, alice)
	}
	if len(notifier.delivered) != 1 {
		t.Errorf("delivered %d events, want 1", len(notifier.delivered))
	}
}

func TestRequestFriendRejectsSelfAndUnknownUser(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFriendshipService(repos, notify.NopNotifier{})

	alice := createUser(t, repos, "alice")

	err := svc.RequestFriend(alice, alice)
	if !errorx.IsCode(err, errorx.CodeInvalidParam) {
		t.Errorf("self request err = %v, want CodeInvalidParam", err)
	}

	err = svc.RequestFriend(alice, 9999)
	if !errorx.IsCode(err, errorx.CodeUserNotExist) {
		t.Errorf("unknown recipient err = %v, want CodeUserNotExist", err)
	}
}

func TestOnlyRecipientCanAnswerPending(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFriendshipService(repos, notify.NopNotifier{})

	alice := createUser(t, repos, "alice")
	bob := createUser(t, repos, "bob")
	if err := svc.RequestFriend(alice, bob); err != nil {
		t.Fatalf("RequestFriend: %v", err)
	}

	// 申请人不能接受/拒绝/拉黑自己发出的申请
	if err := svc.AcceptFriend(alice, bob); !errorx.IsCode(err, errorx.CodeForbidden) {
		t.Errorf("requester accept err = %v, want CodeForbidden", err)
	}
	if err := svc.RejectFriend(alice, bob); !errorx.IsCode(err, errorx.CodeForbidden) {
		t.Errorf("requester reject err = %v, want CodeForbidden", err)
	}
	if err := svc.BlockFriend(alice, bob); !errorx.IsCode(err, errorx.CodeForbidden) {
		t.Errorf("requester block err = %v, want CodeForbidden", err)
	}

	// 接收方可以接受
	if err := svc.AcceptFriend(bob, alice); err != nil {
		t.Fatalf("recipient accept: %v", err)
	}
	friendship, _ := repos.Friendship.FindByPair(alice, bob)
	if friendship.Status != model.FriendshipAccepted {
		t.Errorf("status = %v, want Accepted", friendship.Status)
	}
	if !friendship.RespondedAt.Valid {
		t.Error("responded_at should be set after answering")
	}
}

func TestRecipientCannotBlockPending(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFriendshipService(repos, notify.NopNotifier{})

	alice := createUser(t, repos, "alice")
	bob := createUser(t, repos, "bob")
	if err := svc.RequestFriend(alice, bob); err != nil {
		t.Fatalf("RequestFriend: %v", err)
	}

	// 接收方对待处理申请也只能接受或拒绝，拉黑要先接受
	if err := svc.BlockFriend(bob, alice); !errorx.IsCode(err, errorx.CodeForbidden) {
		t.Errorf("recipient block pending err = %v, want CodeForbidden", err)
	}
	friendship, _ := repos.Friendship.FindByPair(alice, bob)
	if friendship.Status != model.FriendshipPending {
		t.Errorf("status = %v, want still Pending", friendship.Status)
	}
}

func TestAnswerSelfPair(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFriendshipService(repos, notify.NopNotifier{})

	alice := createUser(t, repos, "alice")

	if err := svc.AcceptFriend(alice, alice); !errorx.IsCode(err, errorx.CodeInvalidParam) {
		t.Errorf("self accept err = %v, want CodeInvalidParam", err)
	}
	if err := svc.RejectFriend(alice, alice); !errorx.IsCode(err, errorx.CodeInvalidParam) {
		t.Errorf("self reject err = %v, want CodeInvalidParam", err)
	}
	if err := svc.BlockFriend(alice, alice); !errorx.IsCode(err, errorx.CodeInvalidParam) {
		t.Errorf("self block err = %v, want CodeInvalidParam", err)
	}
}

func TestRejectPending(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFriendshipService(repos, notify.NopNotifier{})

	alice := createUser(t, repos, "alice")
	bob := createUser(t, repos, "bob")
	if err := svc.RequestFriend(alice, bob); err != nil {
		t.Fatalf("RequestFriend: %v", err)
	}
	if err := svc.RejectFriend(bob, alice); err != nil {
		t.Fatalf("reject: %v", err)
	}

	friendship, _ := repos.Friendship.FindByPair(alice, bob)
	if friendship.Status != model.FriendshipRejected {
		t.Errorf("status = %v, want Rejected", friendship.Status)
	}

	// 被拒绝后重新申请是无操作，状态不回退到 Pending
	if err := svc.RequestFriend(alice, bob); err != nil {
		t.Fatalf("re-request: %v", err)
	}
	friendship, _ = repos.Friendship.FindByPair(alice, bob)
	if friendship.Status != model.FriendshipRejected {
		t.Errorf("status after re-request = %v, want Rejected", friendship.Status)
	}
}

func TestEitherPartyCanBlockAccepted(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFriendshipService(repos, notify.NopNotifier{})

	alice := createUser(t, repos, "alice")
	bob := createUser(t, repos, "bob")
	if err := svc.RequestFriend(alice, bob); err != nil {
		t.Fatalf("RequestFriend: %v", err)
	}
	if err := svc.AcceptFriend(bob, alice); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// 已接受的关系不能再接受/拒绝
	if err := svc.AcceptFriend(bob, alice); !errorx.IsCode(err, errorx.CodeForbidden) {
		t.Errorf("re-accept err = %v, want CodeForbidden", err)
	}
	if err := svc.RejectFriend(alice, bob); !errorx.IsCode(err, errorx.CodeForbidden) {
		t.Errorf("reject accepted err = %v, want CodeForbidden", err)
	}

	// 申请人一方也可以拉黑
	if err := svc.BlockFriend(alice, bob); err != nil {
		t.Fatalf("requester block accepted: %v", err)
	}
	friendship, _ := repos.Friendship.FindByPair(alice, bob)
	if friendship.Status != model.FriendshipBlocked {
		t.Errorf("status = %v, want Blocked", friendship.Status)
	}

	// 拉黑后任何变更都未开放
	if err := svc.AcceptFriend(bob, alice); !errorx.IsCode(err, errorx.CodeUnimplemented) {
		t.Errorf("accept blocked err = %v, want CodeUnimplemented", err)
	}
	if err := svc.BlockFriend(bob, alice); !errorx.IsCode(err, errorx.CodeUnimplemented) {
		t.Errorf("block blocked err = %v, want CodeUnimplemented", err)
	}
}

func TestAnswerMissingFriendship(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFriendshipService(repos, notify.NopNotifier{})

	alice := createUser(t, repos, "alice")
	bob := createUser(t, repos, "bob")

	if err := svc.AcceptFriend(bob, alice); !errorx.IsCode(err, errorx.CodeNotFound) {
		t.Errorf("accept missing err = %v, want CodeNotFound", err)
	}
}

func TestListPendingScopedToRecipient(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFriendshipService(repos, notify.NopNotifier{})

	alice := createUser(t, repos, "alice")
	bob := createUser(t, repos, "bob")
	carol := createUser(t, repos, "carol")

	// alice -> bob（bob 收到），carol -> alice（alice 收到）
	if err := svc.RequestFriend(alice, bob); err != nil {
		t.Fatalf("RequestFriend: %v", err)
	}
	if err := svc.RequestFriend(carol, alice); err != nil {
		t.Fatalf("RequestFriend: %v", err)
	}

	pending, err := svc.ListPending(alice)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	// alice 发出的申请不在自己的待处理列表里
	if len(pending) != 1 {
		t.Fatalf("pending for alice = %d entries, want 1", len(pending))
	}
	if pending[0].UserId != carol {
		t.Errorf("pending entry = user %d, want %d", pending[0].UserId, carol)
	}
	if pending[0].Status == nil || *pending[0].Status != model.FriendshipPending {
		t.Errorf("pending status = %v, want Pending", pending[0].Status)
	}

	pending, err = svc.ListPending(bob)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 1 || pending[0].UserId != alice {
		t.Fatalf("pending for bob = %+v, want one entry from alice", pending)
	}
}

func TestListFriendsOnlyAccepted(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFriendshipService(repos, notify.NopNotifier{})

	alice := createUser(t, repos, "alice")
	bob := createUser(t, repos, "bob")
	carol := createUser(t, repos, "carol")
	dave := createUser(t, repos, "dave")

	// bob 接受，carol 拒绝，dave 挂起
	if err := svc.RequestFriend(alice, bob); err != nil {
		t.Fatal(err)
	}
	if err := svc.AcceptFriend(bob, alice); err != nil {
		t.Fatal(err)
	}
	if err := svc.RequestFriend(alice, carol); err != nil {
		t.Fatal(err)
	}
	if err := svc.RejectFriend(carol, alice); err != nil {
		t.Fatal(err)
	}
	if err := svc.RequestFriend(alice, dave); err != nil {
		t.Fatal(err)
	}

	friends, err := svc.ListFriends(alice)
	if err != nil {
		t.Fatalf("ListFriends: %v", err)
	}
	if len(friends) != 1 || friends[0].UserId != bob {
		t.Fatalf("friends = %+v, want only bob", friends)
	}

	// 对称性：bob 的好友列表里有 alice
	friends, err = svc.ListFriends(bob)
	if err != nil {
		t.Fatalf("ListFriends: %v", err)
	}
	if len(friends) != 1 || friends[0].UserId != alice {
		t.Fatalf("friends of bob = %+v, want only alice", friends)
	}
}
