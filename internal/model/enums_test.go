package model

import (
	"encoding/json"
	"testing"
)

func TestCanonicalPair(t *testing.T) {
	tests := []struct {
		a, b      uint
		low, high uint
	}{
		{1, 2, 1, 2},
		{2, 1, 1, 2},
		{7, 3, 3, 7},
		{100, 100, 100, 100},
	}
	for _, tt := range tests {
		low, high := CanonicalPair(tt.a, tt.b)
		if low != tt.low || high != tt.high {
			t.Errorf("CanonicalPair(%d, %d) = (%d, %d), want (%d, %d)",
				tt.a, tt.b, low, high, tt.low, tt.high)
		}
	}
}

func TestFriendshipStatusJSON(t *testing.T) {
	// 线上名称与状态值一一对应
	data, err := json.Marshal(FriendshipAccepted)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"Accepted"` {
		t.Fatalf("marshal = %s, want %q", data, "Accepted")
	}

	var status FriendshipStatus
	if err := json.Unmarshal([]byte(`"Blocked"`), &status); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if status != FriendshipBlocked {
		t.Fatalf("unmarshal = %v, want Blocked", status)
	}

	// 未知名称和非字符串都应报错
	if err := json.Unmarshal([]byte(`"Unknown"`), &status); err == nil {
		t.Error("unmarshal unknown name should fail")
	}
	if err := json.Unmarshal([]byte(`1`), &status); err == nil {
		t.Error("unmarshal number should fail")
	}

	// 未定义的状态值拒绝序列化
	if _, err := json.Marshal(FriendshipStatus(99)); err == nil {
		t.Error("marshal undefined value should fail")
	}
}

func TestRecipeVisibilityDefault(t *testing.T) {
	// 零值即好友可见，请求缺省可见性时落库为 Friends
	var visibility RecipeVisibility
	if visibility != VisibilityFriends {
		t.Fatalf("zero value = %v, want Friends", visibility)
	}

	var fromJSON struct {
		Visibility RecipeVisibility `json:"visibility"`
	}
	if err := json.Unmarshal([]byte(`{}`), &fromJSON); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fromJSON.Visibility != VisibilityFriends {
		t.Fatalf("absent field = %v, want Friends", fromJSON.Visibility)
	}
}

func TestUnitParse(t *testing.T) {
	unit, ok := ParseUnit("Tablespoon")
	if !ok || unit != UnitTablespoon {
		t.Fatalf("ParseUnit(Tablespoon) = (%v, %v)", unit, ok)
	}
	if _, ok := ParseUnit("Handful"); ok {
		t.Error("ParseUnit(Handful) should fail")
	}
	if got := UnitPinch.String(); got != "Pinch" {
		t.Errorf("UnitPinch.String() = %q", got)
	}
}
