package identity

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	id := New()

	if !strings.HasPrefix(id.UserID, "user_") {
		t.Errorf("Expected user_ prefix, got %q", id.UserID)
	}
	if len(id.UserID) != len("user_")+9 {
		t.Errorf("Expected 9-char suffix, got %q", id.UserID)
	}
	if !strings.HasPrefix(id.Username, "User_") {
		t.Errorf("Expected User_ prefix, got %q", id.Username)
	}
	if len(id.Username) != len("User_")+5 {
		t.Errorf("Expected 5-char suffix, got %q", id.Username)
	}
}

func TestNew_Unique(t *testing.T) {
	a := New()
	b := New()
	if a.UserID == b.UserID {
		t.Errorf("Expected distinct user ids, got %q twice", a.UserID)
	}
}
