package service

import (
	"context"
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestProfile_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeSessionRepo{}, nil)

	_, err := svc.Profile(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProfile_MergeOnNull(t *testing.T) {
	users := newFakeUserRepo()
	u, err := users.Create(context.Background(), "a@x.com", "alice", "h", strPtr("Alice A."))
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	svc := NewUserService(users, &fakeSessionRepo{}, nil)

	// Set only the avatar; full name must survive.
	got, err := svc.UpdateProfile(context.Background(), u.ID, nil, strPtr("https://img/a.png"))
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if got.FullName == nil || *got.FullName != "Alice A." {
		t.Fatalf("nil fullName overwrote the stored value: %+v", got)
	}
	if got.AvatarURL == nil || *got.AvatarURL != "https://img/a.png" {
		t.Fatalf("avatar not updated: %+v", got)
	}

	// Now only the name.
	got, err = svc.UpdateProfile(context.Background(), u.ID, strPtr("Alice B."), nil)
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if got.FullName == nil || *got.FullName != "Alice B." {
		t.Fatalf("fullName not updated: %+v", got)
	}
	if got.AvatarURL == nil || *got.AvatarURL != "https://img/a.png" {
		t.Fatalf("nil avatar overwrote the stored value: %+v", got)
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeSessionRepo{}, nil)

	_, err := svc.UpdateProfile(context.Background(), 42, strPtr("x"), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessions_NewestFirstCappedAtTen(t *testing.T) {
	users := newFakeUserRepo()
	sessions := &fakeSessionRepo{}
	authSvc, _ := newAuthService(users, sessions)
	svc := NewUserService(users, sessions, nil)

	if _, _, err := authSvc.Register(context.Background(), "a@x.com", "alice", "password1", nil); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	for i := 0; i < 13; i++ {
		if _, _, err := authSvc.Login(context.Background(), "alice", "password1", nil, nil); err != nil {
			t.Fatalf("Login %d error: %v", i, err)
		}
	}

	list, err := svc.Sessions(context.Background(), 1)
	if err != nil {
		t.Fatalf("Sessions error: %v", err)
	}
	if len(list) != 10 {
		t.Fatalf("expected 10 sessions, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Fatalf("sessions not in descending order at %d", i)
		}
		if list[i].ID >= list[i-1].ID {
			t.Fatalf("session ids not strictly descending at %d", i)
		}
	}
}
