package models

import "testing"

func TestUserBeforeCreateDefaults(t *testing.T) {
	u := User{Username: "ana", Name: "Ana"}
	if err := u.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if u.PublicID == "" {
		t.Error("PublicID was not assigned")
	}
	if u.Status != UserActive {
		t.Errorf("Status = %q, want %q", u.Status, UserActive)
	}

	u2 := User{PublicID: "fixed", Status: UserSuspended}
	if err := u2.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if u2.PublicID != "fixed" {
		t.Errorf("PublicID = %q, want %q", u2.PublicID, "fixed")
	}
	if u2.Status != UserSuspended {
		t.Errorf("Status = %q, want %q", u2.Status, UserSuspended)
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []UserRole{RoleAdmin, RoleOperator, RoleClient, RoleEmployee} {
		if !ValidRole(r) {
			t.Errorf("ValidRole(%q) = false, want true", r)
		}
	}
	if ValidRole("MANAGER") {
		t.Error(`ValidRole("MANAGER") = true, want false`)
	}
	if ValidRole("") {
		t.Error(`ValidRole("") = true, want false`)
	}
}

func TestValidUserStatus(t *testing.T) {
	if !ValidUserStatus(UserActive) || !ValidUserStatus(UserSuspended) {
		t.Error("known statuses rejected")
	}
	if ValidUserStatus("DISABLED") {
		t.Error(`ValidUserStatus("DISABLED") = true, want false`)
	}
}
