package store

import (
	"testing"

	"promptoteka/internal/models"
)

func TestUserCRUDAndPassword(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	const email = "__test_user_crud@promptoteka.local"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	created, err := s.Create(email, "s3cret-password", "Test User", models.RoleEditor)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.PasswordHash == "s3cret-password" {
		t.Error("password must be stored hashed")
	}
	if created.TOTPEnabled {
		t.Error("new user should not have 2FA enabled")
	}
	if !created.Needs2FASetup() {
		t.Error("new user should need 2FA setup")
	}

	// Password verification.
	if !s.CheckPassword(created, "s3cret-password") {
		t.Error("correct password should verify")
	}
	if s.CheckPassword(created, "wrong-password") {
		t.Error("wrong password should not verify")
	}

	// Lookup paths.
	byEmail, err := s.FindByEmail(email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if byEmail == nil || byEmail.ID != created.ID {
		t.Error("FindByEmail should return the created user")
	}

	missing, err := s.FindByEmail("nobody@promptoteka.local")
	if err != nil {
		t.Fatalf("FindByEmail missing: %v", err)
	}
	if missing != nil {
		t.Error("FindByEmail for unknown email should return nil, nil")
	}

	// TOTP lifecycle.
	if err := s.SetTOTPSecret(created.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("SetTOTPSecret: %v", err)
	}
	if err := s.EnableTOTP(created.ID); err != nil {
		t.Fatalf("EnableTOTP: %v", err)
	}

	enrolled, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !enrolled.TOTPEnabled {
		t.Error("TOTP should be enabled")
	}
	if enrolled.TOTPSecret == nil || *enrolled.TOTPSecret != "JBSWY3DPEHPK3PXP" {
		t.Error("TOTP secret should be stored")
	}

	if err := s.ResetTOTP(created.ID); err != nil {
		t.Fatalf("ResetTOTP: %v", err)
	}
	reset, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after reset: %v", err)
	}
	if reset.TOTPEnabled || reset.TOTPSecret != nil {
		t.Error("ResetTOTP should clear secret and disable 2FA")
	}

	// Delete.
	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if gone != nil {
		t.Error("user should be gone after delete")
	}
}
