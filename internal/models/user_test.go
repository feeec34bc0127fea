// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

func TestUserIsAdmin(t *testing.T) {
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin role: IsAdmin() = false")
	}
	if (&User{Role: RoleEditor}).IsAdmin() {
		t.Error("editor role: IsAdmin() = true")
	}
	if (&User{}).IsAdmin() {
		t.Error("empty role: IsAdmin() = true")
	}
}

func TestUserNeeds2FASetup(t *testing.T) {
	if !(&User{}).Needs2FASetup() {
		t.Error("fresh user should need 2FA setup")
	}
	if (&User{TOTPEnabled: true}).Needs2FASetup() {
		t.Error("enrolled user should not need 2FA setup")
	}
}
