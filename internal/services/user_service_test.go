package services

import (
	"testing"

	"equivest/internal/models"
	"equivest/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("New.Employee@Company.com", "Str0ng!Pass", "New", "Employee", "EMP900")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Email != "new.employee@company.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.Role != models.RoleEmployee {
			t.Errorf("expected default employee role, got %s", user.Role)
		}
		if !user.IsActive {
			t.Error("expected new user to be active")
		}
		if user.Password == "Str0ng!Pass" {
			t.Error("expected password to be hashed")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		existing := testutil.CreateTestUser(t, db)

		_, err := svc.CreateUser(existing.Email, "Str0ng!Pass", "", "", "EMP901")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("duplicate_employee_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		existing := testutil.CreateTestUser(t, db)

		_, err := svc.CreateUser("other@company.com", "Str0ng!Pass", "", "", existing.EmployeeID)
		testutil.AssertAppError(t, err, "DUPLICATE_EMPLOYEE_ID")
	})

	t.Run("weak_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("weak@company.com", "short", "", "", "EMP902")
		details := testutil.AssertAppErrorDetails(t, err, "WEAK_PASSWORD")
		if len(details) < 2 {
			t.Errorf("expected multiple rule violations for %q, got %v", "short", details)
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "Str0ng!Pass", "", "", "EMP903")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("x@company.com", "Str0ng!Pass", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("found_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUserWithRole(t, db, "case@test.com", "EMP910", models.RoleEmployee)

		found, err := svc.GetUserByEmail("CASE@test.com")
		testutil.AssertNoError(t, err)
		if found.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, found.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByEmail("nobody@test.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestGetUserByEmployeeID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		found, err := svc.GetUserByEmployeeID(user.EmployeeID)
		testutil.AssertNoError(t, err)
		if found.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, found.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByEmployeeID("EMP999")
		testutil.AssertAppError(t, err, "EMPLOYEE_NOT_FOUND")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		got, err := svc.AttemptLogin(user.Email, "Password123!")
		testutil.AssertNoError(t, err)
		if got.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, got.ID)
		}
		if got.LastLoginAt == nil {
			t.Error("expected last login timestamp to be recorded")
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AttemptLogin(user.Email, "not-the-password")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.AttemptLogin("ghost@test.com", "Password123!")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("inactive_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)
		db.Model(user).Update("is_active", false)

		_, err := svc.AttemptLogin(user.Email, "Password123!")
		testutil.AssertAppError(t, err, "ACCOUNT_DISABLED")
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		name           string
		password       string
		wantViolations int
	}{
		{"strong", "Str0ng!Pass", 0},
		{"too_short", "S0r!t", 1},
		{"no_uppercase", "weakpass1!", 1},
		{"no_lowercase", "WEAKPASS1!", 1},
		{"no_digit", "Weakpass!!", 1},
		{"no_special", "Weakpass11", 1},
		{"everything_wrong", "abc", 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			violations := ValidatePasswordStrength(tc.password)
			if len(violations) != tc.wantViolations {
				t.Errorf("expected %d violations, got %d: %v", tc.wantViolations, len(violations), violations)
			}
		})
	}
}
