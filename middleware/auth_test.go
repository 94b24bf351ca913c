package middleware

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"

	"github.com/jcastellanos/salon-reservas/models"
)

func TestExtractUserID(t *testing.T) {
	cases := []struct {
		name    string
		claims  jwt.MapClaims
		want    uint
		wantErr bool
	}{
		{"float64 id", jwt.MapClaims{"id": float64(42)}, 42, false},
		{"string id", jwt.MapClaims{"id": "7"}, 7, false},
		{"int id", jwt.MapClaims{"id": 3}, 3, false},
		{"missing id", jwt.MapClaims{}, 0, true},
		{"unparsable string", jwt.MapClaims{"id": "abc"}, 0, true},
		{"unsupported type", jwt.MapClaims{"id": []string{"1"}}, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractUserID(tc.claims)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ExtractUserID = %d, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractUserID returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ExtractUserID = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestExtractRole(t *testing.T) {
	cases := []struct {
		name    string
		claims  jwt.MapClaims
		want    models.UserRole
		wantErr bool
	}{
		{"plain string", jwt.MapClaims{"role": "ADMIN"}, models.RoleAdmin, false},
		{"role object", jwt.MapClaims{"role": map[string]interface{}{"name": "EMPLOYEE"}}, models.RoleEmployee, false},
		{"object without name", jwt.MapClaims{"role": map[string]interface{}{"id": 1}}, "", true},
		{"missing role", jwt.MapClaims{}, "", true},
		{"unsupported type", jwt.MapClaims{"role": 5}, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractRole(tc.claims)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ExtractRole = %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractRole returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ExtractRole = %q, want %q", got, tc.want)
			}
		})
	}
}
