package entity

import (
	"reflect"
	"testing"
)

func TestRole_Equal(t *testing.T) {
	tests := []struct {
		name string
		a    Role
		b    Role
		want bool
	}{
		{
			name: "SameNameDifferentID",
			a:    Role{ID: 1, Name: RoleNameAdmin},
			b:    Role{ID: 99, Name: RoleNameAdmin},
			want: true,
		},
		{
			name: "DifferentName",
			a:    Role{ID: 1, Name: RoleNameAdmin},
			b:    Role{ID: 1, Name: RoleNameUser},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoleNames(t *testing.T) {
	roles := []Role{
		{ID: 1, Name: RoleNameAdmin},
		{ID: 2, Name: RoleNameUser},
		{ID: 3, Name: RoleNameAdmin},
	}

	got := RoleNames(roles)

	want := []string{"ADMIN", "USER"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RoleNames() = %v, want %v", got, want)
	}
}

func TestRoleNameFromString(t *testing.T) {
	if got := RoleNameFromString("ADMIN"); got != RoleNameAdmin {
		t.Fatalf("RoleNameFromString(ADMIN) = %v", got)
	}
	if got := RoleNameFromString("superuser"); got != RoleNameUnknown {
		t.Fatalf("RoleNameFromString(superuser) = %v", got)
	}
}
