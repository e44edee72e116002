package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripleswitch/complianceos/pkg/model"
)

func TestUser(t *testing.T) {
	v := New()

	valid := model.User{
		ID:     "u9",
		Name:   "Jo Brewer",
		Email:  "jo@tripleswitch.com",
		Role:   model.RoleBrewer,
		Status: model.UserStatusActive,
	}
	require.NoError(t, v.Struct(valid))

	tests := []struct {
		name   string
		mutate func(*model.User)
		field  string
	}{
		{"missing name", func(u *model.User) { u.Name = "" }, "Name"},
		{"bad email", func(u *model.User) { u.Email = "not-an-email" }, "Email"},
		{"zero role", func(u *model.User) { u.Role = 0 }, "Role"},
		{"unknown role", func(u *model.User) { u.Role = 77 }, "Role"},
		{"unknown status", func(u *model.User) { u.Status = 9 }, "Status"},
		{"bad avatar", func(u *model.User) { u.AvatarURL = "::" }, "AvatarURL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := valid
			tt.mutate(&u)
			err := v.Struct(u)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestClassificationTag(t *testing.T) {
	type upload struct {
		Classification model.Classification `validate:"omitempty,classification"`
	}
	v := New()
	assert.NoError(t, v.Struct(upload{}))
	assert.NoError(t, v.Struct(upload{Classification: model.ClassificationPublic}))
	assert.ErrorIs(t, v.Struct(upload{Classification: 12}), ErrInvalid)
}
