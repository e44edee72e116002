package team

import (
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

// SeedUsers returns the initial team directory
func SeedUsers() []model.User {
	return []model.User{
		{ID: "u1", Name: "Alex Miller", Email: "alex.miller@tripleswitch.com", Role: model.RoleComplianceOfficer, Status: model.UserStatusActive, AvatarURL: "https://picsum.photos/seed/alex/100/100", LastActive: "Now"},
		{ID: "u2", Name: "Sarah Jenkins", Email: "sarah.j@tripleswitch.com", Role: model.RoleOwner, Status: model.UserStatusActive, AvatarURL: "https://picsum.photos/seed/sarah/100/100", LastActive: "2 hours ago"},
		{ID: "u3", Name: "Dave Grohl", Email: "dave@tripleswitch.com", Role: model.RoleBreweryManager, Status: model.UserStatusActive, AvatarURL: "https://picsum.photos/seed/dave/100/100", LastActive: "5 mins ago"},
		{ID: "u4", Name: "Mike Ross", Email: "mike.r@tripleswitch.com", Role: model.RoleBrewer, Status: model.UserStatusActive, AvatarURL: "https://picsum.photos/seed/mike/100/100", LastActive: "1 day ago"},
		{ID: "u5", Name: "New Hire", Email: "temp.hire@tripleswitch.com", Role: model.RoleBrewer, Status: model.UserStatusInvited, AvatarURL: "https://via.placeholder.com/100", LastActive: "Never"},
	}
}

// Seed loads SeedUsers into an empty store
func Seed(s store.UserStore) error {
	for _, u := range SeedUsers() {
		if err := s.CreateUser(u); err != nil {
			return err
		}
	}
	return nil
}
