package model

// User is a member of the team directory.
type User struct {
	ID         string     `gorm:"column:id;primaryKey" json:"id" validate:"required"`
	Name       string     `gorm:"column:name" json:"name" validate:"required,max=120"`
	Email      string     `gorm:"column:email" json:"email" validate:"required,email"`
	Role       Role       `gorm:"column:role" json:"role" validate:"role"`
	Status     UserStatus `gorm:"column:status" json:"status" validate:"user_status"`
	AvatarURL  string     `gorm:"column:avatar_url" json:"avatarUrl,omitempty" validate:"omitempty,url"`
	LastActive string     `gorm:"column:last_active" json:"lastActive"`
}

func (User) TableName() string {
	return "users"
}
