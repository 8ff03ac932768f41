package model

// Role 能力表：管理员判定走角色查表，而不是写死单个用户ID
type Role struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);uniqueIndex:idx_role_name;not null"`
}

func (Role) TableName() string {
	return "roles"
}
