package models

// Account represents a registered person, either a regular requester or an administrator
type Account struct {
	BaseModel
	Name     string  `gorm:"type:varchar(100)" json:"name"`
	Email    *string `gorm:"type:varchar(100);uniqueIndex" json:"email,omitempty"` // 可选，存在时全局唯一；用指针让多个NULL不冲突
	Phone    *string `gorm:"type:varchar(20);uniqueIndex" json:"phone,omitempty"`  // 可选，存在时全局唯一
	Password string  `gorm:"type:varchar(100);not null" json:"-"`                  // Password hash not exposed in JSON
	IsAdmin  bool    `gorm:"default:false" json:"is_admin"`
}
