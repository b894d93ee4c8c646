package models

// 服务请求状态
const (
	// RequestStatusPending 待处理（初始状态）
	RequestStatusPending = "Pending"
	// RequestStatusAccepted 已受理
	RequestStatusAccepted = "Accepted"
	// RequestStatusCompleted 已完成（终态）
	RequestStatusCompleted = "Completed"
)

// 管理员状态操作
const (
	// RequestActionAccept 受理请求
	RequestActionAccept = "accept"
	// RequestActionComplete 完成请求
	RequestActionComplete = "complete"
)

// ServiceRequest represents a single booking made by an Account for a medical service
type ServiceRequest struct {
	BaseModel
	AccountID   uint    `gorm:"not null;index" json:"account_id"`
	Account     Account `gorm:"foreignKey:AccountID" json:"-"`
	ServiceType string  `gorm:"type:varchar(100)" json:"service_type"`
	Details     string  `gorm:"type:text" json:"details"`
	Status      string  `gorm:"type:varchar(20);default:'Pending'" json:"status"`
}
