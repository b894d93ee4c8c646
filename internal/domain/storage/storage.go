package storage

import (
	"errors"

	"github.com/AlenKJ01/Mediconnect/internal/domain/models"
)

// 存储层统一错误
var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrDuplicate 唯一字段冲突
	ErrDuplicate = errors.New("唯一字段冲突")
)

// InterfaceAccountStore 账户存储接口
type InterfaceAccountStore interface {
	FindByID(id uint) (*models.Account, error)
	FindByEmail(email string) (*models.Account, error)
	FindByPhone(phone string) (*models.Account, error)
	FindAdminByEmail(email string) (*models.Account, error)
	Create(account *models.Account) error
}

// InterfaceRequestStore 服务请求存储接口
type InterfaceRequestStore interface {
	Create(request *models.ServiceRequest) error
	FindByID(id uint) (*models.ServiceRequest, error)
	ListByOwner(accountID uint) ([]models.ServiceRequest, error)
	ListAll() ([]models.ServiceRequest, error)
	UpdateStatus(id uint, status string) error
}
