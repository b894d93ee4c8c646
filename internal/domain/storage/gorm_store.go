package storage

import (
	"errors"

	"github.com/AlenKJ01/Mediconnect/internal/domain/models"

	"gorm.io/gorm"
)

// AccountStore 基于gorm的账户存储实现
type AccountStore struct {
	DB *gorm.DB
}

// NewAccountStore 创建一个新的账户存储
func NewAccountStore(db *gorm.DB) InterfaceAccountStore {
	return &AccountStore{DB: db}
}

// FindByID 根据ID查找账户
func (s *AccountStore) FindByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := s.DB.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindByEmail 根据邮箱查找账户
func (s *AccountStore) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := s.DB.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindByPhone 根据手机号查找账户
func (s *AccountStore) FindByPhone(phone string) (*models.Account, error) {
	var account models.Account
	if err := s.DB.Where("phone = ?", phone).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindAdminByEmail 根据邮箱查找管理员账户
func (s *AccountStore) FindAdminByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := s.DB.Where("email = ? AND is_admin = ?", email, true).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// Create 创建新账户。唯一性检查和插入在同一个事务中执行，
// 避免两个并发注册使用相同邮箱/手机号时产生竞争。
func (s *AccountStore) Create(account *models.Account) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if account.Email != nil && *account.Email != "" {
			if err := tx.Model(&models.Account{}).Where("email = ?", *account.Email).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrDuplicate
			}
		}
		if account.Phone != nil && *account.Phone != "" {
			if err := tx.Model(&models.Account{}).Where("phone = ?", *account.Phone).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrDuplicate
			}
		}
		return tx.Create(account).Error
	})
}

// RequestStore 基于gorm的服务请求存储实现
type RequestStore struct {
	DB *gorm.DB
}

// NewRequestStore 创建一个新的服务请求存储
func NewRequestStore(db *gorm.DB) InterfaceRequestStore {
	return &RequestStore{DB: db}
}

// Create 创建新的服务请求
func (s *RequestStore) Create(request *models.ServiceRequest) error {
	return s.DB.Create(request).Error
}

// FindByID 根据ID查找服务请求
func (s *RequestStore) FindByID(id uint) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	if err := s.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// ListByOwner 查询指定账户的所有服务请求，按创建时间倒序
func (s *RequestStore) ListByOwner(accountID uint) ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	if err := s.DB.Where("account_id = ?", accountID).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListAll 查询所有服务请求，按创建时间倒序
func (s *RequestStore) ListAll() ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	if err := s.DB.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus 更新服务请求状态
func (s *RequestStore) UpdateStatus(id uint, status string) error {
	result := s.DB.Model(&models.ServiceRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// gorm的Update对不存在的记录不报错，这里显式检查
		var count int64
		if err := s.DB.Model(&models.ServiceRequest{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	}
	return nil
}
