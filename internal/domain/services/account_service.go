package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlenKJ01/Mediconnect/internal/domain/models"
	"github.com/AlenKJ01/Mediconnect/internal/domain/storage"
	"github.com/AlenKJ01/Mediconnect/internal/infrastructure/config"
	"github.com/AlenKJ01/Mediconnect/utils"
)

// 登录成功后的跳转目标
const (
	LandingUser  = "/dashboard"
	LandingAdmin = "/admin"
)

// InterfaceAccountService 账户服务接口
type InterfaceAccountService interface {
	Register(name, email, phone, password string) (*models.Account, error)
	Login(identifier, password string) (*models.Account, string, error)
	AdminLogin(email, password string) (*models.Account, error)
	GetAccountByID(id uint) (*models.Account, error)
	EnsureDefaultAdmin() error
}

// AccountService 提供账户注册、登录等身份相关服务
type AccountService struct {
	Store  storage.InterfaceAccountStore
	Config *config.Config
}

// NewAccountService 创建一个新的账户服务
func NewAccountService(store storage.InterfaceAccountStore, cfg *config.Config) InterfaceAccountService {
	return &AccountService{
		Store:  store,
		Config: cfg,
	}
}

// Register 注册新账户。密码为空或邮箱和手机号都为空时返回 ErrValidation，
// 邮箱或手机号已被注册时返回 ErrConflict。注册成功不会建立会话，调用方需要随后登录。
func (s *AccountService) Register(name, email, phone, password string) (*models.Account, error) {
	if password == "" || (email == "" && phone == "") {
		return nil, ErrValidation
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %v", err)
	}

	account := &models.Account{
		Name:     name,
		Password: hashedPassword,
	}
	if email != "" {
		account.Email = &email
	}
	if phone != "" {
		account.Phone = &phone
	}

	if err := s.Store.Create(account); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return account, nil
}

// Login 用户登录。标识符包含 "@" 时按邮箱查找，否则按手机号查找。
// 成功时返回账户和跳转目标（管理员首页或用户首页），失败时返回 ErrAuth。
func (s *AccountService) Login(identifier, password string) (*models.Account, string, error) {
	var account *models.Account
	var err error

	if strings.Contains(identifier, "@") {
		account, err = s.Store.FindByEmail(identifier)
	} else {
		account, err = s.Store.FindByPhone(identifier)
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrAuth
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, account.Password) {
		return nil, "", ErrAuth
	}

	if account.IsAdmin {
		return account, LandingAdmin, nil
	}
	return account, LandingUser, nil
}

// AdminLogin 管理员登录，只按邮箱查找且要求账户具有管理员标志
func (s *AccountService) AdminLogin(email, password string) (*models.Account, error) {
	account, err := s.Store.FindAdminByEmail(email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrAuth
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, account.Password) {
		return nil, ErrAuth
	}
	return account, nil
}

// GetAccountByID 根据ID获取账户
func (s *AccountService) GetAccountByID(id uint) (*models.Account, error) {
	account, err := s.Store.FindByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return account, nil
}

// EnsureDefaultAdmin 确保系统中存在预留邮箱的管理员账户。
// 该邮箱的账户不存在时用配置中的默认密码创建，已存在时不做任何修改。
func (s *AccountService) EnsureDefaultAdmin() error {
	adminEmail := s.Config.DefaultAdminEmail

	if _, err := s.Store.FindByEmail(adminEmail); err == nil {
		return nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	hashedPassword, err := utils.HashPassword(s.Config.DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("密码加密失败: %v", err)
	}

	admin := &models.Account{
		Name:     "Admin",
		Email:    &adminEmail,
		Password: hashedPassword,
		IsAdmin:  true,
	}
	return s.Store.Create(admin)
}
