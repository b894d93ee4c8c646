package services

import (
	"errors"

	"github.com/AlenKJ01/Mediconnect/internal/domain/models"
	"github.com/AlenKJ01/Mediconnect/internal/domain/storage"
)

// InterfaceRequestService 服务请求生命周期接口
type InterfaceRequestService interface {
	Book(accountID uint, serviceType, details string) (*models.ServiceRequest, error)
	ListOwn(accountID uint) ([]models.ServiceRequest, error)
	ListAll() ([]models.ServiceRequest, error)
	UpdateStatus(requestID uint, action string) (*models.ServiceRequest, error)
}

// RequestService 提供服务请求的创建、查询和状态管理
type RequestService struct {
	Store storage.InterfaceRequestStore
}

// NewRequestService 创建一个新的服务请求服务
func NewRequestService(store storage.InterfaceRequestStore) InterfaceRequestService {
	return &RequestService{Store: store}
}

// Book 以指定账户的名义创建服务请求，初始状态为 Pending。
// 服务类型和详情接受任意文本，包括空值，内容校验不在服务端范围内。
func (s *RequestService) Book(accountID uint, serviceType, details string) (*models.ServiceRequest, error) {
	request := &models.ServiceRequest{
		AccountID:   accountID,
		ServiceType: serviceType,
		Details:     details,
		Status:      models.RequestStatusPending,
	}
	if err := s.Store.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

// ListOwn 查询指定账户的所有服务请求，最新的在前
func (s *RequestService) ListOwn(accountID uint) ([]models.ServiceRequest, error) {
	return s.Store.ListByOwner(accountID)
}

// ListAll 查询所有账户的服务请求，最新的在前
func (s *RequestService) ListAll() ([]models.ServiceRequest, error) {
	return s.Store.ListAll()
}

// UpdateStatus 由管理员推进服务请求状态。
// accept 置为 Accepted，complete 置为 Completed；Completed 是终态，
// 对已完成的请求执行 accept 不会回退状态。无法识别的操作返回 ErrValidation。
func (s *RequestService) UpdateStatus(requestID uint, action string) (*models.ServiceRequest, error) {
	request, err := s.Store.FindByID(requestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var newStatus string
	switch action {
	case models.RequestActionAccept:
		if request.Status == models.RequestStatusCompleted {
			// 终态不回退
			return request, nil
		}
		newStatus = models.RequestStatusAccepted
	case models.RequestActionComplete:
		newStatus = models.RequestStatusCompleted
	default:
		return nil, ErrValidation
	}

	if newStatus != request.Status {
		if err := s.Store.UpdateStatus(requestID, newStatus); err != nil {
			return nil, err
		}
		request.Status = newStatus
	}
	return request, nil
}
