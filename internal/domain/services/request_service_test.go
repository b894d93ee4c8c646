package services

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/AlenKJ01/Mediconnect/internal/domain/models"
	"github.com/AlenKJ01/Mediconnect/internal/domain/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRequestStore 服务请求存储的内存实现，仅用于测试
type memRequestStore struct {
	mu       sync.Mutex
	seq      uint
	requests map[uint]*models.ServiceRequest
}

func newMemRequestStore() *memRequestStore {
	return &memRequestStore{requests: make(map[uint]*models.ServiceRequest)}
}

func (s *memRequestStore) Create(request *models.ServiceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	request.ID = s.seq
	request.CreatedAt = time.Now()
	copied := *request
	s.requests[request.ID] = &copied
	return nil
}

func (s *memRequestStore) FindByID(id uint) (*models.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if request, ok := s.requests[id]; ok {
		copied := *request
		return &copied, nil
	}
	return nil, storage.ErrNotFound
}

// sortDesc 按创建时间倒序，时间相同时按ID倒序保证确定性
func sortDesc(requests []models.ServiceRequest) {
	sort.Slice(requests, func(i, j int) bool {
		if requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].ID > requests[j].ID
		}
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}

func (s *memRequestStore) ListByOwner(accountID uint) ([]models.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []models.ServiceRequest{}
	for _, request := range s.requests {
		if request.AccountID == accountID {
			result = append(result, *request)
		}
	}
	sortDesc(result)
	return result, nil
}

func (s *memRequestStore) ListAll() ([]models.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []models.ServiceRequest{}
	for _, request := range s.requests {
		result = append(result, *request)
	}
	sortDesc(result)
	return result, nil
}

func (s *memRequestStore) UpdateStatus(id uint, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	request, ok := s.requests[id]
	if !ok {
		return storage.ErrNotFound
	}
	request.Status = status
	return nil
}

func TestBookCreatesPendingRequest(t *testing.T) {
	svc := NewRequestService(newMemRequestStore())

	request, err := svc.Book(1, "上门护理", "术后护理")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, uint(1), request.AccountID)
	assert.False(t, request.CreatedAt.IsZero())
}

func TestBookAcceptsEmptyContent(t *testing.T) {
	svc := NewRequestService(newMemRequestStore())

	// 内容校验不在服务端范围内，空值也接受
	request, err := svc.Book(1, "", "")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)
}

func TestListOwnFiltersAndOrders(t *testing.T) {
	svc := NewRequestService(newMemRequestStore())

	first, err := svc.Book(1, "护理", "第一单")
	require.NoError(t, err)
	_, err = svc.Book(2, "陪诊", "其他人的")
	require.NoError(t, err)
	second, err := svc.Book(1, "体检", "第二单")
	require.NoError(t, err)

	requests, err := svc.ListOwn(1)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	// 只包含账户1的请求，最新的在前
	assert.Equal(t, second.ID, requests[0].ID)
	assert.Equal(t, first.ID, requests[1].ID)
	for _, request := range requests {
		assert.Equal(t, uint(1), request.AccountID)
	}
}

func TestListAllOrders(t *testing.T) {
	svc := NewRequestService(newMemRequestStore())

	_, err := svc.Book(1, "护理", "")
	require.NoError(t, err)
	_, err = svc.Book(2, "陪诊", "")
	require.NoError(t, err)
	last, err := svc.Book(3, "体检", "")
	require.NoError(t, err)

	requests, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.Equal(t, last.ID, requests[0].ID)
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc := NewRequestService(newMemRequestStore())

	booked, err := svc.Book(1, "护理", "")
	require.NoError(t, err)

	// Pending -> Accepted
	request, err := svc.UpdateStatus(booked.ID, models.RequestActionAccept)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, request.Status)

	// accept 幂等
	request, err = svc.UpdateStatus(booked.ID, models.RequestActionAccept)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, request.Status)

	// Accepted -> Completed
	request, err = svc.UpdateStatus(booked.ID, models.RequestActionComplete)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, request.Status)

	// complete 幂等
	request, err = svc.UpdateStatus(booked.ID, models.RequestActionComplete)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, request.Status)

	// 终态不回退：对已完成的请求执行 accept 保持 Completed
	request, err = svc.UpdateStatus(booked.ID, models.RequestActionAccept)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, request.Status)
}

func TestUpdateStatusCompleteFromPending(t *testing.T) {
	svc := NewRequestService(newMemRequestStore())

	booked, err := svc.Book(1, "护理", "")
	require.NoError(t, err)

	// 状态推进不强制顺序，Pending 可以直接完成
	request, err := svc.UpdateStatus(booked.ID, models.RequestActionComplete)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, request.Status)
}

func TestUpdateStatusUnknownAction(t *testing.T) {
	svc := NewRequestService(newMemRequestStore())

	booked, err := svc.Book(1, "护理", "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(booked.ID, "reject")
	assert.ErrorIs(t, err, ErrValidation)

	// 状态保持不变
	requests, err := svc.ListOwn(1)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, requests[0].Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := NewRequestService(newMemRequestStore())

	_, err := svc.UpdateStatus(42, models.RequestActionAccept)
	assert.ErrorIs(t, err, ErrNotFound)
}
