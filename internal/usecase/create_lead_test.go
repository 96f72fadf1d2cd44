package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/acsolutions-lk/energy-leads-api/internal/entity"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByLeadID(ctx context.Context, leadID string) (*entity.Lead, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]*entity.Lead, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entity.Lead), args.Int(1), args.Error(2)
}

func (m *MockLeadRepository) UpdateStatusNotes(ctx context.Context, leadID string, status, notes *string) (*entity.Lead, error) {
	args := m.Called(ctx, leadID, status, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateEmailSent(ctx context.Context, leadID string, sent bool) error {
	args := m.Called(ctx, leadID, sent)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

func (m *MockLeadRepository) Stats(ctx context.Context) (*entity.LeadStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadStats), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendSavingsReport(lead *entity.Lead) error {
	args := m.Called(lead)
	return args.Error(0)
}

func newCreateLeadUC(repo *MockLeadRepository, email *MockEmailService, timeout time.Duration) *CreateLeadUseCase {
	return NewCreateLeadUseCase(repo, email, timeout, zap.NewNop())
}

func TestCreateLeadSuccess(t *testing.T) {
	repo := new(MockLeadRepository)
	email := new(MockEmailService)

	reconciled := make(chan bool, 1)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("UpdateEmailSent", mock.Anything, mock.Anything, true).
		Run(func(args mock.Arguments) { reconciled <- args.Bool(2) }).
		Return(nil)
	email.On("SendSavingsReport", mock.Anything).Return(nil)

	uc := newCreateLeadUC(repo, email, time.Second)
	output, err := uc.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.Regexp(t, leadIDPattern, output.LeadID)
	assert.False(t, output.EmailSent)
	// 20 (office 8000) + 20 (12 units) + 20 (bill 150k) + 20 (corporate) = 80
	assert.Equal(t, 80, output.LeadScore)
	assert.Equal(t, entity.PriorityHigh, output.Priority)

	select {
	case sent := <-reconciled:
		assert.True(t, sent)
	case <-time.After(2 * time.Second):
		t.Fatal("email outcome was never reconciled")
	}

	repo.AssertExpectations(t)
}

func TestCreateLeadNormalizesEmail(t *testing.T) {
	repo := new(MockLeadRepository)
	email := new(MockEmailService)

	var persisted *entity.Lead
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { persisted = args.Get(1).(*entity.Lead) }).
		Return(nil)
	repo.On("UpdateEmailSent", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	email.On("SendSavingsReport", mock.Anything).Return(nil).Maybe()

	input := validInput()
	input.Contact.Email = "  Facilities@AcmeCorp.COM "

	uc := newCreateLeadUC(repo, email, time.Second)
	_, err := uc.Execute(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "facilities@acmecorp.com", persisted.Contact.Email)
	assert.Equal(t, entity.DefaultSource, persisted.Source)
	assert.Equal(t, entity.StatusNew, persisted.Status)
	assert.False(t, persisted.EmailSent)
}

// The 201 must not wait on the mail provider: a slow transport cannot slow
// the create path down.
func TestCreateLeadRespondsBeforeDispatch(t *testing.T) {
	repo := new(MockLeadRepository)
	email := new(MockEmailService)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("UpdateEmailSent", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	email.On("SendSavingsReport", mock.Anything).
		Run(func(mock.Arguments) { time.Sleep(500 * time.Millisecond) }).
		Return(nil)

	uc := newCreateLeadUC(repo, email, 2*time.Second)

	start := time.Now()
	output, err := uc.Execute(context.Background(), validInput())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.False(t, output.EmailSent)
	assert.Less(t, elapsed, 300*time.Millisecond, "create path waited on the mail transport")
}

func TestCreateLeadDispatchFailureRecordedFalse(t *testing.T) {
	repo := new(MockLeadRepository)
	email := new(MockEmailService)

	reconciled := make(chan bool, 1)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("UpdateEmailSent", mock.Anything, mock.Anything, false).
		Run(func(args mock.Arguments) { reconciled <- args.Bool(2) }).
		Return(nil)
	email.On("SendSavingsReport", mock.Anything).Return(errors.New("smtp: connection refused"))

	uc := newCreateLeadUC(repo, email, time.Second)
	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	select {
	case sent := <-reconciled:
		assert.False(t, sent)
	case <-time.After(2 * time.Second):
		t.Fatal("email outcome was never reconciled")
	}
}

// A transport that never answers must not hang the background task: the
// timer wins the race and false is recorded.
func TestCreateLeadDispatchTimeout(t *testing.T) {
	repo := new(MockLeadRepository)
	email := new(MockEmailService)

	reconciled := make(chan bool, 1)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("UpdateEmailSent", mock.Anything, mock.Anything, false).
		Run(func(args mock.Arguments) { reconciled <- args.Bool(2) }).
		Return(nil)
	email.On("SendSavingsReport", mock.Anything).
		Run(func(mock.Arguments) { time.Sleep(5 * time.Second) }).
		Return(nil)

	uc := newCreateLeadUC(repo, email, 100*time.Millisecond)
	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	select {
	case sent := <-reconciled:
		assert.False(t, sent)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout did not resolve the dispatch outcome")
	}
}

func TestCreateLeadValidationFailure(t *testing.T) {
	repo := new(MockLeadRepository)
	email := new(MockEmailService)

	input := validInput()
	input.Company.Name = ""

	uc := newCreateLeadUC(repo, email, time.Second)
	output, err := uc.Execute(context.Background(), input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, IsDomainError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	email.AssertNotCalled(t, "SendSavingsReport", mock.Anything)
}

func TestCreateLeadPersistenceFailure(t *testing.T) {
	repo := new(MockLeadRepository)
	email := new(MockEmailService)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("store unavailable"))

	uc := newCreateLeadUC(repo, email, time.Second)
	output, err := uc.Execute(context.Background(), validInput())

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	email.AssertNotCalled(t, "SendSavingsReport", mock.Anything)
}

// A failed reconciliation is logged and swallowed; nothing blows up.
func TestCreateLeadReconciliationFailureIsSilent(t *testing.T) {
	repo := new(MockLeadRepository)
	email := new(MockEmailService)

	reconciled := make(chan struct{}, 1)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("UpdateEmailSent", mock.Anything, mock.Anything, true).
		Run(func(mock.Arguments) { reconciled <- struct{}{} }).
		Return(errors.New("store unavailable"))
	email.On("SendSavingsReport", mock.Anything).Return(nil)

	uc := newCreateLeadUC(repo, email, time.Second)
	output, err := uc.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotNil(t, output)

	select {
	case <-reconciled:
	case <-time.After(2 * time.Second):
		t.Fatal("reconciliation was never attempted")
	}
}
