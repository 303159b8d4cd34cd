package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"ats-backend/internal/domain"
	"ats-backend/internal/usecase"
	"ats-backend/pkg/apperror"
	"ats-backend/pkg/audit"
	"ats-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Mock Repositories
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) (int64, error) {
	args := m.Called(ctx, candidate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Query(ctx context.Context, predicates []domain.Predicate) ([]domain.Candidate, error) {
	args := m.Called(ctx, predicates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *MockCandidateRepo) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

const createPayload = `{
	"years_of_exp": 2,
	"current_salary": 40000.5,
	"expected_salary": 55000,
	"name": "Jane Smith",
	"age": 27,
	"gender": "female",
	"phone_number": "1234567890",
	"email": "jane@example.com"
}`

func newUsecase(repo *MockCandidateRepo) domain.CandidateUsecase {
	return usecase.NewCandidateUsecase(repo, validation.New(), audit.NewNop())
}

func appliedCandidate(id int64) *domain.Candidate {
	return &domain.Candidate{
		ID:          id,
		Name:        "Jane Smith",
		Age:         27,
		Gender:      domain.GenderFemale,
		PhoneNumber: "1234567890",
		Email:       "jane@example.com",
		Status:      domain.StatusApplied,
		Experience:  &domain.Experience{YearsOfExp: 2, CurrentSalary: 40000.5, ExpectedSalary: 55000},
	}
}

func ptr[T any](v T) *T { return &v }

func TestCandidateCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should persist an APPLIED candidate with no reason", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newUsecase(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(int64(11), nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Candidate)
			assert.Equal(t, domain.StatusApplied, c.Status)
			assert.Nil(t, c.Reason)
			assert.Equal(t, domain.GenderFemale, c.Gender)
			require.NotNil(t, c.Experience)
			assert.Equal(t, 40000.5, c.Experience.CurrentSalary)
		})

		c, err := uc.Create(ctx, []byte(createPayload))
		require.NoError(t, err)
		assert.Equal(t, int64(11), c.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Should not touch storage when a key is missing", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newUsecase(repo)

		_, err := uc.Create(ctx, []byte(`{"name": "Jane", "age": 20}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		assert.Equal(t, domain.MsgMissingKeys, err.Error())

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Detail(), "required property")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject extra keys and wrong types", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newUsecase(repo)

		_, err := uc.Create(ctx, []byte(`{"nickname": "J"}`))
		require.Error(t, err)
		assert.Equal(t, domain.MsgInvalidPayload, err.Error())

		_, err = uc.Create(ctx, []byte(`{"age": "old"}`))
		require.Error(t, err)
		assert.Equal(t, domain.MsgIncorrectDatatype, err.Error())
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an email the strict pattern refuses", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newUsecase(repo)

		payload := strings.Replace(createPayload, "jane@example.com", "jöhn@example.com", 1)
		_, err := uc.Create(ctx, []byte(payload))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrFieldFormat))
		assert.Equal(t, domain.MsgInvalidFieldFormat, err.Error())

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Detail(), "jöhn@example.com")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should audit every violation with a hashed email", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		core, logs := observer.New(zapcore.DebugLevel)
		uc := usecase.NewCandidateUsecase(repo, validation.New(), audit.NewWithZap(zap.New(core), "ats", "test"))

		_, err := uc.Create(ctx, []byte(`{"name": "", "age": -1, "email": "jane@example.com"}`))
		require.Error(t, err)

		entries := logs.FilterMessage(string(audit.EventPayloadRejected)).All()
		require.Len(t, entries, 1)
		details, _ := entries[0].ContextMap()["details"].(string)
		assert.Contains(t, details, "'years_of_exp' is a required property")
		assert.Contains(t, details, "'phone_number' is a required property")
		assert.Contains(t, details, audit.HashValue("jane@example.com"))
		assert.NotContains(t, details, "jane@example.com")
	})

	t.Run("Should surface storage failures", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newUsecase(repo)
		repo.On("Create", ctx, mock.Anything).Return(int64(0), domain.ErrDuplicateContact)

		_, err := uc.Create(ctx, []byte(createPayload))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrStorage))
		assert.True(t, errors.Is(err, domain.ErrDuplicateContact))
	})
}

func TestCandidateGetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCandidateRepo)
	uc := newUsecase(repo)

	repo.On("GetByID", ctx, int64(1)).Return(appliedCandidate(1), nil)
	repo.On("GetByID", ctx, int64(2)).Return(nil, nil)

	records, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Jane Smith", records[0].Name)
	assert.Equal(t, 55000.0, *records[0].ExpectedSalary)

	records, err = uc.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCandidateUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should transition exactly once", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newUsecase(repo)

		stored := appliedCandidate(5)
		repo.On("GetByID", ctx, int64(5)).Return(stored, nil)
		repo.On("Update", ctx, stored).Return(nil)

		updated, err := uc.UpdateStatus(ctx, &domain.UpdateStatusRequest{ID: ptr(int64(5)), Status: ptr("shortlisted")})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusShortlisted, updated.Status)
		require.NotNil(t, updated.Reason)
		assert.Equal(t, "", *updated.Reason)

		_, err = uc.UpdateStatus(ctx, &domain.UpdateStatusRequest{ID: ptr(int64(5)), Status: ptr("REJECTED"), Reason: ptr("late")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrAlreadyDecided))
		assert.Equal(t, domain.StatusShortlisted, stored.Status)
		repo.AssertNumberOfCalls(t, "Update", 1)
	})

	t.Run("Should reject unknown target statuses", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newUsecase(repo)
		repo.On("GetByID", ctx, int64(6)).Return(appliedCandidate(6), nil)

		_, err := uc.UpdateStatus(ctx, &domain.UpdateStatusRequest{ID: ptr(int64(6)), Status: ptr("APPLIED")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidStatus))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should report a missing candidate", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newUsecase(repo)
		repo.On("GetByID", ctx, int64(404)).Return(nil, nil)

		_, err := uc.UpdateStatus(ctx, &domain.UpdateStatusRequest{ID: ptr(int64(404)), Status: ptr("REJECTED")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, domain.MsgCandidateNotExist, appErr.Detail())
	})

	t.Run("Should require id and status", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newUsecase(repo)

		_, err := uc.UpdateStatus(ctx, &domain.UpdateStatusRequest{Status: ptr("REJECTED")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestCandidateSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Should ignore a lone age bound", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newUsecase(repo)
		repo.On("Query", ctx, []domain.Predicate{}).Return([]domain.Candidate{*appliedCandidate(1)}, nil)

		records, err := uc.Search(ctx, &domain.CandidateSearchRequest{AgeMin: ptr(30)})
		require.NoError(t, err)
		assert.Len(t, records, 1)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject inverted ranges", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newUsecase(repo)

		_, err := uc.Search(ctx, &domain.CandidateSearchRequest{AgeMin: ptr(40), AgeMax: ptr(30)})
		require.Error(t, err)
		assert.Equal(t, domain.MsgInvalidFilter, err.Error())
		repo.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
	})
}

func TestCandidateSearchByName(t *testing.T) {
	ctx := context.Background()

	t.Run("Should not query storage for a blank name", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newUsecase(repo)

		records, err := uc.SearchByName(ctx, "   ")
		require.NoError(t, err)
		assert.Empty(t, records)
		repo.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
	})

	t.Run("Should rank stored candidates", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newUsecase(repo)
		repo.On("Query", ctx, []domain.Predicate(nil)).Return(namedCandidates("Jane Doe", "John Smith", "Jane Smith", "Bob Stone"), nil)

		records, err := uc.SearchByName(ctx, "jane smith")
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "Jane Smith", records[0].Name)
		assert.Equal(t, "Jane Doe", records[1].Name)
		assert.Equal(t, "John Smith", records[2].Name)
	})
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	up := usecase.PingFunc(func(context.Context) error { return nil })
	down := usecase.PingFunc(func(context.Context) error { return errors.New("connection refused") })

	status, ok := usecase.NewHealthUsecase(up, nil).Check(ctx)
	assert.True(t, ok)
	assert.Equal(t, "disabled", status["redis"])

	status, ok = usecase.NewHealthUsecase(up, down).Check(ctx)
	assert.True(t, ok)
	assert.Equal(t, "unavailable", status["redis"])

	status, ok = usecase.NewHealthUsecase(down, up).Check(ctx)
	assert.False(t, ok)
	assert.Equal(t, "degraded", status["status"])
}

func namedCandidates(names ...string) []domain.Candidate {
	out := make([]domain.Candidate, len(names))
	for i, n := range names {
		out[i] = domain.Candidate{ID: int64(i + 1), Name: n, Status: domain.StatusApplied}
	}
	return out
}
