package usecase

import (
	"context"
	"errors"
	"strings"

	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"
	"ats-backend/pkg/audit"
	"ats-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
	audit    *audit.Logger
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate, auditLogger *audit.Logger) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
		audit:    auditLogger,
	}
}

func (u *candidateUsecase) Create(ctx context.Context, payload []byte) (*domain.Candidate, error) {
	var req domain.CreateCandidateRequest
	if err := validation.DecodeStrict(payload, &req); err != nil {
		appErr := decodeFailure(err)
		u.audit.PayloadRejected(ctx, appErr.Detail(), "")
		return nil, appErr
	}

	if perr := validation.ValidatePayload(u.validate, &req); perr != nil {
		msg := domain.MsgInvalidPayload
		if perr.Missing() {
			msg = domain.MsgMissingKeys
		}
		u.audit.PayloadRejected(ctx, strings.Join(perr.Violations, "; "), deref(req.Email))
		return nil, apperror.Invalid(domain.ErrValidation, msg, perr)
	}

	candidate, err := newCandidate(&req)
	if err != nil {
		u.audit.PayloadRejected(ctx, err.Error(), deref(req.Email))
		return nil, apperror.Invalid(domain.ErrFieldFormat, domain.MsgInvalidFieldFormat, err)
	}

	id, err := u.repo.Create(ctx, candidate)
	if err != nil {
		return nil, apperror.Invalid(domain.ErrStorage, domain.MsgStorageFailure, err)
	}
	candidate.ID = id

	u.audit.CandidateCreated(ctx, id, candidate.Email, candidate.PhoneNumber)
	return candidate, nil
}

// newCandidate runs the field verifiers over a schema-valid request and
// builds the candidate to persist.
func newCandidate(req *domain.CreateCandidateRequest) (*domain.Candidate, error) {
	gender, err := validation.VerifyGender(*req.Gender)
	if err != nil {
		return nil, err
	}
	phone, err := validation.VerifyPhoneNumber(req.PhoneNumber.String())
	if err != nil {
		return nil, err
	}
	email, err := validation.VerifyEmailAddress(*req.Email)
	if err != nil {
		return nil, err
	}

	return &domain.Candidate{
		Name:        *req.Name,
		Age:         *req.Age,
		Gender:      domain.Gender(gender),
		PhoneNumber: phone,
		Email:       email,
		Status:      domain.StatusApplied,
		Experience: &domain.Experience{
			YearsOfExp:     *req.YearsOfExp,
			CurrentSalary:  *req.CurrentSalary,
			ExpectedSalary: *req.ExpectedSalary,
		},
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func decodeFailure(err error) *apperror.AppError {
	var de *validation.DecodeError
	if errors.As(err, &de) && de.Kind == validation.DecodeTypeMismatch {
		return apperror.Invalid(domain.ErrValidation, domain.MsgIncorrectDatatype, err)
	}
	return apperror.Invalid(domain.ErrValidation, domain.MsgInvalidPayload, err)
}

// GetByID returns the matching record as a list: empty when no candidate has id.
func (u *candidateUsecase) GetByID(ctx context.Context, id int64) ([]domain.CandidateRecord, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Invalid(domain.ErrStorage, domain.MsgStorageFailure, err)
	}
	if candidate == nil {
		return []domain.CandidateRecord{}, nil
	}
	return ToResponse([]domain.Candidate{*candidate}), nil
}

func (u *candidateUsecase) UpdateStatus(ctx context.Context, req *domain.UpdateStatusRequest) (*domain.Candidate, error) {
	if perr := validation.ValidatePayload(u.validate, req); perr != nil {
		return nil, apperror.Invalid(domain.ErrValidation, domain.MsgMissingKeys, perr)
	}

	candidate, err := u.repo.GetByID(ctx, *req.ID)
	if err != nil {
		return nil, apperror.Invalid(domain.ErrStorage, domain.MsgStatusUpdateFailed, err)
	}
	if candidate == nil {
		return nil, apperror.Invalid(domain.ErrNotFound, domain.MsgStatusUpdateFailed, errors.New(domain.MsgCandidateNotExist))
	}

	from := candidate.Status
	if err := candidate.ApplyTransition(*req.Status, req.Reason); err != nil {
		var te *domain.TransitionError
		kind := domain.ErrInvalidStatus
		if errors.As(err, &te) {
			kind = te.Err
		}
		return nil, apperror.Invalid(kind, domain.MsgStatusUpdateFailed, err)
	}

	if err := u.repo.Update(ctx, candidate); err != nil {
		return nil, apperror.Invalid(domain.ErrStorage, domain.MsgStatusUpdateFailed, err)
	}

	u.audit.StatusChanged(ctx, candidate.ID, string(from), string(candidate.Status))
	return candidate, nil
}

func (u *candidateUsecase) Search(ctx context.Context, req *domain.CandidateSearchRequest) ([]domain.CandidateRecord, error) {
	filters, err := BuildFilters(req)
	if err != nil {
		return nil, apperror.Invalid(domain.ErrValidation, domain.MsgInvalidFilter, err)
	}

	candidates, err := u.repo.Query(ctx, filters)
	if err != nil {
		return nil, apperror.Invalid(domain.ErrStorage, domain.MsgStorageFailure, err)
	}
	return ToResponse(candidates), nil
}

// SearchByName ranks every stored candidate against query.
func (u *candidateUsecase) SearchByName(ctx context.Context, query string) ([]domain.CandidateRecord, error) {
	if len(wordSet(query)) == 0 {
		return []domain.CandidateRecord{}, nil
	}

	candidates, err := u.repo.Query(ctx, nil)
	if err != nil {
		return nil, apperror.Invalid(domain.ErrStorage, domain.MsgStorageFailure, err)
	}
	return ToResponse(Rank(candidates, query)), nil
}
