package service

import (
	"context"
	"time"

	"golexai-be/internal/dto"
	"golexai-be/internal/entity"
	"golexai-be/internal/pkg/logger"
	"golexai-be/internal/repository/specification"
	"golexai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICaseService interface {
	Create(ctx context.Context, lawyerId uuid.UUID, req *dto.CreateCaseRequest) (*dto.CaseResponse, error)
	List(ctx context.Context, lawyerId uuid.UUID, role string) ([]*dto.CaseResponse, error)
	Show(ctx context.Context, lawyerId uuid.UUID, role string, caseId uuid.UUID) (*dto.CaseResponse, error)
	Update(ctx context.Context, lawyerId uuid.UUID, caseId uuid.UUID, req *dto.UpdateCaseRequest) (*dto.CaseResponse, error)
	Delete(ctx context.Context, lawyerId uuid.UUID, caseId uuid.UUID) error
}

type caseService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewCaseService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ICaseService {
	return &caseService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *caseService) Create(ctx context.Context, lawyerId uuid.UUID, req *dto.CreateCaseRequest) (*dto.CaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	priority := entity.PriorityMedium
	if req.Priority != "" {
		priority = entity.Priority(req.Priority)
	}

	legalCase := &entity.Case{
		Id:          uuid.New(),
		LawyerId:    lawyerId,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      entity.CaseStatusOpen,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uow.CaseRepository().Create(ctx, legalCase); err != nil {
		return nil, err
	}

	return caseToDTO(legalCase), nil
}

// List returns the lawyer's cases. Admins see every case.
func (s *caseService) List(ctx context.Context, lawyerId uuid.UUID, role string) ([]*dto.CaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if role != string(entity.UserRoleAdmin) {
		specs = append(specs, specification.ByLawyerID{LawyerID: lawyerId})
	}

	cases, err := uow.CaseRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CaseResponse, 0, len(cases))
	for _, c := range cases {
		responses = append(responses, caseToDTO(c))
	}
	return responses, nil
}

func (s *caseService) Show(ctx context.Context, lawyerId uuid.UUID, role string, caseId uuid.UUID) (*dto.CaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.ByID{ID: caseId}}
	if role != string(entity.UserRoleAdmin) {
		specs = append(specs, specification.ByLawyerID{LawyerID: lawyerId})
	}

	legalCase, err := uow.CaseRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if legalCase == nil {
		return nil, wrapErr(ErrNotFound, "case not found")
	}

	return caseToDTO(legalCase), nil
}

func (s *caseService) Update(ctx context.Context, lawyerId uuid.UUID, caseId uuid.UUID, req *dto.UpdateCaseRequest) (*dto.CaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	legalCase, err := uow.CaseRepository().FindOne(ctx,
		specification.ByID{ID: caseId},
		specification.ByLawyerID{LawyerID: lawyerId},
	)
	if err != nil {
		return nil, err
	}
	if legalCase == nil {
		return nil, wrapErr(ErrNotFound, "case not found")
	}

	if req.Title != "" {
		legalCase.Title = req.Title
	}
	if req.Description != "" {
		legalCase.Description = req.Description
	}
	if req.Priority != "" {
		legalCase.Priority = entity.Priority(req.Priority)
	}
	if req.Status != "" {
		legalCase.Status = entity.CaseStatus(req.Status)
	}
	legalCase.UpdatedAt = time.Now()

	if err := uow.CaseRepository().Update(ctx, legalCase); err != nil {
		return nil, err
	}

	return caseToDTO(legalCase), nil
}

func (s *caseService) Delete(ctx context.Context, lawyerId uuid.UUID, caseId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	legalCase, err := uow.CaseRepository().FindOne(ctx,
		specification.ByID{ID: caseId},
		specification.ByLawyerID{LawyerID: lawyerId},
	)
	if err != nil {
		return err
	}
	if legalCase == nil {
		return wrapErr(ErrNotFound, "case not found")
	}

	return uow.CaseRepository().Delete(ctx, caseId)
}

func caseToDTO(c *entity.Case) *dto.CaseResponse {
	return &dto.CaseResponse{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		Priority:    string(c.Priority),
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
