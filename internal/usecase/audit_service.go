package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/wicketline/cricket-stats/internal/domain/auditlog"
)

type ListAuditLogsInput struct {
	Limit         int
	Offset        int
	Search        string
	Status        string
	TableName     string
	OperationType string
}

type AppendAuditLogInput struct {
	OperationType string
	TableName     string
	Statement     string
	Status        string
	ErrorMessage  string
}

type AuditLogService struct {
	auditRepo auditlog.Repository
}

func NewAuditLogService(auditRepo auditlog.Repository) *AuditLogService {
	return &AuditLogService{auditRepo: auditRepo}
}

func (s *AuditLogService) List(ctx context.Context, input ListAuditLogsInput) ([]auditlog.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuditLogService.List")
	defer span.End()

	status, err := parseAuditStatus(input.Status, false)
	if err != nil {
		return nil, err
	}

	items, err := s.auditRepo.List(ctx, auditlog.Filter{
		Limit:         clampLimit(input.Limit, defaultListLimit),
		Offset:        clampOffset(input.Offset),
		Search:        strings.TrimSpace(input.Search),
		Status:        status,
		TableName:     strings.TrimSpace(input.TableName),
		OperationType: strings.TrimSpace(input.OperationType),
	})
	if err != nil {
		return nil, fmt.Errorf("list sql logs: %w", err)
	}
	return items, nil
}

func (s *AuditLogService) GetByID(ctx context.Context, id int64) (auditlog.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuditLogService.GetByID")
	defer span.End()

	if id <= 0 {
		return auditlog.Entry{}, Errorf(ErrInvalidInput, "INVALID_ID", "sql log id must be a positive integer")
	}

	item, exists, err := s.auditRepo.GetByID(ctx, id)
	if err != nil {
		return auditlog.Entry{}, fmt.Errorf("get sql log: %w", err)
	}
	if !exists {
		return auditlog.Entry{}, Errorf(ErrNotFound, "SQL_LOG_NOT_FOUND", "sql log %d not found", id)
	}
	return item, nil
}

func (s *AuditLogService) Append(ctx context.Context, input AppendAuditLogInput) (auditlog.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuditLogService.Append")
	defer span.End()

	item := auditlog.Entry{
		OperationType: strings.TrimSpace(input.OperationType),
		TableName:     strings.TrimSpace(input.TableName),
		Statement:     strings.TrimSpace(input.Statement),
		ErrorMessage:  strings.TrimSpace(input.ErrorMessage),
	}
	if item.Statement == "" {
		return auditlog.Entry{}, Errorf(ErrInvalidInput, "MISSING_SQL_STATEMENT", "sql statement is required")
	}
	status, err := parseAuditStatus(input.Status, false)
	if err != nil {
		return auditlog.Entry{}, err
	}
	if status == "" {
		status = auditlog.StatusPending
	}
	item.Status = status

	created, err := s.auditRepo.Append(ctx, item)
	if err != nil {
		return auditlog.Entry{}, fmt.Errorf("append sql log: %w", err)
	}
	return created, nil
}

func (s *AuditLogService) Delete(ctx context.Context, id int64) (auditlog.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuditLogService.Delete")
	defer span.End()

	if id <= 0 {
		return auditlog.Entry{}, Errorf(ErrInvalidInput, "INVALID_ID", "sql log id must be a positive integer")
	}

	deleted, exists, err := s.auditRepo.Delete(ctx, id)
	if err != nil {
		return auditlog.Entry{}, fmt.Errorf("delete sql log: %w", err)
	}
	if !exists {
		return auditlog.Entry{}, Errorf(ErrNotFound, "SQL_LOG_NOT_FOUND", "sql log %d not found", id)
	}
	return deleted, nil
}

func parseAuditStatus(raw string, required bool) (auditlog.Status, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return "", Errorf(ErrInvalidInput, "MISSING_STATUS", "status is required")
		}
		return "", nil
	}
	status := auditlog.Status(raw)
	if _, ok := auditlog.AllStatuses[status]; !ok {
		return "", Errorf(ErrInvalidInput, "INVALID_STATUS", "invalid status %q", raw)
	}
	return status, nil
}
