package httpapi

import (
	"net/http"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/auditlog"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

type auditLogDTO struct {
	ID            int64  `json:"id"`
	OperationType string `json:"operationType"`
	TableName     string `json:"tableName"`
	SQLStatement  string `json:"sqlStatement"`
	ExecutedAt    string `json:"executedAt"`
	Status        string `json:"status"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
}

type appendAuditLogRequest struct {
	OperationType string `json:"operationType" validate:"max=32"`
	TableName     string `json:"tableName" validate:"max=128"`
	SQLStatement  string `json:"sqlStatement"`
	Status        string `json:"status" validate:"max=16"`
	ErrorMessage  string `json:"errorMessage" validate:"max=1024"`
}

func auditLogToDTO(v auditlog.Entry) auditLogDTO {
	return auditLogDTO{
		ID:            v.ID,
		OperationType: v.OperationType,
		TableName:     v.TableName,
		SQLStatement:  v.Statement,
		ExecutedAt:    v.ExecutedAt.UTC().Format(time.RFC3339),
		Status:        string(v.Status),
		ErrorMessage:  v.ErrorMessage,
	}
}

func auditLogsToDTOs(items []auditlog.Entry) []auditLogDTO {
	out := make([]auditLogDTO, 0, len(items))
	for _, v := range items {
		out = append(out, auditLogToDTO(v))
	}
	return out
}

func (h *Handler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAuditLogs")
	defer span.End()

	if queryString(r, "id") != "" {
		id, err := requiredID(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		item, err := h.auditService.GetByID(ctx, id)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, auditLogToDTO(item))
		return
	}

	items, err := h.auditService.List(ctx, usecase.ListAuditLogsInput{
		Limit:         queryInt(r, "limit"),
		Offset:        queryInt(r, "offset"),
		Search:        queryString(r, "search"),
		Status:        queryString(r, "status"),
		TableName:     queryString(r, "tableName"),
		OperationType: queryString(r, "operationType"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list sql logs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, auditLogsToDTOs(items))
}

func (h *Handler) AppendAuditLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AppendAuditLog")
	defer span.End()

	var req appendAuditLogRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.auditService.Append(ctx, usecase.AppendAuditLogInput{
		OperationType: req.OperationType,
		TableName:     req.TableName,
		Statement:     req.SQLStatement,
		Status:        req.Status,
		ErrorMessage:  req.ErrorMessage,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "append sql log failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, auditLogToDTO(created))
}

func (h *Handler) DeleteAuditLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAuditLog")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	deleted, err := h.auditService.Delete(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "delete sql log failed", "sql_log_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, struct {
		Message string      `json:"message"`
		SQLLog  auditLogDTO `json:"sqlLog"`
	}{
		Message: "sql log deleted",
		SQLLog:  auditLogToDTO(deleted),
	})
}
