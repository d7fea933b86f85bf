package handlers

import (
	"context"
	"errors"
	"net"
	"net/http"

	"tinyfox/internal/adapters/httpapi/problems"
	"tinyfox/internal/domain"
)

func problemFromError(err error) problems.Problem {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return problems.Problem{
			Type:   problems.ProblemTypeNotFound,
			Title:  problems.TitleNotFound,
			Status: http.StatusNotFound,
			Detail: problems.DetailNotFound,
		}
	case errors.Is(err, domain.ErrExpired):
		return problems.Problem{
			Type:   problems.ProblemTypeGone,
			Title:  problems.TitleGone,
			Status: http.StatusGone,
			Detail: problems.DetailExpired,
		}
	case errors.Is(err, domain.ErrInvalidInput):
		return validationProblem(invalidInputDetail(err))
	case errors.Is(err, domain.ErrCodeAlreadyExists):
		return problems.Problem{
			Type:   problems.ProblemTypeConflict,
			Title:  problems.TitleConflict,
			Status: http.StatusConflict,
			Detail: problems.DetailCodeConflict,
		}
	case errors.Is(err, domain.ErrAllocationExhausted):
		return problems.Problem{
			Type:   problems.ProblemTypeAllocationExhausted,
			Title:  problems.TitleServiceUnavailable,
			Status: http.StatusServiceUnavailable,
			Detail: problems.DetailAllocationExhausted,
		}
	case isTimeout(err):
		return problems.Problem{
			Type:   problems.ProblemTypeTimeout,
			Title:  problems.TitleGatewayTimeout,
			Status: http.StatusGatewayTimeout,
			Detail: problems.DetailTimeout,
		}
	case isCanceled(err):
		return problems.Problem{
			Type:   problems.ProblemTypeCanceled,
			Title:  problems.TitleRequestCanceled,
			Status: problems.StatusClientClosedRequest,
			Detail: problems.DetailRequestCanceled,
		}
	default:
		return problems.Problem{
			Type:   problems.ProblemTypeInternal,
			Title:  problems.TitleInternalError,
			Status: http.StatusInternalServerError,
			Detail: problems.DetailInternalError,
		}
	}
}

func invalidInputDetail(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		return problems.DetailInvalidURL
	case errors.Is(err, domain.ErrInvalidCode):
		return problems.DetailInvalidCode
	case errors.Is(err, domain.ErrInvalidExpiry):
		return problems.DetailInvalidExpiry
	case errors.Is(err, domain.ErrInvalidNote):
		return problems.DetailInvalidNote
	default:
		return problems.DetailInvalidInput
	}
}

func validationProblem(detail string) problems.Problem {
	return problems.Problem{
		Type:   problems.ProblemTypeValidation,
		Title:  problems.TitleValidation,
		Status: http.StatusBadRequest,
		Detail: detail,
	}
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	if errors.Is(err, http.ErrHandlerTimeout) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}

func isCanceled(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, context.Canceled)
}
