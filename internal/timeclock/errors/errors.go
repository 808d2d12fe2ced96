package timeclockerrors

import (
	"net/http"

	"go-timeclock/internal/shared/apperror"
)

var (
	ErrNoLoginRecorded = apperror.New(
		apperror.CodeInvalidState,
		"No login recorded for today",
		http.StatusConflict,
	)
	ErrAlreadyOnBreak = apperror.New(
		apperror.CodeInvalidState,
		"A break is already in progress",
		http.StatusConflict,
	)
	ErrBreakAlreadyTaken = apperror.New(
		apperror.CodeInvalidState,
		"Today's break has already been taken",
		http.StatusConflict,
	)
	ErrNoBreakInProgress = apperror.New(
		apperror.CodeInvalidState,
		"No break is in progress",
		http.StatusConflict,
	)
	ErrShiftAlreadyClosed = apperror.New(
		apperror.CodeInvalidState,
		"Today's shift is already closed",
		http.StatusConflict,
	)
	ErrConcurrentLogin = apperror.New(
		apperror.CodeConflict,
		"Another session already logged in for today",
		http.StatusConflict,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeNotFound,
		"Employee does not belong to this company",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
)
