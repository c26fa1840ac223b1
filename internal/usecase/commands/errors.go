package commands

import "parkhub/internal/pkg/errs"

var (
	ErrLotNotFound         = errs.New("lot not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrAlreadyActive       = errs.New("user already holds an active reservation")
	ErrNoCapacity          = errs.New("no available spot in lot")
	ErrCapacityConflict    = errs.New("occupied spots block the capacity change")
	ErrLotOccupied         = errs.New("lot has occupied spots")
	ErrConflict            = errs.New("operation lost a concurrency conflict")
	ErrDomainValidation    = errs.New("domain validation error")
	ErrDatabaseFailure     = errs.New("database operation failed")
)
