package queries

import "parkhub/internal/pkg/errs"

var ErrForbidden = errs.New("actor may not read this record")
