package suggestion

import "errors"

var ErrInvalidDate = errors.New("invalid report date")
