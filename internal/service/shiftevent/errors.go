package shiftevent

import "errors"

var ErrUndefinedEvent = errors.New("undefined shift event type")
