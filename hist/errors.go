package hist

import "errors"

var ErrBadData = errors.New("hist: bad data")
