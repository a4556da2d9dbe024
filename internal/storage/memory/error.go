package memory

import "errors"

var ErrDuplicateName = errors.New("hotel name already exists")
