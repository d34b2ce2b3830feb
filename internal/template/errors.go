package template

import "errors"

// ErrWriteFailed wraps every failure to produce the workbook file.
var ErrWriteFailed = errors.New("write failed")
