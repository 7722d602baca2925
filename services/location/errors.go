package location

import "errors"

// ErrValidation marks input-contract failures. Handlers map anything wrapping
// it to a 422; everything else from the ingest path is a persistence failure.
var ErrValidation = errors.New("validation failed")
