package profiles

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

var (
	ErrProfileNotFound = fmt.Errorf("job seeker profile %w", ErrNotFound)
	ErrResumeNotFound  = fmt.Errorf("resume %w", ErrNotFound)
)
