// README: AI-call quota errors and defaults.
package aiquota

import "errors"

// ErrInsufficientQuota is returned when a user has no AI calls remaining for the current month.
var ErrInsufficientQuota = errors.New("insufficient ai quota")

// DefaultAllowance is the number of model calls granted per month.
const DefaultAllowance = 100
