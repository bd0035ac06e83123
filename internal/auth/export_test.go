package auth

import "time"

// SetClock replaces the token clock. Test-only.
func (t *Tokens) SetClock(now func() time.Time) { t.now = now }
