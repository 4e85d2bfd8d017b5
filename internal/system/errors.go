// internal/system/errors.go
package system

import (
	"errors"
	"go-arena-shooter/internal/entity"
)

var (
	ErrInsufficientGold = errors.New("insufficient gold")
	ErrAlreadyOwned     = errors.New("already owned")
	ErrNotOwned         = errors.New("not owned")
	ErrNotForSale       = errors.New("not for sale")
	ErrAllyCapReached   = entity.ErrAllyCapReached
	ErrNoBombs          = errors.New("no bombs of that type left")
	ErrBonusNotReady    = errors.New("daily bonus not ready")
	ErrNotRunning       = errors.New("no run in progress")
)

// ErrDomainActive rejects an activation while another domain runs.
var ErrDomainActive = errors.New("domain already active")
