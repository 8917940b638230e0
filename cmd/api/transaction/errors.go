package transaction

import "github.com/pkg/errors"

var (
	ErrForbiddenTransaction          = errors.New("forbidden transaction")
	ErrCurrencyMismatch              = errors.New("withdrawal is only permitted for the same currency as the account")
	ErrCardInactiveOrExpired         = errors.New("inactive or expired card")
	ErrIncorrectCVV                  = errors.New("incorrect cvv")
	ErrIncorrectPIN                  = errors.New("incorrect pin")
	ErrDailyTransactionLimitExceeded = errors.New("daily transaction limit exceeded for the account's associated card")
	ErrDailyWithdrawalLimitExceeded  = errors.New("daily withdrawal limit exceeded for the account's associated card")
)
