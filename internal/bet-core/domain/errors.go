package domain

import (
	"errors"
	"fmt"
)

// Kind enumera as categorias de erro de negócio do core.
// Fechado de propósito: todo call site consegue mapear por categoria.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidStake
	KindCurrencyMismatch
	KindUnsupportedOdds
	KindEventNotFound
	KindBetNotFound
	KindInvalidSelection
	KindInsufficientBalance
	KindIllegalEventState
	KindIllegalBetState
	KindOptimisticLock
	KindIdempotentBetMissing
)

func (k Kind) String() string {
	switch k {
	case KindInvalidStake:
		return "INVALID_STAKE"
	case KindCurrencyMismatch:
		return "CURRENCY_MISMATCH"
	case KindUnsupportedOdds:
		return "UNSUPPORTED_ODDS"
	case KindEventNotFound:
		return "EVENT_NOT_FOUND"
	case KindBetNotFound:
		return "BET_NOT_FOUND"
	case KindInvalidSelection:
		return "INVALID_SELECTION"
	case KindInsufficientBalance:
		return "INSUFFICIENT_BALANCE"
	case KindIllegalEventState:
		return "ILLEGAL_EVENT_STATE"
	case KindIllegalBetState:
		return "ILLEGAL_BET_STATE"
	case KindOptimisticLock:
		return "OPTIMISTIC_LOCK"
	case KindIdempotentBetMissing:
		return "IDEMPOTENT_BET_MISSING"
	default:
		return "UNKNOWN"
	}
}

// Error carrega a categoria (machine-readable) e o detalhe (human-readable).
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Detail
}

func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// KindOf extrai a categoria de um erro; KindUnknown quando não for *Error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
