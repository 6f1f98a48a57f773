package orders

import (
	"fmt"

	"github.com/techstore/storefront-backend/pkg/enums"
	"github.com/techstore/storefront-backend/pkg/errors"
)

// transitions is the complete edge set of the order state machine. Anything
// absent here is an illegal move.
var transitions = map[enums.OrderStatus][]enums.OrderStatus{
	enums.OrderStatusPending:    {enums.OrderStatusProcessing, enums.OrderStatusCancelled},
	enums.OrderStatusProcessing: {enums.OrderStatusCompleted, enums.OrderStatusCancelled},
}

// CanTransition reports whether the edge from -> to exists.
func CanTransition(from, to enums.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition checks a requested status change against the state
// machine. Terminal origins are reported distinctly from merely missing
// edges so callers can surface different responses.
func ValidateTransition(from, to enums.OrderStatus) error {
	if !to.IsValid() {
		return errors.New(errors.CodeValidation, fmt.Sprintf("unknown order status %q", to))
	}
	if from.IsTerminal() {
		return errors.New(errors.CodeTerminalState,
			fmt.Sprintf("order in terminal status %q cannot change", from)).
			WithDetails(map[string]any{"current": from.String(), "requested": to.String()})
	}
	if !CanTransition(from, to) {
		return errors.New(errors.CodeInvalidTransition,
			fmt.Sprintf("cannot move order from %q to %q", from, to)).
			WithDetails(map[string]any{"current": from.String(), "requested": to.String()})
	}
	return nil
}
