package game

import "errors"

// RuleError is a rejected action precondition. Rule errors are ordinary
// recoverable results; the state is never mutated before one is returned.
type RuleError string

func (e RuleError) Error() string {
	return string(e)
}

var (
	ErrUnknownPlayer         = RuleError("unknown player id")
	ErrNotYourTurn           = RuleError("not your turn")
	ErrWrongPhase            = RuleError("action not allowed in this phase")
	ErrGameOver              = RuleError("game is already over")
	ErrVertexOccupied        = RuleError("vertex is already occupied")
	ErrOffBoard              = RuleError("location is off the board")
	ErrDistanceRule          = RuleError("too close to another settlement")
	ErrNotConnected          = RuleError("not connected to your road network")
	ErrEdgeOccupied          = RuleError("edge already has a road")
	ErrInsufficientResources = RuleError("insufficient resources")
	ErrNoPiecesLeft          = RuleError("no pieces of that kind left")
	ErrNoSettlementThere     = RuleError("no settlement of yours at that vertex")
	ErrSetupSettlementFirst  = RuleError("place your setup settlement first")
	ErrSetupRoadPending      = RuleError("place the road for your settlement first")
	ErrCardNotPlayable       = RuleError("card not available to play")
	ErrDevCardAlreadyPlayed  = RuleError("already played a development card this turn")
	ErrDevDeckEmpty          = RuleError("no development cards left")
	ErrUnknownHex            = RuleError("no such hex on the board")
	ErrRobberStays           = RuleError("robber must move to a different hex")
	ErrBadStealTarget        = RuleError("cannot steal from that player")
	ErrNoDiscardOwed         = RuleError("no discard owed")
	ErrWrongDiscardCount     = RuleError("wrong number of cards discarded")
	ErrBadTrade              = RuleError("invalid trade")
)

// IsRuleViolation reports whether err is a recoverable rule rejection,
// as opposed to an integration error such as a malformed coordinate.
func IsRuleViolation(err error) bool {
	var re RuleError
	return errors.As(err, &re)
}
