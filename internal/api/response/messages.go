package response

import (
	"fmt"

	"github.com/mcoot/wordtiles/internal/model"
)

// FirstWordPrompt is shown while the board is still empty
const FirstWordPrompt = "Place your first word through the center square"

var rejectMessages = map[model.RejectReason]string{
	model.RejectEmptyPlacement:      "No tiles placed! Place tiles before submitting.",
	model.RejectMissingCenterAnchor: "The first word must be placed through the center square!",
	model.RejectNotConnected:        "New words must connect to existing tiles on the board!",
	model.RejectNotCollinear:        "Tiles must be placed in a straight line!",
	model.RejectGapInWord:           "Words must be continuous with no gaps!",
	model.RejectWordTooShort:        "Words must be at least 2 letters long!",
}

// RejectMessage returns the player-facing text for a rejection
func RejectMessage(reason model.RejectReason) string {
	if msg, ok := rejectMessages[reason]; ok {
		return msg
	}
	return "Placement rejected"
}

// AcceptMessage returns the player-facing text for an accepted word
func AcceptMessage(score int) string {
	return fmt.Sprintf("Word accepted! +%d points", score)
}

// VerdictMessage returns the text for either outcome of a submission
func VerdictMessage(verdict model.Verdict, score int) string {
	if verdict.Accepted() {
		return AcceptMessage(score)
	}
	return RejectMessage(verdict.Reason)
}
