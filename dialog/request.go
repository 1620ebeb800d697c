package dialog

import (
	"errors"

	"github.com/jask/termkit/core"
	"github.com/jask/termkit/widgets"
)

// Well-known correlation keys.
const (
	KeyMessage      core.CorrelationKey = "message"
	KeyVerify       core.CorrelationKey = "verify"
	KeyVerifyCancel core.CorrelationKey = "verify_cancel"
)

var ErrNoChoices = errors.New("dialog needs at least one choice")

type Answer int

const (
	AnswerNone Answer = iota
	AnswerYes
	AnswerNo
	AnswerCancel
	AnswerAll
	AnswerAck
)

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerNo:
		return "no"
	case AnswerCancel:
		return "cancel"
	case AnswerAll:
		return "all"
	case AnswerAck:
		return "ack"
	default:
		return "none"
	}
}

// AsBool is true for Yes and All.
func (a Answer) AsBool() bool {
	return a == AnswerYes || a == AnswerAll
}

func AnswerFromBool(v bool) Answer {
	if v {
		return AnswerYes
	}
	return AnswerNo
}

// Choice is one button of a dialog.
type Choice struct {
	Label  string
	Intent widgets.Variant
	Answer Answer
}

func YesChoice(label string) Choice {
	return Choice{Label: label, Intent: widgets.VariantError, Answer: AnswerYes}
}

func NoChoice(label string) Choice {
	return Choice{Label: label, Intent: widgets.VariantSuccess, Answer: AnswerNo}
}

func CancelChoice(label string) Choice {
	return Choice{Label: label, Intent: widgets.VariantDefault, Answer: AnswerCancel}
}

func AllChoice(label string) Choice {
	return Choice{Label: label, Intent: widgets.VariantWarning, Answer: AnswerAll}
}

func AckChoice(label string) Choice {
	return Choice{Label: label, Intent: widgets.VariantPrimary, Answer: AnswerAck}
}

// Request is an immutable description of one dialog.
type Request struct {
	ID      string
	Title   string
	Prompt  string
	Choices []Choice
	Key     core.CorrelationKey
}

func (r Request) Validate() error {
	if len(r.Choices) == 0 {
		return ErrNoChoices
	}
	return nil
}

func (r Request) cancelIndex() int {
	for i, c := range r.Choices {
		if c.Answer == AnswerCancel {
			return i
		}
	}
	return -1
}

// Result is the single choice a dialog was closed with.
type Result struct {
	RequestID string
	Label     string
	Index     int
	Answer    Answer
}

// ResultMsg is what the originator receives.
type ResultMsg = core.Correlated[Result]
