package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Callback data prefixes. The wire format is an opaque string the transport
// never interprets; it is decoded exactly once, at the transport boundary,
// into a tagged Action.
const (
	callbackPrefixSelect   = "select:"
	callbackPrefixLanguage = "lang:"
	callbackPageNext       = "page:next"
	callbackPagePrev       = "page:prev"
)

// ErrUnknownAction is returned for callback data that matches no known action.
var ErrUnknownAction = errors.New("unknown callback action")

// Action is a decoded inline-button callback.
type Action interface {
	// CallbackData returns the wire encoding of the action.
	CallbackData() string
}

// SelectAction selects the candidate at a global result index.
type SelectAction struct {
	Index int
}

func (a SelectAction) CallbackData() string {
	return callbackPrefixSelect + strconv.Itoa(a.Index)
}

// PageNextAction advances the result page by one.
type PageNextAction struct{}

func (PageNextAction) CallbackData() string {
	return callbackPageNext
}

// PagePrevAction moves the result page back by one.
type PagePrevAction struct{}

func (PagePrevAction) CallbackData() string {
	return callbackPagePrev
}

// SetLanguageAction switches the user's display language.
type SetLanguageAction struct {
	Code Language
}

func (a SetLanguageAction) CallbackData() string {
	return callbackPrefixLanguage + string(a.Code)
}

// ParseAction decodes callback data into an Action.
func ParseAction(data string) (Action, error) {
	switch {
	case data == callbackPageNext:
		return PageNextAction{}, nil

	case data == callbackPagePrev:
		return PagePrevAction{}, nil

	case strings.HasPrefix(data, callbackPrefixSelect):
		raw := strings.TrimPrefix(data, callbackPrefixSelect)
		index, err := strconv.Atoi(raw)
		if err != nil || index < 0 {
			return nil, fmt.Errorf("%w: bad selection index %q", ErrUnknownAction, raw)
		}
		return SelectAction{Index: index}, nil

	case strings.HasPrefix(data, callbackPrefixLanguage):
		code := strings.TrimPrefix(data, callbackPrefixLanguage)
		lang, ok := ParseLanguage(code)
		if !ok {
			return nil, fmt.Errorf("%w: bad language code %q", ErrUnknownAction, code)
		}
		return SetLanguageAction{Code: lang}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, data)
}
