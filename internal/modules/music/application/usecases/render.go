package usecases

import (
	"strconv"
	"strings"

	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// selectionButtonsPerRow caps how many numbered selection buttons share a row.
const selectionButtonsPerRow = 5

// Button is a transport-agnostic inline button. Exactly one of CallbackData
// and URL is set.
type Button struct {
	Text         string
	CallbackData string
	URL          string
}

// RenderedPage is the rendering of one result page: the message text and the
// button layout row by row.
type RenderedPage struct {
	Text     string
	Keyboard [][]Button
}

// RenderLabels carries the localized chrome around a rendered page.
type RenderLabels struct {
	Header    string
	Prev      string
	Next      string
	Footer    string
	FooterURL string
}

// RenderPage renders the session's current page. It is a pure function:
// given the same session and labels it always produces the same output.
//
// Layout: one line per visible candidate numbered 1-based within the page;
// numbered selection buttons carrying the candidate's global index, split
// into two rows of up to five; a navigation row (previous iff not on the
// first page, next iff more results follow); a footer link button.
func RenderPage(session domain.SearchSession, labels RenderLabels) RenderedPage {
	var text strings.Builder
	text.WriteString(labels.Header)
	text.WriteString("\n\n")

	var row1, row2 []Button
	start := session.PageStart()
	for i, candidate := range session.PageSlice() {
		localIndex := i + 1
		text.WriteString(strconv.Itoa(localIndex))
		text.WriteString(". ")
		text.WriteString(candidate.DisplayTitle())
		text.WriteString("\n")

		button := Button{
			Text:         strconv.Itoa(localIndex),
			CallbackData: domain.SelectAction{Index: start + i}.CallbackData(),
		}
		if localIndex <= selectionButtonsPerRow {
			row1 = append(row1, button)
		} else {
			row2 = append(row2, button)
		}
	}

	var keyboard [][]Button
	if len(row1) > 0 {
		keyboard = append(keyboard, row1)
	}
	if len(row2) > 0 {
		keyboard = append(keyboard, row2)
	}

	var navRow []Button
	if session.HasPrev() {
		navRow = append(navRow, Button{
			Text:         labels.Prev,
			CallbackData: domain.PagePrevAction{}.CallbackData(),
		})
	}
	if session.HasNext() {
		navRow = append(navRow, Button{
			Text:         labels.Next,
			CallbackData: domain.PageNextAction{}.CallbackData(),
		})
	}
	if len(navRow) > 0 {
		keyboard = append(keyboard, navRow)
	}

	keyboard = append(keyboard, []Button{{Text: labels.Footer, URL: labels.FooterURL}})

	return RenderedPage{
		Text:     text.String(),
		Keyboard: keyboard,
	}
}
