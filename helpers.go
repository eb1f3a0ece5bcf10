package ariatabs

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// attrValue returns the trimmed value of an attribute, or "" when the
// attribute is absent or the selection is empty.
func attrValue(sel *goquery.Selection, name string) string {
	v, _ := sel.Attr(name)
	return strings.TrimSpace(v)
}

// hasAttr reports attribute presence, including empty-valued boolean
// attributes like hidden and disabled.
func hasAttr(sel *goquery.Selection, name string) bool {
	_, ok := sel.Attr(name)
	return ok
}

// elementText returns the element's rendered text collapsed to single
// spaces, the way it reads to assistive technology.
func elementText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// splitSelection breaks a multi-element selection into single-element
// selections in document order.
func splitSelection(sel *goquery.Selection) []*goquery.Selection {
	out := make([]*goquery.Selection, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, s)
	})
	return out
}

// firstNode returns the first underlying node of a selection.
func firstNode(sel *goquery.Selection) *html.Node {
	if sel == nil || len(sel.Nodes) == 0 {
		return nil
	}
	return sel.Nodes[0]
}

// focusableSelector matches elements that can participate in the tab
// order. Candidates still need the isFocusable check (disabled state,
// negative tabindex).
const focusableSelector = `a[href], button, input, select, textarea, [tabindex]`

// hasFocusableContent reports whether the panel contains at least one
// keyboard-focusable descendant: a link with a target, a non-disabled
// form control, or any element with a non-negative explicit tabindex.
func hasFocusableContent(panel *goquery.Selection) bool {
	found := false
	panel.Find(focusableSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if isFocusable(s) {
			found = true
			return false
		}
		return true
	})
	return found
}

func isFocusable(s *goquery.Selection) bool {
	if s.Is("a[href]") {
		return true
	}
	if s.Is("button, input, select, textarea") {
		return !hasAttr(s, "disabled")
	}
	if v, ok := s.Attr("tabindex"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return err == nil && n >= 0
	}
	return false
}
