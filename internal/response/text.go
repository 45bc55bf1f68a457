package response

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "blockquote": true,
}

// PlainText returns the review body without markup. Reviews not flagged as
// HTML are returned unchanged.
func (r Review) PlainText() (string, error) {
	if !r.HTML {
		return r.Review, nil
	}
	return htmlToText(r.Review)
}

// DescriptionText returns the extended description without markup.
func (d ExtendedData) DescriptionText() (string, error) {
	if d.Description == "" {
		return "", nil
	}
	return htmlToText(d.Description)
}

func htmlToText(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var sb strings.Builder
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(i int, child *goquery.Selection) {
			name := goquery.NodeName(child)
			switch {
			case name == "#text":
				sb.WriteString(child.Text())
			case name == "br":
				sb.WriteByte('\n')
			default:
				walk(child)
				if blockElements[name] {
					sb.WriteByte('\n')
				}
			}
		})
	}
	walk(doc.Find("body"))

	lines := strings.Split(sb.String(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n"), nil
}
