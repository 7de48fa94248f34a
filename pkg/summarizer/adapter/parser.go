package adapter

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

var (
	errMissingSummary = errors.New("output does not contain <Output><Summary> tags")
	errEmptySummary   = errors.New("summary is empty")
)

// parseSummary extracts the raw content of <Summary> inside <Output>. Tag
// names are matched case-insensitively and anything outside the tags is
// ignored. An unterminated <Summary> runs to the end of the output.
func parseSummary(output string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(output))

	var inOutput bool
	var inSummary bool
	var found bool

	var b strings.Builder

	for {
		tt := z.Next()

		if tt == html.ErrorToken {
			if !errors.Is(z.Err(), io.EOF) {
				return "", z.Err()
			}

			break
		}

		if tt == html.StartTagToken || tt == html.EndTagToken {
			name, _ := z.TagName()
			tag := string(name)

			switch {
			case tag == "output":
				if tt == html.EndTagToken {
					inOutput = false
					inSummary = false
				} else if !inSummary {
					inOutput = true
				}

				continue

			case tag == "summary" && inOutput:
				if tt == html.StartTagToken && !found {
					inSummary = true
					found = true
					continue
				}

				if tt == html.EndTagToken && inSummary {
					inSummary = false
					continue
				}
			}
		}

		if inSummary {
			b.Write(z.Raw())
		}
	}

	if !found {
		return "", errMissingSummary
	}

	summary := strings.TrimSpace(b.String())

	if summary == "" {
		return "", errEmptySummary
	}

	return summary, nil
}
