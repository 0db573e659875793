// Package render turns a QueryResult into a self-contained HTML email body.
// Rendering is a pure function of its input: no clocks, no randomness, and
// badge order is fixed, so identical input yields byte-identical HTML.
package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"sort"
	"strings"

	contractx "github.com/paxbot/curator-agent/agent/contract"
)

//go:embed template/email.html.tmpl
var emailTemplateRaw string

var emailTemplate = template.Must(template.New("email").Parse(emailTemplateRaw))

// placeholder sentinels that must never reach the rendered output.
var sentinels = map[string]struct{}{
	"":              {},
	"n/a":           {},
	"not available": {},
}

type cardView struct {
	Name        string
	Rating      string
	Address     string
	Description string
	Hours       string
	Website     string
	Badges      []string
	Highlights  []string
}

type emailView struct {
	Message string
	Cards   []cardView
}

// Render produces the HTML document for a query result. All styling is
// inline; the output has no external dependencies.
func Render(result contractx.QueryResult) (string, error) {
	view := emailView{
		Message: strings.TrimSpace(result.Message),
		Cards:   make([]cardView, 0, len(result.Restaurants)),
	}
	for _, r := range result.Restaurants {
		view.Cards = append(view.Cards, buildCard(r))
	}

	var sb strings.Builder
	if err := emailTemplate.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return sb.String(), nil
}

func buildCard(r contractx.RestaurantAnswer) cardView {
	card := cardView{
		Name:    strings.TrimSpace(r.Name),
		Address: present(r.Address),
	}

	if r.Rating != nil {
		card.Rating = strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", *r.Rating), "0"), ".") + "/5"
	}
	card.Description = present(r.Description)

	hours := make([]string, 0, len(r.Hours))
	for _, h := range r.Hours {
		if v := present(h); v != "" {
			hours = append(hours, v)
		}
	}
	card.Hours = strings.Join(hours, ", ")

	card.Website = present(r.Website)
	card.Badges = badges(r.Features)

	for _, q := range r.Highlights {
		if v := present(q); v != "" {
			card.Highlights = append(card.Highlights, v)
		}
	}
	return card
}

// present treats known placeholder sentinels as absent even when the field is
// structurally set. Defense in depth: the producing stage must already omit
// them, but a stray sentinel must not leak into the email.
func present(value string) string {
	trimmed := strings.TrimSpace(value)
	if _, isSentinel := sentinels[strings.ToLower(trimmed)]; isSentinel {
		return ""
	}
	return trimmed
}

// badges resolves the true-valued feature keys to display labels in the
// fixed table order; unknown keys follow alphabetically.
func badges(features map[string]bool) []string {
	if len(features) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(features))
	var out []string
	for _, key := range featureOrder {
		if !features[key] {
			continue
		}
		label := featureLabels[key]
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}

	var extras []string
	for key, val := range features {
		if !val {
			continue
		}
		if _, known := featureLabels[key]; known {
			continue
		}
		extras = append(extras, labelize(key))
	}
	sort.Strings(extras)
	return append(out, extras...)
}

func labelize(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
