package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/curator.txt
var curatorRaw string

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Curator string
}

// LoadPromptSet returns the trimmed prompt strings. Safe to call
// concurrently; the embed is compile-time and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Curator: strings.TrimSpace(curatorRaw),
	}
}
