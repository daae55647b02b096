package query

import (
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/collocate/treebank"
)

const (
	// quit is the input that ends the prompt loop
	quit = "quit"

	maxSuggestions = 12
)

// Handler runs an interactive prompt over a treebank index.
type Handler struct {
	Index treebank.Index
	Out   io.Writer

	suggestions []prompt.Suggest
}

func NewHandler(idx treebank.Index, out io.Writer) *Handler {
	h := &Handler{Index: idx, Out: out}

	counts := idx.FormCounts()
	forms := idx.Forms()

	h.suggestions = make([]prompt.Suggest, 0, len(forms))
	for _, form := range forms {
		h.suggestions = append(h.suggestions, prompt.Suggest{Text: form, Description: fmt.Sprintf("%d bigrams", counts[form])})
	}

	return h
}

func (h *Handler) Run() error {

	fmt.Fprintf(h.Out, "🔑 Type a form to list its relations, %s to exit\n", quit)

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer,
			prompt.OptionTitle("treebank"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(maxSuggestions),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		in = strings.TrimSpace(in)
		if in == quit {
			return nil
		}

		if in == "" {
			continue
		}

		history = append(history, in)
		fmt.Fprint(h.Out, h.Answer(in))
	}
}

// Answer lists the bigrams in which form is dependent and those in which it
// is governor.
func (h *Handler) Answer(form string) string {
	govs := h.Index.Governors(form)
	deps := h.Index.Dependents(form)

	if len(govs) == 0 && len(deps) == 0 {
		return fmt.Sprintf("no bigram for %q\n", form)
	}

	var sb strings.Builder
	writeLinks(&sb, fmt.Sprintf("%s as dependent", form), govs)
	writeLinks(&sb, fmt.Sprintf("%s as governor", form), deps)
	return sb.String()
}

func writeLinks(sb *strings.Builder, title string, links []treebank.Link) {
	if len(links) == 0 {
		return
	}

	fmt.Fprintf(sb, "%s (%d):\n", title, len(links))
	for _, l := range links {
		fmt.Fprintf(sb, "  %s\t%s\n", l.Bigram, l.Relations)
	}
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	word := in.GetWordBeforeCursor()

	if word == "" {
		return []prompt.Suggest{}
	}

	return prompt.FilterHasPrefix(h.suggestions, word, false)
}
