package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/gomoku/board"
)

var commandNames = []string{
	"new", "show", "play", "ai", "gen", "analyze", "next", "score",
	"load", "save", "help", "exit",
}

var helpTopics = []string{"play", "analyze", "load"}

// ShellCompleter implements readline.AutoCompleter.
type ShellCompleter struct {
	sc *ShellController
}

// Do returns the suffixes that complete the word under the cursor, and the
// length of what has been typed of it.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	if !endsWithSpace && len(fields) > 0 {
		prefix = fields[len(fields)-1]
	}
	var completions []string
	switch {
	case len(fields) == 0 || (len(fields) == 1 && !endsWithSpace):
		completions = commandNames
	case fields[0] == "new":
		completions = []string{"black", "white"}
	case fields[0] == "help":
		completions = helpTopics
	case fields[0] == "score":
		completions = []string{"reset"}
	case fields[0] == "play" && c.sc != nil:
		moves, _ := c.sc.engine.Candidates(c.sc.game.Board(), c.sc.game.OnTurn())
		completions = lo.Map(moves, func(m board.Move, _ int) string {
			return m.String()
		})
	}

	matches := lo.Filter(completions, func(s string, _ int) bool {
		return strings.HasPrefix(s, prefix)
	})
	return lo.Map(matches, func(s string, _ int) []rune {
		return []rune(s[len(prefix):] + " ")
	}), len(prefix)
}
