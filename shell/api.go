package shell

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/game"
	"github.com/domino14/gomoku/scenario"
)

const defaultGenCount = 10

// boardAndStatus is what most commands answer with.
func (sc *ShellController) boardAndStatus(lines ...string) *Response {
	var sb strings.Builder
	sb.WriteString(sc.game.Board().ToDisplayText())
	for _, l := range lines {
		if l == "" {
			continue
		}
		sb.WriteString(l + "\n")
	}
	sb.WriteString(sc.game.Status())
	return msg(sb.String())
}

// computerReply lets the computer move if it is its turn.
func (sc *ShellController) computerReply() (string, error) {
	if sc.game.Playing() != game.Playing || sc.game.OnTurn() != sc.game.ComputerColor() {
		return "", nil
	}
	m, err := sc.game.PlayComputer(sc.engine)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("computer (%v) plays %v", sc.game.ComputerColor(), m), nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	human := board.Black
	if len(cmd.args) > 0 {
		c, err := board.ParseColor(cmd.args[0])
		if err != nil {
			return nil, err
		}
		human = c
	}
	sc.game.Restart(human, sc.engine)
	reply, err := sc.computerReply()
	if err != nil {
		return nil, err
	}
	return sc.boardAndStatus(reply), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return sc.boardAndStatus(), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("play <coord>, e.g. play E5")
	}
	m, err := board.ParseMove(cmd.args[0], sc.game.Board().Dim())
	if err != nil {
		return nil, err
	}
	if err := sc.game.PlayHuman(m); err != nil {
		return nil, err
	}
	reply, err := sc.computerReply()
	if err != nil {
		return nil, err
	}
	return sc.boardAndStatus(reply), nil
}

// aiplay has the engine move for whichever side is to play.
func (sc *ShellController) aiplay(cmd *shellcmd) (*Response, error) {
	if sc.game.Playing() != game.Playing {
		return nil, game.ErrGameOver
	}
	if sc.game.OnTurn() == sc.game.ComputerColor() {
		reply, err := sc.computerReply()
		if err != nil {
			return nil, err
		}
		return sc.boardAndStatus(reply), nil
	}
	color := sc.game.OnTurn()
	m := sc.engine.SelectMove(sc.game.Board().Copy(), color)
	if err := sc.game.PlayHuman(m); err != nil {
		return nil, err
	}
	line := fmt.Sprintf("engine plays %v for %v", m, color)
	reply, err := sc.computerReply()
	if err != nil {
		return nil, err
	}
	return sc.boardAndStatus(line, reply), nil
}

func (sc *ShellController) gen(cmd *shellcmd) (*Response, error) {
	if sc.game.Playing() != game.Playing {
		return nil, game.ErrGameOver
	}
	n := defaultGenCount
	if v, ok := cmd.options["n"]; ok {
		var err error
		if n, err = strconv.Atoi(v); err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("gen -n needs a positive count, got %d", n)
		}
	}
	moves, priorities := sc.engine.Candidates(sc.game.Board(), sc.game.OnTurn())
	if n < len(moves) {
		moves = moves[:n]
	}
	rows := lo.Map(moves, func(m board.Move, i int) string {
		return fmt.Sprintf("%3d: %-5s%12.1f", i+1, m, priorities[i])
	})
	return msg("     Move    Priority\n" + strings.Join(rows, "\n")), nil
}

func (sc *ShellController) next(cmd *shellcmd) (*Response, error) {
	sc.game.NextRound(sc.engine)
	reply, err := sc.computerReply()
	if err != nil {
		return nil, err
	}
	return sc.boardAndStatus(reply), nil
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		if cmd.args[0] != "reset" {
			return nil, errors.New("score [reset]")
		}
		sc.game.ResetTally()
	}
	return msg(sc.game.Tally().String()), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("load <file> <name>")
	}
	scenarios, err := scenario.LoadFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	s, err := scenario.Find(scenarios, cmd.args[1])
	if err != nil {
		return nil, err
	}
	if err := sc.game.SetPosition(s.Board(), s.Color()); err != nil {
		return nil, err
	}
	sc.engine.ResetBoard()
	return sc.boardAndStatus("loaded " + s.Name), nil
}

func (sc *ShellController) save(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("save <file> <name>")
	}
	path, name := cmd.args[0], cmd.args[1]
	var scenarios []*scenario.Scenario
	if _, err := os.Stat(path); err == nil {
		if scenarios, err = scenario.LoadFile(path); err != nil {
			return nil, err
		}
	}
	s := scenario.FromBoard(name, sc.game.Board(), sc.game.OnTurn())
	_, idx, found := lo.FindIndexOf(scenarios, func(old *scenario.Scenario) bool {
		return old.Name == name
	})
	if found {
		scenarios[idx] = s
	} else {
		scenarios = append(scenarios, s)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := scenario.Write(f, scenarios); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("saved %s to %s", name, path)), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	if len(cmd.args) == 0 {
		usage(&sb)
	} else {
		usageTopic(&sb, cmd.args[0])
	}
	return msg(sb.String()), nil
}
