package uci

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the six-field FEN the parser substitutes for "startpos".
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrEmptyLine marks a blank input line; callers skip it silently.
var ErrEmptyLine = errors.New("empty line")

// Parse tokenizes one input line and validates it into a typed Command.
// The keyword must be the first token. Errors describe what was malformed;
// per the protocol they are never fatal.
func Parse(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, ErrEmptyLine
	}
	keyword := strings.ToLower(tokens[0])
	args := tokens[1:]

	switch keyword {
	case "uci":
		return Command{Kind: KindUci}, nil
	case "isready":
		return Command{Kind: KindIsReady}, nil
	case "ucinewgame":
		return Command{Kind: KindUciNewGame}, nil
	case "stop":
		return Command{Kind: KindStop}, nil
	case "ponderhit":
		return Command{Kind: KindPonderHit}, nil
	case "quit":
		return Command{Kind: KindQuit}, nil
	case "debug":
		return parseDebug(args)
	case "setoption":
		return parseSetOption(args)
	case "position":
		return parsePosition(args)
	case "go":
		return parseGo(args)
	default:
		return Command{}, fmt.Errorf("unknown command %q", keyword)
	}
}

func parseDebug(args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, errors.New("debug requires exactly one of on|off")
	}
	switch strings.ToLower(args[0]) {
	case "on":
		return Command{Kind: KindDebug, DebugOn: true}, nil
	case "off":
		return Command{Kind: KindDebug, DebugOn: false}, nil
	default:
		return Command{}, fmt.Errorf("debug argument %q is not on|off", args[0])
	}
}

// parseSetOption handles "setoption name <NAME> [value <VALUE>]". Names
// and values may span several tokens.
func parseSetOption(args []string) (Command, error) {
	if len(args) == 0 || strings.ToLower(args[0]) != "name" {
		return Command{}, errors.New("setoption requires a name")
	}
	var nameParts, valueParts []string
	inValue := false
	for _, tok := range args[1:] {
		if !inValue && strings.ToLower(tok) == "value" {
			inValue = true
			continue
		}
		if inValue {
			valueParts = append(valueParts, tok)
		} else {
			nameParts = append(nameParts, tok)
		}
	}
	if len(nameParts) == 0 {
		return Command{}, errors.New("setoption requires a name")
	}
	return Command{
		Kind:  KindSetOption,
		Name:  strings.Join(nameParts, " "),
		Value: strings.Join(valueParts, " "),
	}, nil
}

func parsePosition(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, errors.New("position requires startpos or fen")
	}
	var fen string
	rest := args
	switch strings.ToLower(args[0]) {
	case "startpos":
		fen = FENStartPos
		rest = args[1:]
	case "fen":
		if len(args) < 7 {
			return Command{}, errors.New("position fen requires six fields")
		}
		fen = strings.Join(args[1:7], " ")
		if err := ValidateFEN(fen); err != nil {
			return Command{}, err
		}
		rest = args[7:]
	default:
		return Command{}, fmt.Errorf("position subcommand %q is not startpos|fen", args[0])
	}

	var moves []string
	if len(rest) > 0 {
		if strings.ToLower(rest[0]) != "moves" {
			return Command{}, fmt.Errorf("unexpected token %q after position", rest[0])
		}
		for _, tok := range rest[1:] {
			move := strings.ToLower(tok)
			if !ValidMoveToken(move) {
				return Command{}, fmt.Errorf("invalid move %q", tok)
			}
			moves = append(moves, move)
		}
	}
	return Command{Kind: KindPosition, FEN: fen, Moves: moves}, nil
}

func parseGo(args []string) (Command, error) {
	var ga GoArgs
	i := 0
	nextInt := func(name string) (int, error) {
		i++
		if i >= len(args) {
			return 0, fmt.Errorf("go %s requires an integer", name)
		}
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return 0, fmt.Errorf("go %s argument %q is not an integer", name, args[i])
		}
		return n, nil
	}
	for ; i < len(args); i++ {
		var err error
		switch strings.ToLower(args[i]) {
		case "searchmoves":
			for i+1 < len(args) && ValidMoveToken(strings.ToLower(args[i+1])) {
				i++
				ga.SearchMoves = append(ga.SearchMoves, strings.ToLower(args[i]))
			}
			if len(ga.SearchMoves) == 0 {
				return Command{}, errors.New("go searchmoves requires at least one move")
			}
		case "ponder":
			ga.Ponder = true
		case "infinite":
			ga.Infinite = true
		case "wtime":
			ga.WTime, err = nextInt("wtime")
		case "btime":
			ga.BTime, err = nextInt("btime")
		case "winc":
			ga.WInc, err = nextInt("winc")
		case "binc":
			ga.BInc, err = nextInt("binc")
		case "movestogo":
			ga.MovesToGo, err = nextInt("movestogo")
		case "depth":
			ga.Depth, err = nextInt("depth")
		case "nodes":
			ga.Nodes, err = nextInt("nodes")
		case "mate":
			ga.Mate, err = nextInt("mate")
		case "movetime":
			ga.MoveTime, err = nextInt("movetime")
		default:
			return Command{}, fmt.Errorf("unknown go subcommand %q", args[i])
		}
		if err != nil {
			return Command{}, err
		}
	}
	return Command{Kind: KindGo, Go: ga}, nil
}

// ValidMoveToken reports whether the token is a well-formed long algebraic
// move: source square, destination square, optional promotion letter.
func ValidMoveToken(s string) bool {
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' ||
		s[2] < 'a' || s[2] > 'h' || s[3] < '1' || s[3] > '8' {
		return false
	}
	if len(s) == 5 {
		switch s[4] {
		case 'q', 'r', 'b', 'n':
		default:
			return false
		}
	}
	return true
}
