package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/plus2048/internal/config"
	"github.com/vovakirdan/plus2048/internal/games/t2048/engine"
	"github.com/vovakirdan/plus2048/internal/input"
)

var (
	flagSimBoard string
	flagSimLevel int
	flagSimLoad  string
)

var simCmd = &cobra.Command{
	Use:   "sim [script]",
	Short: "Replay a move script without a terminal UI",
	Long: `Run a script of moves against a seeded board and print the board
after every shift. Reads the script from a file, or stdin when the
argument is omitted or "-".

Script lines:
  <phrase>          - A move command: "up", "swipe left", "go north"
  head <dx> <dy> [n] - Feed n head-pose samples (default 1)
  reset             - Start the board again
  board             - Print the board
  # ...             - Comment

The same --seed always replays the same game. Without --seed the seed
is 1.

A --load file installs a fixed starting board:
  board:
    - [2, 2, 0, 0]
    - [0, 0, 0, 0]
    - [0, 0, 0, 0]
    - [0, 0, 0, 4]
  holes:
    - {row: 1, col: 2}

Examples:
  plus2048 sim moves.txt
  plus2048 sim --board endless --seed 42 moves.txt
  plus2048 sim --board campaign --level 5 < moves.txt
  echo "left" | plus2048 sim --load start.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimBoard, "board", "blackhole", "Board to play: endless, blackhole or campaign")
	simCmd.Flags().IntVar(&flagSimLevel, "level", 1, "Campaign level for --board campaign (1-based)")
	simCmd.Flags().StringVar(&flagSimLoad, "load", "", "YAML file with a starting board and holes")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// boardFile is the --load format.
type boardFile struct {
	Board [][]int             `yaml:"board"`
	Holes []config.CellConfig `yaml:"holes"`
}

func runSim(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sim"})

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	var (
		session *engine.Session
		err     error
	)
	rng := rand.New(rand.NewSource(seed))
	if flagSimLoad != "" {
		session, err = loadSession(flagSimLoad, rng)
	} else {
		var rules engine.Rules
		if rules, err = simRules(logger); err == nil {
			session, err = engine.NewSession(rules, rng)
		}
	}
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("sim: %w", err)
		}
		defer f.Close()
		in = f
	}

	logger.Info("starting", "seed", seed, "size", session.Rules().Size, "holes", len(session.Snapshot().Hazards))
	if err := runScript(cmd.OutOrStdout(), session, in, logger); err != nil {
		return err
	}

	st := session.Stats()
	logger.Info("finished",
		"score", session.Score(),
		"moves", st.Moves,
		"merges", st.Merges,
		"annihilations", st.Annihilations,
		"lost", session.Lost(),
	)
	return nil
}

// simRules picks the board from the game config under the current flags.
func simRules(logger *log.Logger) (engine.Rules, error) {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		logger.Warn("using built-in config", "error", err)
		cfg = config.DefaultT2048Config()
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return engine.Rules{}, err
		}
		config.ApplyT2048Preset(&cfg, preset)
	}

	switch flagSimBoard {
	case "endless":
		return cfg.Endless.Rules(), nil
	case "blackhole":
		return cfg.BlackHole.Rules(), nil
	case "campaign":
		if flagSimLevel < 1 || flagSimLevel > len(cfg.Campaign) {
			return engine.Rules{}, fmt.Errorf("sim: level %d out of range (1-%d)", flagSimLevel, len(cfg.Campaign))
		}
		return cfg.Campaign[flagSimLevel-1].Board.Rules(), nil
	default:
		return engine.Rules{}, fmt.Errorf("sim: unknown board %q", flagSimBoard)
	}
}

// loadSession starts a session on the board stored in path.
func loadSession(path string, rng engine.RNG) (*engine.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	var bf boardFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("sim: parse %s: %w", path, err)
	}

	session, err := engine.NewSession(engine.Rules{Size: len(bf.Board)}, rng)
	if err != nil {
		return nil, fmt.Errorf("sim: %s: %w", path, err)
	}
	holes := make([]engine.Position, len(bf.Holes))
	for i, h := range bf.Holes {
		holes[i] = engine.P(h.Row, h.Col)
	}
	if err := session.Load(bf.Board, holes); err != nil {
		return nil, fmt.Errorf("sim: %s: %w", path, err)
	}
	return session, nil
}

// runScript plays every line of r against s and writes the board after
// each shift. Lines that name no move are logged and skipped.
func runScript(w io.Writer, s *engine.Session, r io.Reader, logger *log.Logger) error {
	head := input.NewHeadTracker()
	fmt.Fprint(w, s.Board())

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "head":
			dx, dy, count, err := parseHead(fields[1:])
			if err != nil {
				logger.Warn("skipping line", "line", n, "error", err)
				continue
			}
			for range count {
				if res, ok := head.FeedTo(s, dx, dy); ok {
					printShift(w, s, line, res)
				}
			}
		case "reset":
			if err := s.Reset(); err != nil {
				return fmt.Errorf("sim: line %d: %w", n, err)
			}
			head.Reset()
			fmt.Fprintf(w, "> reset\n%s", s.Board())
		case "board":
			fmt.Fprint(w, s.Board())
		default:
			res, err := input.Command(s, line)
			if err != nil {
				logger.Warn("skipping line", "line", n, "error", err)
				continue
			}
			printShift(w, s, line, res)
		}
	}
	return sc.Err()
}

func parseHead(args []string) (dx, dy float64, count int, err error) {
	if len(args) < 2 || len(args) > 3 {
		return 0, 0, 0, fmt.Errorf("head wants <dx> <dy> [n], got %d values", len(args))
	}
	if dx, err = strconv.ParseFloat(args[0], 64); err != nil {
		return 0, 0, 0, err
	}
	if dy, err = strconv.ParseFloat(args[1], 64); err != nil {
		return 0, 0, 0, err
	}
	count = 1
	if len(args) == 3 {
		if count, err = strconv.Atoi(args[2]); err != nil || count < 1 {
			return 0, 0, 0, fmt.Errorf("bad sample count %q", args[2])
		}
	}
	return dx, dy, count, nil
}

func printShift(w io.Writer, s *engine.Session, line string, res engine.ShiftResult) {
	var merges, holes int
	for _, o := range res.Outcomes {
		switch o.Kind {
		case engine.KindMerge:
			merges++
		case engine.KindAnnihilate:
			holes++
		}
	}
	spawn := "-"
	if res.Spawn != nil {
		spawn = res.Spawn.Position.String()
	}

	fmt.Fprintf(w, "> %s\n", line)
	fmt.Fprintf(w, "dir=%s changed=%t lost=%t score=%d delta=%+d merges=%d holes=%d spawn=%s\n",
		res.Direction, res.Changed, res.Lost, res.Score, res.ScoreDelta, merges, holes, spawn)
	fmt.Fprint(w, s.Board())
}
