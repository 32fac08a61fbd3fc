package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/derekparker/trie"
	"github.com/npillmayer/flexlayout/core"
	"github.com/npillmayer/flexlayout/core/dimen"
	"github.com/npillmayer/flexlayout/engine/flex"
	"github.com/npillmayer/flexlayout/engine/flex/fixture"
	"github.com/npillmayer/flexlayout/engine/flex/flexdebug"
	"github.com/npillmayer/flexlayout/engine/flex/flexpath"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	config   *flex.Config
	fixture  *fixture.Fixture
	commands *trie.Trie
	cmdList  []*command
	laidOut  bool
}

type command struct {
	name  string
	args  string
	help  string
	nargs [2]int // min and max number of arguments
	exec  func(intp *Intp, args []string) error
}

func newCommands() []*command {
	return []*command{
		{"load", "<file>", "load an HTML fixture", [2]int{1, 1}, (*Intp).cmdLoad},
		{"layout", "<width> <height> [ltr|rtl]", "lay out the fixture; 'undef' leaves a size open",
			[2]int{2, 3}, (*Intp).cmdLayout},
		{"print", "", "print the layout of every node", [2]int{0, 0}, (*Intp).cmdPrint},
		{"select", "<xpath>", "select nodes by an XPath expression", [2]int{1, 1}, (*Intp).cmdSelect},
		{"dot", "<file>", "write the tree as a Graphviz DOT file", [2]int{1, 1}, (*Intp).cmdDot},
		{"png", "<file> [scale]", "draw the layout into a PNG file", [2]int{1, 2}, (*Intp).cmdPNG},
		{"help", "", "show this help", [2]int{0, 0}, (*Intp).cmdHelp},
		{"quit", "", "leave the CLI", [2]int{0, 0}, nil},
	}
}

// NewIntp creates an interpreter. It has no REPL attached.
func NewIntp(config *flex.Config) *Intp {
	intp := &Intp{config: config, commands: trie.New(), cmdList: newCommands()}
	for _, cmd := range intp.cmdList {
		intp.commands.Add(cmd.name, cmd)
	}
	return intp
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// resolve finds the command for a word, which may be an unambiguous prefix
// of a command name.
func (intp *Intp) resolve(word string) (*command, error) {
	word = strings.ToLower(word)
	if node, ok := intp.commands.Find(word); ok {
		return node.Meta().(*command), nil
	}
	keys := intp.commands.PrefixSearch(word)
	switch len(keys) {
	case 0:
		return nil, core.Error(core.EINVALID, "unknown command '%s', try 'help'", word)
	case 1:
		node, _ := intp.commands.Find(keys[0])
		return node.Meta().(*command), nil
	}
	return nil, core.Error(core.EINVALID, "ambiguous command '%s': %s", word, strings.Join(keys, ", "))
}

// execute runs a command line. The first word selects the command; a select
// command takes the rest of the line as its argument.
func (intp *Intp) execute(line string) (quit bool, err error) {
	word, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	cmd, err := intp.resolve(word)
	if err != nil {
		return false, err
	}
	tracer().Infof("command %s %s", cmd.name, rest)
	if cmd.exec == nil {
		return true, nil
	}
	args := strings.Fields(rest)
	if cmd.name == "select" && strings.TrimSpace(rest) != "" {
		args = []string{strings.TrimSpace(rest)}
	}
	if len(args) < cmd.nargs[0] || len(args) > cmd.nargs[1] {
		return false, core.Error(core.EINVALID, "usage: %s %s", cmd.name, cmd.args)
	}
	return false, cmd.exec(intp, args)
}

func (intp *Intp) checkFixture() error {
	if intp.fixture == nil {
		return core.Error(core.EMISSING, "no fixture loaded")
	}
	return nil
}

func (intp *Intp) checkLayout() error {
	if err := intp.checkFixture(); err != nil {
		return err
	}
	if !intp.laidOut {
		return core.Error(core.EMISSING, "fixture not laid out, use 'layout'")
	}
	return nil
}

func (intp *Intp) load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot open fixture %s", filename)
	}
	defer f.Close()
	fx, err := fixture.Parse(f, flex.NewTree(intp.config))
	if err != nil {
		return err
	}
	intp.fixture, intp.laidOut = fx, false
	pterm.Printfln("loaded %s with %d named nodes: %v", filename, len(fx.IDs()), fx.IDs())
	return nil
}

func (intp *Intp) cmdLoad(args []string) error {
	return intp.load(args[0])
}

func (intp *Intp) cmdLayout(args []string) error {
	if err := intp.checkFixture(); err != nil {
		return err
	}
	var size [2]float32
	for i := range size {
		if args[i] == "undef" || args[i] == "-" {
			size[i] = dimen.Undefined
			continue
		}
		d, isPercent, err := dimen.ParseDimen(args[i])
		if err != nil || isPercent {
			return core.Error(core.EINVALID, "illegal size '%s'", args[i])
		}
		size[i] = d
	}
	dir := flex.DirectionLTR
	if len(args) == 3 {
		switch strings.ToLower(args[2]) {
		case "ltr":
		case "rtl":
			dir = flex.DirectionRTL
		default:
			return core.Error(core.EINVALID, "illegal direction '%s'", args[2])
		}
	}
	fx := intp.fixture
	fx.Tree.CalculateLayout(fx.Root, size[0], size[1], dir)
	intp.laidOut = true
	l := fx.Tree.Layout(fx.Root)
	pterm.Printfln("root laid out to %s × %s", dimen.Format(l.Width()), dimen.Format(l.Height()))
	return nil
}

func (intp *Intp) cmdPrint(args []string) error {
	if err := intp.checkLayout(); err != nil {
		return err
	}
	fx := intp.fixture
	data := pterm.TableData{{"node", "id", "left", "top", "width", "height", "text"}}
	err := fx.Tree.Walk(fx.Root, func(n flex.NodeID, depth int) error {
		id, _ := fx.IDOf(n)
		l := fx.Tree.Layout(n)
		data = append(data, []string{
			strings.Repeat("  ", depth) + strconv.Itoa(int(n)), id,
			dimen.Format(l.Left()), dimen.Format(l.Top()),
			dimen.Format(l.Width()), dimen.Format(l.Height()),
			shortText(fx.Text(n)),
		})
		return nil
	})
	if err != nil {
		return err
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) cmdSelect(args []string) error {
	if err := intp.checkLayout(); err != nil {
		return err
	}
	fx := intp.fixture
	nodes, err := flexpath.Select(fx.Tree, fx.Root, args[0],
		flexpath.WithIDs(fx.IDOf), flexpath.WithElementName("div"))
	if err != nil {
		return err
	}
	for _, n := range nodes {
		id, _ := fx.IDOf(n)
		pterm.Printfln("%4d %-10s %s", n, id, fx.Tree.Layout(n).Rect())
	}
	pterm.Printfln("%d node(s) selected", len(nodes))
	return nil
}

func (intp *Intp) cmdDot(args []string) error {
	if err := intp.checkLayout(); err != nil {
		return err
	}
	f, err := os.Create(args[0])
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create %s", args[0])
	}
	defer f.Close()
	fx := intp.fixture
	return flexdebug.ToGraphViz(fx.Tree, fx.Root, f, flexdebug.WithLabels(fx.IDOf))
}

func (intp *Intp) cmdPNG(args []string) error {
	if err := intp.checkLayout(); err != nil {
		return err
	}
	scale := float32(1)
	if len(args) == 2 {
		s, err := strconv.ParseFloat(args[1], 32)
		if err != nil || s <= 0 {
			return core.Error(core.EINVALID, "illegal scale '%s'", args[1])
		}
		scale = float32(s)
	}
	f, err := os.Create(args[0])
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create %s", args[0])
	}
	defer f.Close()
	fx := intp.fixture
	img := flexdebug.RenderPNG(fx.Tree, fx.Root, scale, flexdebug.WithLabels(fx.IDOf))
	return flexdebug.WritePNG(f, img)
}

func (intp *Intp) cmdHelp(args []string) error {
	data := pterm.TableData{{"command", "arguments", ""}}
	for _, cmd := range intp.cmdList {
		data = append(data, []string{cmd.name, cmd.args, cmd.help})
	}
	pterm.Info.Println("Commands may be abbreviated")
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func shortText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len([]rune(s)) > 20 {
		return string([]rune(s)[:20]) + "…"
	}
	return s
}
