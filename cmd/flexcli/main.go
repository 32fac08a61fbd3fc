/*
Command flexcli is an interactive shell for experimenting with flex layouts.

Layout trees are loaded from HTML fixtures (see package fixture), laid out
and inspected:

	flex > load testdata/row.html
	flex > layout 300 100 rtl
	flex > select //div[@width > 50]
	flex > png row.png

Commands may be abbreviated to any unambiguous prefix.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/flexlayout/engine/flex"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'flex.cli'
func tracer() tracing.Trace {
	return tracing.Select("flex.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fixtureFile := flag.String("fixture", "", "HTML fixture to load")
	scale := flag.Float64("scale", 1, "Point scale factor for pixel rounding")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.flex.cli":     *tlevel,
		"trace.flex.layout":  "Error",
		"trace.flex.fixture": *tlevel,
		"trace.flex.measure": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the flex layout CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("flex > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	config := flex.NewConfig()
	config.SetPointScaleFactor(float32(*scale))
	intp := NewIntp(config)
	intp.repl = repl
	//
	// load fixture to use
	if *fixtureFile != "" {
		if err := intp.load(*fixtureFile); err != nil { // fixture provided by flag
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
