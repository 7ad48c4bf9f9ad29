// Package uninstall runs the interactive console uninstaller: it removes
// every trace of the Logon App from an elevated session and reports each
// phase on the console.
package uninstall

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crafted-tech/logonapp/cleanup"
	"github.com/crafted-tech/logonapp/installer"
	"github.com/crafted-tech/logonapp/platform"
)

const (
	ExitOK        = 0
	ExitNotAdmin  = 1
	logPrefix     = "logonapp-uninstall"
	pressEnter    = "Press Enter to exit..."
	bannerRule    = "========================================="
	bannerTitle   = "           Uninstaller Tool              "
	footerTitle   = "           Cleanup Complete              "
	bannerPadding = 2
)

// Config holds the uninstaller's collaborators.
type Config struct {
	In  io.Reader
	Out io.Writer

	// Styled enables colors and borders. Set it only for terminals.
	Styled bool

	IsElevated        func() bool
	InstalledProducts func() ([]platform.Product, error)
	Factory           *cleanup.Factory
	Patterns          cleanup.Matcher

	// OpenLog creates the run's logger, teeing to console.
	OpenLog func(console io.Writer) (*installer.Logger, error)
}

// DefaultConfig returns a config wired to the host system.
func DefaultConfig(in io.Reader, out io.Writer, styled bool) Config {
	return Config{
		In:                in,
		Out:               out,
		Styled:            styled,
		IsElevated:        platform.IsElevated,
		InstalledProducts: platform.InstalledProducts,
		Factory:           cleanup.NewFactory(cleanup.DefaultTargets(), platform.SystemRegistry()),
		Patterns:          cleanup.DefaultPatterns,
		OpenLog: func(console io.Writer) (*installer.Logger, error) {
			return installer.NewLogger(logPrefix, installer.WithConsole(console))
		},
	}
}

type phase struct {
	name string
	msg  string
	plan cleanup.Plan
}

var phases = []phase{
	{"V3 Files Cleanup", "Executing V3 files cleanup...", cleanup.PlanLegacyFiles},
	{"V4 Files Cleanup", "Executing V4 files cleanup...", cleanup.PlanDirectories},
	{"Registry Cleanup", "Executing registry cleanup...", cleanup.PlanRegistry},
	{"AuthPoint Registry Cleanup", "Executing AuthPoint registry cleanup...", cleanup.PlanAuthPointRegistry},
}

// Run executes the uninstaller and returns the process exit code. Phase
// failures are reported but do not change the exit code.
func Run(cfg Config) int {
	ui := newConsole(cfg.Out, cfg.Styled)
	stdin := bufio.NewReader(cfg.In)

	if !cfg.IsElevated() {
		ui.errorLine("This program requires administrator privileges.")
		ui.errorLine("Please run as administrator and try again.")
		ui.println(pressEnter)
		waitForEnter(stdin)
		return ExitNotAdmin
	}

	ui.banner(bannerTitle)

	log, err := cfg.OpenLog(cfg.Out)
	if err != nil {
		log = installer.NewConsoleLogger(cfg.Out)
		log.Warn("Could not create log file: %v", err)
	}

	logProducts(cfg, log)

	for _, p := range phases {
		ui.status(p.name, runPhase(cfg.Factory, p, log))
	}

	log.Close()
	if path := log.Path(); path != "" {
		ui.println("Log file: " + path)
	}
	ui.banner(footerTitle)
	ui.println(pressEnter)
	waitForEnter(stdin)
	return ExitOK
}

// runPhase executes one plan, turning a panic into a failed phase so the
// remaining phases still run.
func runPhase(f *cleanup.Factory, p phase, log *installer.Logger) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Exception occurred: %v", r)
			ok = false
		}
	}()

	log.Info("%s", p.msg)
	m, err := f.Build(p.plan, log)
	if err != nil {
		log.Error("Could not build %s: %v", p.name, err)
		return false
	}
	return m.ExecuteAll()
}

// logProducts lists installed products that look like ours. It is purely
// informational.
func logProducts(cfg Config, log *installer.Logger) {
	if cfg.InstalledProducts == nil {
		return
	}
	products, err := cfg.InstalledProducts()
	if err != nil {
		log.Trace("Could not enumerate installed products: %v", err)
		return
	}
	for _, p := range products {
		if cfg.Patterns.Match(p.Name) {
			log.Info("Installed product: %s %s %s", p.Name, p.Version, p.Code)
		}
	}
}

func waitForEnter(r *bufio.Reader) {
	_, _ = r.ReadString('\n')
}

// console prints the uninstaller's own lines, as opposed to log output.
type console struct {
	out     io.Writer
	styled  bool
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newConsole(out io.Writer, styled bool) *console {
	r := lipgloss.NewRenderer(out)
	return &console{
		out:    out,
		styled: styled,
		title: r.NewStyle().
			Bold(true).
			Border(lipgloss.DoubleBorder(), true, false).
			Padding(0, bannerPadding).
			Foreground(lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7FB3E6"}),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

func (c *console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *console) banner(title string) {
	if !c.styled {
		c.println(bannerRule)
		c.println(title)
		c.println(bannerRule)
		return
	}
	c.println(c.title.Render(strings.TrimSpace(title)))
}

func (c *console) errorLine(msg string) {
	prefix := installer.LevelError.Prefix()
	if c.styled {
		prefix = c.failure.Render(prefix)
	}
	c.println(prefix + " " + msg)
}

func (c *console) status(name string, ok bool) {
	tag, style := "[SUCCESS]", c.success
	if !ok {
		tag, style = "[FAILED]", c.failure
	}
	if c.styled {
		tag = style.Render(tag)
	}
	c.println(tag + " " + name)
	c.println("")
}
