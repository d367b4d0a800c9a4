package cli

import (
	"fmt"
	"io"

	tm "github.com/buger/goterm"
	nuts "github.com/vaudience/go-nuts"
)

func (a *app) color(s string, color int) string {
	if a.noColor {
		return s
	}
	return tm.Color(s, color)
}

func (a *app) bold(s string) string {
	if a.noColor {
		return s
	}
	return tm.Bold(s)
}

func (a *app) ok(s string) string   { return a.color(s, tm.GREEN) }
func (a *app) warn(s string) string { return a.color(s, tm.YELLOW) }
func (a *app) fail(s string) string { return a.color(s, tm.RED) }

// newTable returns a tab-aligned table writer; callers print its String().
func newTable() *tm.Table {
	return tm.NewTable(0, 8, 2, ' ', 0)
}

func drawLogo(out io.Writer) {
	fmt.Fprintln(out)
	lines := []string{
		"   _____ __             __   __              __      ",
		"  / ___// /_____  _____/ /__/ /______ ______/ /____  ",
		"  \\__ \\/ __/ __ \\/ ___/ //_/ //_/ __ `/ ___/ __/ _ \\ ",
		" ___/ / /_/ /_/ / /__/ ,< / ,< / /_/ / /  / /_/  __/ ",
		"/____/\\__/\\____/\\___/_/|_/_/|_|\\__,_/_/   \\__/\\___/  ",
		"..................................................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
