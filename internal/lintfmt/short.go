package lintfmt

import (
	"fmt"
	"io"

	"shebang/internal/lint"
	"shebang/internal/source"
)

// Short renders one line per issue: path:line:col: severity rule: message.
func Short(w io.Writer, bag *lint.Bag, fs *source.FileSet, opts Options) {
	for _, issue := range bag.Items() {
		path, pos := position(fs, issue.Primary)
		sev := severityWord(issue.Severity)
		if opts.Color {
			sev = severityStyle(issue.Severity).Sprint(sev)
		}
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			opts.displayPath(path), pos.Line, pos.Col, sev, issue.Code.Name(), issue.Message)
	}
}
