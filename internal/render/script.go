// Package render turns a generated plan into reviewable output — a
// shell script or a yaml step list. Nothing here touches a host.
package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/isabella232/flocker/internal/effect"
	"github.com/isabella232/flocker/internal/executor"
)

// heredocMarker delimits Put content in rendered scripts. Quoted at the
// opening line, so the shell performs no expansion inside the content.
const heredocMarker = "FLOCKER_PROVISION_EOF"

// scriptWriter renders effects into a shell script body. It implements
// executor.Target so rendering exercises the same contract a real
// transport would.
type scriptWriter struct {
	b strings.Builder
}

func (w *scriptWriter) Run(_ context.Context, command string) error {
	w.b.WriteString(command)
	w.b.WriteString("\n")
	return nil
}

func (w *scriptWriter) Put(_ context.Context, content, path string) error {
	marker := heredocMarker
	for strings.Contains(content, marker) {
		marker += "_"
	}
	fmt.Fprintf(&w.b, "mkdir -p \"$(dirname '%s')\"\n", path)
	fmt.Fprintf(&w.b, "cat > '%s' <<'%s'\n", path, marker)
	w.b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		w.b.WriteString("\n")
	}
	w.b.WriteString(marker)
	w.b.WriteString("\n")
	return nil
}

// Script renders a plan as a POSIX shell script that stops at the first
// failing step.
func Script(seq effect.Sequence) string {
	w := &scriptWriter{}
	w.b.WriteString("#!/bin/sh\nset -e\n")
	// scriptWriter never fails and Apply adds nothing else.
	_ = executor.Apply(context.Background(), w, seq)
	return w.b.String()
}
