package script

import (
	"fmt"
	"strings"

	"github.com/pcbmate/pcbmate/pkg/host"
)

// Invoker queues host action invocations as DelphiScript statements and
// replays them in one scripted Altium Designer run. Inside the tool the
// statements execute strictly in order, each RunProcess blocking until
// the workspace manager completes it, which preserves the sequential
// dispatch semantics the callers rely on.
type Invoker struct {
	statements []string
}

var _ host.Invoker = (*Invoker)(nil)

// Invoke queues one action. The parameter set is reset before the new
// values are added, in the order supplied.
func (v *Invoker) Invoke(action string, params []host.Param) {
	var sb strings.Builder
	sb.WriteString("  ResetParameters;\n")
	for _, p := range params {
		fmt.Fprintf(&sb, "  AddStringParameter('%s', '%s');\n", quote(p.Key), quote(p.Value))
	}
	fmt.Fprintf(&sb, "  RunProcess('%s');\n", quote(action))
	v.queue(sb.String())
}

func (v *Invoker) queue(statement string) {
	v.statements = append(v.statements, statement)
}

// Empty reports whether any invocation was queued.
func (v *Invoker) Empty() bool { return len(v.statements) == 0 }

// Procedure returns the queued invocations as a DelphiScript procedure
// body followed by a zero return code, ready for Bridge.Run.
func (v *Invoker) Procedure() string {
	var sb strings.Builder
	sb.WriteString("Begin\n")
	for _, st := range v.statements {
		sb.WriteString(st)
	}
	sb.WriteString("  return_code := 0;\n  End")
	return sb.String()
}

// quote escapes DelphiScript single quotes.
func quote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
