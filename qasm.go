package qlight

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	qasmVersionRegexp = regexp.MustCompile(`^OPENQASM\s+2\.0;$`)
	qasmIncludeRegexp = regexp.MustCompile(`^include\s+"[^"]+";$`)
	qasmQregRegexp    = regexp.MustCompile(`^qreg\s+(\w+)\[(\d+)\];$`)
	qasmCregRegexp    = regexp.MustCompile(`^creg\s+\w+\[\d+\];$`)
	qasmGateRegexp    = regexp.MustCompile(`^(\w+)\s+(.+);$`)
	qasmArgRegexp     = regexp.MustCompile(`^(\w+)\[(\d+)\]$`)
)

// qasmName maps a gate kind to its OpenQASM 2.0 mnemonic.
func qasmName(kind GateKind) string {
	if kind == GateI {
		return "id"
	}
	return strings.ToLower(kind.String())
}

// ToQASM serializes the recorded gate operations as an OpenQASM 2.0
// program over a single register named q. Gates with one or two controls
// map to cx and ccx; wider control sets use the mcx mnemonic.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.n)
	for _, op := range c.ops {
		switch {
		case op.Barrier:
			if len(op.Targets) == 0 {
				sb.WriteString("barrier q;\n")
				continue
			}
			sb.WriteString("barrier " + qasmArgs(op.Targets) + ";\n")
		case len(op.Controls) > 0:
			name := "mcx"
			switch len(op.Controls) {
			case 1:
				name = "cx"
			case 2:
				name = "ccx"
			}
			args := append(append([]int(nil), op.Controls...), op.Targets[0])
			sb.WriteString(name + " " + qasmArgs(args) + ";\n")
		default:
			name := qasmName(op.Kind)
			for _, q := range op.Targets {
				fmt.Fprintf(&sb, "%s q[%d];\n", name, q)
			}
		}
	}
	return sb.String()
}

func qasmArgs(qubits []int) string {
	parts := make([]string, len(qubits))
	for i, q := range qubits {
		parts[i] = fmt.Sprintf("q[%d]", q)
	}
	return strings.Join(parts, ",")
}

// ParseQASM rebuilds a circuit from an OpenQASM 2.0 program produced by
// ToQASM. It accepts the id, x, h, z, cx, ccx, mcx and barrier
// statements over one quantum register; creg declarations and comments
// are tolerated and ignored.
func ParseQASM(src string) (*Circuit, error) {
	var c *Circuit
	for lineNo, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if i := strings.Index(line, "//"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}
		if qasmVersionRegexp.MatchString(line) || qasmIncludeRegexp.MatchString(line) || qasmCregRegexp.MatchString(line) {
			continue
		}
		if m := qasmQregRegexp.FindStringSubmatch(line); m != nil {
			if c != nil {
				return nil, errors.Errorf("line %d: multiple qreg declarations", lineNo+1)
			}
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: qreg size", lineNo+1)
			}
			c, err = NewCircuit(n)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: qreg size", lineNo+1)
			}
			continue
		}
		m := qasmGateRegexp.FindStringSubmatch(line)
		if m == nil {
			return nil, errors.Errorf("line %d: unrecognized statement %q", lineNo+1, line)
		}
		if c == nil {
			return nil, errors.Errorf("line %d: statement before qreg declaration", lineNo+1)
		}
		name := m[1]
		if name == "barrier" && strings.TrimSpace(m[2]) == "q" {
			if err := c.Barrier(); err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo+1)
			}
			continue
		}
		args, err := parseQasmArgs(m[2])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo+1)
		}
		if err := applyQasmGate(c, name, args); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo+1)
		}
	}
	if c == nil {
		return nil, errors.New("no qreg declaration found")
	}
	return c, nil
}

func parseQasmArgs(list string) ([]int, error) {
	var args []int
	for _, part := range strings.Split(list, ",") {
		m := qasmArgRegexp.FindStringSubmatch(strings.TrimSpace(part))
		if m == nil {
			return nil, errors.Errorf("bad qubit argument %q", part)
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, errors.Wrapf(err, "bad qubit index %q", part)
		}
		args = append(args, idx)
	}
	return args, nil
}

func applyQasmGate(c *Circuit, name string, args []int) error {
	switch name {
	case "id":
		return c.apply(GateI, args...)
	case "x":
		return c.X(args...)
	case "h":
		return c.H(args...)
	case "z":
		return c.Z(args...)
	case "barrier":
		return c.Barrier(args...)
	case "cx":
		if len(args) != 2 {
			return errors.Errorf("cx takes 2 qubits, got %d", len(args))
		}
		return c.CX(args[0], args[1])
	case "ccx":
		if len(args) != 3 {
			return errors.Errorf("ccx takes 3 qubits, got %d", len(args))
		}
		return c.CCX(args[0], args[1], args[2])
	case "mcx":
		if len(args) < 2 {
			return errors.Errorf("mcx takes at least 2 qubits, got %d", len(args))
		}
		return c.MCX(args[:len(args)-1], args[len(args)-1])
	default:
		return errors.Errorf("unsupported gate %q", name)
	}
}
