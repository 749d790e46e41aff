package naming

import (
	"sort"
	"strings"
)

// minSegments is dns, node, application and at least one item segment.
const minSegments = 4

type parseOptions struct {
	cacheForms bool
}

// ParseOption tunes Parse.
type ParseOption func(*parseOptions)

// WithCachedForms precomputes both serializations on the returned Name.
func WithCachedForms() ParseOption {
	return func(o *parseOptions) { o.cacheForms = true }
}

// CacheForms is WithCachedForms controlled by a flag.
func CacheForms(enabled bool) ParseOption {
	return func(o *parseOptions) { o.cacheForms = enabled }
}

// Parse splits raw into its fields according to mode.
func Parse(raw string, mode Mode, opts ...ParseOption) (Name, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	segs := strings.Split(raw, pathSep)
	if len(segs) < minSegments {
		return Name{}, &SyntaxError{Raw: raw, Mode: mode, Err: ErrTooFewFields}
	}

	var n Name
	var nodeSpec, appSpec string
	n.dns = segs[0]
	switch mode {
	case ModeParameter:
		nodeSpec = segs[1]
		appSpec = segs[2]
		n.item = strings.Join(segs[3:], pathSep)
	case ModeCommand:
		// item slashes are escaped, so a fifth segment cannot be placed
		if len(segs) > minSegments {
			return Name{}, &SyntaxError{Raw: raw, Mode: mode, Err: ErrTooManyFields}
		}
		n.item = strings.ReplaceAll(segs[1], escapedSep, pathSep)
		appSpec = segs[2]
		nodeSpec = segs[3]
	default:
		return Name{}, &SyntaxError{Raw: raw, Mode: mode, Err: ErrUnknownMode}
	}

	if err := n.setNodeSpec(nodeSpec); err != nil {
		return Name{}, &SyntaxError{Raw: raw, Mode: mode, Err: err}
	}
	if err := n.setApplicationSpec(appSpec); err != nil {
		return Name{}, &SyntaxError{Raw: raw, Mode: mode, Err: err}
	}

	if o.cacheForms {
		n = n.Rebuild()
	}
	return n, nil
}

func (n *Name) setNodeSpec(spec string) error {
	parts := strings.Split(spec, idSep)
	if parts[0] == "" {
		return ErrMissingNode
	}
	n.node = parts[0]
	if len(parts) > 1 {
		n.nodeID = parts[1]
	}
	return nil
}

// setApplicationSpec accepts name, name:id and ns::name:id.
func (n *Name) setApplicationSpec(spec string) error {
	parts := strings.Split(spec, idSep)
	switch len(parts) {
	case 2:
		n.application, n.applicationID = parts[0], parts[1]
	case 4:
		// "ns::name:id" splits into ns, "", name, id
		if parts[1] != "" {
			return ErrBadNamespaceSeparator
		}
		n.namespace, n.application, n.applicationID = parts[0], parts[2], parts[3]
	default:
		n.application = parts[0]
	}
	if n.application == "" {
		return ErrMissingApplication
	}
	return nil
}

// Compare orders names by the serialization used for mode: standard form
// for parameters, command form for commands.
func Compare(a, b Name, mode Mode) int {
	if mode == ModeCommand {
		return strings.Compare(a.CommandForm(), b.CommandForm())
	}
	return strings.Compare(a.StandardForm(), b.StandardForm())
}

// Sort orders names in place with Compare.
func Sort(names []Name, mode Mode) {
	sort.SliceStable(names, func(i, j int) bool {
		return Compare(names[i], names[j], mode) < 0
	})
}
