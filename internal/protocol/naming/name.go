package naming

import "strings"

const (
	pathSep      = "/"
	escapedSep   = "%"
	idSep        = ":"
	namespaceSep = "::"
)

// Name is a parsed hierarchical name. Empty optional fields are absent.
type Name struct {
	dns           string
	node          string
	nodeID        string
	namespace     string
	application   string
	applicationID string
	item          string

	// set only by WithCachedForms or Rebuild; cleared by every With* copy
	cached   bool
	standard string
	command  string
}

// New builds a name from its required fields.
func New(dns, node, application, item string) Name {
	return Name{dns: dns, node: node, application: application, item: item}
}

func (n Name) DNS() string           { return n.dns }
func (n Name) Node() string          { return n.node }
func (n Name) NodeID() string        { return n.nodeID }
func (n Name) Namespace() string     { return n.namespace }
func (n Name) Application() string   { return n.application }
func (n Name) ApplicationID() string { return n.applicationID }
func (n Name) Item() string          { return n.item }

func (n Name) WithDNS(v string) Name           { n.dns = v; return n.uncached() }
func (n Name) WithNode(v string) Name          { n.node = v; return n.uncached() }
func (n Name) WithNodeID(v string) Name        { n.nodeID = v; return n.uncached() }
func (n Name) WithNamespace(v string) Name     { n.namespace = v; return n.uncached() }
func (n Name) WithApplication(v string) Name   { n.application = v; return n.uncached() }
func (n Name) WithApplicationID(v string) Name { n.applicationID = v; return n.uncached() }
func (n Name) WithItem(v string) Name          { n.item = v; return n.uncached() }

func (n Name) uncached() Name {
	n.cached = false
	n.standard = ""
	n.command = ""
	return n
}

// Rebuild returns a copy carrying both serializations precomputed from
// the current fields.
func (n Name) Rebuild() Name {
	n.standard = n.buildStandard()
	n.command = n.buildCommand()
	n.cached = true
	return n
}

// Cached reports whether the serializations were precomputed.
func (n Name) Cached() bool {
	return n.cached
}

// NodeSpec returns node[:id].
func (n Name) NodeSpec() string {
	return joinID(n.node, n.nodeID)
}

// ApplicationSpec returns app[:id].
func (n Name) ApplicationSpec() string {
	return joinID(n.application, n.applicationID)
}

// ApplicationFull returns [ns::]app[:id].
func (n Name) ApplicationFull() string {
	if n.namespace == "" {
		return n.ApplicationSpec()
	}
	return n.namespace + namespaceSep + n.ApplicationSpec()
}

// StandardForm returns dns/node[:id]/[ns::]app[:id]/item.
func (n Name) StandardForm() string {
	if n.cached {
		return n.standard
	}
	return n.buildStandard()
}

// CommandForm returns dns/item/[ns::]app[:id]/node[:id] with every '/' in
// the item written as '%'.
func (n Name) CommandForm() string {
	if n.cached {
		return n.command
	}
	return n.buildCommand()
}

func (n Name) String() string {
	return n.StandardForm()
}

func (n Name) buildStandard() string {
	return strings.Join([]string{n.dns, n.NodeSpec(), n.ApplicationFull(), n.item}, pathSep)
}

func (n Name) buildCommand() string {
	item := strings.ReplaceAll(n.item, pathSep, escapedSep)
	return strings.Join([]string{n.dns, item, n.ApplicationFull(), n.NodeSpec()}, pathSep)
}

// Field returns the field shown at a tree depth for mode.
//
//	level  parameter         command
//	0      dns               dns
//	1      node spec         item
//	2      application spec  application spec
//	3      item              node spec
func (n Name) Field(level int, mode Mode) (string, bool) {
	switch level {
	case 0:
		return n.dns, true
	case 1:
		if mode == ModeCommand {
			return n.item, true
		}
		return n.NodeSpec(), true
	case 2:
		return n.ApplicationSpec(), true
	case 3:
		if mode == ModeCommand {
			return n.NodeSpec(), true
		}
		return n.item, true
	default:
		return "", false
	}
}

// Validate checks that a built name can be serialized and parsed back to
// the same fields.
func (n Name) Validate() error {
	if n.node == "" {
		return ErrMissingNode
	}
	if n.application == "" {
		return ErrMissingApplication
	}
	if n.namespace != "" && n.applicationID == "" {
		return ErrNamespaceWithoutID
	}
	if strings.Contains(n.dns, pathSep) {
		return ErrInvalidCharacter
	}
	for _, v := range []string{n.node, n.nodeID, n.namespace, n.application, n.applicationID} {
		if strings.ContainsAny(v, pathSep+idSep) {
			return ErrInvalidCharacter
		}
	}
	return nil
}

// Equal compares the fields of two names, ignoring cached forms.
func (n Name) Equal(o Name) bool {
	return n.uncached() == o.uncached()
}

func joinID(name, id string) string {
	if id == "" {
		return name
	}
	return name + idSep + id
}
