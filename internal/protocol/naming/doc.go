// Package naming parses and builds hierarchical service and command names.
//
// A name has two canonical orderings:
//
//	standard: dns/node[:id]/[ns::]app[:id]/item
//	command:  dns/item/[ns::]app[:id]/node[:id]
//
// In the command ordering every '/' inside the item is written as '%' so
// the four segments stay unambiguous. Values of type Name are immutable
// and safe to share between goroutines.
package naming
