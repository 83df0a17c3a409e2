// Package versa is the front door of the module: load a configuration
// document written in either syntax, query and mutate the tree, and
// write it back with layout intact.
//
// # Usage
//
//	n, err := versa.Load("server.versa")
//	if err != nil {
//		return err
//	}
//	port := n.GetIntOr("net.port", 8080)
//	n.GetBranch("net").SetValue("port", port+1)
//	if err := versa.Save(n, "server.versa"); err != nil {
//		return err
//	}
//
// Merge overlays a user document onto a defaults document, and
// ApplyMergePatch applies an RFC 7386 merge patch while keeping the
// layout of untouched parts. Watch re-parses a file whenever it
// changes on disk.
//
// # Related Packages
//
// Package parse and package encode do the actual reading and writing;
// everything here is a thin front over them.
//
// Package bind maps tree values onto Go variables declaratively.
package versa
