// Package bind maps document trees onto Go variables through a declared
// schema, and generates default configuration files from the same
// declaration.
//
// A Schema lists dotted paths with destination pointers, default values,
// and layout hints (comments, blank lines). Load reads a file through the
// schema: a missing file is first written out from the defaults, so the
// user starts from a commented template.
//
// # Usage
//
//	var (
//		name    = "server"
//		port    int
//		workers int
//	)
//	s := &bind.Schema{Fields: []bind.Field{
//		{Path: "name", Ptr: &name, Default: "server", Comment: "display name"},
//		{Path: "net.port", Ptr: &port, Default: 25565, SpaceBefore: true},
//		{Path: "net.workers", Ptr: &workers, Default: 4},
//	}}
//	root, err := s.Load("config.versa")
//
// Values present in the file overwrite the destination; missing paths keep
// the field default. Integer tree values widen into float64 destinations;
// any other kind mismatch is an error rather than a silent fallback.
//
// # Related Packages
//
// Package parse reads the files; package encode writes generated defaults.
package bind
