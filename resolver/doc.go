// Package resolver resolves the names that content stream operators use to
// refer to a page's resources.
//
// Tf names a /Font entry, cs and CS name a /ColorSpace entry, and scn and
// SCN may name a /Pattern entry. A [Resolver] answers those lookups; the
// interpreter falls back to the previous font or a fixed colour when it
// cannot.
//
// # Basic Usage
//
// Build a resolver over a resource dictionary:
//
//	r := resolver.FromDict(page.Resources)
//	d, ok := r.Font("F1")
//
// Or describe the resources literally, which is handy in tests:
//
//	r := &resolver.Map{Fonts: map[string]font.Descriptor{"F1": font.Default()}}
//
// # Aliases
//
// A /ColorSpace entry may name another entry. Alias chains are followed
// with cycle detection, and the maximum depth is configurable:
//
//	r := resolver.NewResolver(resources, resolver.WithMaxDepth(4))
package resolver
