// Package wikidump is a library for scraping article text out of
// wikipedia database dumps.
//
// The dumps are available from the wikimedia group here:
//    http://dumps.wikimedia.org/
//
// Unlike a full XML parse, this package makes a single line-oriented
// pass over the dump, recording the byte offset of each page for
// later seeking, and drops non-article pages (redirects,
// disambiguation stubs, User:/Template:/etc. namespaces) as it goes.
//
// See the example programs in subpackages for an idea of how I've
// made use of these things.
package wikidump
