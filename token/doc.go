// Package token provides the lexical helpers shared by parse and
// encode: input positions, string quoting, raw code point encoding and
// number scanning.
package token
