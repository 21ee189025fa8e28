// Package options parses the wcurl command line.
//
// The grammar is order-sensitive ("--" switches the rest of the line to URLs,
// values may be glued to -o/-O), so it is scanned by hand instead of through
// a flag set.
package options
