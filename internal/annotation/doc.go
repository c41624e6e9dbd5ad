// Package annotation discovers document directives in Go source files,
// interprets their arguments, and splices the assembled documentation block
// above the annotated function.
//
// A directive is a single comment line of the form
//
//	//docgen:document(summary = "Adds two numbers")
//
// written as part of a function's doc comment group. The function's
// signature, body, and pre-existing comments pass through byte-identical;
// only the generated block is prepended. Every file is processed
// independently: a grammar or structural failure aborts that file's rewrite
// without affecting its siblings.
package annotation
