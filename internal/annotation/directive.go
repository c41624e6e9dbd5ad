package annotation

import (
	"go/ast"
	"go/token"
	"strings"
)

// DirectiveMarker is the comment prefix that identifies a document directive.
const DirectiveMarker = "//docgen:document"

// directive pairs a discovered directive comment with its raw argument text.
type directive struct {
	args    string
	comment *ast.Comment
	group   *ast.CommentGroup
}

// isDirective reports whether the comment text carries the directive marker.
func isDirective(marker, text string) bool {
	if !strings.HasPrefix(text, marker) {
		return false
	}
	rest := text[len(marker):]
	return rest == "" || strings.HasPrefix(strings.TrimSpace(rest), "(")
}

// directiveArgs extracts the argument text between the directive's
// parentheses. The closing parenthesis must be the last non-space character
// of the comment line.
func directiveArgs(marker, text string) (string, bool) {
	rest := strings.TrimSpace(text[len(marker):])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return "", false
	}
	return rest[1 : len(rest)-1], true
}

// collectDirectives walks every comment group in the file and returns the
// directives in source order, paired with the group that holds them.
func collectDirectives(marker string, file *ast.File) []directive {
	var found []directive
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if !isDirective(marker, comment.Text) {
				continue
			}
			args, _ := directiveArgs(marker, comment.Text)
			found = append(found, directive{args: args, comment: comment, group: group})
		}
	}
	return found
}

// declarationsByDoc indexes the file's top level declarations by their doc
// comment group so directives can be matched to the declaration they sit on.
func declarationsByDoc(file *ast.File) map[*ast.CommentGroup]ast.Decl {
	docs := make(map[*ast.CommentGroup]ast.Decl)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Doc != nil {
				docs[d.Doc] = decl
			}
		case *ast.GenDecl:
			if d.Doc != nil {
				docs[d.Doc] = decl
			}
		}
	}
	return docs
}

// commentLines wraps assembled documentation lines as Go comment lines. Blank
// separator lines become a bare "//" so gofmt leaves the block untouched.
func commentLines(lines []string) []string {
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			wrapped = append(wrapped, "//")
			continue
		}
		wrapped = append(wrapped, "// "+line)
	}
	return wrapped
}

// insertionOffset resolves the byte offset at which a generated block is
// spliced: the start of the comment group holding the directive.
func insertionOffset(fset *token.FileSet, group *ast.CommentGroup) int {
	return fset.Position(group.Pos()).Offset
}
