// Package migrations embeds SQL migration files.
package migrations

import (
	"embed"
	"io/fs"
	"sort"
)

// FS contains the postgres migrations, applied in lexical order.
//
//go:embed *.sql
var FS embed.FS

// File is one migration ready to execute.
type File struct {
	Name string
	SQL  string
}

// Ordered returns every migration in FS sorted by file name.
func Ordered() ([]File, error) {
	names, err := fs.Glob(FS, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]File, 0, len(names))
	for _, n := range names {
		b, err := FS.ReadFile(n)
		if err != nil {
			return nil, err
		}
		out = append(out, File{Name: n, SQL: string(b)})
	}
	return out, nil
}
