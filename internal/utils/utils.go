package utils

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/takoeight0821/lox/internal/token"
	"gopkg.in/yaml.v3"
)

// ErrorAt attaches a source position to an error.
type ErrorAt struct {
	Where token.Token
	Err   error
}

func (e ErrorAt) Error() string {
	if e.Where.Kind == token.EOF {
		return fmt.Sprintf("line %d at end: %s", e.Where.Line, e.Err.Error())
	}
	return fmt.Sprintf("line %d at `%s`: %s", e.Where.Line, e.Where.Lexeme, e.Err.Error())
}

func (e ErrorAt) Unwrap() error {
	return e.Err
}

type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}

// FindSourceFiles returns every .lox file under root in lexical order.
func FindSourceFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".lox" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
