// pkg/vimrc/vimrc.go
package vimrc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/vimstrap/vimstrap/pkg/core"
)

// vimrcTemplate is the fixed configuration template. Rendering is fully
// determined by the options; equal options produce byte-identical output.
const vimrcTemplate = `" Generated by vimstrap. Edits will be overwritten on the next run.
set nocompatible
syntax on
filetype plugin indent on

set number
set tabstop={{.TabWidth}}
set shiftwidth={{.TabWidth}}
set expandtab
set hlsearch
set incsearch
set backspace=indent,eol,start

colorscheme {{.Theme}}
{{- if .FormatOnSave}}

autocmd BufWritePre * :%s/\s\+$//e
{{- end}}

call plug#begin()
{{- range .Plugins}}
Plug '{{.}}'
{{- end}}
call plug#end()
`

var tmpl = template.Must(template.New("vimrc").Parse(vimrcTemplate))

// Render produces the vimrc content for the given options
func Render(opts core.RenderOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return nil, fmt.Errorf("rendering vimrc: %w", err)
	}
	return buf.Bytes(), nil
}

// Write writes content to path, creating parent directories as needed and
// overwriting unconditionally
func Write(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
