package project

import (
	"strings"

	"github.com/fatih/color"
)

type TokenKind int

const (
	FieldToken TokenKind = iota
	StringToken
	NumberToken
	BoolToken
	NullToken
	ExtensionToken
	SepToken
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[TokenKind]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[TokenKind]func(string, ...any) string{},
	}
	colors.Map[FieldToken] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[StringToken] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[NumberToken] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[BoolToken] = color.CyanString
	colors.Map[NullToken] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[ExtensionToken] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[SepToken] = color.RGB(128, 128, 128).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k TokenKind, s string) string {
	return c.Get(k)(s)
}

func (c *Colors) Get(k TokenKind) func(string, ...any) string {
	f := c.Map[k]
	if f == nil {
		return c.Default
	}
	return f
}
