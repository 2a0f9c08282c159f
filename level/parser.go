package level

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type file struct {
	Levels []*levelDecl `parser:"@@*"`
}

type levelDecl struct {
	Pos   lexer.Position
	Name  string      `parser:"'level' @String '{'"`
	Props []*property `parser:"@@* '}'"`
}

type property struct {
	Pos      lexer.Position
	Diagonal *string `parser:"  'diagonal' @('true' | 'false')"`
	Mask     *string `parser:"| 'mask' @Ident"`
	Start    *point  `parser:"| 'start' @@"`
	Goal     *point  `parser:"| 'goal' @@"`
	Row      *string `parser:"| 'row' @String"`
}

type point struct {
	Col int `parser:"@Int"`
	Row int `parser:"',' @Int"`
}

var parser = participle.MustBuild[file](
	participle.Unquote("String"),
)
