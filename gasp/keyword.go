package gasp

import (
	"github.com/ezrec/gasp/expr"
	"github.com/ezrec/gasp/symbol"
)

// Flag modifies the dispatch of a directive.
type Flag int

const (
	FLAG_PROCESS  = Flag(1 << 0) // Substitute variables in the operands first.
	FLAG_LABEL    = Flag(1 << 1) // Echo the label ahead of the output.
	FLAG_INACTIVE = Flag(1 << 2) // Runs inside inactive conditional blocks.
	FLAG_NAMED    = Flag(1 << 3) // The label names what the directive defines.
)

// directive is the dispatch entry of a Code.
type directive struct {
	Flags  Flag
	Handle func(s *Session, ln *line) error
}

var directives map[Code]directive

// Alternative directive spellings.
var aliases = map[string]Code{
	"ENDR": K_AENDR,
}

// Alternative directive spellings of MRI syntax.
var mriAliases = map[string]Code{
	"ENDC":  K_AENDI,
	"ELSEC": K_AELSE,
	"MEXIT": K_EXITM,
	"REPT":  K_AREPEAT,
}

func init() {
	const (
		data  = FLAG_LABEL | FLAG_PROCESS
		cond  = FLAG_PROCESS | FLAG_INACTIVE
		named = FLAG_NAMED | FLAG_PROCESS
	)

	directives = map[Code]directive{
		K_EQU:       {named, (*Session).doAssign},
		K_ALTERNATE: {0, (*Session).doAlternate},
		K_ASSIGN:    {named, (*Session).doAssign},
		K_REG:       {FLAG_NAMED, (*Session).doReg},
		K_ORG:       {0, (*Session).doOrg},
		K_RADIX:     {0, (*Session).doRadix},
		K_DATA:      {data, (*Session).doData},
		K_DB:        {data, (*Session).doData},
		K_DW:        {data, (*Session).doData},
		K_DL:        {data, (*Session).doData},
		K_DATAB:     {data, (*Session).doDataB},
		K_SDATA:     {data, (*Session).doSData},
		K_SDATAB:    {data, (*Session).doSDataB},
		K_SDATAZ:    {data, (*Session).doSData},
		K_SDATAC:    {data, (*Session).doSData},
		K_RES:       {data, (*Session).doRes},
		K_SRES:      {data, (*Session).doRes},
		K_SRESC:     {data, (*Session).doRes},
		K_SRESZ:     {data, (*Session).doRes},
		K_ALIGN:     {data, (*Session).doAlign},
		K_INCLUDE:   {0, (*Session).doInclude},
		K_AIF:       {cond, (*Session).doAIf},
		K_AELSE:     {cond, (*Session).doAElse},
		K_AENDI:     {cond, (*Session).doAEndI},
		K_AREPEAT:   {FLAG_PROCESS, (*Session).doARepeat},
		K_AENDR:     {FLAG_PROCESS, (*Session).doAEndR},
		K_AWHILE:    {0, (*Session).doAWhile},
		K_AENDW:     {FLAG_PROCESS, (*Session).doAEndW},
		K_ASSIGNA:   {named, (*Session).doAssignA},
		K_ASSIGNC:   {named, (*Session).doAssignC},
		K_EXITM:     {0, (*Session).doExitM},
		K_END:       {FLAG_PROCESS, (*Session).doEnd},
		K_MACRO:     {FLAG_NAMED, (*Session).doMacro},
		K_ENDM:      {0, (*Session).doEndM},
		K_LOCAL:     {0, (*Session).doLocal},
		K_IRP:       {0, (*Session).doIrp},
		K_IRPC:      {0, (*Session).doIrp},
		K_EXPORT:    {FLAG_LABEL, (*Session).doGlobal},
		K_GLOBAL:    {FLAG_LABEL, (*Session).doGlobal},
		K_PROGRAM:   {0, (*Session).doIgnore},
		K_PRINT:     {FLAG_LABEL, (*Session).doPrint},
		K_FORM:      {FLAG_LABEL, (*Session).doForm},
		K_HEADING:   {data, (*Session).doHeading},
		K_PAGE:      {FLAG_LABEL, (*Session).doPage},
		K_IMPORT:    {0, (*Session).doIgnore},
		K_IFEQ:      {cond, (*Session).doIf},
		K_IFNE:      {cond, (*Session).doIf},
		K_IFGT:      {cond, (*Session).doIf},
		K_IFLT:      {cond, (*Session).doIf},
		K_IFGE:      {cond, (*Session).doIf},
		K_IFLE:      {cond, (*Session).doIf},
		K_IFC:       {cond, (*Session).doIfC},
		K_IFNC:      {cond, (*Session).doIfC},
	}
}

// newKeywords builds the directive name table. The MRI spellings are only
// present when mri is set.
func newKeywords(fold bool, mri bool) (tab *symbol.Table) {
	tab = symbol.NewTable(fold)

	for code := K_EQU; code <= K_IMPORT; code++ {
		tab.BindInteger(code.String(), int(code))
	}
	for name, code := range aliases {
		tab.BindInteger(name, int(code))
	}

	if mri {
		for code := K_IFEQ; code <= K_IFNC; code++ {
			tab.BindInteger(code.String(), int(code))
		}
		for name, code := range mriAliases {
			tab.BindInteger(name, int(code))
		}
	}

	return
}

// keyword recognizes a directive word at text[idx]. The leading dot is
// optional in alternate and MRI syntax.
func (s *Session) keyword(text string, idx int) (code Code, next int, ok bool) {
	i := idx
	if i < len(text) && text[i] == '.' {
		i++
	} else if !s.Alternate && !s.MRI {
		return
	}

	start := i
	for i < len(text) && expr.IsNextChar(text[i], false) {
		i++
	}
	if i == start {
		return
	}

	e, found := s.Keywords.Lookup(text[start:i])
	if !found || e.Kind != symbol.INTEGER {
		return
	}

	code = Code(e.Int)
	next = i
	ok = true
	return
}
