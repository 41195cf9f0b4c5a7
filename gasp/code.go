package gasp

// Code identifies a directive. The IFxx codes exist only in MRI syntax.
type Code int

//go:generate go tool stringer -linecomment -type=Code
const (
	K_EQU       = Code(0)  // EQU
	K_ALTERNATE = Code(1)  // ALTERNATE
	K_ASSIGN    = Code(2)  // ASSIGN
	K_REG       = Code(3)  // REG
	K_ORG       = Code(4)  // ORG
	K_RADIX     = Code(5)  // RADIX
	K_DATA      = Code(6)  // DATA
	K_DB        = Code(7)  // DB
	K_DW        = Code(8)  // DW
	K_DL        = Code(9)  // DL
	K_DATAB     = Code(10) // DATAB
	K_SDATA     = Code(11) // SDATA
	K_SDATAB    = Code(12) // SDATAB
	K_SDATAZ    = Code(13) // SDATAZ
	K_SDATAC    = Code(14) // SDATAC
	K_RES       = Code(15) // RES
	K_SRES      = Code(16) // SRES
	K_SRESC     = Code(17) // SRESC
	K_SRESZ     = Code(18) // SRESZ
	K_ALIGN     = Code(19) // ALIGN
	K_INCLUDE   = Code(20) // INCLUDE
	K_AIF       = Code(21) // AIF
	K_AELSE     = Code(22) // AELSE
	K_AENDI     = Code(23) // AENDI
	K_AREPEAT   = Code(24) // AREPEAT
	K_AENDR     = Code(25) // AENDR
	K_AWHILE    = Code(26) // AWHILE
	K_AENDW     = Code(27) // AENDW
	K_ASSIGNA   = Code(28) // ASSIGNA
	K_ASSIGNC   = Code(29) // ASSIGNC
	K_EXITM     = Code(30) // EXITM
	K_END       = Code(31) // END
	K_MACRO     = Code(32) // MACRO
	K_ENDM      = Code(33) // ENDM
	K_LOCAL     = Code(34) // LOCAL
	K_IRP       = Code(35) // IRP
	K_IRPC      = Code(36) // IRPC
	K_EXPORT    = Code(37) // EXPORT
	K_GLOBAL    = Code(38) // GLOBAL
	K_PROGRAM   = Code(39) // PROGRAM
	K_PRINT     = Code(40) // PRINT
	K_FORM      = Code(41) // FORM
	K_HEADING   = Code(42) // HEADING
	K_PAGE      = Code(43) // PAGE
	K_IMPORT    = Code(44) // IMPORT
	K_IFEQ      = Code(45) // IFEQ
	K_IFNE      = Code(46) // IFNE
	K_IFGT      = Code(47) // IFGT
	K_IFLT      = Code(48) // IFLT
	K_IFGE      = Code(49) // IFGE
	K_IFLE      = Code(50) // IFLE
	K_IFC       = Code(51) // IFC
	K_IFNC      = Code(52) // IFNC
)
