package syntax

// Enumeration of the states of the scanning automaton.
const (
	stateStart = iota
	stateLiteral
	stateWord
	stateOperator
	stateColon
	stateAssign
	stateSemicolon
	stateLess
	stateGreater
	stateRelational
	stateParen
	stateError

	stateAccept // final: the pending character is not part of the token
	stateEOF    // final: the input has ended
)

// Enumeration of character classes.
const (
	classSpace     = iota // ' ', '\t', '\n', '\r', '\v', '\f'
	classDigit            // 0-9
	classAlpha            // a-z, A-Z
	classSign             // '+', '-'
	classMulDiv           // '*', '/'
	classColon            // ':'
	classEqual            // '='
	classLess             // '<'
	classGreater          // '>'
	classSemicolon        // ';'
	classParen            // '(', ')'
	classEOF              // end of input
	classUnknown          // anything else

	classCount
)

// classify returns the class of a character.
func classify(c byte) int {
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
		return classSpace
	case '0' <= c && c <= '9':
		return classDigit
	case ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z'):
		return classAlpha
	}

	switch c {
	case '+', '-':
		return classSign
	case '*', '/':
		return classMulDiv
	case ':':
		return classColon
	case '=':
		return classEqual
	case '<':
		return classLess
	case '>':
		return classGreater
	case ';':
		return classSemicolon
	case '(', ')':
		return classParen
	}

	return classUnknown
}

const (
	_S = stateStart
	_L = stateLiteral
	_W = stateWord
	_O = stateOperator
	_C = stateColon
	_A = stateAssign
	_M = stateSemicolon
	_T = stateLess
	_G = stateGreater
	_R = stateRelational
	_P = stateParen
	_X = stateError
	_K = stateAccept
	_E = stateEOF
)

// transitionTable gives the next state of the automaton for every state and
// character class.  The final states have no row.
var transitionTable = [stateAccept][classCount]int{
	//              space digit alpha sign muldiv colon equal less greater semi paren eof unknown
	stateStart:      {_S, _L, _W, _O, _O, _C, _R, _T, _G, _M, _P, _E, _X},
	stateLiteral:    {_K, _L, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K},
	stateWord:       {_K, _W, _W, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K},
	stateOperator:   {_K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K},
	stateColon:      {_K, _K, _K, _K, _K, _K, _A, _K, _K, _K, _K, _K, _K},
	stateAssign:     {_K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K},
	stateSemicolon:  {_K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K},
	stateLess:       {_K, _K, _K, _K, _K, _K, _R, _K, _R, _K, _K, _K, _K},
	stateGreater:    {_K, _K, _K, _K, _K, _K, _R, _K, _K, _K, _K, _K, _K},
	stateRelational: {_K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K},
	stateParen:      {_K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K},
	stateError:      {_K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _K, _X},
}
