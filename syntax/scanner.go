package syntax

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"yog/report"
	"yog/symtab"
)

// MaxTokenLength is the maximum number of characters of a single token.
const MaxTokenLength = 31

// Scanner is responsible for tokenizing a source file.  It is a table-driven
// finite state automaton which reads one character at a time with one
// character of pushback.  Identifiers are interned in the symbol table as they
// are scanned.
type Scanner struct {
	file     *bufio.Reader
	tokBuff  *strings.Builder
	overflow bool

	// The pushed back character and its class.  The character is not yet
	// consumed: the cursor does not account for it.
	lookahead      byte
	lookaheadClass int
	hasLookahead   bool

	// The line and column of the next character to be consumed.
	line, col int

	table *symtab.Table
	errs  *report.ErrorList

	// WrapLiterals makes out of range integer literals wrap around silently
	// rather than raise an error.
	WrapLiterals bool
}

// NewScanner creates a new scanner reading from r.  Identifiers are interned
// in table and lexical errors are appended to errs.
func NewScanner(r io.Reader, table *symtab.Table, errs *report.ErrorList) *Scanner {
	return &Scanner{
		file:    bufio.NewReader(r),
		tokBuff: &strings.Builder{},
		line:    1,
		col:     1,
		table:   table,
		errs:    errs,
	}
}

// NextToken retrieves the next token from the input file.  If the file has
// ended, this will be an EOF token: any further calls keep returning EOF.
// Lexical errors are recorded and skipped, so the returned token is always
// valid.
func (s *Scanner) NextToken() *Token {
	for {
		if tok := s.scan(); tok != nil {
			return tok
		}
	}
}

// scan runs the automaton over a single lexeme.  It returns nil if the lexeme
// was erroneous: the error has already been recorded.
func (s *Scanner) scan() *Token {
	s.tokBuff.Reset()
	s.overflow = false

	state := stateStart
	var startPos *report.TextPosition

	for {
		c, class := s.peek()
		nextState := transitionTable[state][class]

		if nextState == stateAccept {
			break
		} else if nextState == stateEOF {
			return &Token{Kind: TOK_EOF, Value: "EOF", Position: s.cursor()}
		}

		if nextState != stateStart && state == stateStart {
			// the token begins at the first character that moves the
			// automaton out of the start state
			startPos = s.cursor()
		}

		if s.tokBuff.Len() == MaxTokenLength {
			s.errs.Add(&InvalidTokenError{
				Text:     s.tokBuff.String(),
				Reason:   "token too long",
				Position: startPos,
			})

			// scanning resumes from the start state: the pending character
			// begins the next lexeme
			return nil
		}

		s.consume()
		if nextState != stateStart {
			s.tokBuff.WriteByte(c)
		}

		state = nextState
	}

	return s.makeToken(state, startPos)
}

// makeToken builds a token from the accepted state and the buffered text.
func (s *Scanner) makeToken(state int, pos *report.TextPosition) *Token {
	text := s.tokBuff.String()
	tok := &Token{Value: text, Position: pos}

	switch state {
	case stateLiteral:
		tok.Kind = TOK_LITERAL
		if !s.parseLiteral(tok) {
			return nil
		}
	case stateWord:
		if kind, ok := keywordPatterns[text]; ok {
			tok.Kind = kind
		} else {
			tok.Kind = TOK_IDENTIFIER
			tok.Sym = s.table.Intern(text)
		}
	case stateError:
		s.errs.Add(&InvalidTokenError{Text: text, Position: pos})
		return nil
	default:
		tok.Kind = symbolPatterns[text]
	}

	return tok
}

// parseLiteral computes the value of an integer literal token.  It returns
// false if the literal is out of range and wrapping is disabled.
func (s *Scanner) parseLiteral(tok *Token) bool {
	if s.WrapLiterals {
		for i := 0; i < len(tok.Value); i++ {
			tok.Lit = tok.Lit*10 + int64(tok.Value[i]-'0')
		}

		return true
	}

	n, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		s.errs.Add(&InvalidTokenError{
			Text:     tok.Value,
			Reason:   "integer literal out of range",
			Position: tok.Position,
		})

		return false
	}

	tok.Lit = n
	return true
}

// -----------------------------------------------------------------------------

// cursor returns the position of the next character to be consumed.
func (s *Scanner) cursor() *report.TextPosition {
	return report.NewPosition(s.line, s.col)
}

// peek returns the next character and its class without consuming it.
func (s *Scanner) peek() (byte, int) {
	if !s.hasLookahead {
		c, err := s.file.ReadByte()
		if err != nil {
			// read errors other than EOF are treated as the end of input
			s.lookahead, s.lookaheadClass = 0, classEOF
		} else {
			s.lookahead, s.lookaheadClass = c, classify(c)
		}

		s.hasLookahead = true
	}

	return s.lookahead, s.lookaheadClass
}

// consume consumes the pushed back character and moves the cursor past it.
// The end of the file is never consumed.
func (s *Scanner) consume() {
	if s.lookaheadClass == classEOF {
		return
	}

	if s.lookahead == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	s.hasLookahead = false
}
