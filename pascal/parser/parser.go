package parser

import "fmt"

// DefaultMaxDepth bounds recursion through nested expressions and
// statements. The grammar itself imposes no limit, so the parser
// refuses inputs that would otherwise exhaust the stack.
const DefaultMaxDepth = 512

type Option func(*Parser)

func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// Parser consumes a token sequence by LL(1) recursive descent. It
// builds the symbol tables, records diagnostics, and re-emits the
// consumed tokens (sentinels included) as the cleaned stream.
type Parser struct {
	cursor   *Cursor[Token]
	maxDepth int
	depth    int

	// level is the lexical nesting depth, 1 for the program body.
	// procStack holds enclosing procedure names, innermost first.
	level     int
	procStack []string

	line          int
	lastErrorLine int

	symbols  *SymbolTable
	consumed []Token
	errors   ErrorList
}

// Result is the parser's terminal output. Tokens is the cleaned
// stream of consumed tokens; the tables are read-only from here on.
type Result struct {
	Tokens     []Token
	Variables  []Variable
	Procedures []Procedure
	Errors     ErrorList
	OK         bool
}

// Parse analyzes a token sequence as produced by Tokenize.
func Parse(tokens []Token, opts ...Option) *Result {
	p := &Parser{
		cursor:   NewCursor(tokens),
		maxDepth: DefaultMaxDepth,
		level:    1,
		line:     1,
		symbols:  NewSymbolTable(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.run()
	return &Result{
		Tokens:     p.consumed,
		Variables:  p.symbols.Variables(),
		Procedures: p.symbols.Procedures(),
		Errors:     p.errors,
		OK:         p.errors.Clean(),
	}
}

// ParseSource runs both stages and accumulates lexical and parse
// errors into one list, lexical errors first.
func ParseSource(input []byte, opts ...Option) *Result {
	tokens, lexErrors := Tokenize(input)
	result := Parse(tokens, opts...)
	if len(lexErrors) > 0 {
		result.Errors = append(append(ErrorList{}, lexErrors...), result.Errors...)
		result.OK = false
	}
	return result
}

func (p *Parser) run() {
	defer func() {
		if r := recover(); r != nil {
			fatal, ok := r.(fatalParseError)
			if !ok {
				panic(r)
			}
			p.errors = append(p.errors, fatal.err)
		}
	}()
	p.parseProgram()
}

// current returns the lookahead token, consuming any line sentinels in
// front of it. Sentinels still enter the cleaned stream.
func (p *Parser) current() Token {
	for p.cursor.IsOpen() && p.cursor.Current().Kind == TokenEOLN {
		p.consumeToken()
	}
	if !p.cursor.IsOpen() {
		return Token{Kind: TokenEOF, Value: "EOF", Line: p.line}
	}
	return p.cursor.Current()
}

func (p *Parser) consume() Token {
	p.current()
	return p.consumeToken()
}

func (p *Parser) consumeToken() Token {
	if !p.cursor.IsOpen() {
		return Token{Kind: TokenEOF, Value: "EOF", Line: p.line}
	}
	tok := p.cursor.Consume()
	p.consumed = append(p.consumed, tok)
	if tok.Line > p.line {
		p.line = tok.Line
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.current().Kind == kind
}

// expect consumes the mandatory token kind, or records a soft error
// and leaves the lookahead in place: parsing proceeds as if the token
// had been there.
func (p *Parser) expect(kind TokenKind) {
	if p.check(kind) {
		p.consume()
		return
	}
	p.reportf("Expected '%s', got '%s'", kind, p.current().Value)
}

// reportf records a soft error against the lookahead token's line.
// Only the first error on a source line is kept; the suppression lifts
// as soon as a later line is reached.
func (p *Parser) reportf(format string, args ...any) {
	p.reportAtf(p.current().Line, format, args...)
}

func (p *Parser) reportAtf(line int, format string, args ...any) {
	if line == p.lastErrorLine {
		return
	}
	p.lastErrorLine = line
	p.errors = append(p.errors, Error{Line: line, Message: fmt.Sprintf(format, args...)})
}

// fatalf aborts the parse. The error is recorded by run.
func (p *Parser) fatalf(format string, args ...any) {
	panic(fatalParseError{Error{
		Line:    p.current().Line,
		Message: fmt.Sprintf(format, args...),
		Fatal:   true,
	}})
}

func (p *Parser) enter() {
	p.depth++
	if p.depth > p.maxDepth {
		p.fatalf("Nesting exceeds %d levels", p.maxDepth)
	}
}

func (p *Parser) leave() {
	p.depth--
}

// owner names the procedure whose body is being parsed, or "" at the
// top level.
func (p *Parser) owner() string {
	if len(p.procStack) == 0 {
		return ""
	}
	return p.procStack[0]
}

func (p *Parser) parseProgram() {
	p.parseSubprogram()
	p.expect(TokenEOF)
}

func (p *Parser) parseSubprogram() {
	p.expect(TokenBegin)
	p.parseDeclarations()
	p.parseExecutions()
	p.expect(TokenEnd)
}

func (p *Parser) parseDeclarations() {
	for p.check(TokenInteger) {
		p.parseDeclaration()
	}
}

func (p *Parser) parseDeclaration() {
	p.expect(TokenInteger)
	if p.check(TokenFunction) {
		p.parseProcedureDeclaration()
	} else {
		p.parseVariableDeclaration(VarLocal)
	}
	p.expect(TokenSemicolon)
}

func (p *Parser) parseVariableDeclaration(kind VarKind) {
	if !p.check(TokenIdent) {
		p.reportf("Expected 'identifier', got '%s'", p.current().Value)
		return
	}
	name := p.consume().Value
	if !p.symbols.DeclareVariable(name, p.owner(), kind, p.level) {
		p.reportf("Variable '%s' has already been declared", name)
	}
}

func (p *Parser) parseProcedureDeclaration() {
	p.expect(TokenFunction)

	var name string
	if p.check(TokenIdent) {
		name = p.consume().Value
	} else {
		p.reportf("Expected 'identifier', got '%s'", p.current().Value)
	}

	// The record carries the level the body will run at.
	var proc *Procedure
	if name != "" {
		declared, ok := p.symbols.DeclareProcedure(name, p.level+1)
		if !ok {
			p.reportf("Function '%s' has already been declared", name)
		}
		proc = declared
	}

	p.level++
	p.procStack = append([]string{name}, p.procStack...)
	if proc != nil {
		proc.FirstAddress = p.symbols.NextAddress()
	}

	p.expect(TokenLParen)
	p.parseVariableDeclaration(VarParameter)
	p.expect(TokenRParen)
	p.expect(TokenSemicolon)

	p.expect(TokenBegin)
	p.parseDeclarations()
	p.parseExecutions()
	p.expect(TokenEnd)

	if proc != nil {
		proc.LastAddress = p.symbols.NextAddress() - 1
	}
	p.procStack = p.procStack[1:]
	p.level--
}

func (p *Parser) parseExecutions() {
	// A body may hold declarations only.
	if p.check(TokenEnd) {
		return
	}
	p.parseExecution()
	for p.check(TokenSemicolon) {
		p.consume()
		if p.check(TokenEnd) {
			return
		}
		p.parseExecution()
	}
}

func (p *Parser) parseExecution() {
	p.enter()
	defer p.leave()

	switch p.current().Kind {
	case TokenRead:
		p.parseRead()
	case TokenWrite:
		p.parseWrite()
	case TokenIdent:
		p.parseAssignment()
	case TokenIf:
		p.parseCondition()
	default:
		// Usually a declaration after the first statement. Nothing
		// downstream can resynchronize from this, so give up.
		p.fatalf("'%s' cannot start a statement", p.current().Value)
	}
}

func (p *Parser) parseRead() {
	p.expect(TokenRead)
	p.expect(TokenLParen)
	p.parseVariableReference()
	p.expect(TokenRParen)
}

func (p *Parser) parseWrite() {
	p.expect(TokenWrite)
	p.expect(TokenLParen)
	p.parseVariableReference()
	p.expect(TokenRParen)
}

func (p *Parser) parseVariableReference() {
	if !p.check(TokenIdent) {
		p.reportf("Expected 'identifier', got '%s'", p.current().Value)
		return
	}
	tok := p.consume()
	if p.symbols.LookupVariable(tok.Value, p.level) == nil {
		p.reportAtf(tok.Line, "Undefined variable '%s'", tok.Value)
	}
}

// parseAssignment handles both variable targets and assignment to a
// function name, which sets the function's return value.
func (p *Parser) parseAssignment() {
	tok := p.consume()
	if p.symbols.LookupVariable(tok.Value, p.level) == nil &&
		p.symbols.LookupProcedure(tok.Value, p.level) == nil {
		p.reportAtf(tok.Line, "Undefined variable '%s'", tok.Value)
	}
	p.expect(TokenAssign)
	p.parseExpression()
}

func (p *Parser) parseCondition() {
	p.expect(TokenIf)
	p.parseExpression()
	p.parseRelationalOperator()
	p.parseExpression()
	p.expect(TokenThen)
	p.parseExecution()
	p.expect(TokenElse)
	p.parseExecution()
}

func (p *Parser) parseRelationalOperator() {
	switch p.current().Kind {
	case TokenEQ, TokenNE, TokenLT, TokenLE, TokenGT, TokenGE:
		p.consume()
	default:
		p.reportf("Invalid relational operator '%s'", p.current().Value)
	}
}

func (p *Parser) parseExpression() {
	p.enter()
	defer p.leave()

	p.parseTerm()
	for p.check(TokenMinus) {
		p.consume()
		p.parseTerm()
	}
}

func (p *Parser) parseTerm() {
	p.parseFactor()
	for p.check(TokenStar) {
		p.consume()
		p.parseFactor()
	}
}

// parseFactor decides variable reference versus function call by a
// symbol-table probe, not a grammar rule: the grammar alone cannot
// tell them apart from one identifier of lookahead.
func (p *Parser) parseFactor() {
	switch p.current().Kind {
	case TokenConstant:
		p.consume()
	case TokenIdent:
		name := p.current().Value
		if p.symbols.LookupVariable(name, p.level) != nil {
			p.consume()
			return
		}
		if p.symbols.LookupProcedure(name, p.level) != nil {
			p.parseProcedureCall()
			return
		}
		// Treated as declared from here on so the rest of the
		// expression still parses.
		tok := p.consume()
		p.reportAtf(tok.Line, "Undefined variable '%s'", name)
	default:
		p.reportf("Expected 'constant' or 'identifier', got '%s'", p.current().Value)
	}
}

func (p *Parser) parseProcedureCall() {
	p.consume()
	p.expect(TokenLParen)
	p.parseExpression()
	p.expect(TokenRParen)
}
