package morse

// Answer is the outcome of the most recent check.
type Answer int

const (
	AnswerNone Answer = iota
	AnswerValid
	AnswerInvalid
)

// Verdict is the result of Interpret.
type Verdict struct {
	Code    string // code as entered
	Char    string // decoded character, empty when invalid
	Valid   bool
	Message string
}

// Interpreter accumulates dots and dashes and decodes them on demand.
type Interpreter struct {
	code    string
	message string
	answer  Answer
}

// NewInterpreter returns an empty interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Append adds sym to the code. Anything other than Dot or Dash is ignored.
func (in *Interpreter) Append(sym rune) {
	if sym == Dot || sym == Dash {
		in.code += string(sym)
	}
}

// Code returns the accumulated code.
func (in *Interpreter) Code() string {
	return in.code
}

// Valid reports whether the accumulated code decodes, and records it as the answer.
func (in *Interpreter) Valid() bool {
	_, ok := Decode[in.code]
	if ok {
		in.answer = AnswerValid
	} else {
		in.answer = AnswerInvalid
	}
	return ok
}

// Current returns the character for the accumulated code, or "" if it does not decode.
func (in *Interpreter) Current() string {
	return CharFor(in.code)
}

// Lookup returns the character for code, or "".
func (in *Interpreter) Lookup(code string) string {
	return CharFor(code)
}

// Interpret decodes the accumulated code, sets the message and clears the code.
func (in *Interpreter) Interpret() Verdict {
	v := Verdict{Code: in.code}
	if r, ok := Decode[in.code]; ok {
		v.Char = string(r)
		v.Valid = true
		v.Message = "Code Letter: " + v.Char
		in.answer = AnswerValid
	} else {
		v.Message = "Unknown Morse Code: " + in.code
		in.answer = AnswerInvalid
	}
	in.message = v.Message
	in.code = ""
	return v
}

// Message returns the last verdict message.
func (in *Interpreter) Message() string {
	return in.message
}

// Answer returns the state of the last check.
func (in *Interpreter) Answer() Answer {
	return in.answer
}

// Clear drops the accumulated code.
func (in *Interpreter) Clear() {
	in.code = ""
}

// ClearMessage drops the last verdict message.
func (in *Interpreter) ClearMessage() {
	in.message = ""
}
