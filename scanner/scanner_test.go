package scanner

import (
	"testing"

	"github.com/loxscript/lox/token"
)

const TestBasicInput = "123 * 123"

func TestBasic(t *testing.T) {
	tokens, err := New(TestBasicInput).Scan()
	if err != nil {
		t.Errorf("Scanning failed: %s\n", err.Error())
	}

	for _, tok := range tokens {
		t.Log(tok.ToString())
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []token.Kind
	}{
		{"punctuation", "(){},.-+;*", []token.Kind{
			token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
			token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star, token.Eof,
		}},
		{"two char operators", "! != = == < <= > >=", []token.Kind{
			token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
			token.Less, token.LessEqual, token.Greater, token.GreaterEqual, token.Eof,
		}},
		{"keywords", "and class else false for fun if nil or print return super this true var while", []token.Kind{
			token.And, token.Class, token.Else, token.False, token.For, token.Fun, token.If, token.Nil,
			token.Or, token.Print, token.Return, token.Super, token.This, token.True, token.Var, token.While, token.Eof,
		}},
		{"line comment", "1 // comment\n2", []token.Kind{token.Number, token.Number, token.Eof}},
		{"string", `"hello"`, []token.Kind{token.String, token.Eof}},
		{"number", "123.45", []token.Kind{token.Number, token.Eof}},
		{"identifier", "foobar", []token.Kind{token.Identifier, token.Eof}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := New(tc.input).Scan()
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}

			if len(tokens) != len(tc.kinds) {
				t.Fatalf("got %d tokens, want %d", len(tokens), len(tc.kinds))
			}

			for i, k := range tc.kinds {
				if tokens[i].Kind != k {
					t.Errorf("token %d: got kind %v, want %v", i, tokens[i].Kind, k)
				}
			}
		})
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := New(`"unterminated`).Scan()
	if err == nil {
		t.Fatal("expected an error for unterminated string")
	}
}

func TestMultilineString(t *testing.T) {
	tokens, err := New("\"a\nb\"\nfoo").Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if tokens[1].Line != 3 {
		t.Errorf("identifier after multiline string: got line %d, want 3", tokens[1].Line)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := New("@").Scan()
	if err == nil {
		t.Fatal("expected an error for unexpected character")
	}
}
