package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mutual   Fund?", "mutual fund"},
		{"What IS the NAV??", "what is the nav"},
		{"401(k)", "401 k"},
		{"  hello,   world!  ", "hello world"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"what is a mutual fund", []string{"mutual", "fund"}},
		{"how to invest in mutual funds", []string{"invest", "mutual", "fund"}},
		{"What are the benefits of SIPs?", []string{"benefit", "sip"}},
		{"the a an is", nil},
	}
	for _, tt := range tests {
		got := Tokens(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokens(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLemma(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"funds", "fund"},
		{"stocks", "stock"},
		{"companies", "company"},
		{"investing", "invest"},
		{"invested", "invest"},
		{"classes", "class"},
		{"bonus", "bonus"},
		{"loss", "loss"},
		{"fund", "fund"},
	}
	for _, tt := range tests {
		if got := Lemma(tt.in); got != tt.want {
			t.Errorf("Lemma(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
