package brtree

// tokenType is the type of a lexical token.
type tokenType string

// token represents a lexical token of the bracket-tree format.
type token struct {
	Type    tokenType
	Literal string
}

const (
	// tokenWord is an attribute value, bare or quoted.
	tokenWord tokenType = "WORD"
	// tokenKeyword is the tag naming a node, the first word after '('.
	tokenKeyword tokenType = "KEYWORD"
	tokenOpen    tokenType = "("
	tokenClose   tokenType = ")"
)
