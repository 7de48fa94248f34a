package provider

type Usage struct {
	InputTokens  int
	OutputTokens int
}
