package ingest

// Pipeline orchestrates the text-level flow:
// text → sentences → raw tokens → clean tokens
type Pipeline struct {
	raw        Tokenizer
	clean      Tokenizer
	sentenizer Sentenizer
}

// NewPipeline creates an ingestion pipeline with the given components.
// Nil components fall back to the raw, clean and rule-based defaults.
func NewPipeline(raw, clean Tokenizer, sentenizer Sentenizer) *Pipeline {
	if raw == nil {
		raw = NewRawTokenizer()
	}
	if clean == nil {
		clean = NewCleanTokenizer()
	}
	if sentenizer == nil {
		sentenizer = NewRuleSentenizer()
	}
	return &Pipeline{
		raw:        raw,
		clean:      clean,
		sentenizer: sentenizer,
	}
}

// DefaultPipeline returns a pipeline built from the default components.
func DefaultPipeline() *Pipeline {
	return NewPipeline(nil, nil, nil)
}

// ProcessedText holds the token and sentence streams of one text
type ProcessedText struct {
	Sentences []string
	RawTokens []string
	Tokens    []string
}

// Process runs text through the pipeline
func (p *Pipeline) Process(text string) ProcessedText {
	return ProcessedText{
		Sentences: p.sentenizer.Sentenize(text),
		RawTokens: p.raw.Tokenize(text),
		Tokens:    p.clean.Tokenize(text),
	}
}

// RawTokenizer returns the pipeline's raw tokenizer
func (p *Pipeline) RawTokenizer() Tokenizer { return p.raw }

// CleanTokenizer returns the pipeline's clean tokenizer
func (p *Pipeline) CleanTokenizer() Tokenizer { return p.clean }

// Sentenizer returns the pipeline's sentenizer
func (p *Pipeline) Sentenizer() Sentenizer { return p.sentenizer }
