// Package summarize produces extractive summaries: it scores the sentences
// of an English passage and returns the top few in their original order.
//
// Four scoring algorithms are available, selected by name: luhn
// (significant-word windows), lex_rank (tf-idf cosine graph centrality),
// text_rank (overlap-graph PageRank), and lsa (latent semantic analysis via
// singular value decomposition). Sentence boundaries come from a Punkt
// tokenizer whose data tables load once per process.
package summarize
