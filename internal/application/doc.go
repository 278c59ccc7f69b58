// Package application turns resolved settings into the constructor options of
// the chatbot's collaborators (document store, vector index, embedding model,
// LLM client), so none of them read the environment on their own.
package application
