// Package data ships the default landmark knowledge base.
package data

import _ "embed"

//go:embed knowledge_base.json
var KnowledgeBase []byte

// KnowledgeBaseName is the file name KnowledgeBase was read from.
const KnowledgeBaseName = "knowledge_base.json"
