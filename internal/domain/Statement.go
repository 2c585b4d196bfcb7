package domain

import "time"

// Statement é um extrato de royalties carregado e mantido em memória
// durante a sessão. Nada é persistido entre sessões.
type Statement struct {
	ID         string        `json:"statement_id"`
	Filename   string        `json:"filename"`
	Delimiter  string        `json:"delimiter"`
	Records    []*SaleRecord `json:"-"`
	UploadedAt time.Time     `json:"uploaded_at"`
}

// StatementSummary é a visão de metadados do extrato devolvida pela API.
type StatementSummary struct {
	ID         string    `json:"statement_id"`
	Filename   string    `json:"filename"`
	Delimiter  string    `json:"delimiter"`
	Rows       int       `json:"rows"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Summary monta a visão de metadados do extrato.
func (s *Statement) Summary() *StatementSummary {
	return &StatementSummary{
		ID:         s.ID,
		Filename:   s.Filename,
		Delimiter:  s.Delimiter,
		Rows:       len(s.Records),
		UploadedAt: s.UploadedAt,
	}
}
